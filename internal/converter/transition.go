package converter

import (
	"ipconv/pkg/domain"
	"ipconv/pkg/ipbin"
	"ipconv/pkg/serrors"
)

// Transition applies a single edit to state and returns the resulting state.
// It is the whole synchronization contract between the two fields:
//
//   - An edit to "" clears both fields' values and errors.
//   - A valid edit recomputes the other field and clears its error.
//   - An invalid edit sets this field's error and clears the other field's
//     value, leaving the other field's error as it was.
//
// Binary edits are sanitized first: characters other than '0', '1' and '.'
// are dropped and separators are stripped. An edit that would leave more
// than 32 bits is rejected and state is returned unchanged with rejected set.
// Only an unknown field yields an error.
func Transition(state domain.State, edit domain.Edit) (next domain.State, rejected bool, err error) {
	switch edit.Field {
	case domain.FieldAddress:
		return editAddress(state, edit.Value), false, nil
	case domain.FieldBinary:
		next, rejected = editBinary(state, edit.Value)

		return next, rejected, nil
	default:
		return state, false, serrors.With(serrors.ErrBadRequest, "unknown field %q", edit.Field)
	}
}

func editAddress(state domain.State, value string) domain.State {
	state.Address.Value = value

	if value == "" {
		return domain.State{}
	}

	bin, err := ipbin.AddressToBinary(value)
	if err != nil {
		state.Address.Error = serrors.MessageOf(err, ipbin.AddressErrorMessage)
		state.Binary.Value = ""

		return state
	}

	state.Address.Error = ""
	state.Binary = domain.Field{Value: bin}

	return state
}

func editBinary(state domain.State, raw string) (domain.State, bool) {
	value := ipbin.Strip(ipbin.SanitizeBinaryInput(raw))
	if len(value) > ipbin.Bits {
		return state, true
	}

	state.Binary.Value = value

	if value == "" {
		return domain.State{}, false
	}

	address, err := ipbin.BinaryToAddress(value)
	if err != nil {
		state.Binary.Error = serrors.MessageOf(err, ipbin.BinaryErrorMessage)
		state.Address.Value = ""

		return state, false
	}

	state.Binary.Error = ""
	state.Address = domain.Field{Value: address}

	return state, false
}
