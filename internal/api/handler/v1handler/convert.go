package v1handler

import (
	"net/http"

	"ipconv/pkg/domain"
	"ipconv/pkg/serrors"

	"github.com/go-faster/jx"
)

// decodeStringField reads a body holding a single string property named key.
func (h *Handler) decodeStringField(w http.ResponseWriter, r *http.Request, key string) (string, error) {
	body, err := readBody(w, r, h.options.MaxBodyBytes)
	if err != nil {
		return "", err
	}

	var (
		value string
		found bool
	)
	err = decodeObject(body, func(d *jx.Decoder, k string) error {
		if k != key {
			return d.Skip() //nolint: wrapcheck
		}
		found = true
		v, err := d.Str()
		value = v

		return err //nolint: wrapcheck
	})
	if err != nil {
		return "", err
	}
	if !found {
		return "", serrors.With(serrors.ErrBadRequest, "missing %q", key)
	}

	return value, nil
}

// ConvertAddress converts {"address": "..."} to its binary form.
func (h *Handler) ConvertAddress(w http.ResponseWriter, r *http.Request) error {
	address, err := h.decodeStringField(w, r, "address")
	if err != nil {
		return err
	}

	conv, err := h.deps.Converter.AddressToBinary(r.Context(), address)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeConversion(e, conv) })

	return nil
}

// ConvertBinary converts {"binary": "..."} to its dotted-decimal form.
// Display separators in the input are accepted.
func (h *Handler) ConvertBinary(w http.ResponseWriter, r *http.Request) error {
	binary, err := h.decodeStringField(w, r, "binary")
	if err != nil {
		return err
	}

	conv, err := h.deps.Converter.BinaryToAddress(r.Context(), binary)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeConversion(e, conv) })

	return nil
}

// Validate checks {"field": ..., "value": ...}. An invalid value is a
// successful reply with valid=false, the advisory code and its message.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) error {
	body, err := readBody(w, r, h.options.MaxBodyBytes)
	if err != nil {
		return err
	}
	edit, err := decodeEdit(body)
	if err != nil {
		return err
	}

	verr := h.deps.Converter.Validate(r.Context(), edit.Field, edit.Value)
	if verr != nil && serrors.KindOf(verr) == nil {
		return verr //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.ObjStart()
		e.FieldStart("field")
		e.Str(string(edit.Field))
		e.FieldStart("valid")
		e.Bool(verr == nil)
		if verr != nil {
			res := h.NewError(r.Context(), verr).Response
			e.FieldStart("code")
			e.Str(res.Code)
			e.FieldStart("message")
			e.Str(res.Message)
		}
		e.ObjEnd()
	})

	return nil
}

// Edit applies {"state": {...}, "field": ..., "value": ...} and replies with
// the resulting state. A missing state means both fields are empty.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) error {
	body, err := readBody(w, r, h.options.MaxBodyBytes)
	if err != nil {
		return err
	}

	var (
		state domain.State
		edit  domain.Edit
	)
	err = decodeObject(body, func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "state":
			state, err = decodeState(d)
		case "field":
			var v string
			v, err = d.Str()
			edit.Field = domain.FieldName(v)
		case "value":
			edit.Value, err = d.Str()
		default:
			err = d.Skip()
		}

		return err //nolint: wrapcheck
	})
	if err != nil {
		return err
	}
	if !edit.Field.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown field %q", edit.Field)
	}

	next, err := h.deps.Converter.Apply(r.Context(), state, edit)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeState(e, next) })

	return nil
}
