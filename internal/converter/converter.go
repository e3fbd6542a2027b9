// Package converter implements the conversion service behind the API and the
// state machine that keeps the address and binary fields synchronized.
package converter

import (
	"context"
	"fmt"
	"time"

	"ipconv/pkg/domain"
	"ipconv/pkg/ipbin"
	"ipconv/pkg/logger"
	"ipconv/pkg/metrics"
	"ipconv/pkg/serrors"

	"go.uber.org/zap"
)

// converter is the concrete implementation of the Converter interface.
// It wraps the pure functions of ipbin with logging and metrics.
type converter struct {
	// recorder receives one reading per call; nil disables metrics.
	recorder *metrics.Recorder
	// now is the clock used to time conversions.
	now func() time.Time
}

// AddressToBinary converts dotted-decimal text. Invalid input yields
// ipbin.ErrInvalidAddressFormat.
func (c converter) AddressToBinary(ctx context.Context, address string) (*domain.Conversion, error) {
	start := c.now()
	bin, err := ipbin.AddressToBinary(address)
	c.recorder.Conversion(ctx, domain.DirectionAddressToBinary, err, c.now().Sub(start))
	if err != nil {
		logger.Debug(ctx, "address rejected", zap.String("address", address), zap.Error(err))

		return nil, fmt.Errorf("could not convert address: %w", err)
	}

	return &domain.Conversion{
		Address: address,
		Binary:  bin,
		Display: ipbin.FormatForDisplay(bin),
	}, nil
}

// BinaryToAddress converts binary text, with or without separators. Invalid
// input yields ipbin.ErrInvalidBinaryLength or ipbin.ErrInvalidBinaryChars.
func (c converter) BinaryToAddress(ctx context.Context, binary string) (*domain.Conversion, error) {
	start := c.now()
	address, err := ipbin.BinaryToAddress(binary)
	c.recorder.Conversion(ctx, domain.DirectionBinaryToAddress, err, c.now().Sub(start))
	if err != nil {
		logger.Debug(ctx, "binary rejected", zap.String("binary", binary), zap.Error(err))

		return nil, fmt.Errorf("could not convert binary: %w", err)
	}

	stripped := ipbin.Strip(binary)

	return &domain.Conversion{
		Address: address,
		Binary:  stripped,
		Display: ipbin.FormatForDisplay(stripped),
	}, nil
}

// Validate checks value as the content of field. The empty string is the
// unset state and is always valid.
func (c converter) Validate(_ context.Context, field domain.FieldName, value string) error {
	switch field {
	case domain.FieldAddress:
		return ipbin.ValidateAddress(value) //nolint: wrapcheck
	case domain.FieldBinary:
		return ipbin.ValidateBinary(value) //nolint: wrapcheck
	default:
		return serrors.With(serrors.ErrBadRequest, "unknown field %q", field)
	}
}

// Apply runs one synchronization step. See Transition for the rules.
func (c converter) Apply(ctx context.Context, state domain.State, edit domain.Edit) (domain.State, error) {
	next, rejected, err := Transition(state, edit)
	if err != nil {
		return state, err
	}

	fieldState := next.Field(edit.Field).State()
	c.recorder.Edit(ctx, edit.Field, fieldState, rejected)
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "edit applied",
			zap.String("field", string(edit.Field)),
			zap.String("state", string(fieldState)),
			zap.Bool("rejected", rejected))
	}

	return next, nil
}

// New creates a Converter that reports to recorder. A nil recorder is allowed.
func New(recorder *metrics.Recorder) Converter {
	return &converter{
		recorder: recorder,
		now:      time.Now,
	}
}
