package converter

import (
	"context"
	"ipconv/pkg/domain"
)

//go:generate mockgen -package mockconverter -source=interface.go -destination=mock/mockconverter.go *
type Converter interface {
	AddressToBinary(ctx context.Context, address string) (*domain.Conversion, error)
	BinaryToAddress(ctx context.Context, binary string) (*domain.Conversion, error)
	Validate(ctx context.Context, field domain.FieldName, value string) error
	Apply(ctx context.Context, state domain.State, edit domain.Edit) (domain.State, error)
}
