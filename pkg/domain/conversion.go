package domain

// Direction names the way a one-shot conversion goes.
type Direction string

const (
	// DirectionAddressToBinary converts dotted-decimal text to binary.
	DirectionAddressToBinary Direction = "address_to_binary"
	// DirectionBinaryToAddress converts binary text to dotted-decimal.
	DirectionBinaryToAddress Direction = "binary_to_address"
)

// Conversion is the result of a one-shot conversion. Both forms always
// denote the same address.
type Conversion struct {
	// Address is the dotted-decimal form.
	Address string `json:"address"`
	// Binary is the stripped 32-character binary form.
	Binary string `json:"binary"`
	// Display is Binary grouped into octets.
	Display string `json:"display"`
}
