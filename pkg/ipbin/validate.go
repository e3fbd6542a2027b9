package ipbin

// IsValidAddress reports whether s is empty or a dotted-decimal IPv4 address
// with four canonical octets. "0" is accepted, "00" and "01" are not.
func IsValidAddress(s string) bool {
	return ValidateAddress(s) == nil
}

// IsValidBinary reports whether s is empty or, once stripped, exactly 32
// binary digits.
func IsValidBinary(s string) bool {
	return ValidateBinary(s) == nil
}

// ValidateAddress is IsValidAddress returning the advisory error for invalid
// input. The empty string is the unset state and is valid.
func ValidateAddress(s string) error {
	if s == "" {
		return nil
	}
	_, err := ParseAddress(s)

	return err
}

// ValidateBinary is IsValidBinary returning ErrInvalidBinaryLength or
// ErrInvalidBinaryChars for invalid input.
func ValidateBinary(s string) error {
	if Strip(s) == "" {
		return nil
	}
	_, err := ParseBinary(s)

	return err
}
