// Package ipbin converts IPv4 addresses between dotted-decimal text and their
// 32-bit binary representation, and validates both forms.
//
// The binary form is a string of exactly 32 '0'/'1' characters, most
// significant octet first. For display it may be grouped into octets with
// Separator; every numeric interpretation strips the separators first.
package ipbin

import (
	"strconv"
	"strings"

	"ipconv/pkg/serrors"
)

const (
	// Bits is the width of an IPv4 address.
	Bits = 32
	// OctetBits is the width of a single octet.
	OctetBits = 8
	// Octets is the number of octets in an IPv4 address.
	Octets = Bits / OctetBits
	// Separator groups octets in both the address and the display binary form.
	Separator = "."
)

var (
	// ErrInvalidAddressFormat is reported for address text that is not four
	// canonical decimal octets.
	ErrInvalidAddressFormat = serrors.NewKind("INVALID_ADDRESS_FORMAT")
	// ErrInvalidBinaryLength is reported when the stripped binary text is not 32 characters long.
	ErrInvalidBinaryLength = serrors.NewKind("INVALID_BINARY_LENGTH")
	// ErrInvalidBinaryChars is reported when the stripped binary text contains anything but '0' and '1'.
	ErrInvalidBinaryChars = serrors.NewKind("INVALID_BINARY_CHARS")
)

const (
	// AddressErrorMessage is shown next to an invalid address field.
	AddressErrorMessage = "Invalid IP Address format (e.g., 192.168.1.1)"
	// BinaryErrorMessage is shown next to an invalid binary field.
	BinaryErrorMessage = "Binary must be exactly 32 bits (0s and 1s)"
)

// ParseAddress parses dotted-decimal text into its 32-bit value.
func ParseAddress(s string) (uint32, error) {
	parts := strings.Split(s, Separator)
	if len(parts) != Octets {
		return 0, serrors.With(ErrInvalidAddressFormat, AddressErrorMessage)
	}

	var v uint32
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		// the canonical rendering check rejects leading zeros, signs and spaces
		if err != nil || n < 0 || n > 255 || strconv.Itoa(n) != part {
			return 0, serrors.With(ErrInvalidAddressFormat, AddressErrorMessage)
		}
		v = v<<OctetBits | uint32(n) //nolint: gosec
	}

	return v, nil
}

// FormatAddress renders v as dotted-decimal text.
func FormatAddress(v uint32) string {
	var b strings.Builder
	for i := Octets - 1; i >= 0; i-- {
		b.WriteString(strconv.FormatUint(uint64(v>>(i*OctetBits)&0xff), 10))
		if i > 0 {
			b.WriteString(Separator)
		}
	}

	return b.String()
}

// ParseBinary parses binary text, with or without display separators, into
// its 32-bit value.
func ParseBinary(s string) (uint32, error) {
	stripped := Strip(s)
	if len(stripped) != Bits {
		return 0, serrors.With(ErrInvalidBinaryLength, BinaryErrorMessage)
	}

	var v uint32
	for i := 0; i < len(stripped); i++ {
		switch stripped[i] {
		case '0':
			v <<= 1
		case '1':
			v = v<<1 | 1
		default:
			return 0, serrors.With(ErrInvalidBinaryChars, BinaryErrorMessage)
		}
	}

	return v, nil
}

// FormatBinary renders v as 32 binary digits without separators.
func FormatBinary(v uint32) string {
	s := strconv.FormatUint(uint64(v), 2)

	return strings.Repeat("0", Bits-len(s)) + s
}

// AddressToBinary converts dotted-decimal text to its stripped binary form.
// Each octet becomes eight zero-padded digits, in order.
func AddressToBinary(address string) (string, error) {
	v, err := ParseAddress(address)
	if err != nil {
		return "", err
	}

	return FormatBinary(v), nil
}

// BinaryToAddress converts binary text to dotted-decimal text. Separators are
// stripped before the length check.
func BinaryToAddress(binary string) (string, error) {
	v, err := ParseBinary(binary)
	if err != nil {
		return "", err
	}

	return FormatAddress(v), nil
}

// Strip removes every display separator from binary text.
func Strip(binary string) string {
	return strings.ReplaceAll(binary, Separator, "")
}

// FormatForDisplay groups binary text into octets separated by Separator.
// Partial input is grouped as far as it goes, so "1100000010" becomes
// "11000000.10".
func FormatForDisplay(binary string) string {
	binary = Strip(binary)
	if binary == "" {
		return ""
	}

	groups := make([]string, 0, (len(binary)+OctetBits-1)/OctetBits)
	for start := 0; start < len(binary); start += OctetBits {
		end := min(start+OctetBits, len(binary))
		groups = append(groups, binary[start:end])
	}

	return strings.Join(groups, Separator)
}

// SanitizeBinaryInput drops every character that cannot appear in binary
// text, keeping digits '0' and '1' and separators.
func SanitizeBinaryInput(raw string) string {
	return strings.Map(func(r rune) rune {
		if r == '0' || r == '1' || r == '.' {
			return r
		}

		return -1
	}, raw)
}
