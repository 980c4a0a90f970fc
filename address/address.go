package address

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/status-im/keycard-go/hexutils"
)

const (
	BodyLength = 2 * common.AddressLength

	EvmPrefix = "0x"
	XkoPrefix = "XKO"
)

var xkoPrefixLower = strings.ToLower(XkoPrefix)

// Normalize trims and lowercases input, strips a recognized prefix and returns
// the 40 char lowercase body. The XKO prefix is only stripped when allowXko is set.
func Normalize(input string, allowXko bool) (string, error) {
	s := lowerASCII(strings.TrimSpace(input))
	if s == "" {
		return "", ErrNotAString
	}

	switch {
	case strings.HasPrefix(s, EvmPrefix):
		s = s[len(EvmPrefix):]
	case allowXko && strings.HasPrefix(s, xkoPrefixLower):
		s = s[len(xkoPrefixLower):]
	}

	if len(s) != BodyLength {
		return "", &LengthError{Length: len(s)}
	}
	for i := 0; i < len(s); i++ {
		if !isHex(s[i]) {
			return "", ErrInvalidHex
		}
	}
	return s, nil
}

// lowerASCII keeps the byte length of s, unlike strings.ToLower on invalid UTF-8.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// Checksum applies the mixed-case checksum to a normalized body and returns it
// with the 0x prefix. body must come from Normalize.
func Checksum(body string) string {
	hash := crypto.Keccak256([]byte(body))

	buf := make([]byte, len(EvmPrefix)+len(body))
	copy(buf, EvmPrefix)
	a := buf[len(EvmPrefix):]
	copy(a, body)

	for i := range a {
		nibble := (hash[i/2] >> (4 * (1 - uint(i)%2))) & 0xf
		if nibble >= 8 && 'a' <= a[i] && a[i] <= 'f' {
			a[i] -= 'a' - 'A'
		}
	}
	return string(buf)
}

// ToEvmAddress converts 0x-prefixed, XKO-prefixed or bare hex input into the
// checksummed 0x form.
func ToEvmAddress(input string) (string, error) {
	body, err := Normalize(input, true)
	if err != nil {
		return "", err
	}
	return Checksum(body), nil
}

// FromEvmAddress converts 0x-prefixed or bare hex input into the checksummed
// XKO form. XKO-prefixed input is rejected with a length error.
func FromEvmAddress(input string) (string, error) {
	body, err := Normalize(input, false)
	if err != nil {
		return "", err
	}
	return XkoPrefix + Checksum(body)[len(EvmPrefix):], nil
}

// Bytes decodes any input accepted by ToEvmAddress into its 20 byte value.
func Bytes(input string) (common.Address, error) {
	body, err := Normalize(input, true)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(hexutils.HexToBytes(body)), nil
}
