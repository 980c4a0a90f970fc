package abi

import (
	"strings"

	"github.com/holiman/uint256"
	"github.com/status-im/keycard-go/hexutils"

	"multi-address/address"
)

const WordLength = 32

// PadAddress left pads a normalized 40 char body to a 32 byte ABI word.
func PadAddress(body string) string {
	word := uint256.NewInt(0).SetBytes20(hexutils.HexToBytes(body)).PaddedBytes(WordLength)
	return strings.ToLower(hexutils.BytesToHex(word))
}

// EncodeAddress accepts anything ToEvmAddress accepts and returns its ABI word.
func EncodeAddress(input string) (string, error) {
	body, err := address.Normalize(input, true)
	if err != nil {
		return "", err
	}
	return PadAddress(body), nil
}
