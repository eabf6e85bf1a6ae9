package soroban

import (
	"encoding/base64"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// BytesEncoding is the detected text encoding of a bytes input
type BytesEncoding string

const (
	EncodingHex    BytesEncoding = "hex"
	EncodingBase64 BytesEncoding = "base64"
	EncodingUTF8   BytesEncoding = "utf8"
)

var (
	hexPattern    = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	base64Pattern = regexp.MustCompile(`^[A-Za-z0-9+/]+={0,2}$`)
)

// DetectBytesEncoding guesses how a bytes string was written.
// Hex wins over base64 for strings valid as both.
func DetectBytesEncoding(s string) BytesEncoding {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return EncodingHex
	}
	if len(s)%2 == 0 && hexPattern.MatchString(s) {
		return EncodingHex
	}
	if len(s)%4 == 0 && base64Pattern.MatchString(s) {
		if _, err := base64.StdEncoding.DecodeString(s); err == nil {
			return EncodingBase64
		}
	}
	return EncodingUTF8
}

// DecodeBytes decodes a bytes string according to its detected encoding
func DecodeBytes(s string) ([]byte, BytesEncoding, error) {
	enc := DetectBytesEncoding(s)
	switch enc {
	case EncodingHex:
		if !strings.HasPrefix(s, "0x") {
			s = "0x" + strings.TrimPrefix(s, "0X")
		}
		if s == "0x" {
			return []byte{}, enc, nil
		}
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, enc, err
		}
		return b, enc, nil
	case EncodingBase64:
		b, err := base64.StdEncoding.DecodeString(s)
		return b, enc, err
	default:
		return []byte(s), enc, nil
	}
}
