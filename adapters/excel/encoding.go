package excel

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/korean"
)

// Encoding names accepted in ReaderConfig.Encodings
const (
	EncodingUTF8SIG = "utf-8-sig"
	EncodingUTF8    = "utf-8"
	EncodingCP949   = "cp949"
	EncodingLatin1  = "latin1"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DefaultEncodings is the csv decoding fallback order
func DefaultEncodings() []string {
	return []string{EncodingUTF8SIG, EncodingUTF8, EncodingCP949, EncodingLatin1}
}

// decodeText converts raw bytes in the named encoding to a UTF-8 string.
// It fails on any byte sequence the encoding cannot represent.
func decodeText(name string, raw []byte) (string, error) {
	switch strings.ToLower(name) {
	case EncodingUTF8SIG:
		return decodeUTF8(bytes.TrimPrefix(raw, utf8BOM))
	case EncodingUTF8:
		return decodeUTF8(raw)
	case EncodingCP949, "euc-kr":
		return decodeStrict(korean.EUCKR, raw)
	case EncodingLatin1, "iso-8859-1":
		return decodeStrict(charmap.ISO8859_1, raw)
	default:
		return "", fmt.Errorf("unknown encoding %q", name)
	}
}

func decodeUTF8(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("invalid UTF-8 input")
	}
	return string(raw), nil
}

// decodeStrict decodes with enc and treats replacement characters in the
// result as a failure, since x/text decoders substitute instead of erroring.
func decodeStrict(enc encoding.Encoding, raw []byte) (string, error) {
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", fmt.Errorf("input contains bytes outside the character set")
	}
	return string(decoded), nil
}
