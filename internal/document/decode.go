package document

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"

	"plagcheck/internal/services"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type trial struct {
	name   string
	decode func([]byte) (string, bool)
}

// trials is the fixed decode order. A decoder must reject input it cannot
// represent without substitution; the first acceptance wins. ISO-8859-1 maps
// every byte, so the latin-1 alias after it is never reached.
var trials = []trial{
	{"utf-8", decodeUTF8},
	{"utf-8-sig", decodeUTF8BOM},
	{"gbk", decodeGBK},
	{"gb2312", decodeGB2312},
	{"iso-8859-1", decodeWith(charmap.ISO8859_1)},
	{"latin-1", decodeWith(charmap.ISO8859_1)},
}

// Decode converts raw file bytes to text, returning the name of the encoding
// that matched.
func Decode(data []byte) (string, string, error) {
	for _, t := range trials {
		if text, ok := t.decode(data); ok {
			return text, t.name, nil
		}
	}
	return "", "", services.Wrap(services.ErrEncoding, "document", "decode", "", ErrUndecodable)
}

// Encodings lists the decode trial order.
func Encodings() []string {
	names := make([]string, len(trials))
	for i, t := range trials {
		names[i] = t.name
	}
	return names
}

// decodeUTF8 rejects a leading BOM so the utf-8-sig trial strips it.
func decodeUTF8(data []byte) (string, bool) {
	if bytes.HasPrefix(data, utf8BOM) || !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

func decodeUTF8BOM(data []byte) (string, bool) {
	if !bytes.HasPrefix(data, utf8BOM) || !utf8.Valid(data) {
		return "", false
	}
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(out), true
}

// decodeGBK relies on the x/text GBK decoder substituting U+FFFD for invalid
// sequences; GBK itself has no mapping for U+FFFD.
func decodeGBK(data []byte) (string, bool) {
	out, err := simplifiedchinese.GBK.NewDecoder().Bytes(data)
	if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
		return "", false
	}
	return string(out), true
}

// decodeGB2312 accepts only EUC-CN byte pairs (lead and trail in 0xA1..0xFE)
// and decodes them with the GBK superset.
func decodeGB2312(data []byte) (string, bool) {
	for i := 0; i < len(data); i++ {
		b := data[i]
		if b < 0x80 {
			continue
		}
		if b < 0xA1 || b > 0xFE || i+1 >= len(data) {
			return "", false
		}
		if trail := data[i+1]; trail < 0xA1 || trail > 0xFE {
			return "", false
		}
		i++
	}
	return decodeGBK(data)
}

func decodeWith(enc encoding.Encoding) func([]byte) (string, bool) {
	return func(data []byte) (string, bool) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", false
		}
		return string(out), true
	}
}
