package validate

// decode.go turns raw bytes into decoded text using an ordered list of
// candidate encodings. The first candidate that decodes the full byte stream
// without error is selected; the chosen name is recorded in the result
// summary. Decoding is deterministic: identical bytes always resolve to the
// same encoding.

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type encodingCandidate struct {
	name   string
	decode func([]byte) (string, error)
}

// encodingCandidates is the fixed priority list. latin-1 accepts any byte
// stream, so later candidates are only reached through the decode-succeeded-
// but-parse-failed fallthrough in the engine.
var encodingCandidates = []encodingCandidate{
	{"utf-8", decodeUTF8},
	{"latin-1", charmapDecoder(charmap.ISO8859_1)},
	{"cp1252", decodeWindows1252},
	{"iso-8859-1", charmapDecoder(charmap.ISO8859_1)},
	{"utf-16", decodeUTF16},
}

func decodeUTF8(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("invalid UTF-8 byte sequence")
	}
	return string(data), nil
}

func charmapDecoder(cm *charmap.Charmap) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		out, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

// windows1252Undefined are the byte values with no assignment in the code
// page. x/text maps them to U+FFFD instead of failing, so they are rejected
// up front to keep first-success semantics strict.
var windows1252Undefined = []byte{0x81, 0x8D, 0x8F, 0x90, 0x9D}

func decodeWindows1252(data []byte) (string, error) {
	for _, b := range windows1252Undefined {
		if bytes.IndexByte(data, b) >= 0 {
			return "", fmt.Errorf("byte 0x%02X is not defined in cp1252", b)
		}
	}
	return charmapDecoder(charmap.Windows1252)(data)
}

func decodeUTF16(data []byte) (string, error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
