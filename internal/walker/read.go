package walker

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Encoding names the character encoding a file was decoded with.
type Encoding string

const (
	EncodingUTF8   Encoding = "utf-8"
	EncodingLatin1 Encoding = "latin-1"
)

// ReadText returns the whole file as UTF-8 text. Bytes that are not valid
// UTF-8 are decoded as Latin-1 instead, which cannot fail. Line endings are
// normalized to "\n".
func ReadText(path string) (string, Encoding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return Decode(data)
}

// Decode is ReadText without the file access.
func Decode(data []byte) (string, Encoding, error) {
	enc := EncodingUTF8
	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", "", fmt.Errorf("walker: latin-1 decode: %w", err)
		}
		data = decoded
		enc = EncodingLatin1
	}
	return normalizeNewlines(string(data)), enc, nil
}

func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
