package xer

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decode turns the raw XER byte stream into a string, per spec §4.1: the
// format is legacy Windows-origin and predominantly single-byte, so
// Windows-1252 is attempted first; UTF-8 is the fallback.
func decode(data []byte) (string, bool) {
	if s, ok := decodeWindows1252(data); ok {
		return s, true
	}
	if utf8.Valid(data) {
		return string(data), true
	}
	return "", false
}

func decodeWindows1252(data []byte) (string, bool) {
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}
