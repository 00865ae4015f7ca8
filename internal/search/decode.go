package search

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeBody converts a response body into text.
//
// The body must be valid UTF-8; anything else is a decoding failure rather
// than being silently repaired. A leading byte order mark is removed.
func decodeBody(body []byte) (string, error) {
	if !utf8.Valid(body) {
		return "", ErrInvalidEncoding
	}

	text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), body)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

// trimIncompleteRune drops a multi-byte sequence cut off by the body size limit.
func trimIncompleteRune(b []byte) []byte {
	for i := 0; i < utf8.UTFMax-1 && len(b) > 0; i++ {
		if r, _ := utf8.DecodeLastRune(b); r != utf8.RuneError {
			return b
		}
		b = b[:len(b)-1]
	}
	return b
}
