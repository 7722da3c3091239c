package ingest

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode turns raw file contents into UTF-8, trying the encodings Windows
// tools commonly produce: UTF-8 with BOM, UTF-8, cp1252 and finally latin1.
// It returns the name of the encoding that was used.
func decode(data []byte) ([]byte, string, error) {
	if bytes.HasPrefix(data, utf8BOM) && utf8.Valid(data) {
		out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
		if err == nil {
			return out, "utf-8-sig", nil
		}
	}
	if utf8.Valid(data) {
		return data, "utf-8", nil
	}
	if out, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil && !bytes.ContainsRune(out, utf8.RuneError) {
		return out, "cp1252", nil
	}
	// latin1 maps every byte, so this is the last resort.
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, "", err
	}
	return out, "latin1", nil
}
