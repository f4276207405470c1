package source

import (
	"bytes"
	"strings"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// Format records the byte-level conventions of a file that must be
// reproduced exactly on write.
type Format struct {
	// BOM is true when the file starts with a UTF-8 byte-order mark.
	BOM bool

	// CRLF is true when any CRLF sequence appears anywhere in the file.
	CRLF bool
}

// DetectFormat inspects raw bytes for a UTF-8 BOM and the line-ending
// convention.
func DetectFormat(raw []byte) Format {
	return Format{
		BOM:  bytes.HasPrefix(raw, utf8BOM),
		CRLF: bytes.Contains(raw, []byte("\r\n")),
	}
}

// Lines strips the BOM, normalizes CRLF to LF, and splits into lines.
// A single trailing newline does not produce an empty final line.
func (f Format) Lines(raw []byte) []string {
	if f.BOM {
		raw = raw[len(utf8BOM):]
	}
	text := strings.ReplaceAll(string(raw), "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// Bytes renders LF-normalized text back to the file's original
// conventions: CRLF line endings and the BOM are restored as detected.
func (f Format) Bytes(text string) []byte {
	if f.CRLF {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	if f.BOM {
		return append(append([]byte{}, utf8BOM...), text...)
	}
	return []byte(text)
}
