// Package detect sniffs stdin to determine the input format.
package detect

import "bytes"

// Format represents a recognized input format.
type Format int

const (
	Empty Format = iota
	JSON
	YAML
)

// Sniff examines raw input bytes. JSON is anything that starts like a
// JSON value; everything else non-blank is treated as YAML, which the
// decoder will accept or reject properly.
func Sniff(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Empty
	}
	c := trimmed[0]
	switch {
	case c == '{' || c == '[' || c == '"':
		return JSON
	case c >= '0' && c <= '9':
		return JSON
	case c == '-':
		// "-3" is a JSON number, "- item" is a YAML sequence
		if len(trimmed) > 1 && trimmed[1] >= '0' && trimmed[1] <= '9' {
			return JSON
		}
		return YAML
	case c == 't' || c == 'f' || c == 'n':
		// bare JSON literal, or a YAML document that happens to start
		// with the same letter ("name: x")
		if isBareLiteral(trimmed) {
			return JSON
		}
		return YAML
	default:
		return YAML
	}
}

func isBareLiteral(data []byte) bool {
	for _, lit := range [][]byte{[]byte("true"), []byte("false"), []byte("null")} {
		if bytes.HasPrefix(data, lit) {
			rest := bytes.TrimLeft(data[len(lit):], " \t\r\n")
			return len(rest) == 0
		}
	}
	return false
}
