package value

import (
	"bytes"
	"encoding/json"
	"strings"
)

// EncodeJSON serializes a value back to indented JSON, keeping object key
// order. Used by the -parse echo mode.
func EncodeJSON(v Value) ([]byte, error) {
	var sb strings.Builder
	v.appendJSON(&sb)
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(sb.String()), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (v Value) appendJSON(sb *strings.Builder) {
	switch v.kind {
	case Null:
		sb.WriteString("null")
	case Bool:
		if v.boolV {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case Number:
		sb.WriteString(v.strV)
	case String:
		b, _ := json.Marshal(v.strV)
		sb.Write(b)
	case Array:
		sb.WriteByte('[')
		for i, it := range v.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			it.appendJSON(sb)
		}
		sb.WriteByte(']')
	case Object:
		sb.WriteByte('{')
		for i, k := range v.keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			b, _ := json.Marshal(k)
			sb.Write(b)
			sb.WriteByte(':')
			v.fields[k].appendJSON(sb)
		}
		sb.WriteByte('}')
	}
}
