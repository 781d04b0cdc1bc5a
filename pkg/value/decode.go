package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeJSON parses a single JSON document, preserving object key order.
// The stock map-based decoder discards order, so this walks the token
// stream instead.
func DecodeJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeNext(dec)
	if err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, errors.New("trailing data after document")
	}
	return v, nil
}

func decodeNext(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("unexpected %q", t.String())
		}
	case string:
		return Str(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("number %q: %w", t.String(), err)
		}
		return NumLit(f, t.String()), nil
	case bool:
		return Boolean(t), nil
	case nil:
		return Nil(), nil
	default:
		return Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	var pairs []Pair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is %T, want string", keyTok)
		}
		val, err := decodeNext(dec)
		if err != nil {
			return Value{}, err
		}
		pairs = append(pairs, Pair{Key: key, Val: val})
	}
	// consume '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Obj(pairs...), nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	var items []Value
	for dec.More() {
		v, err := decodeNext(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	// consume ']'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Arr(items...), nil
}

// DecodeYAML parses a single YAML document into the same model.
// yaml.Node keeps mapping order, so objects stay ordered here too.
func DecodeYAML(data []byte) (Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return Value{}, err
	}
	if root.Kind == 0 {
		return Nil(), nil
	}
	return fromYAMLNode(&root)
}

func fromYAMLNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Nil(), nil
		}
		return fromYAMLNode(n.Content[0])
	case yaml.MappingNode:
		pairs := make([]Pair, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return Value{}, err
			}
			pairs = append(pairs, Pair{Key: n.Content[i].Value, Val: val})
		}
		return Obj(pairs...), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromYAMLNode(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Arr(items...), nil
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	default:
		return Value{}, fmt.Errorf("unsupported yaml node kind %d", n.Kind)
	}
}

func fromYAMLScalar(n *yaml.Node) (Value, error) {
	switch n.Tag {
	case "!!null":
		return Nil(), nil
	case "!!bool":
		return Boolean(strings.EqualFold(n.Value, "true")), nil
	case "!!int", "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return Value{}, fmt.Errorf("yaml number %q: %w", n.Value, err)
		}
		return NumLit(f, n.Value), nil
	default:
		return Str(n.Value), nil
	}
}
