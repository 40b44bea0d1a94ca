package codec

import (
	"errors"
	"io"

	"go.trai.ch/rcstring"
	"go.trai.ch/rcstring/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

func decodeYAML(r io.Reader) (domain.Value, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to decode YAML document")
	}
	return fromNode(&doc)
}

func fromNode(node *yaml.Node) (domain.Value, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return fromNode(node.Content[0])
	case yaml.AliasNode:
		return fromNode(node.Alias)
	case yaml.SequenceNode:
		list := make(domain.List, len(node.Content))
		for i, item := range node.Content {
			v, err := fromNode(item)
			if err != nil {
				return nil, zerr.With(err, "index", i)
			}
			list[i] = v
		}
		return list, nil
	case yaml.MappingNode:
		m := make(domain.Map, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind == yaml.AliasNode {
				keyNode = keyNode.Alias
			}
			var key rcstring.SharedString
			if err := keyNode.Decode(&key); err != nil {
				return nil, zerr.With(zerr.Wrap(err, "invalid mapping key"), "line", keyNode.Line)
			}
			v, err := fromNode(valueNode)
			if err != nil {
				return nil, zerr.With(err, "key", key.String())
			}
			m[key] = v
		}
		return m, nil
	case yaml.ScalarNode:
		return fromScalar(node)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedValue, "unexpected YAML node"), "line", node.Line)
	}
}

func fromScalar(node *yaml.Node) (domain.Value, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid boolean"), "line", node.Line)
		}
		return b, nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err == nil {
			return i, nil
		}
		var u uint64
		if err := node.Decode(&u); err == nil {
			return float64(u), nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedValue, "integer out of range"), "line", node.Line)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid float"), "line", node.Line)
		}
		return f, nil
	default:
		// Strings, binary data, timestamps and custom tags all become text.
		var s rcstring.SharedString
		if err := node.Decode(&s); err != nil {
			return nil, err
		}
		return s, nil
	}
}

func encodeYAML(w io.Writer, v domain.Value) error {
	root, err := toNode(v)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(root); err != nil {
		return zerr.Wrap(err, "failed to encode YAML document")
	}
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to flush YAML document")
	}
	return nil
}

// toNode builds a YAML node tree with mapping keys in byte order.
func toNode(v domain.Value) (*yaml.Node, error) {
	switch val := v.(type) {
	case domain.Map:
		node := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range val.Keys() {
			keyNode, err := scalarNode(k)
			if err != nil {
				return nil, err
			}
			valueNode, err := toNode(val[k])
			if err != nil {
				return nil, zerr.With(err, "key", k.String())
			}
			node.Content = append(node.Content, keyNode, valueNode)
		}
		return node, nil
	case domain.List:
		node := &yaml.Node{Kind: yaml.SequenceNode}
		for i, item := range val {
			itemNode, err := toNode(item)
			if err != nil {
				return nil, zerr.With(err, "index", i)
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil
	case nil, bool, int64, float64, rcstring.SharedString:
		return scalarNode(val)
	default:
		return nil, unsupported(v)
	}
}

func scalarNode(v any) (*yaml.Node, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return nil, zerr.Wrap(err, "failed to encode scalar")
	}
	return &node, nil
}
