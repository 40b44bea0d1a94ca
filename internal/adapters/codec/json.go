package codec

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"go.trai.ch/rcstring"
	"go.trai.ch/rcstring/internal/core/domain"
	"go.trai.ch/zerr"
)

// json matches the standard library's behaviour except that numbers decode
// as json.Number, so integers beyond 2^53 keep every digit.
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

func decodeJSON(r io.Reader) (domain.Value, error) {
	var raw any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, zerr.Wrap(err, "failed to decode JSON document")
	}
	return domain.FromAny(raw)
}

func encodeJSON(w io.Writer, v domain.Value) error {
	plain, err := toPlain(v)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(plain, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode JSON document")
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return zerr.Wrap(err, "failed to write JSON document")
	}
	return nil
}

// toPlain lowers a document tree to the generic shapes the JSON encoder
// understands. Map keys are written in sorted order by the encoder.
func toPlain(v domain.Value) (any, error) {
	switch val := v.(type) {
	case domain.Map:
		out := make(map[string]any, len(val))
		for k, item := range val {
			converted, err := toPlain(item)
			if err != nil {
				return nil, zerr.With(err, "key", k.String())
			}
			out[k.String()] = converted
		}
		return out, nil
	case domain.List:
		out := make([]any, len(val))
		for i, item := range val {
			converted, err := toPlain(item)
			if err != nil {
				return nil, zerr.With(err, "index", i)
			}
			out[i] = converted
		}
		return out, nil
	case rcstring.SharedString:
		return val.String(), nil
	case nil, bool, int64, float64:
		return val, nil
	default:
		return nil, unsupported(v)
	}
}

func typeName(v domain.Value) string {
	return fmt.Sprintf("%T", v)
}
