package codec_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rcstring"
	"go.trai.ch/rcstring/internal/adapters/codec"
	"go.trai.ch/rcstring/internal/core/domain"
)

var byContent = cmp.Comparer(rcstring.SharedString.Equal)

func s(text string) rcstring.SharedString {
	return rcstring.New(text)
}

func TestCodec_DecodeJSON(t *testing.T) {
	c := codec.New()

	got, err := c.Decode(strings.NewReader(`{"field":{"key":{"field1":"field1_value","count":3,"ratio":0.5,"tags":["GO:0005737",null,true]}}}`), domain.FormatJSON)
	require.NoError(t, err)

	want := domain.Map{
		s("field"): domain.Map{
			s("key"): domain.Map{
				s("field1"): s("field1_value"),
				s("count"):  int64(3),
				s("ratio"):  0.5,
				s("tags"):   domain.List{s("GO:0005737"), nil, true},
			},
		},
	}
	if diff := cmp.Diff(want, got, byContent); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestCodec_JSONLargeIntegers(t *testing.T) {
	c := codec.New()

	got, err := c.Decode(strings.NewReader(`{"id":9007199254740993,"max":9223372036854775807,"ratio":0.25}`), domain.FormatJSON)
	require.NoError(t, err)

	want := domain.Map{
		s("id"):    int64(9007199254740993),
		s("max"):   int64(9223372036854775807),
		s("ratio"): 0.25,
	}
	if diff := cmp.Diff(want, got, byContent); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, domain.FormatJSON, got))
	assert.Contains(t, buf.String(), `"id": 9007199254740993`)
	assert.Contains(t, buf.String(), `"max": 9223372036854775807`)
}

func TestCodec_DecodeYAML(t *testing.T) {
	c := codec.New()

	input := `
field:
  key:
    field1: field1_value
    count: 0x10
    ratio: 0.5
    raw: !!binary ZmllbGRfdmFsdWU=
    quoted: "true"
    missing: ~
    anchored: &shared GO:0005737
    alias: *shared
`
	got, err := c.Decode(strings.NewReader(input), domain.FormatYAML)
	require.NoError(t, err)

	want := domain.Map{
		s("field"): domain.Map{
			s("key"): domain.Map{
				s("field1"):   s("field1_value"),
				s("count"):    int64(16),
				s("ratio"):    0.5,
				s("raw"):      s("field_value"),
				s("quoted"):   s("true"),
				s("missing"):  nil,
				s("anchored"): s("GO:0005737"),
				s("alias"):    s("GO:0005737"),
			},
		},
	}
	if diff := cmp.Diff(want, got, byContent); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestCodec_DecodeEmptyYAML(t *testing.T) {
	got, err := codec.New().Decode(strings.NewReader(""), domain.FormatYAML)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCodec_DecodeYAMLInvalidBinary(t *testing.T) {
	_, err := codec.New().Decode(strings.NewReader("raw: !!binary //4=\n"), domain.FormatYAML)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rcstring.ErrInvalidEncoding))
}

func TestCodec_DecodeErrors(t *testing.T) {
	c := codec.New()

	_, err := c.Decode(strings.NewReader(`{"field":`), domain.FormatJSON)
	assert.Error(t, err)

	_, err = c.Decode(strings.NewReader("key: [unterminated\n"), domain.FormatYAML)
	assert.Error(t, err)

	_, err = c.Decode(strings.NewReader("{}"), domain.Format("toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownFormat))
}

func TestCodec_EncodeYAML(t *testing.T) {
	doc := domain.Map{
		s("field"): domain.Map{
			s("key"): domain.Map{
				s("field2"): s("true"),
				s("field1"): s("field1_value"),
				s("count"):  int64(3),
			},
		},
		s("ids"): domain.List{s("GO:0120113"), s("GO:0005737")},
	}

	var buf bytes.Buffer
	require.NoError(t, codec.New().Encode(&buf, domain.FormatYAML, doc))

	want := `field:
  key:
    count: 3
    field1: field1_value
    field2: "true"
ids:
  - GO:0120113
  - GO:0005737
`
	assert.Equal(t, want, buf.String())
}

func TestCodec_EncodeJSON(t *testing.T) {
	doc := domain.Map{
		s("field"): domain.Map{
			s("key"): domain.Map{
				s("field1"): s("field1_value"),
				s("field2"): s("field1_value"),
			},
		},
		s("none"): nil,
		s("list"): domain.List{int64(1), 2.5, false},
	}

	var buf bytes.Buffer
	require.NoError(t, codec.New().Encode(&buf, domain.FormatJSON, doc))

	assert.JSONEq(t, `{"field":{"key":{"field1":"field1_value","field2":"field1_value"}},"none":null,"list":[1,2.5,false]}`, buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestCodec_RoundTripAcrossFormats(t *testing.T) {
	c := codec.New()
	input := `{"a":{"b":["x","123","null",1,1.5,true,null]},"c":""}`

	first, err := c.Decode(strings.NewReader(input), domain.FormatJSON)
	require.NoError(t, err)

	var yamlBuf bytes.Buffer
	require.NoError(t, c.Encode(&yamlBuf, domain.FormatYAML, first))

	second, err := c.Decode(&yamlBuf, domain.FormatYAML)
	require.NoError(t, err)

	var jsonBuf bytes.Buffer
	require.NoError(t, c.Encode(&jsonBuf, domain.FormatJSON, second))

	assert.JSONEq(t, input, jsonBuf.String())
	if diff := cmp.Diff(first, second, byContent); diff != "" {
		t.Errorf("round trip mismatch (-json +yaml):\n%s", diff)
	}
}

func TestCodec_EncodeUnsupported(t *testing.T) {
	c := codec.New()
	doc := domain.Map{s("bad"): domain.List{struct{}{}}}

	for _, format := range []domain.Format{domain.FormatJSON, domain.FormatYAML} {
		err := c.Encode(&bytes.Buffer{}, format, doc)
		require.Error(t, err, format.String())
		assert.True(t, errors.Is(err, domain.ErrUnsupportedValue), format.String())
	}
}
