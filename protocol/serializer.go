package protocol

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Serializer defines the contract for encoding envelopes and decoding responses.
type Serializer interface {
	// Marshal serializes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal deserializes bytes into v.
	// v must be a pointer to the target value.
	Unmarshal(data []byte, v any) error
}

// JSONSerializer is the JSON codec spoken by the server.
type JSONSerializer struct {
	// Indent pretty-prints marshalled documents when non-empty.
	Indent string

	// Strict rejects object keys that have no matching struct field.
	Strict bool
}

// NewJSONSerializer returns a JSONSerializer.
func NewJSONSerializer(indent string, strict bool) *JSONSerializer {
	return &JSONSerializer{Indent: indent, Strict: strict}
}

// Marshal implements Serializer.
func (s *JSONSerializer) Marshal(v any) ([]byte, error) {
	if s.Indent != "" {
		return json.MarshalIndent(v, "", s.Indent)
	}
	return json.Marshal(v)
}

// Unmarshal implements Serializer.
func (s *JSONSerializer) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if s.Strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(v)
}
