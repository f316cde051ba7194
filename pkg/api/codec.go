package api

import (
	"encoding/json"
	"errors"
)

// JSONCodec marshals plain Go structs for Connect.
// It registers under the name "json" so requests use application/json.
type JSONCodec struct{}

// Name implements connect.Codec.
func (JSONCodec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (JSONCodec) Marshal(message any) ([]byte, error) {
	return json.Marshal(message)
}

// Unmarshal implements connect.Codec.
func (JSONCodec) Unmarshal(data []byte, message any) error {
	if len(data) == 0 {
		return errors.New("zero-length payload is not a valid JSON object")
	}
	return json.Unmarshal(data, message)
}
