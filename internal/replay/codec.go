package replay

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformed marks a payload that cannot be decoded into valid replay data.
// Decoding fails atomically: a malformed payload yields no partial result.
var ErrMalformed = errors.New("replay: malformed data")

// Encode serializes replay data to its textual form. Only structurally valid
// data encodes; the round-trip law Decode(Encode(d)) == d holds for every
// valid d.
func Encode(d Data) (string, error) {
	if err := d.Validate(); err != nil {
		return "", fmt.Errorf("replay: cannot encode: %w", err)
	}
	raw, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("replay: cannot encode: %w", err)
	}
	return string(raw), nil
}

// Decode parses the textual form back into replay data, validating every
// event. Any structural problem rejects the whole payload.
func Decode(text string) (Data, error) {
	var d Data
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return Data{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := d.Validate(); err != nil {
		return Data{}, err
	}
	return d, nil
}
