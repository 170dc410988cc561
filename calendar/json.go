package calendar

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MarshalJSON encodes d as a JSON string in the ParseDate format.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a JSON string in the ParseDate format.
func (d *Date) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	parsed, err := ParseDate(text)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// MarshalJSON encodes n as a JSON number.
func (n Mdn) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(n), 10), nil
}

// UnmarshalJSON decodes a JSON number and range checks it.
func (n *Mdn) UnmarshalJSON(data []byte) error {
	var raw int64
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := NewMdn(raw)
	if err != nil {
		return err
	}

	*n = parsed

	return nil
}
