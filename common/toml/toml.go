// Package toml wraps the TOML codec used across gembuild.
package toml

import (
	"bytes"
	"io"

	"github.com/BurntSushi/toml"
)

// Marshal returns the TOML encoding of v, using "toml" struct tags.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte, ptr any) error {
	return toml.Unmarshal(data, ptr)
}

// NewEncoder returns an encoder without indentation of nested tables.
func NewEncoder(w io.Writer) *toml.Encoder {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return enc
}
