/***********************************************************************************************************************
 *
 *   MIT License
 *
 *   Copyright (c) 2022 Nicolas JUHEL
 *
 *   Permission is hereby granted, free of charge, to any person obtaining a copy
 *   of this software and associated documentation files (the "Software"), to deal
 *   in the Software without restriction, including without limitation the rights
 *   to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 *   copies of the Software, and to permit persons to whom the Software is
 *   furnished to do so, subject to the following conditions:
 *
 *   The above copyright notice and this permission notice shall be included in all
 *   copies or substantial portions of the Software.
 *
 *   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 *   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 *   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 *   AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 *   LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 *   OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 *   SOFTWARE.
 *
 *
 **********************************************************************************************************************/

package size

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

func (s *Size) unmarshall(val []byte) error {
	v, err := parseString(string(val))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// MarshalJSON returns the JSON encoding of s, a quoted human size string.
func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a JSON human size string into s.
func (s *Size) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	return s.unmarshall([]byte(str))
}

// MarshalYAML returns the YAML encoding of s, a human size string.
func (s Size) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML parses a YAML human size string into s.
func (s *Size) UnmarshalYAML(value *yaml.Node) error {
	return s.unmarshall([]byte(value.Value))
}

// MarshalTOML returns the TOML encoding of s, equivalent to MarshalJSON.
func (s Size) MarshalTOML() ([]byte, error) {
	return s.MarshalJSON()
}

// UnmarshalTOML parses a TOML value (string or []byte) into s.
func (s *Size) UnmarshalTOML(i interface{}) error {
	if b, k := i.([]byte); k {
		return s.unmarshall(b)
	}
	if str, k := i.(string); k {
		return s.unmarshall([]byte(str))
	}
	return fmt.Errorf("size: value not in valid format")
}

// MarshalText returns the text encoding of s, a human size string.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a human size string into s.
func (s *Size) UnmarshalText(b []byte) error {
	return s.unmarshall(b)
}

// MarshalCBOR returns the CBOR encoding of s.String().
func (s Size) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(s.String())
}

// UnmarshalCBOR parses a CBOR-encoded human size string into s.
func (s *Size) UnmarshalCBOR(b []byte) error {
	var str string
	if err := cbor.Unmarshal(b, &str); err != nil {
		return err
	}
	return s.unmarshall([]byte(str))
}
