package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Stringish holds the raw text of an id field. "101" and 101 decode to the
// same value, and a wrongly typed id still decodes so ParseID can report it
// as INVALID_ID instead of the whole body failing as malformed JSON.
type Stringish string

func (s *Stringish) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Stringish(str)
		return nil
	}
	// numbers, bools and nested values keep their literal text
	*s = Stringish(b)
	return nil
}

func (s Stringish) String() string { return strings.TrimSpace(string(s)) }
