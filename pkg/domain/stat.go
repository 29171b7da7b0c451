package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Stat is a statistic the backend sends either as a JSON number or as a
// string (Sentinel when unknown). It keeps the textual form.
type Stat string

// UnmarshalJSON accepts numbers, strings and null.
func (s *Stat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = Sentinel
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Stat(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*s = Stat(n.String())
	return nil
}

// Int returns the statistic as an integer, or 0 when it is not numeric.
func (s Stat) Int() int {
	n, err := strconv.Atoi(string(s))
	if err != nil {
		return 0
	}
	return n
}

func (s Stat) String() string {
	if s == "" {
		return Sentinel
	}
	return string(s)
}
