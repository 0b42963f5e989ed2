package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// EntryDirection represents the direction of a stock movement or cashbook
// entry: into the business ("in") or out of it ("out").
type EntryDirection int

const (
	EntryDirectionIn  EntryDirection = 0
	EntryDirectionOut EntryDirection = 1
)

func (d EntryDirection) String() string {
	names := [...]string{"in", "out"}
	if int(d) < 0 || int(d) >= len(names) {
		return "in"
	}
	return names[d]
}

// Valid reports whether the value is a known direction
func (d EntryDirection) Valid() bool {
	return d == EntryDirectionIn || d == EntryDirectionOut
}

func (d EntryDirection) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *EntryDirection) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*d = EntryDirection(i)
		return nil
	}
	switch str {
	case "in":
		*d = EntryDirectionIn
	case "out":
		*d = EntryDirectionOut
	}
	return nil
}

func (d EntryDirection) Value() (driver.Value, error) {
	return int64(d), nil
}

func (d *EntryDirection) Scan(value interface{}) error {
	if value == nil {
		*d = EntryDirectionIn
		return nil
	}
	switch v := value.(type) {
	case int64:
		*d = EntryDirection(v)
	case int:
		*d = EntryDirection(v)
	}
	return nil
}
