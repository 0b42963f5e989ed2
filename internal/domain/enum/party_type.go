package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PartyType distinguishes customers (sales) from suppliers (purchases)
type PartyType int

const (
	PartyTypeCustomer PartyType = 0
	PartyTypeSupplier PartyType = 1
)

func (t PartyType) String() string {
	names := [...]string{"customer", "supplier"}
	if int(t) < 0 || int(t) >= len(names) {
		return "customer"
	}
	return names[t]
}

// Valid reports whether the value is a known party type
func (t PartyType) Valid() bool {
	return t == PartyTypeCustomer || t == PartyTypeSupplier
}

func (t PartyType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *PartyType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = PartyType(i)
		return nil
	}
	switch str {
	case "customer":
		*t = PartyTypeCustomer
	case "supplier":
		*t = PartyTypeSupplier
	}
	return nil
}

func (t PartyType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *PartyType) Scan(value interface{}) error {
	if value == nil {
		*t = PartyTypeCustomer
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = PartyType(v)
	case int:
		*t = PartyType(v)
	}
	return nil
}
