package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// DiscountKind represents how a discount value is interpreted
type DiscountKind int

const (
	DiscountKindFlat       DiscountKind = 0
	DiscountKindPercentage DiscountKind = 1
)

func (k DiscountKind) String() string {
	names := [...]string{"flat", "percentage"}
	if int(k) < 0 || int(k) >= len(names) {
		return "flat"
	}
	return names[k]
}

// Valid reports whether the value is a known discount kind
func (k DiscountKind) Valid() bool {
	return k == DiscountKindFlat || k == DiscountKindPercentage
}

func (k DiscountKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *DiscountKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = DiscountKind(i)
		return nil
	}
	switch str {
	case "flat":
		*k = DiscountKindFlat
	case "percentage":
		*k = DiscountKindPercentage
	}
	return nil
}

func (k DiscountKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *DiscountKind) Scan(value interface{}) error {
	if value == nil {
		*k = DiscountKindFlat
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = DiscountKind(v)
	case int:
		*k = DiscountKind(v)
	}
	return nil
}
