package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// BillType distinguishes sale bills (to customers) from purchase bills (from suppliers)
type BillType int

const (
	BillTypeSale     BillType = 0
	BillTypePurchase BillType = 1
)

func (t BillType) String() string {
	names := [...]string{"sale", "purchase"}
	if int(t) < 0 || int(t) >= len(names) {
		return "sale"
	}
	return names[t]
}

// Valid reports whether the value is a known bill type
func (t BillType) Valid() bool {
	return t == BillTypeSale || t == BillTypePurchase
}

func (t BillType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *BillType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = BillType(i)
		return nil
	}
	switch str {
	case "sale":
		*t = BillTypeSale
	case "purchase":
		*t = BillTypePurchase
	}
	return nil
}

func (t BillType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *BillType) Scan(value interface{}) error {
	if value == nil {
		*t = BillTypeSale
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = BillType(v)
	case int:
		*t = BillType(v)
	}
	return nil
}
