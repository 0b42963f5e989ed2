package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how a bill was settled (or not)
type PaymentMethod int

const (
	PaymentMethodUnpaid PaymentMethod = 0
	PaymentMethodCash   PaymentMethod = 1
	PaymentMethodOnline PaymentMethod = 2
)

func (m PaymentMethod) String() string {
	names := [...]string{"unpaid", "cash", "online"}
	if int(m) < 0 || int(m) >= len(names) {
		return "unpaid"
	}
	return names[m]
}

// Valid reports whether the value is a known payment method
func (m PaymentMethod) Valid() bool {
	return m >= PaymentMethodUnpaid && m <= PaymentMethodOnline
}

// IsPaid reports whether the bill has been settled
func (m PaymentMethod) IsPaid() bool {
	return m == PaymentMethodCash || m == PaymentMethodOnline
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	switch str {
	case "unpaid":
		*m = PaymentMethodUnpaid
	case "cash":
		*m = PaymentMethodCash
	case "online":
		*m = PaymentMethodOnline
	}
	return nil
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}
