package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// ID is a time-ordered 64-bit identifier. It is serialized as a decimal
// string at the JSON boundary so that consumers without 64-bit integers do
// not lose precision, and as a plain BIGINT at the SQL boundary.
type ID int64

// ParseID parses the decimal string form of an identifier.
func ParseID(s string) (ID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return ID(n), nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// MarshalJSON encodes the identifier as a decimal string.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON accepts both the string form and a bare number.
func (id *ID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value implements driver.Valuer.
func (id ID) Value() (driver.Value, error) {
	return int64(id), nil
}

// Scan implements sql.Scanner.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*id = ID(v)
		return nil
	case nil:
		*id = 0
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ID", src)
	}
}
