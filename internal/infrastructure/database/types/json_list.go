package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/eslsoft/learnpath/internal/entity"
)

// StringList stores a list of strings as a JSON text column.
type StringList []string

// AnswerList stores submitted answers as a JSON text column.
type AnswerList []entity.Answer

// Scan implements sql.Scanner
func (v *StringList) Scan(src any) error {
	return scanJSON(src, v, "StringList")
}

// Value implements driver.Valuer
func (v StringList) Value() (driver.Value, error) {
	if v == nil {
		return "[]", nil
	}
	return marshalJSON(v)
}

// Scan implements sql.Scanner
func (v *AnswerList) Scan(src any) error {
	return scanJSON(src, v, "AnswerList")
}

// Value implements driver.Valuer
func (v AnswerList) Value() (driver.Value, error) {
	if v == nil {
		return "[]", nil
	}
	return marshalJSON(v)
}

func scanJSON(src any, dest any, name string) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("%s: unsupported src type %T", name, src)
	}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dest)
}

func marshalJSON(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}
