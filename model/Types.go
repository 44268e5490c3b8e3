package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// The array- and json-valued columns are stored as serialized JSON so the
// same models work against postgres and the sqlite test driver.

// StringList is a []string column stored as a JSON array.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// JSONMap is a free-form JSON object column (links, beforeAfter).
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (m *JSONMap) Scan(src interface{}) error {
	return scanJSON(src, m)
}

// Kpi is a single impact metric on a case study.
type Kpi struct {
	Kpi   string  `json:"kpi"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// KpiList is the impactKpis column.
type KpiList []Kpi

func (l KpiList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *KpiList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// JSONDocument holds an arbitrary JSON value verbatim. Page content and
// setting values have no fixed schema; they are only checked for
// well-formedness.
type JSONDocument json.RawMessage

func (d JSONDocument) Value() (driver.Value, error) {
	if len(d) == 0 {
		return nil, nil
	}
	return string(d), nil
}

func (d *JSONDocument) Scan(src interface{}) error {
	if src == nil {
		*d = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		*d = append(JSONDocument(nil), v...)
	case string:
		*d = JSONDocument(v)
	default:
		return fmt.Errorf("unsupported type %T for JSONDocument", src)
	}
	return nil
}

func (d JSONDocument) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

func (d *JSONDocument) UnmarshalJSON(data []byte) error {
	if d == nil {
		return errors.New("JSONDocument: UnmarshalJSON on nil pointer")
	}
	*d = append((*d)[:0], data...)
	return nil
}

func scanJSON(src, dest interface{}) error {
	if src == nil {
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for JSON column", src)
	}
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dest)
}
