package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DataMap is the plain mapping exchanged with the transport layer.
type DataMap map[string]interface{}

func (d DataMap) Has(key string) bool {
	_, ok := d[key]
	return ok
}

func (d DataMap) GetStringByKey(key string) string {
	if value, ok := d[key]; ok && value != nil {
		return fmt.Sprintf("%v", value)
	}
	return ""
}

// Clone returns a deep copy of the map. Nested maps and slices are copied,
// scalar values are shared.
func (d DataMap) Clone() DataMap {
	if d == nil {
		return nil
	}
	clone := make(DataMap, len(d))
	for key, value := range d {
		clone[key] = cloneValue(value)
	}
	return clone
}

// Without returns a shallow copy of the map without the given keys.
func (d DataMap) Without(keys ...string) DataMap {
	stripped := make(DataMap, len(d))
	for key, value := range d {
		stripped[key] = value
	}
	for _, key := range keys {
		delete(stripped, key)
	}
	return stripped
}

func (d DataMap) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

func (d *DataMap) Unmarshal(value interface{}) error {
	if s, ok := value.(DataMap); ok {
		*d = s
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, d)
}

// AsDataMap converts the generic mapping shapes produced by decoders.
func AsDataMap(value interface{}) (DataMap, bool) {
	switch v := value.(type) {
	case DataMap:
		return v, true
	case map[string]interface{}:
		return DataMap(v), true
	}
	return nil, false
}

func cloneValue(value interface{}) interface{} {
	switch v := value.(type) {
	case DataMap:
		return v.Clone()
	case map[string]interface{}:
		return map[string]interface{}(DataMap(v).Clone())
	case []interface{}:
		list := make([]interface{}, len(v))
		for i, item := range v {
			list[i] = cloneValue(item)
		}
		return list
	}
	return value
}
