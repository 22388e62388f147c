package schema

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/siherrmann/jobSchema/model"
)

const isoLayout = "2006-01-02T15:04:05.999999-07:00"

func loadString(field string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", &TypeMismatchError{Field: field, Expected: "string"}
	}
	return Sanitize(s), nil
}

func loadInteger(field string, value interface{}) (int, error) {
	mismatch := &TypeMismatchError{Field: field, Expected: "integer"}
	switch v := value.(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case float32:
		return integralFloat(float64(v), mismatch)
	case float64:
		return integralFloat(v, mismatch)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			f, ferr := v.Float64()
			if ferr != nil {
				return 0, mismatch
			}
			return integralFloat(f, mismatch)
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, mismatch
		}
		return i, nil
	}
	return 0, mismatch
}

// integralFloat converts f if it is a whole number inside the int64 range.
// float64(math.MaxInt64) rounds up to 2^63, which is already out of range.
func integralFloat(f float64, mismatch error) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, mismatch
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, mismatch
	}
	return int(f), nil
}

func loadFloat(field string, value interface{}) (float64, error) {
	mismatch := &TypeMismatchError{Field: field, Expected: "number"}
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, mismatch
		}
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, mismatch
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, mismatch
		}
		return f, nil
	}
	return 0, mismatch
}

func loadBoolean(field string, value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err == nil {
			return b, nil
		}
	case float64:
		if v == 0 || v == 1 {
			return v == 1, nil
		}
	case int:
		if v == 0 || v == 1 {
			return v == 1, nil
		}
	}
	return false, &TypeMismatchError{Field: field, Expected: "boolean"}
}

func loadMapping(field string, value interface{}) (model.DataMap, error) {
	data, ok := model.AsDataMap(value)
	if !ok {
		return nil, &TypeMismatchError{Field: field, Expected: "mapping"}
	}
	return data, nil
}

func dumpTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(isoLayout)
}

func dumpTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return dumpTime(*t)
}

func dumpUUID(id uuid.UUID) interface{} {
	if id == uuid.Nil {
		return nil
	}
	return id.String()
}
