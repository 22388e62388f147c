package schema

import (
	"github.com/siherrmann/jobSchema/model"
)

const (
	ScheduleTypeInterval = "interval"
	ScheduleTypeCrontab  = "crontab"
)

var intervalFields = []string{"days", "seconds", "microseconds", "milliseconds", "minutes", "hours", "weeks"}

var crontabFields = []string{"minute", "hour", "day_of_week", "day_of_month", "month_of_year"}

// IntervalShape is a schedule based on a fixed time delta. All fields are
// optional integers.
type IntervalShape struct{}

func (IntervalShape) Load(data model.DataMap) (model.DataMap, error) {
	errs := newValidationError()
	result := model.DataMap{}
	for _, field := range intervalFields {
		raw, ok := data[field]
		if !ok {
			continue
		}
		value, err := loadInteger(field, raw)
		if err != nil {
			errs.add(field, err)
			continue
		}
		result[field] = value
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (IntervalShape) Dump(obj interface{}) (model.DataMap, error) {
	return dumpFields(obj, intervalFields)
}

// CrontabShape is a schedule based on crontab fields, each defaulting to "*".
type CrontabShape struct{}

func (CrontabShape) Load(data model.DataMap) (model.DataMap, error) {
	errs := newValidationError()
	result := model.DataMap{}
	for _, field := range crontabFields {
		raw, ok := data[field]
		if !ok {
			result[field] = "*"
			continue
		}
		value, err := loadString(field, raw)
		if err != nil {
			errs.add(field, err)
			continue
		}
		result[field] = value
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (CrontabShape) Dump(obj interface{}) (model.DataMap, error) {
	return dumpFields(obj, crontabFields)
}

// NewScheduleSchema returns the dispatcher for interval and crontab schedules.
// The discriminant is required and kept in the output.
func NewScheduleSchema() *OneOf {
	return &OneOf{
		TypeField: "type",
		Shapes: map[string]Shape{
			ScheduleTypeInterval: IntervalShape{},
			ScheduleTypeCrontab:  CrontabShape{},
		},
		ObjType: typeOf("type"),
	}
}

// dumpFields copies the given fields that are present in obj.
func dumpFields(obj interface{}, fields []string) (model.DataMap, error) {
	data, ok := model.AsDataMap(obj)
	if !ok {
		return nil, &TypeMismatchError{Expected: "mapping"}
	}
	result := model.DataMap{}
	for _, field := range fields {
		if value, ok := data[field]; ok {
			result[field] = value
		}
	}
	return result, nil
}
