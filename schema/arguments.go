package schema

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/siherrmann/jobSchema/model"
	"github.com/siherrmann/validator"
	vm "github.com/siherrmann/validator/model"
	"github.com/siherrmann/validator/parser"
)

// CustomArgsType is the synthetic discriminant for free-form arguments.
const CustomArgsType = "custom"

// TaskRegistry is the task catalog the schemas read on every call.
type TaskRegistry interface {
	Tasks() map[string]model.Task
	ArgumentSchemas() map[string]Shape
}

// CustomShape holds free-form arguments under "args".
type CustomShape struct{}

func (CustomShape) Load(data model.DataMap) (model.DataMap, error) {
	args, ok := data["args"]
	if !ok {
		args = model.DataMap{}
	}
	return model.DataMap{"args": args}, nil
}

// Dump renders stored custom arguments. Mappings that were folded in from
// custom_args or belong to a task that is no longer registered have no
// "args" wrapper, they are rendered whole as args.
func (CustomShape) Dump(obj interface{}) (model.DataMap, error) {
	data, ok := model.AsDataMap(obj)
	if !ok {
		return nil, &TypeMismatchError{Field: "args", Expected: "mapping"}
	}
	rest := data.Without("type")
	if args, ok := rest["args"]; ok && len(rest) == 1 {
		return model.DataMap{"args": args}, nil
	}
	return model.DataMap{"args": map[string]interface{}(rest.Clone())}, nil
}

// ValidationShape validates arguments of a registered task against the
// task's declared validations.
//
// Values are coerced to the declared type first, requirements are then
// checked by the validator library. A missing key takes the validation's
// default, without one it is only allowed for the requirement "-".
// Validations that belong to a group are checked together and their error
// is reported for the whole record.
type ValidationShape struct {
	Validations []vm.Validation
}

func (s ValidationShape) Load(data model.DataMap) (model.DataMap, error) {
	errs := newValidationError()
	result := model.DataMap{}
	grouped := []vm.Validation{}
	for _, v := range s.Validations {
		if len(v.Groups) > 0 {
			grouped = append(grouped, v)
		}

		raw, ok := data[v.Key]
		if !ok || raw == nil {
			if v.Default == "" {
				if len(v.Groups) == 0 && !isOptional(v.Requirement) {
					errs.add(v.Key, &RequiredError{Field: v.Key})
				}
				continue
			}
			raw = defaultArgument(v)
		}

		value, err := loadArgument(v, raw)
		if err != nil {
			errs.add(v.Key, err)
			continue
		}
		if len(v.Groups) > 0 {
			result[v.Key] = value
			continue
		}

		validated, err := argumentValidator.ValidateWithValidation(map[string]any{v.Key: value}, []vm.Validation{v})
		if err != nil {
			errs.add(v.Key, &ConstraintError{Field: v.Key, Requirement: v.Requirement, Reason: err.Error()})
			continue
		}
		result[v.Key] = validated[v.Key]
	}

	if len(grouped) > 0 && len(errs.fields) == 0 {
		_, err := argumentValidator.ValidateWithValidation(map[string]any(result), grouped)
		if err != nil {
			errs.add("", &ConstraintError{Requirement: groupNames(grouped), Reason: err.Error()})
		}
	}
	if err := errs.err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s ValidationShape) Dump(obj interface{}) (model.DataMap, error) {
	keys := make([]string, 0, len(s.Validations))
	for _, v := range s.Validations {
		keys = append(keys, v.Key)
	}
	return dumpFields(obj, keys)
}

// argumentValidator has no custom functions registered, it is read only and
// shared by all loads.
var argumentValidator = validator.NewValidator()

// loadArgument coerces raw to the declared type of v. Mappings and lists
// are passed on as plain maps and slices, the validator only recurses into
// those.
func loadArgument(v vm.Validation, raw interface{}) (interface{}, error) {
	switch v.Type {
	case vm.String:
		return loadString(v.Key, raw)
	case vm.Int:
		return loadInteger(v.Key, raw)
	case vm.Float:
		return loadFloat(v.Key, raw)
	case vm.Bool:
		return loadBoolean(v.Key, raw)
	case vm.Map, vm.Struct:
		data, err := loadMapping(v.Key, raw)
		if err != nil {
			return nil, err
		}
		return map[string]any(data), nil
	case vm.Array:
		switch list := raw.(type) {
		case []interface{}:
			return list, nil
		case []string:
			items := make([]interface{}, len(list))
			for i, item := range list {
				items[i] = item
			}
			return items, nil
		}
		return nil, &TypeMismatchError{Field: v.Key, Expected: "list"}
	}
	return raw, nil
}

// defaultArgument returns the declared default of v. Defaults of mappings
// and lists are written as JSON.
func defaultArgument(v vm.Validation) interface{} {
	switch v.Type {
	case vm.Map, vm.Struct, vm.Array:
		var value interface{}
		if err := json.Unmarshal([]byte(v.Default), &value); err == nil {
			return value
		}
	}
	return v.Default
}

func isOptional(requirement string) bool {
	return strings.TrimSpace(requirement) == string(vm.NONE)
}

func groupNames(validations []vm.Validation) string {
	names := []string{}
	for _, v := range validations {
		for _, group := range v.Groups {
			if group != nil && !slices.Contains(names, group.Name) {
				names = append(names, group.Name)
			}
		}
	}
	return strings.Join(names, " ")
}

// CheckRequirements parses the requirement of every validation so broken
// task declarations are rejected on registration instead of on every load.
func CheckRequirements(validations []vm.Validation) error {
	p := parser.NewParser()
	for _, v := range validations {
		if _, err := p.ParseValidation(v.Requirement); err != nil {
			return fmt.Errorf("argument %s has an invalid requirement %q: %w", v.Key, v.Requirement, err)
		}
		if err := CheckRequirements(v.InnerValidation); err != nil {
			return err
		}
	}
	return nil
}

// NewTaskArgumentsSchema snapshots the argument shapes of reg and adds the
// custom fallback. Call it per load or dump so tasks registered in the
// meantime are known.
func NewTaskArgumentsSchema(reg TaskRegistry) *OneOf {
	shapes := map[string]Shape{}
	if reg != nil {
		for name, shape := range reg.ArgumentSchemas() {
			shapes[name] = shape
		}
	}
	shapes[CustomArgsType] = CustomShape{}

	return &OneOf{
		TypeField:   "type",
		Shapes:      shapes,
		DefaultType: CustomArgsType,
		ObjType: func(obj interface{}) string {
			if t := typeOf("type")(obj); t != "" {
				return t
			}
			return CustomArgsType
		},
		Fallback: CustomArgsType,
	}
}
