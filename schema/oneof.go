package schema

import (
	"sort"

	"github.com/siherrmann/jobSchema/model"
)

const defaultTypeField = "type"

// Shape loads and dumps one variant of a tagged union.
type Shape interface {
	Load(data model.DataMap) (model.DataMap, error)
	Dump(obj interface{}) (model.DataMap, error)
}

// OneOf resolves exactly one shape per value from a discriminant.
//
// On load the discriminant is read from TypeField of the input mapping, a
// missing discriminant resolves to DefaultType or fails if that is empty.
// On dump the discriminant is computed by ObjType from the in-memory value,
// an unknown one resolves to Fallback or fails if that is empty.
// The discriminant is kept in loaded and dumped data unless RemoveTypeField.
type OneOf struct {
	TypeField       string
	Shapes          map[string]Shape
	DefaultType     string
	ObjType         func(obj interface{}) string
	Fallback        string
	RemoveTypeField bool
}

// Known returns the sorted discriminants of all shapes.
func (o *OneOf) Known() []string {
	known := make([]string, 0, len(o.Shapes))
	for name := range o.Shapes {
		known = append(known, name)
	}
	sort.Strings(known)
	return known
}

func (o *OneOf) typeField() string {
	if o.TypeField == "" {
		return defaultTypeField
	}
	return o.TypeField
}

// Load validates value against the shape its discriminant names.
// Errors are returned as *ValidationError with paths relative to value.
func (o *OneOf) Load(value interface{}) (model.DataMap, error) {
	errs := newValidationError()
	typeField := o.typeField()

	data, ok := model.AsDataMap(value)
	if !ok {
		errs.add("", &TypeMismatchError{Expected: "mapping"})
		return nil, errs
	}

	dataType := o.DefaultType
	if raw, present := data[typeField]; present && raw != nil {
		s, ok := raw.(string)
		if !ok {
			errs.add(typeField, &TypeMismatchError{Field: typeField, Expected: "string"})
			return nil, errs
		}
		dataType = s
	} else if dataType == "" {
		errs.add(typeField, &RequiredError{Field: typeField})
		return nil, errs
	}

	shape, ok := o.Shapes[dataType]
	if !ok {
		errs.add(typeField, &UnknownVariantError{Field: typeField, Attempted: dataType, Known: o.Known()})
		return nil, errs
	}

	input := data
	if o.RemoveTypeField {
		input = data.Without(typeField)
	}
	result, err := shape.Load(input)
	if err != nil {
		errs.add("", err)
		return nil, errs
	}
	if result == nil {
		result = model.DataMap{}
	}
	if !o.RemoveTypeField {
		result[typeField] = dataType
	}
	return result, nil
}

// Dump renders obj through the shape selected by ObjType.
func (o *OneOf) Dump(obj interface{}) (model.DataMap, error) {
	objType := ""
	if o.ObjType != nil {
		objType = o.ObjType(obj)
	}

	shape, ok := o.Shapes[objType]
	if !ok {
		fallback, hasFallback := o.Shapes[o.Fallback]
		if o.Fallback == "" || !hasFallback {
			return nil, &UnknownVariantError{Field: o.typeField(), Attempted: objType, Known: o.Known()}
		}
		objType, shape = o.Fallback, fallback
	}

	result, err := shape.Dump(obj)
	if err != nil {
		return nil, err
	}
	if result != nil && !o.RemoveTypeField {
		result[o.typeField()] = objType
	}
	return result, nil
}

// typeOf reads a string discriminant embedded in a mapping.
func typeOf(typeField string) func(obj interface{}) string {
	return func(obj interface{}) string {
		data, ok := model.AsDataMap(obj)
		if !ok {
			return ""
		}
		s, _ := data[typeField].(string)
		return s
	}
}
