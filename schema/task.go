package schema

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/siherrmann/jobSchema/model"
)

// DumpParameter renders a task parameter. Defaults that are not plain
// scalars are rendered as text since they can be arbitrary runtime values.
func DumpParameter(parameter model.Parameter) model.DataMap {
	return model.DataMap{
		"name":    parameter.Name,
		"default": dumpDefault(parameter.Default),
		"kind":    parameter.Kind,
	}
}

func dumpDefault(value interface{}) interface{} {
	if value == nil || value == model.NoDefault {
		return nil
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return value
	}
	return fmt.Sprint(value)
}

// DumpTask renders a registered task with its parameters.
func DumpTask(task model.Task, perms model.FieldPermissions) model.DataMap {
	parameters := map[string]interface{}{}
	for name, parameter := range task.Parameters {
		parameters[name] = map[string]interface{}(DumpParameter(parameter))
	}
	return Filter(model.DataMap{
		"name":        task.Name,
		"description": task.Description,
		"parameters":  parameters,
	}, perms)
}

// DumpTasks renders every task of the registry sorted by name.
func DumpTasks(reg TaskRegistry, perms model.FieldPermissions) []model.DataMap {
	tasks := reg.Tasks()
	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sort.Strings(names)

	dumped := make([]model.DataMap, 0, len(names))
	for _, name := range names {
		dumped = append(dumped, DumpTask(tasks[name], perms))
	}
	return dumped
}

// ArgumentsDescription describes the argument shape of a task so clients can
// build input forms for the args of a run depending on its task.
func ArgumentsDescription(task model.Task) model.DataMap {
	fields := make([]interface{}, 0, len(task.Arguments))
	for _, v := range task.Arguments {
		fields = append(fields, map[string]interface{}{
			"key":         v.Key,
			"type":        fmt.Sprint(v.Type),
			"requirement": v.Requirement,
			"default":     v.Default,
			"required":    !isOptional(v.Requirement) && v.Default == "" && len(v.Groups) == 0,
		})
	}
	return model.DataMap{
		"type":   task.Name,
		"fields": fields,
	}
}
