package schema

import (
	"testing"

	"github.com/siherrmann/jobSchema/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDumpParameter(t *testing.T) {
	t.Run("Parameter without default renders a null default", func(t *testing.T) {
		dumped := DumpParameter(model.Parameter{Name: "to", Default: model.NoDefault, Kind: "POSITIONAL_OR_KEYWORD"})
		assert.Equal(t, model.DataMap{"name": "to", "default": nil, "kind": "POSITIONAL_OR_KEYWORD"}, dumped)
	})

	t.Run("Scalar defaults are rendered as they are", func(t *testing.T) {
		assert.Equal(t, 3, DumpParameter(model.Parameter{Default: 3})["default"])
		assert.Equal(t, true, DumpParameter(model.Parameter{Default: true})["default"])
		assert.Equal(t, "x", DumpParameter(model.Parameter{Default: "x"})["default"])
	})

	t.Run("Other defaults are rendered as text", func(t *testing.T) {
		assert.Equal(t, "[1 2]", DumpParameter(model.Parameter{Default: []int{1, 2}})["default"])
		assert.Equal(t, "map[a:1]", DumpParameter(model.Parameter{Default: map[string]int{"a": 1}})["default"])
	})
}

func TestDumpTasks(t *testing.T) {
	tasks := newTestTasks()
	tasks["archive"] = model.Task{Name: "archive"}

	t.Run("Tasks are rendered sorted by name", func(t *testing.T) {
		dumped := DumpTasks(tasks, nil)
		require.Len(t, dumped, 2)
		assert.Equal(t, "archive", dumped[0]["name"])
		assert.Equal(t, "send_email", dumped[1]["name"])

		parameters := dumped[1]["parameters"].(map[string]interface{})
		retry := parameters["retry"].(map[string]interface{})
		assert.Equal(t, 3, retry["default"])
	})

	t.Run("Task fields the caller may not see are omitted", func(t *testing.T) {
		dumped := DumpTask(tasks["send_email"], NewDenyFields("parameters"))
		assert.Equal(t, []string{"description", "name"}, sortedKeys(dumped))
	})
}

func TestArgumentsDescription(t *testing.T) {
	t.Run("Arguments description lists the declared arguments", func(t *testing.T) {
		description := ArgumentsDescription(newTestTasks()["send_email"])
		assert.Equal(t, "send_email", description["type"])

		fields := description["fields"].([]interface{})
		require.Len(t, fields, 3)
		first := fields[0].(map[string]interface{})
		assert.Equal(t, "to", first["key"])
		assert.Equal(t, true, first["required"])
		last := fields[2].(map[string]interface{})
		assert.Equal(t, "note", last["key"])
		assert.Equal(t, false, last["required"])
	})
}
