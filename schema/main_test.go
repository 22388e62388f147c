package schema

import (
	"sort"

	"github.com/siherrmann/jobSchema/model"
	vm "github.com/siherrmann/validator/model"
)

type testTasks map[string]model.Task

func (t testTasks) Tasks() map[string]model.Task {
	tasks := map[string]model.Task{}
	for name, task := range t {
		tasks[name] = task
	}
	return tasks
}

func (t testTasks) ArgumentSchemas() map[string]Shape {
	shapes := map[string]Shape{}
	for name, task := range t {
		shapes[name] = ValidationShape{Validations: task.Arguments}
	}
	return shapes
}

type testQueues struct {
	queues       []string
	defaultQueue string
}

func (q *testQueues) Queues() []string     { return q.queues }
func (q *testQueues) DefaultQueue() string { return q.defaultQueue }

type testActors map[int]model.User

func (a testActors) ResolveActor(id *int) *model.User {
	if id == nil {
		return nil
	}
	user, ok := a[*id]
	if !ok {
		return nil
	}
	return &user
}

func newTestTasks() testTasks {
	return testTasks{
		"send_email": {
			Name:        "send_email",
			Description: "Sends an email",
			Parameters: map[string]model.Parameter{
				"to":    {Name: "to", Default: model.NoDefault, Kind: "POSITIONAL_OR_KEYWORD"},
				"retry": {Name: "retry", Default: 3, Kind: "KEYWORD_ONLY"},
			},
			Arguments: []vm.Validation{
				{Key: "to", Type: vm.String, Requirement: "min1"},
				{Key: "count", Type: vm.Int, Requirement: "min1"},
				{Key: "note", Type: vm.String, Requirement: "-"},
			},
		},
	}
}

func newTestQueues() *testQueues {
	return &testQueues{queues: []string{"celery", "priority"}, defaultQueue: "celery"}
}

func sortedKeys(data model.DataMap) []string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func validationError(err error) *ValidationError {
	verr, _ := err.(*ValidationError)
	return verr
}
