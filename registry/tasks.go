package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/siherrmann/jobSchema/helper"
	"github.com/siherrmann/jobSchema/model"
	"github.com/siherrmann/jobSchema/schema"

	vm "github.com/siherrmann/validator/model"
)

// TaskRegistry is the in-process catalog of registered tasks. All getters
// return snapshots, so callers never share state with the registry.
type TaskRegistry struct {
	mu     sync.RWMutex
	tasks  map[string]model.Task
	logger *slog.Logger
}

// NewTaskRegistry creates an empty task registry.
func NewTaskRegistry(logger *slog.Logger) *TaskRegistry {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskRegistry{
		tasks:  map[string]model.Task{},
		logger: logger,
	}
}

// Register adds or replaces a task.
func (r *TaskRegistry) Register(task model.Task) error {
	if task.Name == "" {
		return helper.NewError("register task", fmt.Errorf("task name is empty"))
	}
	if task.Name == schema.CustomArgsType {
		return helper.NewError("register task", fmt.Errorf("task name %q is reserved", task.Name))
	}
	if err := schema.CheckRequirements(task.Arguments); err != nil {
		return helper.NewError("register task", err)
	}

	r.mu.Lock()
	_, replaced := r.tasks[task.Name]
	r.tasks[task.Name] = copyTask(task)
	r.mu.Unlock()

	r.logger.Info("Task registered", "name", task.Name, "replaced", replaced)
	return nil
}

// Unregister removes a task and reports whether it was registered.
func (r *TaskRegistry) Unregister(name string) bool {
	r.mu.Lock()
	_, ok := r.tasks[name]
	delete(r.tasks, name)
	r.mu.Unlock()

	if ok {
		r.logger.Info("Task unregistered", "name", name)
	}
	return ok
}

// Task returns a snapshot of one task.
func (r *TaskRegistry) Task(name string) (model.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[name]
	if !ok {
		return model.Task{}, false
	}
	return copyTask(task), true
}

// Names returns the sorted names of all registered tasks.
func (r *TaskRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tasks))
	for name := range r.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tasks returns a snapshot of all registered tasks keyed by name.
func (r *TaskRegistry) Tasks() map[string]model.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tasks := make(map[string]model.Task, len(r.tasks))
	for name, task := range r.tasks {
		tasks[name] = copyTask(task)
	}
	return tasks
}

// ArgumentSchemas returns the declared argument shape of every task.
func (r *TaskRegistry) ArgumentSchemas() map[string]schema.Shape {
	r.mu.RLock()
	defer r.mu.RUnlock()

	shapes := make(map[string]schema.Shape, len(r.tasks))
	for name, task := range r.tasks {
		shapes[name] = schema.ValidationShape{Validations: append([]vm.Validation(nil), task.Arguments...)}
	}
	return shapes
}

func copyTask(task model.Task) model.Task {
	parameters := make(map[string]model.Parameter, len(task.Parameters))
	for name, parameter := range task.Parameters {
		parameters[name] = parameter
	}
	task.Parameters = parameters
	task.Arguments = append([]vm.Validation(nil), task.Arguments...)
	return task
}
