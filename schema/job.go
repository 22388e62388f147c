package schema

import (
	"sort"

	"github.com/siherrmann/jobSchema/model"
)

// TitleMaxLength bounds job and run titles.
const TitleMaxLength = 250

// QueueRegistry exposes the queues runs can be sent to.
type QueueRegistry interface {
	Queues() []string
	DefaultQueue() string
}

// JobSchema validates job input and renders job output. Registries are read
// on every call, nothing is memoized between calls.
type JobSchema struct {
	Tasks  TaskRegistry
	Queues QueueRegistry
	Actors ActorResolver
}

func NewJobSchema(tasks TaskRegistry, queues QueueRegistry, actors ActorResolver) *JobSchema {
	return &JobSchema{
		Tasks:  tasks,
		Queues: queues,
		Actors: actors,
	}
}

// Load validates data into a canonical job. Unknown and output-only keys
// are discarded. All field errors are collected into one *ValidationError.
func (s *JobSchema) Load(data model.DataMap) (*model.Job, error) {
	errs := newValidationError()
	job := &model.Job{Active: true}

	if raw, ok := data["title"]; ok {
		job.Title = loadTitle(errs, raw)
	} else {
		errs.add("title", &RequiredError{Field: "title"})
	}

	if raw, ok := data["description"]; ok {
		description, err := loadString("description", raw)
		errs.add("description", err)
		job.Description = description
	}

	if raw, ok := data["active"]; ok {
		active, err := loadBoolean("active", raw)
		errs.add("active", err)
		job.Active = active
	}

	if raw, ok := data["task"]; ok {
		task, err := loadString("task", raw)
		if err == nil {
			err = LazyOneOf(s.taskNames)("task", task)
		}
		errs.add("task", err)
		job.Task = task
	} else {
		errs.add("task", &RequiredError{Field: "task"})
	}

	job.DefaultQueue = loadQueue(errs, "default_queue", data, s.Queues)

	if raw, ok := data["schedule"]; ok && raw != nil {
		schedule, err := NewScheduleSchema().Load(raw)
		errs.add("schedule", err)
		job.Schedule = schedule
	}

	if err := errs.err(); err != nil {
		return nil, err
	}
	return job, nil
}

// Dump renders job for a caller with the given permissions. The job is not
// modified.
func (s *JobSchema) Dump(job *model.Job, perms model.FieldPermissions) (model.DataMap, error) {
	out := model.DataMap{
		"id":            dumpUUID(job.ID),
		"created":       dumpTime(job.Created),
		"updated":       dumpTime(job.Updated),
		"title":         job.Title,
		"description":   job.Description,
		"active":        job.Active,
		"task":          job.Task,
		"default_queue": job.DefaultQueue,
		"default_args":  nil,
		"schedule":      nil,
		"last_run":      nil,
	}

	if job.DefaultArgs != nil {
		out["default_args"] = map[string]interface{}(job.DefaultArgs.Clone())
	}

	if job.Schedule != nil {
		schedule, err := NewScheduleSchema().Dump(job.Schedule)
		if err != nil {
			return nil, err
		}
		out["schedule"] = map[string]interface{}(schedule)
	}

	runs := s.runSchema()
	if job.LastRun != nil {
		lastRun, err := runs.Dump(job.LastRun, perms)
		if err != nil {
			return nil, err
		}
		out["last_run"] = map[string]interface{}(lastRun)
	}

	if job.LastRuns != nil {
		lastRuns := make(map[string]interface{}, len(job.LastRuns))
		for key, ref := range job.LastRuns {
			if ref == nil {
				lastRuns[key] = nil
				continue
			}
			run := ref.Resolve()
			if run == nil {
				lastRuns[key] = nil
				continue
			}
			dumped, err := runs.Dump(run, perms)
			if err != nil {
				return nil, err
			}
			lastRuns[key] = map[string]interface{}(dumped)
		}
		out["last_runs"] = lastRuns
	}

	return Filter(out, perms), nil
}

func (s *JobSchema) runSchema() *RunSchema {
	return NewRunSchema(s.Tasks, s.Queues, s.Actors)
}

func (s *JobSchema) taskNames() []string {
	if s.Tasks == nil {
		return nil
	}
	tasks := s.Tasks.Tasks()
	names := make([]string, 0, len(tasks))
	for name := range tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func loadTitle(errs *ValidationError, raw interface{}) string {
	title, err := loadString("title", raw)
	if err == nil {
		err = NonBlank(TitleMaxLength)("title", title)
	}
	errs.add("title", err)
	return title
}

// loadQueue validates a queue field against the live queue list and falls
// back to the current default queue when the field is missing.
func loadQueue(errs *ValidationError, field string, data model.DataMap, queues QueueRegistry) string {
	raw, ok := data[field]
	if !ok {
		if queues == nil {
			return ""
		}
		return queues.DefaultQueue()
	}
	queue, err := loadString(field, raw)
	if err == nil {
		err = LazyOneOf(func() []string {
			if queues == nil {
				return nil
			}
			return queues.Queues()
		})(field, queue)
	}
	errs.add(field, err)
	return queue
}
