package schema

import (
	"github.com/siherrmann/jobSchema/model"
)

// DefaultRunTitle is rendered for runs started without a title.
const DefaultRunTitle = "Manual run"

// RunSchema validates run input and renders run output.
type RunSchema struct {
	Tasks  TaskRegistry
	Queues QueueRegistry
	Actors ActorResolver
}

func NewRunSchema(tasks TaskRegistry, queues QueueRegistry, actors ActorResolver) *RunSchema {
	return &RunSchema{
		Tasks:  tasks,
		Queues: queues,
		Actors: actors,
	}
}

// Load validates data into a canonical run. args and custom_args are
// validated independently and then folded, custom_args never survives into
// the returned run.
func (s *RunSchema) Load(data model.DataMap) (*model.Run, error) {
	errs := newValidationError()
	run := &model.Run{}

	if raw, ok := data["title"]; ok {
		run.Title = loadTitle(errs, raw)
	}

	var args model.DataMap
	if raw, ok := data["args"]; ok {
		if raw == nil {
			errs.add("args", &TypeMismatchError{Field: "args", Expected: "mapping"})
		} else {
			loaded, err := NewTaskArgumentsSchema(s.Tasks).Load(raw)
			errs.add("args", err)
			args = loaded
		}
	}

	customArgs := model.DataMap{}
	if raw, ok := data["custom_args"]; ok {
		if raw == nil {
			customArgs = nil
		} else {
			loaded, err := loadMapping("custom_args", raw)
			errs.add("custom_args", err)
			customArgs = loaded
		}
	}

	run.Queue = loadQueue(errs, "queue", data, s.Queues)

	if err := errs.err(); err != nil {
		return nil, err
	}

	run.Args = FoldArgs(args, customArgs)
	return run, nil
}

// Dump renders run for a caller with the given permissions. Arguments are
// rendered against the live task registry, arguments of tasks that are no
// longer registered fall back to the custom shape.
func (s *RunSchema) Dump(run *model.Run, perms model.FieldPermissions) (model.DataMap, error) {
	out := model.DataMap{
		"id":            dumpUUID(run.ID),
		"job_id":        dumpUUID(run.JobID),
		"task_id":       dumpUUID(run.TaskID),
		"created":       dumpTime(run.Created),
		"updated":       dumpTime(run.Updated),
		"started_by_id": nil,
		"started_at":    dumpTimePtr(run.StartedAt),
		"finished_at":   dumpTimePtr(run.FinishedAt),
		"status":        nil,
		"message":       run.Message,
		"title":         run.Title,
		"args":          nil,
		"queue":         run.Queue,
	}

	if run.StartedByID != nil {
		out["started_by_id"] = *run.StartedByID
	}

	startedBy, err := NewActorSchema().Dump(s.actor(run))
	if err != nil {
		return nil, err
	}
	out["started_by"] = map[string]interface{}(startedBy)

	if run.Status != "" {
		out["status"] = string(run.Status)
	}

	if run.Title == "" {
		out["title"] = DefaultRunTitle
	}

	if run.Args != nil {
		args, err := NewTaskArgumentsSchema(s.Tasks).Dump(run.Args)
		if err != nil {
			return nil, err
		}
		out["args"] = map[string]interface{}(args)
	}

	if run.Queue == "" && s.Queues != nil {
		out["queue"] = s.Queues.DefaultQueue()
	}

	return Filter(out, perms), nil
}

// actor returns the user that started the run or nil for the system.
func (s *RunSchema) actor(run *model.Run) *model.User {
	if run.StartedBy != nil {
		return run.StartedBy
	}
	if s.Actors == nil || run.StartedByID == nil {
		return nil
	}
	return s.Actors.ResolveActor(run.StartedByID)
}
