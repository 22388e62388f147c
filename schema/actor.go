package schema

import (
	"github.com/siherrmann/jobSchema/model"
)

const (
	ActorTypeUser   = "user"
	ActorTypeSystem = "system"
)

// ActorResolver resolves a possibly absent user reference. A nil result
// means the system started the run.
type ActorResolver interface {
	ResolveActor(id *int) *model.User
}

// UserShape renders a human actor.
type UserShape struct{}

func (UserShape) Load(model.DataMap) (model.DataMap, error) {
	return nil, ErrDumpOnly
}

func (UserShape) Dump(obj interface{}) (model.DataMap, error) {
	user, ok := obj.(*model.User)
	if !ok || user == nil {
		return nil, &TypeMismatchError{Field: "started_by", Expected: "user"}
	}
	return model.DataMap{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"profile": map[string]interface{}{
			"full_name": user.FullName,
		},
	}, nil
}

// SystemShape renders the system actor.
type SystemShape struct{}

func (SystemShape) Load(model.DataMap) (model.DataMap, error) {
	return nil, ErrDumpOnly
}

func (SystemShape) Dump(interface{}) (model.DataMap, error) {
	return model.DataMap{
		"id":       ActorTypeSystem,
		"username": ActorTypeSystem,
		"profile": map[string]interface{}{
			"full_name": "System",
		},
	}, nil
}

// NewActorSchema returns the dispatcher for run actors. The discriminant is
// not stored anywhere, an absent user is the system.
func NewActorSchema() *OneOf {
	return &OneOf{
		TypeField: "type",
		Shapes: map[string]Shape{
			ActorTypeUser:   UserShape{},
			ActorTypeSystem: SystemShape{},
		},
		ObjType: func(obj interface{}) string {
			if user, ok := obj.(*model.User); ok && user != nil {
				return ActorTypeUser
			}
			return ActorTypeSystem
		},
	}
}
