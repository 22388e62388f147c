package registry

import (
	"sync"

	"github.com/siherrmann/jobSchema/model"
)

// UserRegistry resolves run actors by user id.
type UserRegistry struct {
	mu    sync.RWMutex
	users map[int]model.User
}

func NewUserRegistry(users ...model.User) *UserRegistry {
	r := &UserRegistry{users: map[int]model.User{}}
	for _, user := range users {
		r.users[user.ID] = user
	}
	return r
}

func (r *UserRegistry) Add(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
}

// ResolveActor returns the user with the given id or nil, which stands for
// the system.
func (r *UserRegistry) ResolveActor(id *int) *model.User {
	if id == nil {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[*id]
	if !ok {
		return nil
	}
	return &user
}
