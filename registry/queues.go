package registry

import (
	"fmt"
	"sync"

	"github.com/siherrmann/jobSchema/helper"
)

// QueueRegistry holds the queues runs can be sent to and the default queue.
type QueueRegistry struct {
	mu           sync.RWMutex
	queues       []string
	defaultQueue string
}

// NewQueueRegistry creates a queue registry. An empty defaultQueue selects
// the first queue. A defaultQueue that is not one of queues is an error,
// the returned registry then defaults to the first queue.
func NewQueueRegistry(defaultQueue string, queues ...string) (*QueueRegistry, error) {
	r := &QueueRegistry{}
	r.SetQueues(queues...)
	if defaultQueue != "" {
		if err := r.SetDefault(defaultQueue); err != nil {
			return r, err
		}
	}
	return r, nil
}

// SetQueues replaces the available queues. The default queue is kept if it
// is still available, otherwise the first queue becomes the default.
func (r *QueueRegistry) SetQueues(queues ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.queues = append([]string(nil), queues...)
	for _, queue := range r.queues {
		if queue == r.defaultQueue {
			return
		}
	}
	r.defaultQueue = ""
	if len(r.queues) > 0 {
		r.defaultQueue = r.queues[0]
	}
}

// SetDefault changes the default queue, it has to be available.
func (r *QueueRegistry) SetDefault(queue string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, q := range r.queues {
		if q == queue {
			r.defaultQueue = queue
			return nil
		}
	}
	return helper.NewError("set default queue", fmt.Errorf("queue %q is not available", queue))
}

func (r *QueueRegistry) Queues() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.queues...)
}

func (r *QueueRegistry) DefaultQueue() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.defaultQueue
}
