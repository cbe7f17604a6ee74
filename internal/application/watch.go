package application

import (
	"sync"

	"github.com/google/uuid"
)

// Watcher fans applicant change signals out to subscribers of a project.
// Subscribing with uuid.Nil receives every project's signals.
type Watcher struct {
	mu   sync.Mutex
	next int
	subs map[uuid.UUID]map[int]chan struct{}
}

func NewWatcher() *Watcher {
	return &Watcher{subs: make(map[uuid.UUID]map[int]chan struct{})}
}

// Subscribe returns a signal channel and a cancel func. Signals coalesce:
// a slow reader sees at most one pending signal.
func (w *Watcher) Subscribe(projectID uuid.UUID) (<-chan struct{}, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.next
	w.next++
	ch := make(chan struct{}, 1)
	if w.subs[projectID] == nil {
		w.subs[projectID] = make(map[int]chan struct{})
	}
	w.subs[projectID][id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			delete(w.subs[projectID], id)
			if len(w.subs[projectID]) == 0 {
				delete(w.subs, projectID)
			}
			close(ch)
		})
	}
}

func (w *Watcher) Notify(projectID uuid.UUID) {
	if w == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, key := range []uuid.UUID{projectID, uuid.Nil} {
		for _, ch := range w.subs[key] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
		if projectID == uuid.Nil {
			break
		}
	}
}

func (w *Watcher) Subscribers(projectID uuid.UUID) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.subs[projectID])
}
