package services

import "sync"

// observers is a set of callbacks. notify dispatches to a snapshot so callbacks may
// subscribe or unsubscribe without deadlocking.
type observers[T any] struct {
	mu     sync.RWMutex
	nextID int
	fns    map[int]func(T)
}

func (o *observers[T]) subscribe(fn func(T)) func() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.fns == nil {
		o.fns = make(map[int]func(T))
	}
	id := o.nextID
	o.nextID++
	o.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			delete(o.fns, id)
			o.mu.Unlock()
		})
	}
}

func (o *observers[T]) notify(event T) {
	o.mu.RLock()
	snapshot := make([]func(T), 0, len(o.fns))
	for _, fn := range o.fns {
		snapshot = append(snapshot, fn)
	}
	o.mu.RUnlock()

	for _, fn := range snapshot {
		fn(event)
	}
}
