package track

import (
	"sync"
)

// Handle is an opaque reference to a registry slot.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Info describes one tracked array.
type Info struct {
	Label string
	Type  string // element type name
	Len0  int
	Len1  int
	Bytes uintptr
	Owned bool
}

// EventType identifies a lifecycle notification.
type EventType uint8

const (
	EventCreated EventType = iota
	EventReleased
)

// Event is a lifecycle notification delivered to observers.
type Event struct {
	Info   Info
	Handle Handle
	Type   EventType
}

// Observer receives notifications about tracked array lifecycles.
type Observer interface {
	OnArrayEvent(Event)
}

// Registry is an in-memory table of live arrays with observer support.
type Registry struct {
	entries   []entry
	freeList  []Handle
	observers []Observer
	mu        sync.RWMutex
}

type entry struct {
	info  Info
	valid bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:  make([]entry, 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Add records a live array and returns its handle.
func (r *Registry) Add(info Info) Handle {
	r.mu.Lock()

	e := entry{info: info, valid: true}
	var handle Handle
	if len(r.freeList) > 0 {
		handle = r.freeList[len(r.freeList)-1]
		r.freeList = r.freeList[:len(r.freeList)-1]
		r.entries[handle-1] = e
	} else {
		r.entries = append(r.entries, e)
		handle = Handle(len(r.entries))
	}
	r.mu.Unlock()

	r.notify(Event{Type: EventCreated, Handle: handle, Info: info})
	return handle
}

// Remove drops a tracked array and returns (info, true) if it was present.
func (r *Registry) Remove(handle Handle) (Info, bool) {
	if handle == 0 {
		return Info{}, false
	}

	r.mu.Lock()
	idx := handle - 1
	if int(idx) >= len(r.entries) || !r.entries[idx].valid {
		r.mu.Unlock()
		return Info{}, false
	}
	info := r.entries[idx].info
	r.entries[idx] = entry{}
	r.freeList = append(r.freeList, handle)
	r.mu.Unlock()

	r.notify(Event{Type: EventReleased, Handle: handle, Info: info})
	return info, true
}

// Get returns the info for a handle.
func (r *Registry) Get(handle Handle) (Info, bool) {
	if handle == 0 {
		return Info{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(r.entries) || !r.entries[idx].valid {
		return Info{}, false
	}
	return r.entries[idx].info, true
}

// Len returns the number of live tracked arrays.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, e := range r.entries {
		if e.valid {
			n++
		}
	}
	return n
}

// Bytes returns the total byte size of live tracked arrays.
func (r *Registry) Bytes() uintptr {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total uintptr
	for _, e := range r.entries {
		if e.valid {
			total += e.info.Bytes
		}
	}
	return total
}

// Each iterates over live entries until fn returns false.
func (r *Registry) Each(fn func(Handle, Info) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, e := range r.entries {
		if !e.valid {
			continue
		}
		if !fn(Handle(i+1), e.info) {
			return
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (r *Registry) Subscribe(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry) Unsubscribe(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

func (r *Registry) notify(e Event) {
	r.mu.RLock()
	obs := make([]Observer, len(r.observers))
	copy(obs, r.observers)
	r.mu.RUnlock()

	for _, o := range obs {
		o.OnArrayEvent(e)
	}
}
