package native

import (
	"github.com/wippyai/offheap"
	"github.com/wippyai/offheap/alloc"
	"github.com/wippyai/offheap/track"
)

// Option configures array construction.
type Option func(*config)

type config struct {
	allocator    offheap.Allocator
	monitor      offheap.Monitor
	tracker      *track.Registry
	label        string
	skipZeroFill bool
}

func defaultConfig() config {
	return config{allocator: alloc.Default}
}

// WithoutZeroFill skips zero-initialization of a freshly allocated block.
// The caller must treat the initial contents as garbage.
func WithoutZeroFill() Option {
	return func(c *config) { c.skipZeroFill = true }
}

// WithAllocator substitutes the allocate/free pair backing the array.
func WithAllocator(a offheap.Allocator) Option {
	return func(c *config) { c.allocator = a }
}

// WithPressure registers the array's byte size with m at construction and
// releases it exactly once when the array is released.
func WithPressure(m offheap.Monitor) Option {
	return func(c *config) { c.monitor = m }
}

// WithTracker records the array in r for its lifetime, under label.
func WithTracker(r *track.Registry, label string) Option {
	return func(c *config) {
		c.tracker = r
		c.label = label
	}
}
