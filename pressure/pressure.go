package pressure

import (
	"sync/atomic"

	"github.com/wippyai/offheap"
)

type nop struct{}

func (nop) Report(int64)  {}
func (nop) Release(int64) {}

// Nop returns a monitor that discards all reports.
func Nop() offheap.Monitor { return nop{} }

// Counting tracks the total registered off-heap bytes in an atomic counter.
type Counting struct {
	inUse   atomic.Int64
	reports atomic.Int64
}

// NewCounting creates a zeroed counting monitor.
func NewCounting() *Counting { return &Counting{} }

func (c *Counting) Report(bytes int64) {
	c.inUse.Add(bytes)
	c.reports.Add(1)
}

func (c *Counting) Release(bytes int64) {
	c.inUse.Add(-bytes)
}

// InUse returns the currently registered byte total.
func (c *Counting) InUse() int64 { return c.inUse.Load() }

// Reports returns how many registrations have been received.
func (c *Counting) Reports() int64 { return c.reports.Load() }
