// Package pressure provides monitors that account for off-heap byte usage.
//
// A monitor receives one Report when an array registers its allocation and
// exactly one matching Release when the array is released, regardless of how
// many times release is invoked. Reports are purely advisory; nothing in the
// core depends on them.
//
// Three monitors are provided: Nop (discard), Counting (an atomic in-process
// total, useful in tests and for debug.SetMemoryLimit-style bookkeeping),
// and Gauge (prometheus metrics).
package pressure
