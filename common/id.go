package common

import "sync/atomic"

var nextID atomic.Uint64

// NextID returns a process-wide unique, monotonically increasing id.
func NextID() uint64 {
	return nextID.Add(1)
}
