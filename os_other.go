//go:build !linux && !windows

package spdlog

import "os"

// No portable thread id exists on the remaining platforms; the process id
// stands in so the thread-id directive still renders a stable value.
func threadID() uint64 {
	return uint64(os.Getpid())
}
