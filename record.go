package spdlog

import (
	"os"
	"time"
)

// Record is a single log message on its way through a formatter. The Logger
// assembles one per log call; Buf receives the rendered line and belongs to
// the record for the duration of the call.
type Record struct {
	Name     string
	Level    Level
	Message  string
	MsgID    uint64
	ThreadID uint64
	Time     time.Time
	Buf      *Buffer
}

// processID is captured once; it cannot change for the lifetime of the
// program.
var processID = uint64(os.Getpid())
