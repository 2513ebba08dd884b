package benchmark_test

import (
	"sync"
	"testing"
)

// lockedDiscard drops everything while keeping the writer hot path closer to
// a real logger by serialising access and counting bytes.
type lockedDiscard struct {
	mu  sync.Mutex
	sum int64
}

func (l *lockedDiscard) Write(p []byte) (int, error) {
	l.mu.Lock()
	l.sum += int64(len(p))
	l.mu.Unlock()
	return len(p), nil
}

func (l *lockedDiscard) Sync() error {
	return nil
}

func newBenchmarkSink() *lockedDiscard {
	return &lockedDiscard{}
}

func (l *lockedDiscard) resetCount() {
	l.mu.Lock()
	l.sum = 0
	l.mu.Unlock()
}

func (l *lockedDiscard) bytesWritten() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sum
}

func reportBytesPerOp(b *testing.B, sink *lockedDiscard) {
	total := sink.bytesWritten()
	if b.N > 0 {
		b.ReportMetric(float64(total)/float64(b.N), "bytes/op")
	} else {
		b.ReportMetric(0, "bytes/op")
	}
}
