package spdlog

import "sync"

const (
	bufferDefaultCap = 1024
	bufferMaxPoolCap = 64 << 10
)

// Buffer is an append-only growable byte container. A Record carries one for
// the duration of a format call; directives only ever append to it. The zero
// value is ready to use.
type Buffer struct {
	buf []byte
}

// NewBuffer returns a Buffer with the default pre-allocated capacity.
func NewBuffer() *Buffer {
	return &Buffer{buf: make([]byte, 0, bufferDefaultCap)}
}

// Reserve grows the buffer so that at least n more bytes fit without
// reallocation.
func (b *Buffer) Reserve(n int) {
	if n <= 0 {
		return
	}
	need := len(b.buf) + n
	if need <= cap(b.buf) {
		return
	}
	newCap := max(cap(b.buf)*2+n, need)
	if newCap > bufferMaxPoolCap {
		newCap = need
	}
	newBuf := make([]byte, len(b.buf), newCap)
	copy(newBuf, b.buf)
	b.buf = newBuf
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	b.buf = append(b.buf, c)
}

// AppendString appends the bytes of s.
func (b *Buffer) AppendString(s string) {
	b.buf = append(b.buf, s...)
}

// AppendBytes appends p.
func (b *Buffer) AppendBytes(p []byte) {
	b.buf = append(b.buf, p...)
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int { return len(b.buf) }

// Cap returns the current capacity.
func (b *Buffer) Cap() int { return cap(b.buf) }

// Bytes returns the written bytes. The slice is only valid until the next
// append or Reset.
func (b *Buffer) Bytes() []byte { return b.buf }

// String returns a copy of the written bytes as a string.
func (b *Buffer) String() string { return string(b.buf) }

// Reset truncates the buffer to zero length, keeping its storage.
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

var bufferPool = sync.Pool{
	New: func() any {
		return &Buffer{buf: make([]byte, 0, bufferDefaultCap)}
	},
}

func acquireBuffer() *Buffer {
	b := bufferPool.Get().(*Buffer)
	b.buf = b.buf[:0]
	return b
}

func releaseBuffer(b *Buffer) {
	if cap(b.buf) > bufferMaxPoolCap {
		b.buf = make([]byte, 0, bufferDefaultCap)
	}
	b.buf = b.buf[:0]
	bufferPool.Put(b)
}
