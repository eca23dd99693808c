// Package ringbuf provides a fixed-capacity circular buffer.
//
// The buffer never reallocates after New. A full buffer either rejects new
// elements (Push) or overwrites the oldest one (ForcePush), at the caller's
// choice per call.
package ringbuf

// Buffer is a fixed-capacity FIFO ring. The zero value is not usable; use New.
type Buffer[T any] struct {
	buf  []T
	head int
	tail int
	full bool
}

// New allocates a buffer holding up to capacity elements.
// It panics if capacity is not positive.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ringbuf: capacity must be positive")
	}

	return &Buffer[T]{buf: make([]T, capacity)}
}

// Cap returns the fixed capacity of the buffer.
func (b *Buffer[T]) Cap() int { return len(b.buf) }

// Full reports whether a Push would be rejected.
func (b *Buffer[T]) Full() bool { return b.full }

// Empty reports whether the buffer holds no elements.
func (b *Buffer[T]) Empty() bool { return !b.full && b.head == b.tail }

// Len returns the number of buffered elements, between 0 and Cap.
func (b *Buffer[T]) Len() int {
	if b.full {
		return len(b.buf)
	}
	if b.tail >= b.head {
		return b.tail - b.head
	}

	return len(b.buf) + b.tail - b.head
}

// Clear discards all elements. Buffered values are not zeroed and stay
// reachable until overwritten.
func (b *Buffer[T]) Clear() {
	b.head = 0
	b.tail = 0
	b.full = false
}

// Push appends v to the back of the buffer. It reports false, leaving the
// buffer unchanged, when the buffer is full.
func (b *Buffer[T]) Push(v T) bool {
	if b.full {
		return false
	}
	b.buf[b.tail] = v
	b.advance()

	return true
}

// ForcePush appends v to the back of the buffer, overwriting the oldest
// element when the buffer is full.
func (b *Buffer[T]) ForcePush(v T) {
	b.buf[b.tail] = v
	b.advance()
}

// Pop removes and returns the element at the front of the buffer.
// It reports false when the buffer is empty.
func (b *Buffer[T]) Pop() (T, bool) {
	var zero T
	if b.Empty() {
		return zero, false
	}
	v := b.buf[b.head]
	b.retreat()

	return v, true
}

// Peek returns the element at the front without removing it.
// It reports false when the buffer is empty.
func (b *Buffer[T]) Peek() (T, bool) {
	var zero T
	if b.Empty() {
		return zero, false
	}

	return b.buf[b.head], true
}

// Discard removes the front element without returning it.
// It reports false when the buffer is empty.
func (b *Buffer[T]) Discard() bool {
	if b.Empty() {
		return false
	}
	b.retreat()

	return true
}

func (b *Buffer[T]) advance() {
	if b.full {
		b.head = (b.head + 1) % len(b.buf)
	}
	b.tail = (b.tail + 1) % len(b.buf)
	b.full = b.tail == b.head
}

func (b *Buffer[T]) retreat() {
	b.full = false
	b.head = (b.head + 1) % len(b.buf)
}
