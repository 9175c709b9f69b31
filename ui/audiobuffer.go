package ui

import (
	"io"
	"sync"
)

// AudioQueue is a bounded FIFO of PCM bytes implementing io.Reader for
// oto's pull model. Producers never block: when the queue is full the
// oldest bytes are discarded. Readers block until data arrives or the
// queue is closed.
type AudioQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	chunks [][]byte
	size   int
	limit  int
	closed bool
}

// NewAudioQueue creates a queue holding at most limit bytes.
func NewAudioQueue(limit int) *AudioQueue {
	q := &AudioQueue{limit: limit}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Write appends a copy of p.
func (q *AudioQueue) Write(p []byte) {
	if len(p) == 0 {
		return
	}
	if len(p) > q.limit {
		p = p[len(p)-q.limit:]
	}
	chunk := append([]byte(nil), p...)

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.chunks = append(q.chunks, chunk)
	q.size += len(chunk)
	q.trim()
	q.cond.Signal()
}

// trim drops the oldest bytes until the queue fits its limit.
func (q *AudioQueue) trim() {
	for q.size > q.limit {
		over := q.size - q.limit
		head := q.chunks[0]
		if len(head) <= over {
			q.chunks = q.chunks[1:]
			q.size -= len(head)
			continue
		}
		q.chunks[0] = head[over:]
		q.size -= over
	}
}

// Read implements io.Reader. It returns io.EOF once closed and drained.
func (q *AudioQueue) Read(p []byte) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.size == 0 {
		if q.closed {
			return 0, io.EOF
		}
		q.cond.Wait()
	}

	n := 0
	for n < len(p) && len(q.chunks) > 0 {
		c := copy(p[n:], q.chunks[0])
		n += c
		if c == len(q.chunks[0]) {
			q.chunks = q.chunks[1:]
		} else {
			q.chunks[0] = q.chunks[0][c:]
		}
	}
	q.size -= n
	return n, nil
}

// Buffered returns the queued byte count.
func (q *AudioQueue) Buffered() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Close wakes blocked readers; later writes are dropped.
func (q *AudioQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
	q.cond.Broadcast()
}
