package wave

type elimination struct {
	cell    int32
	pattern int32
}

// queue is a growable FIFO ring buffer of pending eliminations.
type queue struct {
	buf        []elimination
	head, size int
}

func (q *queue) len() int { return q.size }

func (q *queue) push(cell, pattern int) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = elimination{int32(cell), int32(pattern)}
	q.size++
}

func (q *queue) pop() (cell, pattern int) {
	e := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return int(e.cell), int(e.pattern)
}

func (q *queue) reset() {
	q.head, q.size = 0, 0
}

func (q *queue) grow() {
	n := 2 * len(q.buf)
	if n == 0 {
		n = 64
	}
	buf := make([]elimination, n)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf, q.head = buf, 0
}
