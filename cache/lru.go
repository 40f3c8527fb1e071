package cache

// lru is an intrusive doubly-linked list of entries ordered by recency.
// The front is the most recently used entry. Not thread-safe; the owning
// shard serializes access.
type lru struct {
	front, back *entry
	len         int
}

func (l *lru) pushFront(e *entry) {
	e.prev = nil
	e.next = l.front
	if l.front != nil {
		l.front.prev = e
	} else {
		l.back = e
	}
	l.front = e
	l.len++
}

func (l *lru) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.front = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.back = e.prev
	}
	e.prev, e.next = nil, nil
	l.len--
}

func (l *lru) touch(e *entry) {
	if l.front == e {
		return
	}
	l.remove(e)
	l.pushFront(e)
}

// popBack removes and returns the least recently used entry, or nil.
func (l *lru) popBack() *entry {
	e := l.back
	if e != nil {
		l.remove(e)
	}
	return e
}

func (l *lru) clear() {
	l.front, l.back, l.len = nil, nil, 0
}
