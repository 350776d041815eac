// Package list provides a doubly linked list and a cursor over it that can
// remove the element it points at without losing its place.
//
// A List owns its nodes. Cursors hold a reference to the current node only,
// and must not be used after the list is modified through anything other
// than that cursor's own Remove.
package list

import "errors"

var (
	ErrNilList       = errors.New("list: nil list")
	ErrEmpty         = errors.New("list: empty list")
	ErrInvalidCursor = errors.New("list: invalid cursor")
)

type node[T any] struct {
	prev, next *node[T]
	payload    T
}

// List is a doubly linked list of payloads of type T.
type List[T any] struct {
	head, tail *node[T]
	n          int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Free unlinks every node in the list. If destroy is not nil it is called
// once for each payload, head to tail, before the node is dropped. Free on a
// nil list does nothing.
func (l *List[T]) Free(destroy func(T)) {
	if l == nil {
		return
	}
	cur := l.head
	for cur != nil {
		if destroy != nil {
			destroy(cur.payload)
		}
		next := cur.next
		cur.prev, cur.next = nil, nil
		cur = next
	}
	l.head, l.tail = nil, nil
	l.n = 0
}

// Len returns the number of elements in the list, or -1 for a nil list.
func (l *List[T]) Len() int {
	if l == nil {
		return -1
	}
	return l.n
}

// Prepend inserts v at the head of the list.
func (l *List[T]) Prepend(v T) error {
	if l == nil {
		return ErrNilList
	}
	nd := &node[T]{next: l.head, payload: v}
	if l.n == 0 {
		l.tail = nd
	} else {
		l.head.prev = nd
	}
	l.head = nd
	l.n++
	return nil
}

// Append inserts v at the tail of the list.
func (l *List[T]) Append(v T) error {
	if l == nil {
		return ErrNilList
	}
	nd := &node[T]{prev: l.tail, payload: v}
	if l.n == 0 {
		l.head = nd
	} else {
		l.tail.next = nd
	}
	l.tail = nd
	l.n++
	return nil
}

// PopHead removes the head of the list and returns its payload. The list is
// left untouched when an error is returned.
func (l *List[T]) PopHead() (T, error) {
	var zero T
	if l == nil {
		return zero, ErrNilList
	}
	if l.n == 0 {
		return zero, ErrEmpty
	}
	nd := l.head
	if l.n == 1 {
		l.head, l.tail = nil, nil
	} else {
		l.head = nd.next
		l.head.prev = nil
	}
	nd.next = nil
	l.n--
	return nd.payload, nil
}

// PopTail removes the tail of the list and returns its payload. The list is
// left untouched when an error is returned.
func (l *List[T]) PopTail() (T, error) {
	var zero T
	if l == nil {
		return zero, ErrNilList
	}
	if l.n == 0 {
		return zero, ErrEmpty
	}
	nd := l.tail
	if l.n == 1 {
		l.head, l.tail = nil, nil
	} else {
		l.tail = nd.prev
		l.tail.next = nil
	}
	nd.prev = nil
	l.n--
	return nd.payload, nil
}

// Front returns the payload at the head without removing it.
func (l *List[T]) Front() (T, bool) {
	if l == nil || l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.payload, true
}

// Back returns the payload at the tail without removing it.
func (l *List[T]) Back() (T, bool) {
	if l == nil || l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.payload, true
}
