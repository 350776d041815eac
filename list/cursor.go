package list

// Cursor is a position in a List.
type Cursor[T any] struct {
	list *List[T]
	cur  *node[T]
}

// Cursor returns a cursor at the head of the list. The cursor is invalid
// when the list is empty. A nil list has no cursor.
func (l *List[T]) Cursor() *Cursor[T] {
	if l == nil {
		return nil
	}
	return &Cursor[T]{list: l, cur: l.head}
}

// Valid reports whether the cursor points at an element.
func (c *Cursor[T]) Valid() bool {
	return c != nil && c.cur != nil
}

// Get returns a pointer to the payload under the cursor, or nil if the
// cursor is invalid. The pointer stays usable until the element is removed.
func (c *Cursor[T]) Get() *T {
	if !c.Valid() {
		return nil
	}
	return &c.cur.payload
}

// Remove unlinks the element under the cursor and returns its payload.
//
// Afterwards the cursor points at the element that followed the removed one.
// When the removed element was the tail it points at the new tail instead,
// and when it was the only element the cursor becomes invalid.
func (c *Cursor[T]) Remove() (T, error) {
	if !c.Valid() {
		var zero T
		return zero, ErrInvalidCursor
	}
	l := c.list
	switch c.cur {
	case l.head:
		v, err := l.PopHead()
		c.cur = l.head
		return v, err
	case l.tail:
		v, err := l.PopTail()
		c.cur = l.tail
		return v, err
	}

	nd := c.cur
	nd.prev.next = nd.next
	nd.next.prev = nd.prev
	l.n--

	c.cur = nd.next
	nd.prev, nd.next = nil, nil
	return nd.payload, nil
}

// Next moves the cursor one element towards the tail and reports whether it
// is still valid. Stepping past the tail invalidates the cursor.
func (c *Cursor[T]) Next() bool {
	if !c.Valid() {
		return false
	}
	c.cur = c.cur.next
	return c.cur != nil
}

// Prev moves the cursor one element towards the head and reports whether it
// is still valid.
func (c *Cursor[T]) Prev() bool {
	if !c.Valid() {
		return false
	}
	c.cur = c.cur.prev
	return c.cur != nil
}

// Rewind moves the cursor to the head. It fails on an empty list.
func (c *Cursor[T]) Rewind() bool {
	if c == nil || c.list.n == 0 {
		return false
	}
	c.cur = c.list.head
	return true
}

// FastForward moves the cursor to the tail. It fails on an empty list.
func (c *Cursor[T]) FastForward() bool {
	if c == nil || c.list.n == 0 {
		return false
	}
	c.cur = c.list.tail
	return true
}
