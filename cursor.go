package chaintable

import "github.com/theflywheel/chaintable/list"

// Cursor visits every entry of a Table exactly once, bucket by bucket in
// index order. Within a bucket entries come most recently inserted first.
//
// Modifying the table other than through the cursor's own Remove leaves the
// cursor in an undefined state.
type Cursor[V any] struct {
	table  *Table[V]
	bucket int
	inner  *list.Cursor[*entry[V]]
}

// Cursor returns a cursor on the first entry of the lowest non-empty bucket.
// For an empty table the cursor is invalid from the start. A nil or freed
// table has no cursor.
func (t *Table[V]) Cursor() *Cursor[V] {
	if !t.usable() {
		return nil
	}
	c := &Cursor[V]{table: t, bucket: -1}
	if t.n == 0 {
		return c
	}
	c.nextBucket()
	return c
}

// nextBucket binds the cursor to the first non-empty bucket after the
// current one. The bucket index never moves backwards.
func (c *Cursor[V]) nextBucket() bool {
	for c.bucket+1 < len(c.table.buckets) {
		c.bucket++
		inner := c.table.buckets[c.bucket].Cursor()
		if inner.Valid() {
			c.inner = inner
			return true
		}
	}
	c.inner = nil
	return false
}

// Valid reports whether the cursor is on an entry.
func (c *Cursor[V]) Valid() bool {
	if c == nil || !c.table.usable() || c.table.n == 0 {
		return false
	}
	return c.inner.Valid()
}

// Next moves to the following entry and reports whether there was one.
func (c *Cursor[V]) Next() bool {
	if !c.Valid() {
		return false
	}
	if c.inner.Next() {
		return true
	}
	return c.nextBucket()
}

// Get returns the key and value under the cursor. The key is the table's
// own copy and must not be modified.
func (c *Cursor[V]) Get() (key []byte, value V, ok bool) {
	if !c.Valid() {
		return nil, value, false
	}
	e := *c.inner.Get()
	return e.key, e.value, true
}

// Remove deletes the entry under the cursor and returns its key and value.
// The cursor is moved to the following entry first, so it may be invalid
// afterwards if the removed entry was the last one.
func (c *Cursor[V]) Remove() (key []byte, value V, err error) {
	key, _, ok := c.Get()
	if !ok {
		return nil, value, ErrInvalidCursor
	}
	c.Next()
	value, _, err = c.table.Remove(key)
	return key, value, err
}
