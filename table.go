package chaintable

import (
	"bytes"
	"fmt"

	"github.com/theflywheel/chaintable/list"
)

type entry[V any] struct {
	hash  uint64
	key   []byte
	value V
}

// Table is a chained hash table from byte-string keys to values of type V.
// Each bucket is a list of entries; the number of buckets is fixed when the
// table is created.
//
// A Table is not safe for concurrent use.
type Table[V any] struct {
	buckets []*list.List[*entry[V]]
	n       int
	hash    HashFunc
}

// New creates an empty table with DefaultBuckets buckets routed by FNV1a,
// unless overridden by opts.
func New[V any](opts ...Option) *Table[V] {
	o := options{buckets: DefaultBuckets, hash: FNV1a}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Table[V]{
		buckets: make([]*list.List[*entry[V]], o.buckets),
		hash:    o.hash,
	}
	for i := range t.buckets {
		t.buckets[i] = list.New[*entry[V]]()
	}
	return t
}

// usable reports whether t can be operated on. A freed table behaves like a
// nil one.
func (t *Table[V]) usable() bool {
	return t != nil && t.buckets != nil
}

// Free drops every entry and the buckets. If destroy is not nil it is called
// exactly once for each value still in the table. Values previously returned
// by Insert or Remove are not seen by destroy.
func (t *Table[V]) Free(destroy func(V)) {
	if !t.usable() {
		return
	}
	for _, b := range t.buckets {
		b.Free(func(e *entry[V]) {
			if destroy != nil {
				destroy(e.value)
			}
			e.key = nil
		})
	}
	t.buckets = nil
	t.n = 0
}

// Len returns the number of entries, or -1 for a nil or freed table.
func (t *Table[V]) Len() int {
	if !t.usable() {
		return -1
	}
	return t.n
}

// BucketCount returns the fixed number of buckets.
func (t *Table[V]) BucketCount() int {
	if !t.usable() {
		return 0
	}
	return len(t.buckets)
}

// BucketLens returns the chain length of every bucket, in bucket order.
func (t *Table[V]) BucketLens() []int {
	if !t.usable() {
		return nil
	}
	lens := make([]int, len(t.buckets))
	for i, b := range t.buckets {
		lens[i] = b.Len()
	}
	return lens
}

func (t *Table[V]) bucket(hash uint64) *list.List[*entry[V]] {
	return t.buckets[hash%uint64(len(t.buckets))]
}

// seek advances c until it rests on the entry for (hash, key). The hash is
// compared first; the key bytes only on a hash match.
func seek[V any](c *list.Cursor[*entry[V]], hash uint64, key []byte) bool {
	for ; c.Valid(); c.Next() {
		e := *c.Get()
		if e.hash == hash && bytes.Equal(e.key, key) {
			return true
		}
	}
	return false
}

// lookup returns the bucket for key and a cursor over it, positioned on the
// key's entry when found is true.
func (t *Table[V]) lookup(key []byte) (hash uint64, b *list.List[*entry[V]], c *list.Cursor[*entry[V]], found bool) {
	hash = t.hash(key)
	b = t.bucket(hash)
	c = b.Cursor()
	return hash, b, c, seek(c, hash, key)
}

// Insert stores v under a copy of key. If the key was already present the
// previous value is returned with replaced set; the table does not dispose of
// it. The new entry always goes to the head of its bucket.
func (t *Table[V]) Insert(key []byte, v V) (old V, replaced bool, err error) {
	if !t.usable() {
		return old, false, ErrNilTable
	}
	if key == nil {
		return old, false, ErrNilKey
	}

	hash, b, c, found := t.lookup(key)
	if found {
		prev, err := c.Remove()
		if err != nil {
			return old, false, fmt.Errorf("detach previous entry: %w", err)
		}
		old, replaced = prev.value, true
		prev.key = nil
	}

	e := &entry[V]{hash: hash, key: bytes.Clone(key), value: v}
	if err := b.Prepend(e); err != nil {
		return old, replaced, fmt.Errorf("insert into bucket: %w", err)
	}
	if !replaced {
		t.n++
	}
	return old, replaced, nil
}

// Find returns a pointer to the value stored under key. The pointer is valid
// until the entry is replaced or removed. Find reports false for a missing
// key as well as for a nil table or key.
func (t *Table[V]) Find(key []byte) (*V, bool) {
	if !t.usable() || key == nil {
		return nil, false
	}
	_, _, c, found := t.lookup(key)
	if !found {
		return nil, false
	}
	return &(*c.Get()).value, true
}

// Remove deletes the entry for key and returns its value. A missing key is
// not an error: Remove returns false and leaves the table unchanged.
func (t *Table[V]) Remove(key []byte) (V, bool, error) {
	var zero V
	if !t.usable() {
		return zero, false, ErrNilTable
	}
	if key == nil {
		return zero, false, ErrNilKey
	}

	_, _, c, found := t.lookup(key)
	if !found {
		return zero, false, nil
	}
	e, err := c.Remove()
	if err != nil {
		return zero, false, fmt.Errorf("detach entry: %w", err)
	}
	e.key = nil
	t.n--
	return e.value, true, nil
}

// InsertCString is Insert for a zero-terminated key. The terminator and
// anything after it are not part of the key.
func (t *Table[V]) InsertCString(key []byte, v V) (V, bool, error) {
	return t.Insert(key[:CStringLen(key)], v)
}

// FindCString is Find for a zero-terminated key.
func (t *Table[V]) FindCString(key []byte) (*V, bool) {
	return t.Find(key[:CStringLen(key)])
}

// RemoveCString is Remove for a zero-terminated key.
func (t *Table[V]) RemoveCString(key []byte) (V, bool, error) {
	return t.Remove(key[:CStringLen(key)])
}
