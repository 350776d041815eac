package chaintable_test

import (
	"hash/fnv"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/chaintable"
)

func TestFNV1a(t *testing.T) {
	vectors := []struct {
		in   string
		want uint64
	}{
		{"", 0xcbf29ce484222325},
		{"a", 0xaf63dc4c8601ec8c},
		{"foobar", 0x85944171f73967e8},
	}
	for _, v := range vectors {
		assert.Equal(t, v.want, chaintable.FNV1a([]byte(v.in)), "FNV1a(%q)", v.in)
	}

	// agree with the standard library over arbitrary bytes
	for _, in := range []string{"one", "two", "three", "\x00\xff\x10", "a longer key with spaces"} {
		h := fnv.New64a()
		h.Write([]byte(in))
		assert.Equal(t, h.Sum64(), chaintable.FNV1a([]byte(in)), "FNV1a(%q)", in)
	}
}

func TestXXHash(t *testing.T) {
	for _, in := range []string{"", "one", "two"} {
		assert.Equal(t, xxhash.Sum64String(in), chaintable.XXHash([]byte(in)))
	}
}

func TestHashFuncByName(t *testing.T) {
	key := []byte("routing")
	for name, want := range map[string]chaintable.HashFunc{
		"fnv1a":  chaintable.FNV1a,
		"fnv":    chaintable.FNV1a,
		"xxhash": chaintable.XXHash,
		"xxh64":  chaintable.XXHash,
	} {
		f, ok := chaintable.HashFuncByName(name)
		require.True(t, ok, name)
		assert.Equal(t, want(key), f(key), name)
	}
	for _, name := range []string{"md5", "", "FNV1A"} {
		_, ok := chaintable.HashFuncByName(name)
		assert.False(t, ok, name)
	}
}

func TestCStringLen(t *testing.T) {
	assert.Equal(t, 0, chaintable.CStringLen(nil))
	assert.Equal(t, 0, chaintable.CStringLen([]byte{0, 'a'}))
	assert.Equal(t, 3, chaintable.CStringLen([]byte("one\x00two")))
	assert.Equal(t, 3, chaintable.CStringLen([]byte("one")))
}
