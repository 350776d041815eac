/*
Package chaintable provides a chained hash table keyed by byte strings.

A Table routes each key to one of a fixed number of buckets by a 64-bit hash
and keeps the entries of a bucket in a doubly linked list (see package list).
Collisions are resolved by comparing the stored hash first and the full key
bytes on a match, so two keys sharing a hash are still kept apart.

Basic usage:

	import "github.com/theflywheel/chaintable"

	t := chaintable.New[string]()
	defer t.Free(nil)

	// Insert data
	if _, _, err := t.Insert([]byte("one"), "un"); err != nil {
		log.Fatal(err)
	}

	// Overwrite returns the previous value; disposing of it is up to the caller
	old, replaced, _ := t.Insert([]byte("one"), "uno")
	fmt.Println(old, replaced) // un true

	// Retrieve data
	if v, ok := t.Find([]byte("one")); ok {
		fmt.Println("Value:", *v)
	}

	// Walk and empty the table
	for c := t.Cursor(); c.Valid(); {
		k, v, _ := c.Remove()
		fmt.Printf("%s => %s\n", k, v)
	}

Features:

  - Keys are copied on insert; values are never disposed of by the table
    except by Free, and only when a destructor is passed to it
  - Fixed bucket count (8 unless WithBuckets says otherwise); no rehashing
  - Unseeded FNV-1a routing by default, xxHash via WithHashFunc(XXHash)
  - Cursors that can remove the current entry and keep going
  - *CString variants that treat the key as zero-terminated

Implementation Details:

Entries are prepended to their bucket, so a bucket lists its keys most recent
first. Insert of an existing key detaches the old entry and prepends a new one.
A Cursor walks buckets in index order and skips empty ones; its Remove first
advances and then deletes the previous entry by key.

None of the types are safe for concurrent use. A cursor must not be used
after the table or list it walks has been changed by anything other than that
cursor's Remove.
*/
package chaintable
