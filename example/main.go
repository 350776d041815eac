package main

import (
	"fmt"
	"log"

	"github.com/theflywheel/chaintable"
)

func main() {
	// Create a table; the bucket count is fixed from here on
	t := chaintable.New[string](chaintable.WithBuckets(16))
	defer t.Free(func(v string) { fmt.Printf("Freeing %q\n", v) })

	fmt.Println("Table created successfully")

	// Insert some data
	words := [][2]string{{"one", "un"}, {"two", "deux"}, {"three", "trois"}}
	for _, w := range words {
		if _, _, err := t.Insert([]byte(w[0]), w[1]); err != nil {
			log.Fatalf("Failed to insert %q: %v", w[0], err)
		}
	}
	fmt.Printf("Inserted %d entries\n", t.Len())

	// Retrieve and display some values
	for _, k := range []string{"one", "four"} {
		if v, found := t.Find([]byte(k)); found {
			fmt.Printf("%s => %s\n", k, *v)
		} else {
			fmt.Printf("%s not found\n", k)
		}
	}

	// Update a value; the old one comes back to us
	old, replaced, err := t.Insert([]byte("two"), "zwei")
	if err != nil {
		log.Fatalf("Failed to update: %v", err)
	}
	fmt.Printf("Updated two (replaced=%v, old=%s)\n", replaced, old)

	// Zero-terminated keys stop at the terminator
	if v, found := t.FindCString([]byte("three\x00ignored")); found {
		fmt.Printf("three => %s\n", *v)
	}

	// Remove a value
	if v, removed, err := t.Remove([]byte("one")); err == nil && removed {
		fmt.Printf("Removed one (was %s)\n", v)
	}

	// Iterate over what is left
	for c := t.Cursor(); c.Valid(); c.Next() {
		k, v, _ := c.Get()
		fmt.Printf("  %s = %s\n", k, v)
	}
}
