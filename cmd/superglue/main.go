// Command superglue loads "key = value" configuration files into a chained
// hash table and either prints the merged result or opens an interactive
// session over it.
package main

func main() {
	execute()
}
