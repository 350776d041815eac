package main

import (
	"fmt"

	"github.com/spf13/pflag"
)

// onceValue rejects a second occurrence of a flag on the command line.
type onceValue struct {
	pflag.Value
	name string
	seen bool
}

func (o *onceValue) Set(s string) error {
	if o.seen {
		return fmt.Errorf("option --%s can only be applied once", o.name)
	}
	o.seen = true
	return o.Value.Set(s)
}

// IsBoolFlag keeps "-i" and "--version" usable without a value.
func (o *onceValue) IsBoolFlag() bool {
	b, ok := o.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// applyOnce makes each named flag accept a single occurrence.
func applyOnce(fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		fl := fs.Lookup(name)
		fl.Value = &onceValue{Value: fl.Value, name: name}
	}
}

// otherChanged returns the names of the flags set on the command line other
// than skip, in lexical order.
func otherChanged(fs *pflag.FlagSet, skip string) []string {
	var names []string
	fs.Visit(func(fl *pflag.Flag) {
		if fl.Name != skip {
			names = append(names, fl.Name)
		}
	})
	return names
}
