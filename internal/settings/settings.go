// Package settings loads "key = value" configuration sources into a
// chaintable.Table.
package settings

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/theflywheel/chaintable"
	"github.com/theflywheel/chaintable/internal/logger"
)

// Setting is a value together with where it was defined.
type Setting struct {
	Value  string
	Source string
	Line   int
}

// Table is the table settings are loaded into.
type Table = chaintable.Table[*Setting]

// ParseError reports a malformed line.
type ParseError struct {
	Source string
	Line   int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
}

// Load reads r line by line and stores every definition in t, returning how
// many definitions were read. Blank lines and lines starting with '#' or ';'
// are skipped. A later definition of a key replaces an earlier one, and the
// earlier Setting is released.
func Load(t *Table, source string, r io.Reader) (int, error) {
	sc := bufio.NewScanner(r)
	n, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return n, &ParseError{Source: source, Line: lineNo, Msg: "expected key = value"}
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return n, &ParseError{Source: source, Line: lineNo, Msg: "empty key"}
		}

		s := &Setting{Value: strings.TrimSpace(value), Source: source, Line: lineNo}
		old, replaced, err := t.Insert([]byte(key), s)
		if err != nil {
			return n, fmt.Errorf("%s:%d: store %q: %w", source, lineNo, key, err)
		}
		if replaced {
			logger.L.Debug("setting overridden", "key", key,
				"previous", fmt.Sprintf("%s:%d", old.Source, old.Line),
				"source", source, "line", lineNo)
			Release(old)
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, fmt.Errorf("read %s: %w", source, err)
	}
	return n, nil
}

// Sorted returns the keys of t in byte order.
func Sorted(t *Table) []string {
	keys := make([]string, 0, max(t.Len(), 0))
	for c := t.Cursor(); c.Valid(); c.Next() {
		k, _, _ := c.Get()
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	return keys
}

// Dump writes every setting as "key = value", sorted by key.
func Dump(w io.Writer, t *Table) error {
	for _, k := range Sorted(t) {
		s, ok := t.Find([]byte(k))
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s = %s\n", k, (*s).Value); err != nil {
			return err
		}
	}
	return nil
}

// Release is the value destructor passed to Table.Free. Settings own no
// resources, so it only clears the record.
func Release(s *Setting) {
	*s = Setting{}
}
