package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/theflywheel/chaintable/internal/logger"
	"github.com/theflywheel/chaintable/internal/settings"
)

const sessionHelp = `commands:
  get KEY          print the value of KEY
  set KEY VALUE    define KEY
  del KEY          remove KEY
  list             print every setting sorted by key
  count            print the number of settings
  stats            print bucket statistics
  clear            remove every setting
  help             show this text
  quit             leave the session
`

// session is an interactive, line-oriented view of a settings table.
type session struct {
	tbl *settings.Table
	in  *bufio.Scanner
	out io.Writer
}

func newSession(tbl *settings.Table, in io.Reader, out io.Writer) *session {
	return &session{tbl: tbl, in: bufio.NewScanner(in), out: out}
}

func (s *session) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}

// run reads commands until quit or end of input.
func (s *session) run() error {
	lineNo := 0
	for {
		s.printf("> ")
		if !s.in.Scan() {
			s.printf("\n")
			return s.in.Err()
		}
		lineNo++

		cmd, rest, _ := strings.Cut(strings.TrimSpace(s.in.Text()), " ")
		rest = strings.TrimSpace(rest)
		switch cmd {
		case "":
		case "quit", "exit":
			return nil
		case "help":
			s.printf("%s", sessionHelp)
		case "get":
			s.get(rest)
		case "set":
			s.set(rest, lineNo)
		case "del":
			s.del(rest)
		case "list":
			if err := settings.Dump(s.out, s.tbl); err != nil {
				return err
			}
		case "count":
			s.printf("%d\n", s.tbl.Len())
		case "stats":
			if err := printStats(s.out, s.tbl); err != nil {
				return err
			}
		case "clear":
			s.clear()
		default:
			s.printf("unknown command %q (try help)\n", cmd)
		}
	}
}

func (s *session) get(key string) {
	if key == "" {
		s.printf("usage: get KEY\n")
		return
	}
	v, ok := s.tbl.Find([]byte(key))
	if !ok {
		s.printf("%s: not set\n", key)
		return
	}
	s.printf("%s\n", (*v).Value)
}

func (s *session) set(args string, lineNo int) {
	key, value, _ := strings.Cut(args, " ")
	if key == "" {
		s.printf("usage: set KEY VALUE\n")
		return
	}
	setting := &settings.Setting{Value: strings.TrimSpace(value), Source: "<session>", Line: lineNo}
	old, replaced, err := s.tbl.Insert([]byte(key), setting)
	if err != nil {
		s.printf("error: %v\n", err)
		return
	}
	if replaced {
		logger.L.Debug("setting overridden", "key", key, "previous", old.Value)
		settings.Release(old)
	}
}

func (s *session) del(key string) {
	if key == "" {
		s.printf("usage: del KEY\n")
		return
	}
	old, ok, err := s.tbl.Remove([]byte(key))
	switch {
	case err != nil:
		s.printf("error: %v\n", err)
	case !ok:
		s.printf("%s: not set\n", key)
	default:
		settings.Release(old)
	}
}

// clear empties the table in place through a cursor, releasing each value.
func (s *session) clear() {
	removed := 0
	for c := s.tbl.Cursor(); c.Valid(); {
		_, v, err := c.Remove()
		if err != nil {
			s.printf("error: %v\n", err)
			return
		}
		settings.Release(v)
		removed++
	}
	s.printf("removed %d\n", removed)
}
