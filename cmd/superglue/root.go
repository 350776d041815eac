package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theflywheel/chaintable"
	"github.com/theflywheel/chaintable/internal/logger"
	"github.com/theflywheel/chaintable/internal/settings"
	"github.com/theflywheel/chaintable/internal/state"
)

type rootOptions struct {
	interactive bool
	version     bool
	port        int
	buckets     int
	hash        string
	logLevel    string
	logJSON     bool
	stats       bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "superglue [-i] [-p port_num] files ...",
		Short: "Load configuration files into a chained hash table",
		Long: `superglue reads one or more "key = value" configuration files, merges them
into a single table (later files win), and prints the result sorted by key.
With -i it opens an interactive session over the merged table instead.
Use "-" to read a file from standard input.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "Open an interactive session after loading")
	f.BoolVarP(&opts.version, "version", "v", false, "Print version information (no other options or files)")
	f.IntVarP(&opts.port, "port", "p", 0, "Port number to record for the session (0-65535)")
	f.IntVar(&opts.buckets, "buckets", chaintable.DefaultBuckets, "Fixed number of hash buckets")
	f.StringVar(&opts.hash, "hash", "fnv1a", "Bucket routing hash: fnv1a (alias fnv) or xxhash (alias xxh64)")
	f.StringVar(&opts.logLevel, "log-level", "warn", "Minimum log level (debug, info, warn, error)")
	f.BoolVar(&opts.logJSON, "log-json", false, "Log as JSON")
	f.BoolVar(&opts.stats, "stats", false, "Print bucket statistics after loading")
	applyOnce(f, "interactive", "version", "port")
	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions, args []string) error {
	level, ok := logger.ParseLevel(opts.logLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", opts.logLevel)
	}
	logger.Init(logger.Options{Enabled: true, Output: cmd.ErrOrStderr(), Level: level, JSON: opts.logJSON})

	var st state.State
	st.Interactive = opts.interactive
	st.VersionRequested = opts.version
	if st.VersionRequested {
		if len(otherChanged(cmd.Flags(), "version")) > 0 {
			return errors.New("--version cannot be combined with other options.")
		}
		if len(args) > 0 {
			return errors.New("--version cannot be combined with files.")
		}
		return printVersion(cmd.OutOrStdout())
	}

	if len(args) == 0 {
		_ = cmd.Usage()
		return errors.New("no files given")
	}
	if cmd.Flags().Changed("port") {
		if err := st.SetPort(opts.port); err != nil {
			return err
		}
	}

	hash, ok := chaintable.HashFuncByName(opts.hash)
	if !ok {
		return fmt.Errorf("unknown hash %q", opts.hash)
	}
	if opts.buckets < 1 {
		return fmt.Errorf("--buckets must be at least 1, got %d", opts.buckets)
	}
	if st.Interactive {
		for _, a := range args {
			if a == state.StdinName {
				return errors.New("cannot read a file from standard input in interactive mode")
			}
		}
	}

	files, err := state.OpenConfigFiles(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer func() {
		if err := files.Close(); err != nil {
			logger.L.Warn("closing config files", "error", err)
		}
	}()

	tbl := chaintable.New[*settings.Setting](
		chaintable.WithBuckets(opts.buckets),
		chaintable.WithHashFunc(hash),
	)
	defer tbl.Free(settings.Release)

	for _, f := range files.Files {
		n, err := settings.Load(tbl, f.Name, f)
		if err != nil {
			return err
		}
		logger.L.Info("loaded config file", "name", f.Name, "definitions", n)
	}
	logger.L.Debug("table ready", "entries", tbl.Len(), "buckets", tbl.BucketCount(),
		"hash", opts.hash, "port", st.Port)

	out := cmd.OutOrStdout()
	if opts.stats {
		if err := printStats(out, tbl); err != nil {
			return err
		}
	}
	if st.Interactive {
		return newSession(tbl, cmd.InOrStdin(), out).run()
	}
	return settings.Dump(out, tbl)
}

// printStats writes the entry count and the chain length of every bucket.
func printStats(w io.Writer, tbl *settings.Table) error {
	if _, err := fmt.Fprintf(w, "entries: %d\nbuckets: %d\n", tbl.Len(), tbl.BucketCount()); err != nil {
		return err
	}
	for i, n := range tbl.BucketLens() {
		if _, err := fmt.Fprintf(w, "  bucket %d: %d\n", i, n); err != nil {
			return err
		}
	}
	return nil
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
