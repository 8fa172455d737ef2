// Command a7zip lists the contents of archives.
//
// Usage:
//
//	a7zip [flags] ARCHIVE [ARCHIVE...]
//
// The format of each archive is detected from its leading bytes unless
// --engine forces one. Multiple archives are inspected concurrently and
// printed in argument order.
package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/jyushion/a7zip"
	_ "github.com/jyushion/a7zip/engine/rar"
	_ "github.com/jyushion/a7zip/engine/sevenzip"
	_ "github.com/jyushion/a7zip/engine/tar"
	_ "github.com/jyushion/a7zip/engine/zip"
)

type config struct {
	engine   string
	password string
	charset  string
	long     bool
	verbose  bool
	jobs     int
}

func main() {
	var cfg config
	pflag.StringVar(&cfg.engine, "engine", "", "force a specific engine instead of sniffing (7z, zip, tar, rar)")
	pflag.StringVar(&cfg.password, "password", "", "archive password")
	pflag.StringVar(&cfg.charset, "charset", "", "IANA charset name for reinterpreting entry names (e.g. windows-1251)")
	pflag.BoolVarP(&cfg.long, "long", "l", false, "long listing: size, modification time, flags")
	pflag.BoolVarP(&cfg.verbose, "verbose", "v", false, "debug logging to stderr")
	pflag.IntVarP(&cfg.jobs, "jobs", "j", 4, "archives inspected concurrently")
	pflag.Parse()

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	paths := pflag.Args()
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: a7zip [flags] ARCHIVE [ARCHIVE...]")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(cfg, log, paths); err != nil {
		log.Error("listing failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config, log *slog.Logger, paths []string) error {
	var cs encoding.Encoding
	if cfg.charset != "" {
		var err error
		cs, err = ianaindex.IANA.Encoding(cfg.charset)
		if err != nil || cs == nil {
			return fmt.Errorf("unknown charset %q", cfg.charset)
		}
	}

	outputs := make([]bytes.Buffer, len(paths))
	var g errgroup.Group
	g.SetLimit(cfg.jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			log.Debug("opening archive", "path", path)
			return list(cfg, cs, path, &outputs[i])
		})
	}
	err := g.Wait()

	for i := range outputs {
		os.Stdout.Write(outputs[i].Bytes())
	}
	return err
}

func list(cfg config, cs encoding.Encoding, path string, out *bytes.Buffer) error {
	var opts []a7zip.OpenOption
	if cfg.engine != "" {
		opts = append(opts, a7zip.WithEngine(cfg.engine))
	}
	if cfg.password != "" {
		opts = append(opts, a7zip.WithPassword(cfg.password))
	}
	if cs != nil {
		opts = append(opts, a7zip.WithCharset(cs))
	}

	a, err := a7zip.OpenFile(path, opts...)
	if err != nil {
		return err
	}
	defer a.Close()

	format, err := a.FormatName()
	if err != nil {
		return err
	}
	count, err := a.EntryCount()
	if err != nil {
		return err
	}
	if count < 0 {
		fmt.Fprintf(out, "%s: %s, entry count unknown\n", path, format)
		return nil
	}
	fmt.Fprintf(out, "%s: %s, %d entries\n", path, format, count)

	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	for i := 0; i < count; i++ {
		e := a.Entry(i)
		if !cfg.long {
			fmt.Fprintf(w, "  %s\n", e.Path())
			continue
		}
		flags := ""
		if e.IsDir() {
			flags += "d"
		}
		if e.Encrypted() {
			flags += "*"
		}
		mtime := ""
		if t := e.ModTime(); !t.IsZero() {
			mtime = t.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", e.Size(), mtime, flags, e.Path())
	}
	return w.Flush()
}
