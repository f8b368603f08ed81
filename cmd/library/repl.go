package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"library/domain/library"
	"library/service"
)

const helpText = `commands:
  add <text>     add an entry
  show <id>      show an entry
  remove <id>    remove an entry
  all            list entries
  quit           exit`

type repl struct {
	svc    *service.LibraryService[string]
	logger *zap.Logger
	out    io.Writer
	prompt string
}

func newREPL(logger *zap.Logger, out io.Writer, prompt string) *repl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &repl{
		svc:    service.NewLibraryService(library.New[string](), logger),
		logger: logger,
		out:    out,
		prompt: prompt,
	}
}

// run processes lines from in until EOF, quit, or ctx is done.
// Lines are read on a separate goroutine so cancellation does not wait
// for the next line. That goroutine exits once in returns from Read.
func (r *repl) run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- sc.Err()
	}()

	for {
		if ctx.Err() != nil {
			return nil
		}
		if r.prompt != "" {
			fmt.Fprint(r.out, r.prompt)
		}
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return r.finish(readErr)
			}
			if !r.exec(line) {
				return nil
			}
		}
	}
}

// finish reports the scanner error, if the reader stopped on one.
func (r *repl) finish(readErr <-chan error) error {
	select {
	case err := <-readErr:
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
	default:
	}
	return nil
}

// exec runs one command line. It returns false when the session should end.
func (r *repl) exec(line string) bool {
	cmd, rest := splitCommand(line)
	ref := strings.TrimPrefix(rest, "#")

	switch strings.ToLower(cmd) {
	case "":
	case "add":
		rec, n := r.svc.Add(rest)
		fmt.Fprintf(r.out, "added #%d (len=%d)\n", rec.ID, n)
	case "show":
		id, ok := parseID(ref)
		if !ok {
			fmt.Fprintf(r.out, "#%s not found\n", ref)
			return true
		}
		rec, found := r.svc.Show(id)
		if !found {
			fmt.Fprintf(r.out, "#%s not found\n", ref)
			return true
		}
		fmt.Fprintf(r.out, "#%d %s\n", rec.ID, rec.Value)
	case "remove", "rm":
		id, ok := parseID(ref)
		if !ok {
			fmt.Fprintf(r.out, "#%s not found\n", ref)
			return true
		}
		rec, found := r.svc.Remove(id)
		if !found {
			fmt.Fprintf(r.out, "#%s not found\n", ref)
			return true
		}
		fmt.Fprintf(r.out, "removed #%d %s\n", rec.ID, rec.Value)
	case "all", "list", "ls":
		r.list()
	case "help", "?":
		fmt.Fprintln(r.out, helpText)
	case "quit", "exit":
		return false
	default:
		r.logger.Debug("unknown command", zap.String("cmd", cmd))
		fmt.Fprintf(r.out, "unknown command %q\n", cmd)
	}
	return true
}

func (r *repl) list() {
	all := r.svc.All()
	if len(all) == 0 {
		fmt.Fprintln(r.out, "(empty)")
		return
	}
	for _, rec := range all {
		fmt.Fprintf(r.out, "#%d %s\n", rec.ID, rec.Value)
	}
}

// splitCommand separates the verb from its argument on the first run of
// whitespace. The argument keeps its inner spacing.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

// parseID accepts a decimal id. Anything else never matches a record.
func parseID(s string) (library.ID, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return library.ID(n), true
}
