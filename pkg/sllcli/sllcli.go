// Package sllcli implements the sll program, which loads a sequence from a
// YAML document into a list, runs an op script against the list, and prints
// the result.
package sllcli

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
	"src.sll.sh/pkg/list"
	"src.sll.sh/pkg/logutil"
	"src.sll.sh/pkg/prog"
	"src.sll.sh/pkg/sys"
)

var logger = logutil.GetLogger("[sllcli] ")

// Program is the sll program.
type Program struct{}

// Run loads the initial list, applies the op script in args and writes the
// final list to fds[1].
func (Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	ops, err := parseOps(args)
	if err != nil {
		return prog.BadUsage(err.Error())
	}
	l, err := load(fds[0], f.In)
	if err != nil {
		return err
	}
	logger.Printf("loaded %d values from %q", l.Len(), f.In)
	for _, op := range ops {
		op.apply(l, fds[1])
		logger.Printf("%s -> %v", op.desc, l)
	}
	if sys.IsATTY(fds[1].Fd()) {
		_, cols := sys.WinSize(fds[1])
		return renderLine(fds[1], l, cols)
	}
	return renderYAML(fds[1], l)
}

// Loads the initial list. An empty name gives an empty list, and "-" reads
// from stdin. A document that decodes to null is an empty list.
func load(stdin io.Reader, name string) (*list.List[any], error) {
	if name == "" {
		return list.Empty[any](), nil
	}
	var data []byte
	var err error
	if name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, err
	}
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	// A blank, comment-only or null document holds no values.
	if doc == nil {
		return list.Empty[any](), nil
	}
	l, err := list.From[any](doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return l, nil
}

// Writes the list as a YAML block sequence.
func renderYAML(w io.Writer, l *list.List[any]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l.Slice()); err != nil {
		return err
	}
	return enc.Close()
}

// Writes the list as a single line, truncated to cols columns if cols is
// positive.
func renderLine(w io.Writer, l *list.List[any], cols int) error {
	line := fmt.Sprintf("%s (size %d)", flow(l.Slice()), l.Len())
	if cols > 0 && utf8.RuneCountInString(line) > cols {
		line = string([]rune(line)[:cols-1]) + "…"
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
