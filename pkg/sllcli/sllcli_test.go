package sllcli_test

import (
	"path/filepath"
	"testing"

	"src.sll.sh/pkg/must"
	"src.sll.sh/pkg/prog/progtest"
	. "src.sll.sh/pkg/sllcli"
)

var (
	Test    = progtest.Test
	ThatSll = progtest.ThatSll
)

func TestProgram(t *testing.T) {
	dir := t.TempDir()
	seq := filepath.Join(dir, "seq.yaml")
	must.WriteFile(seq, "[1, 2, 3]\n")
	empty := filepath.Join(dir, "empty.yaml")
	must.WriteFile(empty, "\n")

	Test(t, Program{},
		// Scenario: empty list
		ThatSll("size", "first", "last").
			WritesStdout("size: 0\nfirst: <none>\nlast: <none>\n[]\n"),
		// Scenario: from a sequence
		ThatSll("-in", seq, "size").
			WritesStdout("size: 3\n- 1\n- 2\n- 3\n"),
		// Scenario: appends
		ThatSll("append", "1", "append", "2", "append", "3").
			WritesStdout("- 1\n- 2\n- 3\n"),
		// Scenario: prepends
		ThatSll("prepend", "1", "prepend", "2", "prepend", "3").
			WritesStdout("- 3\n- 2\n- 1\n"),
		// Scenario: removal in range
		ThatSll("-in", seq, "remove-at", "1", "size").
			WritesStdout("size: 2\n- 1\n- 3\n"),
		// Scenario: removal out of range
		ThatSll("-in", seq, "remove-at", "3", "remove-at", "-1", "size").
			WritesStdout("size: 3\n- 1\n- 2\n- 3\n"),

		ThatSll("-in", seq, "first", "last").
			WritesStdout("first: 1\nlast: 3\n- 1\n- 2\n- 3\n"),
		ThatSll("-in", empty, "append", "x").
			WritesStdout("- x\n"),
		ThatSll("-in", "-", "append", "[4, 5]", "last").
			WithStdin("- a\n- b\n").
			WritesStdoutContaining("last: [4, 5]\n- a\n- b\n- - 4\n"),
	)
}

func TestProgram_Errors(t *testing.T) {
	dir := t.TempDir()
	mapping := filepath.Join(dir, "map.yaml")
	must.WriteFile(mapping, "a: 1\n")
	broken := filepath.Join(dir, "broken.yaml")
	must.WriteFile(broken, "[1, 2\n")

	Test(t, Program{},
		ThatSll("pop").
			ExitsWith(2).
			WritesStderrContaining("unknown op \"pop\"\nUsage: sll"),
		ThatSll("append").
			ExitsWith(2).
			WritesStderrContaining("append: missing argument"),
		ThatSll("remove-at", "x", "frob").
			ExitsWith(2).
			WritesStderrContaining(
				"multiple errors: remove-at: bad index \"x\"; unknown op \"frob\""),
		ThatSll("append", "{").
			ExitsWith(2).
			WritesStderrContaining("append: bad value \"{\""),

		ThatSll("-in", mapping).
			ExitsWith(2).
			WritesStderrContaining("invalid source: map[string]interface {} is not a sequence"),
		ThatSll("-in", broken).
			ExitsWith(2).
			WritesStderrContaining(broken+": yaml:"),
		ThatSll("-in", filepath.Join(dir, "missing.yaml")).
			ExitsWith(2).
			WritesStderrContaining("missing.yaml"),
	)
}
