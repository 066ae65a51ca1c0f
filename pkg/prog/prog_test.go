package prog_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"src.sll.sh/pkg/logutil"
	. "src.sll.sh/pkg/prog"
	"src.sll.sh/pkg/prog/progtest"
)

var (
	Test    = progtest.Test
	ThatSll = progtest.ThatSll
)

func TestCommonFlagHandling(t *testing.T) {
	Test(t, testProgram{},
		ThatSll("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatSll("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatSll("-help").
			WritesStdoutContaining("Usage: sll [flags] [op ...]"),
	)
}

func TestLogFlag(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "log")
	Test(t, testProgram{},
		ThatSll("-log", logFile).DoesNothing(),
		ThatSll("-log", filepath.Join(t.TempDir(), "no", "such", "dir")).
			WritesStderrContaining("no such file or directory"),
	)
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestLogFlag_OutputResetAfterRun(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "log")
	Test(t, testProgram{logMsg: "during run"},
		ThatSll("-log", logFile).DoesNothing(),
	)
	logutil.GetLogger("[test] ").Println("after run")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "during run") {
		t.Errorf("log file %q doesn't contain message logged during run", data)
	}
	if strings.Contains(string(data), "after run") {
		t.Errorf("log file %q contains message logged after run", data)
	}
}

func TestFlagsPassedToProgram(t *testing.T) {
	Test(t, testProgram{echoFlags: true},
		ThatSll("-in", "a.yaml", "append", "1").
			WritesStdout("in=a.yaml args=[append 1]\n"),
	)
}

func TestErrorHandling(t *testing.T) {
	Test(t, testProgram{err: BadUsage("bad usage")},
		ThatSll().ExitsWith(2).WritesStderrContaining("bad usage\nUsage: sll"),
	)
	Test(t, testProgram{err: fmt.Errorf("wrapped: %w", BadUsage("inner"))},
		ThatSll().ExitsWith(2).WritesStderrContaining("wrapped: inner\nUsage: sll"),
	)
	Test(t, testProgram{err: Exit(3)},
		ThatSll().ExitsWith(3),
	)
	Test(t, testProgram{err: errors.New("plain error")},
		ThatSll().ExitsWith(2).WritesStderr("plain error\n"),
	)
}

func TestExit0(t *testing.T) {
	if Exit(0) != nil {
		t.Errorf("Exit(0) != nil")
	}
}

type testProgram struct {
	echoFlags bool
	logMsg    string
	err       error
}

func (p testProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	if p.logMsg != "" {
		logutil.GetLogger("[test] ").Println(p.logMsg)
	}
	if p.echoFlags {
		fmt.Fprintf(fds[1], "in=%s args=[%s]\n", f.In, strings.Join(args, " "))
	}
	return p.err
}
