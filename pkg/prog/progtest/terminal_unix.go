//go:build unix

package progtest

import (
	"io"
	"os"

	"github.com/creack/pty"
	"src.sll.sh/pkg/must"
	"src.sll.sh/pkg/prog"
)

// RunInTerminal runs a Program with its stdout connected to a pseudo-terminal
// of the given width. It returns the exit code and what the program wrote to
// the terminal. Stdin is empty and stderr is discarded.
//
// It returns an error only when the pseudo-terminal cannot be set up.
func RunInTerminal(p prog.Program, cols int, args ...string) (int, string, error) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return 0, "", err
	}
	defer ptmx.Close()
	err = pty.Setsize(ptmx, &pty.Winsize{Rows: 24, Cols: uint16(cols)})
	if err != nil {
		tty.Close()
		return 0, "", err
	}
	devNull := must.OK1(os.Open(os.DevNull))
	defer devNull.Close()
	r2, w2 := must.Pipe()
	defer r2.Close()
	go io.Copy(io.Discard, r2)

	outCh := make(chan string, 1)
	go func() {
		// Reading from the master side fails with EIO once the slave side is
		// closed; everything written before that has been read by then.
		b, _ := io.ReadAll(ptmx)
		outCh <- string(b)
	}()

	exit := prog.Run([3]*os.File{devNull, tty, w2}, append([]string{"sll"}, args...), p)
	tty.Close()
	w2.Close()
	return exit, <-outCh, nil
}
