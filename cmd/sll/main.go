// Command sll runs an op script against a singly-linked list loaded from a
// YAML document.
package main

import (
	"os"

	"src.sll.sh/pkg/prog"
	"src.sll.sh/pkg/sllcli"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args, sllcli.Program{}))
}
