package main

import (
	"fmt"
	"os"

	"github.com/mccanne/charm"
)

func main() {
	DFGrep.Add(charm.Help)
	if _, err := DFGrep.ExecRoot(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
