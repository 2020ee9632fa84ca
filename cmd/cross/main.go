// Command cross is the primary textual driver: it reads actions.txt from
// the working directory if present, else stdin, and writes one result
// record per line to stdout, exiting 0 at EOF. No environment variables,
// no persisted state, grounded on original_source/simple_cross.cpp's
// main().
package main

import (
	"fmt"
	"os"

	"crossengine/internal/engine"
	"crossengine/internal/textio"
)

const actionsFile = "actions.txt"

func main() {
	in, err := openInput()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer in.Close()

	e := engine.New()
	if err := textio.Run(e, in, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openInput() (*os.File, error) {
	f, err := os.Open(actionsFile)
	if err == nil {
		return f, nil
	}
	if os.IsNotExist(err) {
		return os.Stdin, nil
	}
	return nil, err
}
