package textio

import (
	"bufio"
	"io"

	"crossengine/internal/engine"
)

// Run reads one action per line from r, dispatches each to e, and writes
// one result line per output record to w. It never aborts on malformed
// input: a parse failure yields a single error record and processing
// continues with the next line. Run returns only when r is exhausted or
// a write to w fails.
func Run(e *engine.Engine, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)
	defer bw.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}

		var results []engine.Result
		action, parseErr := ParseLine(line)
		if parseErr != nil {
			results = []engine.Result{{Kind: engine.ResultError, Err: parseErr}}
		} else {
			results = e.Dispatch(action)
		}

		for _, res := range results {
			if _, err := bw.WriteString(FormatResult(res) + "\n"); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
