package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"multi-address/address"
	"multi-address/misc"
)

type Form string

const (
	Evm Form = "evm"
	Xko Form = "xko"
)

func ParseForm(s string) (Form, error) {
	switch f := Form(strings.ToLower(strings.TrimSpace(s))); f {
	case Evm, Xko:
		return f, nil
	default:
		return "", fmt.Errorf("batch: unknown form %q", s)
	}
}

// Convert returns the conversion function for the form.
func (f Form) Convert() func(string) (string, error) {
	if f == Xko {
		return address.FromEvmAddress
	}
	return address.ToEvmAddress
}

type Options struct {
	Workers         int
	ContinueOnError bool
}

type Result struct {
	Line   int
	Input  string
	Output string
	Err    error
}

type entry struct {
	line  int
	input string
}

// Convert converts every non-blank line of r that is not a # comment. Results
// keep input order. Without ContinueOnError the first failing line (by line
// number) is returned as the error.
func Convert(ctx context.Context, r io.Reader, form Form, opts Options) ([]Result, error) {
	entries, err := readEntries(r)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	convert := form.Convert()
	results := make([]Result, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, e := range entries {
		i, e := i, e
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := convert(e.input)
			results[i] = Result{Line: e.line, Input: e.input, Output: out, Err: err}
			if err != nil {
				misc.Debug("Batch convert", misc.Fields("line", e.line, "kind", address.KindOf(err), "reason", err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !opts.ContinueOnError {
		for _, res := range results {
			if res.Err != nil {
				return results, fmt.Errorf("line %d: %w", res.Line, res.Err)
			}
		}
	}
	return results, nil
}

func readEntries(r io.Reader) ([]entry, error) {
	var entries []entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, entry{line: lineNo, input: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("batch: read input: %w", err)
	}
	return entries, nil
}

// Failed counts results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, res := range results {
		if res.Err != nil {
			n++
		}
	}
	return n
}
