// Command lvstats summarizes numbers read from a file or stdin.
//
// Usage:
//
//	lvstats [-freq] [-type int|float] [-format text|json|msgpack] [file]
//
// Plain mode reads whitespace-separated values. With -freq the input is a
// frequency table of alternating "value count" tokens. The summary holds
// count, sum, mean, variance, std-dev, min, max and range.
//
// Exit codes: 0 success, 1 usage or input error, 2 the input cannot be
// aggregated (e.g. it is empty, or a count does not fit the element type).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hyp3rd/ewrap"

	"github.com/katalvlaran/lvstats/freq"
	"github.com/katalvlaran/lvstats/stats"
	"github.com/katalvlaran/lvstats/statserr"
	"github.com/katalvlaran/lvstats/types"
)

const (
	exitOK        = 0
	exitInput     = 1
	exitAggregate = 2
)

// ErrUnknownType is returned for an unsupported -type value.
var ErrUnknownType = ewrap.New("unknown element type")

// report is what every encoder writes.
type report[E types.Number] struct {
	Mode    string           `json:"mode" msgpack:"mode"`
	Buckets types.Count      `json:"buckets" msgpack:"buckets"`
	Summary stats.Summary[E] `json:"summary" msgpack:"summary"`
}

func (r report[E]) String() string {
	if r.Mode == modeFreq {
		return fmt.Sprintf("buckets=%d %s", r.Buckets, r.Summary)
	}

	return r.Summary.String()
}

const (
	modeValues = "values"
	modeFreq   = "freq"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without the process globals.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lvstats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	weighted := fs.Bool("freq", false, "read alternating `value count` tokens")
	kind := fs.String("type", "float", "element type: int or float")
	format := fs.String("format", "text", "output format: text, json or msgpack")
	if err := fs.Parse(args); err != nil {
		return exitInput
	}

	enc, err := NewEncoderRegistry().New(*format)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return exitInput
	}

	in := stdin
	if path := fs.Arg(0); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(stderr, ewrap.Wrap(err, "failed to open input"))

			return exitInput
		}
		defer f.Close()
		in = f
	}

	switch *kind {
	case "int":
		err = summarize[int64](in, *weighted, parseInt, enc, stdout)
	case "float":
		err = summarize[float64](in, *weighted, parseFloat, enc, stdout)
	default:
		err = ewrap.Wrap(ErrUnknownType, *kind)
	}

	return exitCode(err, stderr)
}

// summarize reads r, aggregates it and encodes the report to w.
// StatsError values come back unchanged so exitCode can classify them.
func summarize[E types.Number](r io.Reader, weighted bool, parse parseFunc[E], enc Encoder, w io.Writer) error {
	var (
		rep report[E]
		err error
	)

	if weighted {
		var t freq.Table[E]
		if t, err = readTable(r, parse); err != nil {
			return err
		}
		f := freq.New[E](t)
		rep.Mode, rep.Buckets = modeFreq, f.Count()
		rep.Summary, err = f.Summarize()
	} else {
		var xs []E
		if xs, err = readValues(r, parse); err != nil {
			return err
		}
		rep.Mode = modeValues
		rep.Summary, err = stats.FromSlice(xs).Summarize()
	}
	if err != nil {
		return err
	}

	return enc.Encode(w, rep)
}

func exitCode(err error, stderr io.Writer) int {
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(stderr, err)
	if _, ok := statserr.As(err); ok {
		return exitAggregate
	}

	return exitInput
}
