package main

import (
	"bufio"
	"io"
	"strconv"

	"github.com/hyp3rd/ewrap"

	"github.com/katalvlaran/lvstats/freq"
	"github.com/katalvlaran/lvstats/types"
)

// ErrOddPairs is returned when -freq input ends with a value lacking its count.
var ErrOddPairs = ewrap.New("value without a count")

// parseFunc parses one whitespace-separated token into E.
type parseFunc[E types.Number] func(string) (E, error)

func parseInt(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

func parseFloat(s string) (float64, error) { return strconv.ParseFloat(s, 64) }

// readValues reads every token of r as one value.
func readValues[E types.Number](r io.Reader, parse parseFunc[E]) ([]E, error) {
	var out []E

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for i := 1; sc.Scan(); i++ {
		v, err := parse(sc.Text())
		if err != nil {
			return nil, ewrap.Wrapf(err, "token %d", i)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, ewrap.Wrap(err, "failed to read input")
	}

	return out, nil
}

// readTable reads tokens of r as alternating value and count.
func readTable[E types.Number](r io.Reader, parse parseFunc[E]) (freq.Table[E], error) {
	var (
		t       freq.Table[E]
		value   E
		pending bool
	)

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for i := 1; sc.Scan(); i++ {
		tok := sc.Text()
		if !pending {
			v, err := parse(tok)
			if err != nil {
				return nil, ewrap.Wrapf(err, "token %d", i)
			}
			value, pending = v, true
			continue
		}

		c, err := strconv.ParseUint(tok, 10, strconv.IntSize)
		if err != nil {
			return nil, ewrap.Wrapf(err, "token %d: count", i)
		}
		t = append(t, types.Frequency[E]{Value: value, Count: types.Count(c)})
		pending = false
	}
	if err := sc.Err(); err != nil {
		return nil, ewrap.Wrap(err, "failed to read input")
	}
	if pending {
		return nil, ErrOddPairs
	}

	return t, nil
}
