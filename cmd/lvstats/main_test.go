package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shamaton/msgpack/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvstats/statserr"
)

// runWith executes run on input and returns exit code, stdout and stderr.
func runWith(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(args, strings.NewReader(input), &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_TextValues(t *testing.T) {
	code, out, errOut := runWith(t, "1 2\n3\n")
	require.Equal(t, exitOK, code, errOut)
	assert.True(t, strings.HasPrefix(out, "count=3 sum=6 mean=2 variance=0.6666666666666666 std_dev=0.8164965"), out)
	assert.True(t, strings.HasSuffix(out, " min=1 max=3 range=2\n"), out)
}

func TestRun_IntType(t *testing.T) {
	code, out, errOut := runWith(t, "1 2 3 4", "-type", "int")
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "mean=2 ")
	assert.Contains(t, out, "variance=1 ")
}

func TestRun_JSONFreq(t *testing.T) {
	code, out, errOut := runWith(t, "1 2\n3 1\n", "-freq", "-format", "json")
	require.Equal(t, exitOK, code, errOut)

	var rep report[float64]
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.Equal(t, modeFreq, rep.Mode)
	assert.Equal(t, uint(2), rep.Buckets)
	assert.Equal(t, uint(3), rep.Summary.Count)
	assert.InDelta(t, 5.0/3.0, rep.Summary.Mean, 1e-12)
	assert.InDelta(t, 8.0/9.0, rep.Summary.Variance, 1e-12)
}

func TestRun_Msgpack(t *testing.T) {
	code, out, errOut := runWith(t, "4 8", "-format", "msgpack")
	require.Equal(t, exitOK, code, errOut)

	var rep report[float64]
	require.NoError(t, msgpack.Unmarshal([]byte(out), &rep))
	assert.Equal(t, modeValues, rep.Mode)
	assert.Equal(t, 6.0, rep.Summary.Mean)
	assert.Equal(t, 4.0, rep.Summary.Range)
}

func TestRun_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("10 20"), 0o600))

	code, out, errOut := runWith(t, "", path)
	require.Equal(t, exitOK, code, errOut)
	assert.Contains(t, out, "mean=15 ")

	code, _, errOut = runWith(t, "", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, exitInput, code)
	assert.NotEmpty(t, errOut)
}

func TestRun_EmptyInput(t *testing.T) {
	code, out, errOut := runWith(t, "  \n")
	assert.Equal(t, exitAggregate, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, statserr.ErrEmptyCollection.Error())
}

func TestRun_InputErrors(t *testing.T) {
	code, _, errOut := runWith(t, "1 x 3")
	assert.Equal(t, exitInput, code)
	assert.NotEmpty(t, errOut)

	code, _, _ = runWith(t, "1 2 3", "-freq")
	assert.Equal(t, exitInput, code, "dangling value without count")

	code, _, _ = runWith(t, "1 -2", "-freq")
	assert.Equal(t, exitInput, code, "negative count")

	code, _, _ = runWith(t, "1", "-format", "yaml")
	assert.Equal(t, exitInput, code)

	code, _, _ = runWith(t, "1", "-type", "complex")
	assert.Equal(t, exitInput, code)

	code, _, _ = runWith(t, "1", "-nope")
	assert.Equal(t, exitInput, code)
}

func TestReadTable(t *testing.T) {
	tbl, err := readTable[int64](strings.NewReader("5 2 7 0"), parseInt)
	require.NoError(t, err)
	require.Len(t, tbl, 2)
	assert.Equal(t, int64(7), tbl[1].Value)
	assert.Equal(t, uint(0), tbl[1].Count)

	_, err = readTable[int64](strings.NewReader("5"), parseInt)
	assert.True(t, errors.Is(err, ErrOddPairs))
}

func TestEncoderRegistry(t *testing.T) {
	r := NewEncoderRegistry()

	_, err := r.New("")
	assert.Error(t, err)

	_, err = r.New("csv")
	assert.Error(t, err)

	r.Register("csv", func() Encoder { return textEncoder{} })
	enc, err := r.New("csv")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, enc.Encode(&buf, "x"))
	assert.Equal(t, "x\n", buf.String())
}
