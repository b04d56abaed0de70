package report

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scheerer/lifx-hue-report/internal/lights"
)

func TestRunMatchesGolden(t *testing.T) {
	want, err := os.ReadFile("testdata/report.golden")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Run(&buf))
	require.Equal(t, string(want), buf.String())
}

func TestRunIsIdempotent(t *testing.T) {
	var first, second bytes.Buffer
	require.NoError(t, Run(&first))
	require.NoError(t, Run(&second))
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestComparisonRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf))
	out := buf.String()

	require.Contains(t, out, "0          0               0                    +0\n")
	require.Contains(t, out, "180        32760           32768                +8\n")
	require.Contains(t, out, "360        65520           0                    -65520\n")
}

func TestNamedColorRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf))
	out := buf.String()

	require.Contains(t, out, "Red          0° →     0 (0x0000)\n")
	require.Contains(t, out, "Blue       240° → 43690 (0xAAAA)\n")
	require.Contains(t, out, "Pink       350° → 63715 (0xF8E3)\n")
}

func TestFactorLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf))
	out := buf.String()

	require.Contains(t, out, "Original magic number: 182.0\n")
	require.Contains(t, out, "65535 / 360 = 182.0416666667\n")
	require.Contains(t, out, "65536 / 360 = 182.0444444444\n")
	require.Contains(t, out, "65535/360 = 182.04166...")
	require.Contains(t, out, "65536/360 = 182.04444...")
	require.NotContains(t, out, "%")
}

func TestCustomGenerator(t *testing.T) {
	g := &Generator{
		Degrees: []int{90},
		Colors:  []lights.NamedColor{{Name: "Lime", Degrees: 90}},
	}
	var buf bytes.Buffer
	require.NoError(t, g.Write(&buf))
	out := buf.String()

	require.Contains(t, out, "90         16380           16384                +4\n")
	require.Contains(t, out, "Lime        90° → 16384 (0x4000)\n")
	require.Equal(t, 1, strings.Count(out, "°"))
}

type failingWriter struct {
	after  int
	writes int
}

var errBrokenPipe = errors.New("broken pipe")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.writes >= w.after {
		return 0, errBrokenPipe
	}
	w.writes++
	return len(p), nil
}

func TestWriteErrorIsReturned(t *testing.T) {
	w := &failingWriter{after: 3}
	err := Run(w)
	require.ErrorIs(t, err, errBrokenPipe)
	require.Equal(t, 3, w.writes)
}
