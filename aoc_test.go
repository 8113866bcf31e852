package aoc

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},
		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=4,6,3`,
			want: sample{
				want: "4,6,3",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample("foo", tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
}

const sampleSrc = `package main

/*
want=3

1 2
*/
func (s solver) D1p1() any { return nil }

// want=2
func (s solver) D1p2() any { return nil }

// helper has no sample.
func helper() {}
`

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples("day1.go", []byte(sampleSrc))
	require.NoError(t, err)
	require.Equal(t, map[string]sample{
		"D1p1": {want: "3", input: "1 2\n"},
		"D1p2": {want: "2", input: "1 2\n"},
	}, got)

	_, err = extractSamples("bad.go", []byte("package"))
	require.Error(t, err)
}

func TestExtractAllSamples(t *testing.T) {
	src := fstest.MapFS{
		"day1.go":      {Data: []byte(sampleSrc)},
		"day1_test.go": {Data: []byte("not go")},
	}
	got := extractAllSamples(src)
	require.Len(t, got, 2)
	require.Equal(t, "3", got["D1p1"].want)
}

type testSolver struct {
	*Puzzle
}

func (testSolver) D2p1() any  { return 1 }
func (testSolver) D2p2() any  { return 2 }
func (testSolver) D10p1() any { return 3 }
func (testSolver) Other() any { return 4 }

func TestExtractMethods(t *testing.T) {
	days := extractMethods(&testSolver{})
	require.Len(t, days, 2)
	require.Len(t, days[2].parts, 2)
	require.Equal(t, "1", days[2].parts[0].Part)
	require.Equal(t, "D2p2", days[2].parts[1].Name)
	require.Equal(t, 3, days[10].parts[0].fn())
}

func TestOr(t *testing.T) {
	if got := Or("", "a", "b"); got != "a" {
		t.Errorf("Or = %q, want %q", got, "a")
	}
	if got := Or(0, 0); got != 0 {
		t.Errorf("Or = %v, want 0", got)
	}
}

func samplePuzzle() *Puzzle {
	return &Puzzle{
		SampleMode: true,
		solver:     partSolver{Part: "1", Name: "D3p1"},
		samples: map[string]sample{
			"D3p1": {input: "1,2\n\n3,4\n", want: "2"},
		},
	}
}

func TestPuzzleForLines(t *testing.T) {
	p := samplePuzzle()
	var ys []int
	var lines []string
	p.ForLinesY(func(y int, line string) {
		ys = append(ys, y)
		lines = append(lines, line)
	})
	require.Equal(t, []int{0, 1, 2}, ys)
	require.Equal(t, []string{"1,2", "", "3,4"}, lines)

	var n int
	p.ForLines(func(string) { n++ })
	require.Equal(t, 3, n)
	require.Equal(t, "1,2\n\n3,4", p.Text())
}

func TestPuzzleDebugf(t *testing.T) {
	var buf bytes.Buffer
	out, level := Log.Out, Log.GetLevel()
	Log.SetOutput(&buf)
	Log.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		Log.SetOutput(out)
		Log.SetLevel(level)
	})

	p := samplePuzzle()
	p.Debugf("visited %d states", 42)
	require.Contains(t, buf.String(), "visited 42 states")
	require.Contains(t, buf.String(), "part=D3p1")

	buf.Reset()
	p.SampleMode = false
	p.Debugf("visited %d states", 7)
	require.Empty(t, buf.String())
}
