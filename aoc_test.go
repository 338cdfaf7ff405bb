package aoc

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
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
			comment: `/*
want=CMZ

    [D]
[N] [C]

move 1 from 2 to 1
*/`,
			want: sample{
				want:  "CMZ",
				input: "    [D]\n[N] [C]\n\nmove 1 from 2 to 1\n",
			},
		},
		{
			comment: `// want=45000`,
			want:    sample{want: "45000"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample(%q) = %q, want %q", tt.comment, got, tt.want)
		}
	}

	if _, ok := parseSample("// just a comment"); ok {
		t.Error("parseSample accepted a comment without want=")
	}
}

type testSolver struct {
	*Puzzle
}

func countLines(in string) ([]string, error) { return Lines(in), nil }

func (s testSolver) D1p1() (any, error) {
	return Solve(s.Puzzle, countLines, Total(func(ls []string) int { return len(ls) }))
}

func (s testSolver) D1p2() (any, error) {
	return Solve(s.Puzzle, countLines, Total(func(ls []string) string { return ls[len(ls)-1] }))
}

func (s testSolver) D2p1() (any, error) {
	return Solve(s.Puzzle, countLines, func(ls []string) (int, error) {
		return 0, errors.New("boom")
	})
}

const testSource = `package main

/*
want=3

a
b
c
*/
func (s testSolver) D1p1() (any, error) { return nil, nil }

// want=c
func (s testSolver) D1p2() (any, error) { return nil, nil }
`

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples([]byte(testSource))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]sample{
		"D1p1": {input: "a\nb\nc\n", want: "3"},
		"D1p2": {input: "a\nb\nc\n", want: "c"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractSamples mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&testSolver{})
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, d := range sortedKeys(days) {
		for _, p := range days[d].parts {
			names = append(names, p.Name)
		}
	}
	if want := []string{"D1p1", "D1p2", "D2p1"}; !slices.Equal(names, want) {
		t.Errorf("methods = %v, want %v", names, want)
	}

	if _, err := extractMethods(testSolver{}); err == nil {
		t.Error("extractMethods accepted a non-pointer")
	}
}

type badSolver struct {
	*Puzzle
}

func (badSolver) D1p1() any { return nil }

func TestExtractMethodsBadSignature(t *testing.T) {
	if _, err := extractMethods(&badSolver{}); err == nil {
		t.Error("extractMethods accepted D1p1 returning only any")
	}
}

func TestVerifySamples(t *testing.T) {
	// D2p1 has no sample and must be reported.
	err := VerifySamples([]byte(testSource), &testSolver{})
	if err == nil || !strings.Contains(err.Error(), "no sample found for D2p1") {
		t.Errorf("VerifySamples = %v, want missing sample for D2p1", err)
	}

	src := strings.Replace(testSource, "want=c", "want=b", 1)
	err = VerifySamples([]byte(src), &testSolver{})
	if !errors.Is(err, errSampleMismatch) {
		t.Errorf("VerifySamples = %v, want sample mismatch", err)
	}
}

func TestSolveSolverError(t *testing.T) {
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: "D2p1"},
		samples:    map[string]sample{"D2p1": {input: "x\n"}},
	}
	s := testSolver{p}
	if _, err := s.D2p1(); err == nil || err.Error() != "boom" {
		t.Errorf("D2p1 = %v, want boom", err)
	}
}

func TestSolveDetectsMutation(t *testing.T) {
	p := &Puzzle{
		SampleMode: true,
		solver:     partSolver{Name: "D1p1"},
		samples:    map[string]sample{"D1p1": {input: "3\n1\n2\n"}},
	}
	parse := func(in string) ([]int, error) { return Ints(Lines(in)...) }

	_, err := Solve(p, parse, Total(func(ns []int) int {
		slices.Sort(ns)
		return ns[0]
	}))
	if !errors.Is(err, ErrInvariant) {
		t.Errorf("sorting solver: err = %v, want ErrInvariant", err)
	}

	got, err := Solve(p, parse, Total(func(ns []int) int {
		return slices.Min(ns)
	}))
	if err != nil || got != 1 {
		t.Errorf("read-only solver = %v, %v; want 1, nil", got, err)
	}
}

func TestInputMissingFile(t *testing.T) {
	old := flagInputDir
	defer func() { flagInputDir = old }()
	flagInputDir = t.TempDir()

	p := &Puzzle{year: 2022, day: day{day: 1}}
	if _, err := p.Input(); err == nil {
		t.Error("Input succeeded without an input file")
	}
}
