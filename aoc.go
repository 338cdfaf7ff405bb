// Package aoc are quick & dirty utilities for solving the 2022 Advent of
// Code puzzles: sample extraction, a method-based solver registry and a
// runner that checks samples before touching the real input.
package aoc

import (
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
	"tailscale.com/util/mak"
)

type sample struct {
	input string
	want  string
}

// parseSample extracts a sample from a doc comment of the form
//
//	/*
//	want=<answer>
//
//	<input>
//	*/
//
// The input is kept verbatim apart from surrounding blank lines, so lines
// may start with spaces.
func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	text = strings.TrimLeft(text, " \t\r\n")
	rest, ok := strings.CutPrefix(text, "want=")
	if !ok {
		return sample{}, false
	}
	want, input, _ := strings.Cut(rest, "\n")
	input = strings.TrimLeft(input, "\r\n")
	input = strings.TrimRight(input, " \t\r\n")
	if input != "" {
		input += "\n"
	}
	return sample{
		want:  strings.TrimSpace(want),
		input: input,
	}, true
}

func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "main.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	var samples map[string]sample
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				mak.Set(&samples, fd.Name.Name, s)
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded by solvers. It hands out the input for the part being
// run, which is the part's sample in sample mode.
type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte // cached real input
}

// Input returns the raw input of the puzzle. The real input is read from
// <input-dir>/<year>/day<N>.txt once and cached.
func (p *Puzzle) Input() ([]byte, error) {
	if p.SampleMode {
		s, err := p.Sample()
		if err != nil {
			return nil, err
		}
		return []byte(s.input), nil
	}
	if p.input != nil {
		return p.input, nil
	}
	name := filepath.Join(flagInputDir, strconv.Itoa(p.year), fmt.Sprintf("day%d.txt", p.day.day))
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	p.input = b
	return b, nil
}

// Text is Input as a string.
func (p *Puzzle) Text() (string, error) {
	b, err := p.Input()
	return string(b), err
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		logger.Sugar().Debugf(format, args...)
	}
}

func (p *Puzzle) Sample() (sample, error) {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		return sample{}, fmt.Errorf("no sample found for %v", p.solver.Name)
	}
	return s, nil
}

// Solve loads the input, parses it and hands the model to solve. The model
// is hashed around the call so that a solver which mutates its input is
// reported rather than silently corrupting the other part.
func Solve[M, A any](p *Puzzle, parse func(string) (M, error), solve func(M) (A, error)) (any, error) {
	text, err := p.Text()
	if err != nil {
		return nil, err
	}
	m, err := parse(text)
	if err != nil {
		return nil, err
	}
	p.Debugf("%s: parsed %T from %d bytes", p.solver.Name, m, len(text))
	before := deephash.Hash(&m)
	a, err := solve(m)
	if err != nil {
		return nil, err
	}
	if deephash.Hash(&m) != before {
		return nil, fmt.Errorf("%w: %s mutated its parsed input", ErrInvariant, p.solver.Name)
	}
	return a, nil
}

// Total adapts a solver that cannot fail to the shape Solve wants.
func Total[M, A any](f func(M) A) func(M) (A, error) {
	return func(m M) (A, error) {
		return f(m), nil
	}
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() (any, error)
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods registers a struct with methods named D{day}p{part} for
// each day/part of Advent of Code. The methods must have the signature
// func() (any, error).
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("register: got %T; want pointer to struct", x)
	}
	vt := v.Elem().Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Elem().Method(i).Interface().(func() (any, error))
		if !ok {
			return nil, fmt.Errorf("method %s has type %s; want func() (any, error)", mn, vt.Method(i).Type)
		}
		d, err := Atoi(matches[1])
		if err != nil {
			return nil, err
		}
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputDir   = "input"
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputDir, "input", flagInputDir, "directory holding <year>/day<N>.txt inputs")
}

var initFlags = sync.OnceFunc(flag.Parse)

// logger is replaced by Run; everything else (tests included) logs nowhere.
var logger = zap.NewNop()

func newLogger(debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.DisableStacktrace = true
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

// bind points the solver's embedded *Puzzle at p.
func bind(slvr any, p *Puzzle) {
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
}

var errSampleMismatch = errors.New("sample mismatch")

// runSample runs ps against its sample and compares the answer.
func runSample(p *Puzzle, ps partSolver) (any, error) {
	p.solver = ps
	p.SampleMode = true
	s, err := p.Sample()
	if err != nil {
		return nil, err
	}
	got, err := ps.fn()
	if err != nil {
		return nil, fmt.Errorf("%s sample: %w", ps.Name, err)
	}
	if fmt.Sprint(got) != s.want {
		return got, fmt.Errorf("%w: %s = %v; want %v", errSampleMismatch, ps.Name, got, s.want)
	}
	return got, nil
}

func runDay(slvr any, year int, day day, samples map[string]sample) error {
	p := &Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	bind(slvr, p)
	for _, ps := range day.parts {
		if flagPart != "" && ps.Part != flagPart {
			continue
		}
		if !flagSkipSample {
			t0 := time.Now()
			got, err := runSample(p, ps)
			if errors.Is(err, errSampleMismatch) {
				fmt.Printf("part %s: %v ❌\n", ps.Part, got)
			}
			if err != nil {
				return err
			}
			fmt.Printf("part %s sample: %v ✅\n", ps.Part, got)
			logger.Debug("sample done", zap.String("part", ps.Name), zap.Duration("took", time.Since(t0)))
		}
		if flagOnlySample {
			continue
		}
		p.solver = ps
		p.SampleMode = false
		// Prime the input so that reading it is not timed.
		if _, err := p.Input(); err != nil {
			return err
		}
		t0 := time.Now()
		got, err := ps.fn()
		if err != nil {
			return fmt.Errorf("%s: %w", ps.Name, err)
		}
		fmt.Printf("part %s: %v (took %v)\n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
	}
	return nil
}

// VerifySamples runs every D{day}p{part} method of slvr against the sample
// in its doc comment and reports the first failure.
func VerifySamples(src []byte, slvr any) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	for _, dn := range sortedKeys(days) {
		d := days[dn]
		p := &Puzzle{day: d, samples: samples}
		bind(slvr, p)
		for _, ps := range d.parts {
			if _, err := runSample(p, ps); err != nil {
				return err
			}
		}
	}
	return nil
}

// Run runs the solver's days for the given year. It only returns on
// success; any error is fatal.
func Run(year int, src []byte, slvr any) {
	initFlags()
	l, err := newLogger(flagDebug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger = l
	defer logger.Sync()

	if err := run(year, src, slvr); err != nil {
		logger.Fatal("run failed", zap.Int("year", year), zap.Error(err))
	}
}

func run(year int, src []byte, slvr any) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			return fmt.Errorf("no day %d", flagCurDay)
		}
		return runDay(slvr, year, day, samples)
	}

	for _, d := range sortedKeys(days) {
		if err := runDay(slvr, year, days[d], samples); err != nil {
			return err
		}
		fmt.Println()
	}
	return nil
}

func sortedKeys[V any](m map[int]V) []int {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero element of list, or else returns the zero T.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
