// Package aoc is a grid, graph and state-space search toolkit for Advent of
// Code puzzles, plus a small runner that drives solver methods against the
// samples embedded in their doc comments and the real puzzle inputs.
package aoc

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrSampleMismatch is returned by Run when a part's answer for its
	// sample input differs from the expected one.
	ErrSampleMismatch = errors.New("aoc: sample answer mismatch")
	// ErrNoDay is returned by Run when the requested day has no solver.
	ErrNoDay = errors.New("aoc: no solver for day")
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{
			want:  strings.TrimSpace(m[1]),
			input: m[2],
		}, true
	}
	return sample{}, false
}

// extractSamples maps solver method names to the sample in their doc
// comment. A sample without an input reuses the previous method's input.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods collects the methods of a struct named D{day}p{part}. The
// methods must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := range vt.NumMethod() {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("solver method %s: got %s; want func() any", mn, v.Method(i).Type())
		}
		d, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("solver method %s: %w", mn, err)
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

// DayInfo describes a registered day.
type DayInfo struct {
	Day     int
	Parts   []string
	Samples int
}

// Days lists the days registered on slvr in ascending order, with the
// number of parts that carry a sample in src.
func Days(src []byte, slvr any) ([]DayInfo, error) {
	samples, err := extractSamples(src)
	if err != nil {
		return nil, err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	nums := maps.Keys(days)
	slices.Sort(nums)
	out := make([]DayInfo, 0, len(nums))
	for _, n := range nums {
		info := DayInfo{Day: n}
		for _, ps := range days[n].parts {
			info.Parts = append(info.Parts, ps.Part)
			if _, ok := samples[ps.Name]; ok {
				info.Samples++
			}
		}
		out = append(out, info)
	}
	return out, nil
}

// Puzzle is embedded (as *Puzzle) in the solver struct. It gives the part
// being run access to its input.
type Puzzle struct {
	// SampleMode is true while a part runs against its sample input.
	SampleMode bool

	cfg     Config
	log     *slog.Logger
	client  *http.Client
	day     int
	solver  partSolver
	samples map[string]sample
	input   []byte
}

func (p *Puzzle) Day() int { return p.day }

// Input returns the input of the part being run.
func (p *Puzzle) Input() []byte {
	return p.input
}

func (p *Puzzle) InputString() string {
	return string(p.input)
}

// Lines returns the input split into lines.
func (p *Puzzle) Lines() []string {
	return Lines(string(p.input))
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	for _, l := range p.Lines() {
		onLine(l)
	}
}

// Debugf logs at debug level, only while running a sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log.Debug(fmt.Sprintf(format, args...), "day", p.day, "part", p.solver.Part)
	}
}

func (p *Puzzle) sample() (sample, bool) {
	s, ok := p.samples[p.solver.Name]
	return s, ok
}

// load reads the input for the current mode into p.input.
func (p *Puzzle) load(ctx context.Context) error {
	if p.SampleMode {
		s, ok := p.sample()
		if !ok {
			return fmt.Errorf("no sample found for %v", p.solver.Name)
		}
		p.input = []byte(s.input)
		return nil
	}
	in, err := p.fileOrFetch(ctx)
	if err != nil {
		return fmt.Errorf("day %d input: %w", p.day, err)
	}
	p.input = in
	return nil
}

func (p *Puzzle) fileOrFetch(ctx context.Context) ([]byte, error) {
	filename := filepath.Join(p.cfg.CacheDir, strconv.Itoa(p.cfg.Year), fmt.Sprintf("%d.input", p.day))
	if f, err := os.ReadFile(filename); err == nil {
		p.log.Debug("input cache hit", "file", filename)
		return f, nil
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", strings.TrimSuffix(p.cfg.BaseURL, "/"), p.cfg.Year, p.day)
	p.log.Debug("fetching input", "url", url)
	body, err := p.fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Puzzle) fetch(ctx context.Context, url string) ([]byte, error) {
	session, err := p.cfg.Session()
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})
	res, err := Or(p.client, http.DefaultClient).Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

// Options control Run.
type Options struct {
	Config Config
	// Day selects a single day; 0 runs every registered day.
	Day int
	// Part selects a single part; empty runs every part.
	Part       string
	OnlySample bool
	SkipSample bool
	// Out receives the results table. Nil means os.Stdout.
	Out    io.Writer
	Logger *slog.Logger
	// Client fetches inputs. Nil means http.DefaultClient.
	Client *http.Client
}

// PartResult is the outcome of running one part against one input.
type PartResult struct {
	Day    int
	Part   string
	Sample bool
	Answer string
	// Want is the expected sample answer; empty for real inputs.
	Want    string
	OK      bool
	Elapsed time.Duration
}

func (r PartResult) status() string {
	switch {
	case !r.Sample:
		return ""
	case r.OK:
		return "ok"
	}
	return "want " + r.Want
}

// Run runs the D{day}p{part} methods of slvr, a pointer to a struct that
// embeds *Puzzle. src is the Go source declaring those methods, from which
// the samples are read. Each part runs first against its sample, if it has
// one, and then against the real input, unless the sample answer is wrong.
// The results are rendered as a table to opts.Out.
func Run(ctx context.Context, src []byte, slvr any, opts Options) ([]PartResult, error) {
	log := Or(opts.Logger, slog.Default())
	samples, err := extractSamples(src)
	if err != nil {
		return nil, err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	field := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !field.IsValid() || field.Type() != reflect.TypeFor[*Puzzle]() {
		return nil, fmt.Errorf("solver %T does not embed *aoc.Puzzle", slvr)
	}

	nums := maps.Keys(days)
	slices.Sort(nums)
	if opts.Day != 0 {
		if _, ok := days[opts.Day]; !ok {
			return nil, fmt.Errorf("%w %d", ErrNoDay, opts.Day)
		}
		nums = []int{opts.Day}
	}

	var results []PartResult
	var failed bool
	for _, n := range nums {
		p := &Puzzle{
			cfg:     opts.Config,
			log:     log,
			client:  opts.Client,
			day:     n,
			samples: samples,
		}
		field.Set(reflect.ValueOf(p))
		rs, err := runDay(ctx, p, days[n], opts)
		results = append(results, rs...)
		if err != nil {
			renderResults(Or[io.Writer](opts.Out, os.Stdout), results)
			return results, err
		}
		for _, r := range rs {
			failed = failed || !r.OK
		}
	}
	renderResults(Or[io.Writer](opts.Out, os.Stdout), results)
	if failed {
		return results, ErrSampleMismatch
	}
	return results, nil
}

func runDay(ctx context.Context, p *Puzzle, d day, opts Options) ([]PartResult, error) {
	var out []PartResult
	p.log.Info("running day", "day", d.day)
	for _, ps := range d.parts {
		if opts.Part != "" && ps.Part != opts.Part {
			continue
		}
		p.solver = ps
		for _, sm := range []bool{true, false} {
			if !sm && opts.OnlySample {
				continue
			} else if sm && opts.SkipSample {
				continue
			}
			p.SampleMode = sm
			want := ""
			if sm {
				s, ok := p.sample()
				if !ok {
					p.log.Debug("no sample", "day", d.day, "part", ps.Part)
					continue
				}
				want = s.want
			}
			if err := p.load(ctx); err != nil {
				return out, err
			}
			t0 := time.Now()
			got := fmt.Sprint(ps.fn())
			r := PartResult{
				Day:     d.day,
				Part:    ps.Part,
				Sample:  sm,
				Answer:  got,
				Want:    want,
				OK:      !sm || got == want,
				Elapsed: time.Since(t0).Round(time.Microsecond),
			}
			p.log.Debug("part done", "day", d.day, "part", ps.Part, "sample", sm, "elapsed", r.Elapsed)
			out = append(out, r)
			if !r.OK {
				p.log.Warn("sample mismatch", "day", d.day, "part", ps.Part, "got", got, "want", want)
				break
			}
		}
	}
	return out, nil
}

func renderResults(w io.Writer, results []PartResult) {
	if len(results) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Day", "Part", "Input", "Answer", "Status", "Elapsed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	for _, r := range results {
		input := "real"
		if r.Sample {
			input = "sample"
		}
		table.Append([]string{
			strconv.Itoa(r.Day),
			r.Part,
			input,
			r.Answer,
			r.status(),
			r.Elapsed.String(),
		})
	}
	table.Render()
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// TrimPrefix removes prefix from s. It panics if s does not start with it.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		panic(fmt.Sprintf("bad prefix: %q", s))
	}
	return s1
}

// Or returns the first of list that is not the zero value.
func Or[T any](list ...T) T {
	for _, v := range list {
		if rv := reflect.ValueOf(v); rv.IsValid() && !rv.IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Parallel applies f to every element of in on up to GOMAXPROCS goroutines
// and returns the results in input order.
func Parallel[I, O any](in []I, f func(I) O) []O {
	out := make([]O, len(in))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range in {
		g.Go(func() error {
			out[i] = f(v)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func Fold[T any, R any](in []T, f func(R, T) R, defVal R) R {
	out := defVal
	for _, v := range in {
		out = f(out, v)
	}
	return out
}

// ParallelMapFold maps in with f in parallel and folds the results in order.
func ParallelMapFold[A, B, C any](in []A, f func(A) B, f2 func(C, B) C, defVal C) C {
	return Fold(
		Parallel(in, f),
		f2,
		defVal,
	)
}
