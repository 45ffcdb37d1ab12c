// Package judge compiles a solution, runs it against the cached sample
// cases under a per-case deadline, and reports a verdict per case.
package judge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/sempr/acedit-go/internal/acquire"
	"github.com/sempr/acedit-go/internal/cache"
	"github.com/sempr/acedit-go/pkg/models"
)

// ErrCompile marks a failed compilation. No cases are executed after it.
var ErrCompile = errors.New("compilation error")

type Harness struct {
	Store *cache.Store
	Acq   *acquire.Orchestrator
	Plans map[string]Plan
}

func NewHarness(store *cache.Store, acq *acquire.Orchestrator, plans map[string]Plan) *Harness {
	return &Harness{Store: store, Acq: acq, Plans: plans}
}

// Run judges the solution in req.Source against the cached cases for its
// problem. On a cache miss it forces one acquisition and re-enters once;
// that is the only retry path.
func (h *Harness) Run(ctx context.Context, req models.Request) error {
	return h.run(ctx, req, true)
}

func (h *Harness) run(ctx context.Context, req models.Request, allowFetch bool) error {
	source, err := filepath.Abs(req.Source)
	if err != nil {
		return err
	}
	if fi, err := os.Stat(source); err != nil || fi.IsDir() {
		return fmt.Errorf("no such file: %s", req.Source)
	}
	ext := strings.TrimPrefix(filepath.Ext(source), ".")
	base := strings.TrimSuffix(filepath.Base(source), "."+ext)

	problem := req.Problem
	if problem == "" {
		problem = base
	}
	lookup := req
	lookup.Problem = problem
	// Adapters normalize problem codes (spoj uppercases, hackerrank
	// slugifies); cache lookups must use the same form.
	ref, err := h.Acq.Normalize(lookup)
	if err != nil {
		return err
	}

	if !h.Store.Has(ref.Site, ref.Contest, ref.Problem) {
		if !allowFetch {
			return fmt.Errorf("test cases for %s still missing after download", ref.Problem)
		}
		fmt.Println("Test cases not found locally...")
		fetchReq := ref
		fetchReq.Force = true
		if err := h.Acq.Problem(ctx, fetchReq); err != nil {
			return err
		}
		fmt.Println("Running your solution against sample cases...")
		return h.run(ctx, req, false)
	}

	plan, err := PlanFor(h.Plans, source)
	if err != nil {
		return err
	}
	srcDir := filepath.Dir(source)

	if plan.Compile != "" {
		argv, err := plan.CompileArgv(source, base)
		if err != nil {
			return err
		}
		code, out, err := Compile(ctx, argv, srcDir)
		if err != nil {
			return err
		}
		if code != 0 {
			color.New(color.FgRed, color.Bold).Println("Compilation error. Not run against test cases.")
			if out != "" {
				fmt.Print(out)
			}
			return ErrCompile
		}
	}
	defer cleanupArtifacts(srcDir, base, plan.Ext)

	runArgv, err := plan.RunArgv(source, base)
	if err != nil {
		return err
	}

	numCases := h.Store.Count(ref.Site, ref.Contest, ref.Problem)
	slog.Debug("running cases", "problem", ref.Problem, "count", numCases)

	tmpDir, err := os.MkdirTemp("", "acedit-run-")
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	reports := make([]CaseReport, 0, numCases)
	for i := 0; i < numCases; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		report, err := h.runOne(ctx, ref, runArgv, srcDir, tmpDir, i)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	}
	RenderReport(os.Stdout, reports)
	return nil
}

// runOne executes a single case. Spawn failures and unreadable artifacts
// degrade to RTE rather than aborting the remaining cases.
func (h *Harness) runOne(ctx context.Context, ref models.Request, argv []string, srcDir, tmpDir string, i int) (CaseReport, error) {
	inputPath := filepath.Join(h.Store.CaseDir(ref.Site, ref.Contest, ref.Problem), strconv.Itoa(i))
	// Temp names are case-index-qualified so cases cannot observe each
	// other's artifacts.
	outPath := filepath.Join(tmpDir, "output_"+strconv.Itoa(i))

	input, err := h.Store.Input(ref.Site, ref.Contest, ref.Problem, i)
	if err != nil {
		return CaseReport{}, fmt.Errorf("read case %d input: %w", i, err)
	}
	expected, err := h.Store.Expected(ref.Site, ref.Contest, ref.Problem, i)
	if err != nil {
		return CaseReport{}, fmt.Errorf("read case %d output: %w", i, err)
	}

	res, err := RunCase(ctx, argv, srcDir, inputPath, outPath, caseDeadline)
	if err != nil {
		if ctx.Err() != nil {
			return CaseReport{}, err
		}
		slog.Warn("case execution failed", "case", i, "err", err)
		res = RunResult{ExitCode: -1}
	}

	actual := ""
	if !res.TimedOut && res.ExitCode == 0 {
		data, err := os.ReadFile(outPath)
		if err != nil {
			slog.Warn("could not read case output", "case", i, "err", err)
			res.ExitCode = -1
		}
		actual = string(data)
	}

	return CaseReport{
		Serial:   i + 1,
		Input:    input,
		Expected: Normalize(expected),
		Output:   Normalize(actual),
		Verdict:  Classify(res, expected, actual),
	}, nil
}

// cleanupArtifacts removes what compilation produced next to the source.
func cleanupArtifacts(srcDir, base, ext string) {
	switch ext {
	case "c", "cpp", "hs":
		_ = os.Remove(filepath.Join(srcDir, base))
	case "java", "kt":
		matches, _ := filepath.Glob(filepath.Join(srcDir, base+"*.class"))
		for _, m := range matches {
			_ = os.Remove(m)
		}
	}
	if ext == "hs" {
		// ghc side products
		_ = os.Remove(filepath.Join(srcDir, base+".hi"))
		_ = os.Remove(filepath.Join(srcDir, base+".o"))
	}
}
