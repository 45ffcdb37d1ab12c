// Package cache implements the on-disk test case store. The layout is the
// external contract: root/site/contest/problem holds inputs named 0,1,2,...
// with matching outputs 0.a,1.a,... and an optional statement.txt. Directory
// existence is the cache-hit signal.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sempr/acedit-go/pkg/constants"
)

const (
	outputSuffix  = ".a"
	statementFile = "statement.txt"
)

// Store is a filesystem-backed case store rooted at one directory.
type Store struct {
	Root string
}

func NewStore(root string) *Store {
	return &Store{Root: root}
}

// CaseDir builds the directory path for one problem's cases. SPOJ has no
// contest concept, so its contest component is always blanked here; every
// caller computes paths through this single point.
func (s *Store) CaseDir(site, contest, problem string) string {
	if site == constants.SiteSpoj {
		contest = ""
	}
	return filepath.Join(s.Root, site, contest, problem)
}

// Exists reports whether the case directory for the triple is present.
// As a side effect it creates the directory (or only the contest-level
// directory when problem is empty) if absent, so callers can rely on the
// path existing afterwards.
func (s *Store) Exists(site, contest, problem string) (bool, error) {
	if problem == "" {
		dir := filepath.Join(s.Root, site, contest)
		if isDir(dir) {
			return false, nil
		}
		return false, os.MkdirAll(dir, 0o755)
	}
	dir := s.CaseDir(site, contest, problem)
	if isDir(dir) {
		return true, nil
	}
	return false, os.MkdirAll(dir, 0o755)
}

// Has reports whether the case directory is present, without the creation
// side effect of Exists.
func (s *Store) Has(site, contest, problem string) bool {
	return isDir(s.CaseDir(site, contest, problem))
}

// Count returns the number of stored cases. Cases are identified by the
// presence of their output artifact.
func (s *Store) Count(site, contest, problem string) int {
	return countDir(s.CaseDir(site, contest, problem))
}

func countDir(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), outputSuffix) {
			n++
		}
	}
	return n
}

// Store appends new cases after the existing ones, keeping indices
// contiguous and zero-based. It never overwrites prior indices, which makes
// multi-case acquisition resumable. The statement is written only when
// non-empty.
func (s *Store) Store(site, contest, problem string, inputs, outputs []string, statement string) error {
	dir := s.CaseDir(site, contest, problem)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create case dir: %w", err)
	}
	base := countDir(dir)
	for i, inp := range inputs {
		name := filepath.Join(dir, strconv.Itoa(base+i))
		if err := os.WriteFile(name, []byte(inp), 0o644); err != nil {
			return fmt.Errorf("write input %d: %w", base+i, err)
		}
	}
	for i, out := range outputs {
		name := filepath.Join(dir, strconv.Itoa(base+i)+outputSuffix)
		if err := os.WriteFile(name, []byte(out), 0o644); err != nil {
			return fmt.Errorf("write output %d: %w", base+i, err)
		}
	}
	if statement != "" {
		name := filepath.Join(dir, statementFile)
		if err := os.WriteFile(name, []byte(statement), 0o644); err != nil {
			return fmt.Errorf("write statement: %w", err)
		}
	}
	return nil
}

// Input returns the raw input text of case i.
func (s *Store) Input(site, contest, problem string, i int) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.CaseDir(site, contest, problem), strconv.Itoa(i)))
	return string(data), err
}

// Expected returns the expected output text of case i.
func (s *Store) Expected(site, contest, problem string, i int) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.CaseDir(site, contest, problem), strconv.Itoa(i)+outputSuffix))
	return string(data), err
}

// CachedProblems lists the problem codes already present for a contest.
func (s *Store) CachedProblems(site, contest string) []string {
	if site == constants.SiteSpoj {
		contest = ""
	}
	entries, err := os.ReadDir(filepath.Join(s.Root, site, contest))
	if err != nil {
		return nil
	}
	var problems []string
	for _, e := range entries {
		if e.IsDir() {
			problems = append(problems, e.Name())
		}
	}
	return problems
}

// Clear removes everything stored for one site and recreates the empty
// site directory so later lookups do not fail. Destructive; the caller is
// responsible for confirming with the user first.
func (s *Store) Clear(site string) error {
	dir := filepath.Join(s.Root, site)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("clear cache for %s: %w", site, err)
	}
	return os.MkdirAll(dir, 0o755)
}

// Discard removes a problem's case directory only when no case has been
// stored into it, so an Exists-created empty directory cannot pass as a
// cache hit on the next run. Populated directories are never touched.
func (s *Store) Discard(site, contest, problem string) {
	if problem == "" {
		return
	}
	dir := s.CaseDir(site, contest, problem)
	if countDir(dir) == 0 {
		_ = os.RemoveAll(dir)
	}
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
