package judge

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func caseFiles(t *testing.T, input string) (dir, inPath, outPath string) {
	t.Helper()
	dir = t.TempDir()
	inPath = filepath.Join(dir, "0")
	outPath = filepath.Join(dir, "out")
	if err := os.WriteFile(inPath, []byte(input), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, inPath, outPath
}

func TestRunCaseCapturesStdout(t *testing.T) {
	requireSh(t)
	dir, inPath, outPath := caseFiles(t, "hello\n")

	res, err := RunCase(context.Background(), []string{"sh", "-c", "cat"}, dir, inPath, outPath, caseDeadline)
	if err != nil {
		t.Fatalf("RunCase: %v", err)
	}
	if res.TimedOut || res.ExitCode != 0 {
		t.Fatalf("res = %+v", res)
	}
	data, err := os.ReadFile(outPath)
	if err != nil || string(data) != "hello\n" {
		t.Errorf("captured output = %q, %v", data, err)
	}
}

func TestRunCaseNonzeroExit(t *testing.T) {
	requireSh(t)
	dir, inPath, outPath := caseFiles(t, "")

	res, err := RunCase(context.Background(), []string{"sh", "-c", "exit 3"}, dir, inPath, outPath, caseDeadline)
	if err != nil {
		t.Fatalf("RunCase: %v", err)
	}
	if res.TimedOut || res.ExitCode != 3 {
		t.Fatalf("res = %+v, want exit code 3", res)
	}
}

func TestRunCaseTimeout(t *testing.T) {
	requireSh(t)
	dir, inPath, outPath := caseFiles(t, "")

	start := time.Now()
	res, err := RunCase(context.Background(), []string{"sh", "-c", "sleep 5"}, dir, inPath, outPath, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("RunCase: %v", err)
	}
	if !res.TimedOut {
		t.Fatal("expected timeout")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("kill took too long: %v", elapsed)
	}
}

func TestRunCaseSpawnError(t *testing.T) {
	dir, inPath, outPath := caseFiles(t, "")
	if _, err := RunCase(context.Background(), []string{"/no/such/binary"}, dir, inPath, outPath, caseDeadline); err == nil {
		t.Fatal("expected spawn error")
	}
}

func TestCompile(t *testing.T) {
	requireSh(t)
	dir := t.TempDir()

	code, out, err := Compile(context.Background(), []string{"sh", "-c", "echo built"}, dir)
	if err != nil || code != 0 {
		t.Fatalf("Compile: code=%d err=%v", code, err)
	}
	if out != "built\n" {
		t.Errorf("output = %q", out)
	}

	code, out, err = Compile(context.Background(), []string{"sh", "-c", "echo boom >&2; exit 1"}, dir)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if code != 1 || out != "boom\n" {
		t.Errorf("code=%d output=%q, want failing compiler output captured", code, out)
	}
}
