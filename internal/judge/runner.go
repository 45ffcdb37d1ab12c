package judge

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// caseDeadline is the wall-clock limit for one sample case.
const caseDeadline = 2 * time.Second

// RunResult is the raw outcome of one case subprocess.
type RunResult struct {
	TimedOut bool
	ExitCode int
}

// RunCase executes argv with stdin bound to inputPath and stdout captured
// to outPath, enforcing the deadline with spawn + wait-with-timeout +
// process-group kill. 进程组整体 SIGKILL，保证 TLE 之后不会留下孤儿进程。
func RunCase(ctx context.Context, argv []string, dir, inputPath, outPath string, deadline time.Duration) (RunResult, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("open case input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("create case output: %w", err)
	}
	defer out.Close()

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Stdin = in
	cmd.Stdout = out
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return RunResult{}, fmt.Errorf("start solution: %w", err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(deadline)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		killGroup(cmd)
		<-done
		return RunResult{}, ctx.Err()
	case <-timer.C:
		killGroup(cmd)
		<-done
		return RunResult{TimedOut: true}, nil
	case err := <-done:
		if err == nil {
			return RunResult{ExitCode: 0}, nil
		}
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return RunResult{ExitCode: ee.ExitCode()}, nil
		}
		return RunResult{}, err
	}
}

func killGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	// Negative pid addresses the whole process group.
	_ = unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
}

// Compile runs a build command to completion with no deadline and returns
// its exit code along with the combined compiler output.
func Compile(ctx context.Context, argv []string, dir string) (int, string, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err == nil {
		return 0, string(out), nil
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode(), string(out), nil
	}
	return -1, string(out), fmt.Errorf("run compiler: %w", err)
}
