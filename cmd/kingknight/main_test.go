package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/kingknight-go/internal/config"
	"github.com/lgbarn/kingknight-go/internal/kingknight"
	"github.com/lgbarn/kingknight-go/internal/output"
	"github.com/lgbarn/kingknight-go/internal/testutil"
)

// newTestConfig returns a builder writing output and log to buffers.
func newTestConfig(out, log *bytes.Buffer) *config.ConfigBuilder {
	return config.NewConfigBuilder().WithOutput(out).WithLog(log)
}

func TestRun_SolveDefaultStart(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).Build()

	if code := run(context.Background(), cfg); code != 0 {
		t.Fatalf("run() = %d, want 0; log:\n%s", code, log.String())
	}

	got := out.String()
	if !strings.HasPrefix(got, "Start: King: (2, 1), Knight: (2, 2)\n") {
		t.Errorf("output does not start with the start position:\n%s", got)
	}
	testutil.AssertContains(t, got, "Solved in 8 move(s) (274 state(s) explored).")
	testutil.AssertContains(t, log.String(), "274 state(s) explored")
}

func TestRun_SolveJSON(t *testing.T) {
	var out, log bytes.Buffer
	start := testutil.MustPosition(t, 2, 5, 1, 4)
	cfg := newTestConfig(&out, &log).WithStart(start).WithJSONOutput(true).Build()

	if code := run(context.Background(), cfg); code != 0 {
		t.Fatalf("run() = %d, want 0; log:\n%s", code, log.String())
	}

	var got output.JSONSolution
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out.String())
	}
	testutil.AssertTrue(t, got.Solved)
	testutil.AssertEqual(t, len(got.Moves), 1)
	testutil.AssertEqual(t, got.Moves[0].Piece, "Knight")
}

func TestRun_SolveUnsolvable(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).WithStart(testutil.MustPosition(t, 0, 0, 5, 5)).Build()

	if code := run(context.Background(), cfg); code != 0 {
		t.Fatalf("run() = %d, want 0 for an unsolvable start", code)
	}
	testutil.AssertContains(t, out.String(), "No solution found (1 state(s) explored).")
}

func TestRun_SearchLimit(t *testing.T) {
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).WithMaxStates(5).Build()

	if code := run(context.Background(), cfg); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	testutil.AssertContains(t, log.String(), "state limit exceeded")
	testutil.AssertEqual(t, out.String(), "")
}

func TestRun_InvalidConfig(t *testing.T) {
	var out, log bytes.Buffer
	shared := kingknight.Position{King: kingknight.Sq(3, 3), Knight: kingknight.Sq(3, 3), Goal: kingknight.DefaultGoal}
	cfg := newTestConfig(&out, &log).WithStart(shared).Build()

	if code := run(context.Background(), cfg); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	testutil.AssertContains(t, log.String(), "Error:")
}

func TestRun_Play(t *testing.T) {
	t.Run("accepted line", func(t *testing.T) {
		var out, log bytes.Buffer
		cfg := newTestConfig(&out, &log).
			WithStart(testutil.MustPosition(t, 2, 5, 1, 4)).
			WithPlay([]kingknight.Move{kingknight.NewMove(kingknight.Knight, kingknight.Sq(0, 6))}).
			Build()

		if code := run(context.Background(), cfg); code != 0 {
			t.Fatalf("run() = %d, want 0; log:\n%s", code, log.String())
		}
		testutil.AssertContains(t, out.String(), "Goal reached.")
	})

	t.Run("rejected move", func(t *testing.T) {
		var out, log bytes.Buffer
		cfg := newTestConfig(&out, &log).
			WithPlay([]kingknight.Move{
				kingknight.NewMove(kingknight.Knight, kingknight.Sq(4, 3)),
				kingknight.NewMove(kingknight.Knight, kingknight.Sq(0, 0)),
			}).
			Build()

		if code := run(context.Background(), cfg); code != 1 {
			t.Fatalf("run() = %d, want 1", code)
		}
		testutil.AssertContains(t, out.String(), "(moves: 1)")
		testutil.AssertContains(t, log.String(), "ply 2")
	})
}

func TestRun_Survey(t *testing.T) {
	if testing.Short() {
		t.Skip("full survey")
	}
	var out, log bytes.Buffer
	cfg := newTestConfig(&out, &log).WithSurvey(true, 4).Build()

	if code := run(context.Background(), cfg); code != 0 {
		t.Fatalf("run() = %d, want 0; log:\n%s", code, log.String())
	}
	testutil.AssertContains(t, out.String(), "Start positions: 3906")
	testutil.AssertContains(t, out.String(), "Longest solution: 15 move(s)")
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, log bytes.Buffer
	if code := run(ctx, newTestConfig(&out, &log).Build()); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
	testutil.AssertContains(t, log.String(), "context canceled")
}

func TestSetupFiles_WrittenAndClosed(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "solution.txt")
	logPath := filepath.Join(dir, "run.log")
	defer saveRestoreString(outputFile, outPath)()
	defer saveRestoreString(logFile, logPath)()

	cfg := config.NewConfig()
	logOut := setupLogFile(cfg)
	out := setupOutputFile(cfg)
	if out == nil || logOut == nil {
		t.Fatal("setup returned nil files for -o and -l")
	}
	if cfg.OutputFile != out || cfg.LogFile != logOut {
		t.Fatal("config writers do not point at the opened files")
	}

	if code := run(context.Background(), cfg); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}
	testutil.AssertNoError(t, closeFiles(out, logOut))

	if _, err := out.Write([]byte("x")); !errors.Is(err, os.ErrClosed) {
		t.Errorf("output file still open after closeFiles: %v", err)
	}
	data, err := os.ReadFile(outPath)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(data), "Solved in 8 move(s)")
	logData, err := os.ReadFile(logPath)
	testutil.AssertNoError(t, err)
	testutil.AssertContains(t, string(logData), "274 state(s) explored")
}

func TestSetupFiles_DefaultsToStdStreams(t *testing.T) {
	cfg := config.NewConfig()
	if f := setupLogFile(cfg); f != nil {
		t.Errorf("setupLogFile() = %v, want nil without -l or -L", f.Name())
	}
	if f := setupOutputFile(cfg); f != nil {
		t.Errorf("setupOutputFile() = %v, want nil without -o", f.Name())
	}
	if cfg.OutputFile != os.Stdout || cfg.LogFile != os.Stderr {
		t.Error("writers changed without file flags")
	}
}

func TestCloseFiles(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	testutil.AssertNoError(t, err)

	testutil.AssertNoError(t, closeFiles(nil, f))
	err = closeFiles(f)
	testutil.AssertErrorIs(t, err, os.ErrClosed)
	testutil.AssertContains(t, err.Error(), f.Name())
}
