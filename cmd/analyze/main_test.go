package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSetup = `{
	"name": "Test Setup",
	"description": "Small setup for tests",
	"players": 2,
	"starting_currency": 5,
	"board_width": 3,
	"board_height": 3,
	"take_depth": 2,
	"bonus_square_size": 2,
	"shuffle": false,
	"pieces": [
		{
			"positions": [{"x": 0, "y": 0}, {"x": 1, "y": 0}],
			"cost": 1,
			"distance": 1
		},
		{
			"positions": [{"x": 0, "y": 0}, {"x": 0, "y": 1}, {"x": 1, "y": 1}],
			"cost": 2,
			"distance": 2,
			"collect": 1
		},
		{
			"positions": [{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 0, "y": 1}, {"x": 1, "y": 1}],
			"cost": 0,
			"distance": 3
		}
	],
	"track": [
		{},
		{"collect": true},
		{"piece": {"positions": [{"x": 0, "y": 0}], "cost": 0, "distance": 0}},
		{},
		{"collect": true}
	]
}`

func writeSetup(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write setup file: %v", err)
	}
	return path
}

func TestSetupFiles(t *testing.T) {
	dir := t.TempDir()
	writeSetup(t, dir, "b.json", "{}")
	writeSetup(t, dir, "a.json", "{}")
	writeSetup(t, dir, "notes.txt", "not a setup")

	paths, err := setupFiles(dir)
	if err != nil {
		t.Fatalf("setupFiles returned error: %v", err)
	}

	if len(paths) != 2 {
		t.Fatalf("Expected 2 paths, got %d: %v", len(paths), paths)
	}

	if filepath.Base(paths[0]) != "a.json" || filepath.Base(paths[1]) != "b.json" {
		t.Errorf("Expected sorted [a.json b.json], got %v", paths)
	}
}

func TestSetupFiles_MissingDir(t *testing.T) {
	if _, err := setupFiles("/non/existent/dir"); err == nil {
		t.Error("Expected error for missing directory, got nil")
	}
}

func TestAnalyzeSetup_ValidFile(t *testing.T) {
	path := writeSetup(t, t.TempDir(), "test.json", validSetup)

	var buf bytes.Buffer
	if err := analyzeSetup(path, &buf); err != nil {
		t.Fatalf("analyzeSetup returned error: %v", err)
	}

	out := buf.String()
	expected := []string{
		"Name: Test Setup",
		"Players: 2 | Board: 3x3 | Take depth: 2",
		"Starting currency: 5",
		"Bonus square: 2x2",
		"Pieces: 3 | Total cells: 9 | Sizes: 2..4 (avg 3.0)",
		"Costs: 0..2 (avg 1.0) | Free pieces: 1",
		"Distances: 1..3 | Collecting pieces: 1 (income 1 per pass if all held)",
		"Largest footprint: 2x2",
		"Track: 5 squares | Collect squares: 2 | Granted pieces: 1",
		"✅ Setup validates",
		"✅ All pieces fit the board",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q\nGot:\n%s", want, out)
		}
	}
}

func TestAnalyzeSetup_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	if err := analyzeSetup("/non/existent/file.json", &buf); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestAnalyzeSetup_InvalidJSON(t *testing.T) {
	path := writeSetup(t, t.TempDir(), "bad.json", `{"name": "test", invalid json}`)

	var buf bytes.Buffer
	err := analyzeSetup(path, &buf)
	if err == nil {
		t.Fatal("Expected error for invalid JSON, got nil")
	}
	if !strings.Contains(err.Error(), "failed to parse JSON") {
		t.Errorf("Expected parse error, got: %v", err)
	}
}

func TestAnalyzeSetup_OversizedPiece(t *testing.T) {
	oversized := `{
		"name": "Oversized",
		"players": 2,
		"starting_currency": 5,
		"board_width": 3,
		"board_height": 3,
		"take_depth": 2,
		"shuffle": false,
		"pieces": [
			{
				"positions": [{"x": 0, "y": 0}, {"x": 1, "y": 0}, {"x": 2, "y": 0}, {"x": 3, "y": 0}, {"x": 4, "y": 0}],
				"cost": 1,
				"distance": 1
			}
		],
		"track": [{}, {}]
	}`
	path := writeSetup(t, t.TempDir(), "oversized.json", oversized)

	var buf bytes.Buffer
	if err := analyzeSetup(path, &buf); err != nil {
		t.Fatalf("analyzeSetup returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "1 pieces cannot fit the 3x3 board") {
		t.Errorf("Expected oversized-piece warning, got:\n%s", out)
	}
	if !strings.Contains(out, "Oversized piece #0: 5x1") {
		t.Errorf("Expected per-piece detail line, got:\n%s", out)
	}
}

func TestAnalyzeSetup_FailsValidation(t *testing.T) {
	onePlayer := `{
		"name": "Solo",
		"players": 1,
		"starting_currency": 5,
		"board_width": 3,
		"board_height": 3,
		"take_depth": 2,
		"shuffle": false,
		"pieces": [
			{"positions": [{"x": 0, "y": 0}], "cost": 1, "distance": 1}
		],
		"track": [{}, {}]
	}`
	path := writeSetup(t, t.TempDir(), "solo.json", onePlayer)

	var buf bytes.Buffer
	if err := analyzeSetup(path, &buf); err != nil {
		t.Fatalf("analyzeSetup returned error: %v", err)
	}

	if !strings.Contains(buf.String(), "setup fails validation") {
		t.Errorf("Expected validation warning, got:\n%s", buf.String())
	}
}

func TestAnalyzeSetup_SparsePieceSet(t *testing.T) {
	// One single-cell piece on a 3x3 board: the set can never fill a
	// board nor complete the 2x2 bonus square.
	sparse := `{
		"name": "Sparse",
		"players": 2,
		"starting_currency": 5,
		"board_width": 3,
		"board_height": 3,
		"take_depth": 2,
		"bonus_square_size": 2,
		"shuffle": false,
		"pieces": [
			{"positions": [{"x": 0, "y": 0}], "cost": 9, "distance": 1}
		],
		"track": [{}, {}]
	}`
	path := writeSetup(t, t.TempDir(), "sparse.json", sparse)

	var buf bytes.Buffer
	if err := analyzeSetup(path, &buf); err != nil {
		t.Fatalf("analyzeSetup returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "fewer than the 4 needed to complete the bonus square") {
		t.Errorf("Expected bonus-square warning, got:\n%s", out)
	}
	if !strings.Contains(out, "no board (9 cells) can ever be filled") {
		t.Errorf("Expected fill warning, got:\n%s", out)
	}
	if !strings.Contains(out, "priciest piece costs 9 vs starting currency 5") {
		t.Errorf("Expected affordability note, got:\n%s", out)
	}
}

func TestCommand_ExplicitFiles(t *testing.T) {
	path := writeSetup(t, t.TempDir(), "test.json", validSetup)

	var buf bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &buf

	if err := cmd.Run(context.Background(), []string{"analyze", path}); err != nil {
		t.Fatalf("command returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "=== Analyzing test.json ===") {
		t.Errorf("Expected header line, got:\n%s", out)
	}
	if !strings.Contains(out, "Name: Test Setup") {
		t.Errorf("Expected setup summary, got:\n%s", out)
	}
}

func TestCommand_DirFlag(t *testing.T) {
	dir := t.TempDir()
	writeSetup(t, dir, "one.json", validSetup)
	writeSetup(t, dir, "two.json", `{"name": "test", invalid}`)

	var buf bytes.Buffer
	cmd := newCommand()
	cmd.Writer = &buf

	if err := cmd.Run(context.Background(), []string{"analyze", "--dir", dir}); err != nil {
		t.Fatalf("command returned error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "=== Analyzing one.json ===") {
		t.Errorf("Expected first setup header, got:\n%s", out)
	}
	if !strings.Contains(out, "=== Analyzing two.json ===") {
		t.Errorf("Expected second setup header, got:\n%s", out)
	}
	// A broken file reports inline without aborting the run.
	if !strings.Contains(out, "Error: failed to parse JSON") {
		t.Errorf("Expected inline parse error, got:\n%s", out)
	}
}

func TestCommand_MissingDir(t *testing.T) {
	cmd := newCommand()
	cmd.Writer = &bytes.Buffer{}

	if err := cmd.Run(context.Background(), []string{"analyze", "--dir", "/non/existent/dir"}); err == nil {
		t.Error("Expected error for missing directory, got nil")
	}
}
