// Command validate provides a small CLI that validates game setup JSON
// files in the configs directory. It checks:
//   - JSON structure and required fields
//   - The engine's playability rules (player count, board size, take depth,
//     bonus square, non-empty piece set, minimum track length)
//   - Piece shapes: every piece must cover at least one cell, form a single
//     4-connected patch, and fit the board in some orientation
//   - Track squares: granted pieces must also be connected and fit the board
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quiltworks/quilting/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateSetup loads and validates a single setup JSON file. It runs the
// engine's own playability checks and then the stricter shape checks the
// engine leaves to tooling.
func validateSetup(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidateGameConfig(&config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Playability: %v", err))
	}

	// Validate piece shapes
	collectSquares := 0
	grantedPieces := 0
	totalCells := 0

	for i, piece := range config.Pieces {
		totalCells += piece.Size()
		for _, problem := range validatePieceShape(piece, config.BoardWidth, config.BoardHeight) {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Piece %d: %s", i, problem))
		}
	}

	// Validate track squares
	for i, square := range config.Track {
		if square.Collect {
			collectSquares++
		}
		if square.Piece == nil {
			continue
		}
		grantedPieces++
		for _, problem := range validatePieceShape(*square.Piece, config.BoardWidth, config.BoardHeight) {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Track square %d grant: %s", i, problem))
		}
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Players: %d", config.Players))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Board: %dx%d", config.BoardWidth, config.BoardHeight))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Pieces: %d (%d cells)", len(config.Pieces), totalCells))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Track: %d squares, %d collect, %d grants", len(config.Track), collectSquares, grantedPieces))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Starting currency: %d", config.StartingCurrency))
	}

	return result
}

// validatePieceShape checks one piece against the board: it must cover at
// least one cell, its cells must form a single 4-connected patch, and it
// must fit the board in at least one orientation.
func validatePieceShape(piece engine.Piece, boardWidth, boardHeight int) []string {
	var problems []string

	if piece.Size() == 0 {
		return []string{"covers no cells"}
	}

	if !pieceConnected(piece) {
		problems = append(problems, "cells do not form a single connected patch")
	}

	w := piece.Width(engine.Identity())
	h := piece.Height(engine.Identity())
	// Rotations only swap width and height.
	fits := (w <= boardWidth && h <= boardHeight) || (h <= boardWidth && w <= boardHeight)
	if !fits {
		problems = append(problems, fmt.Sprintf("%dx%d does not fit the %dx%d board in any orientation", w, h, boardWidth, boardHeight))
	}

	return problems
}

// pieceConnected reports whether the piece's cells form one 4-connected
// patch, using a flood fill from the first cell.
func pieceConnected(piece engine.Piece) bool {
	positions := piece.Positions(engine.Identity())
	if len(positions) <= 1 {
		return true
	}

	cells := make(map[engine.Position]bool, len(positions))
	for _, pos := range positions {
		cells[pos] = true
	}

	visited := make(map[engine.Position]bool, len(positions))
	queue := []engine.Position{positions[0]}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true

		neighbors := []engine.Position{
			{X: current.X - 1, Y: current.Y},
			{X: current.X + 1, Y: current.Y},
			{X: current.X, Y: current.Y - 1},
			{X: current.X, Y: current.Y + 1},
		}
		for _, n := range neighbors {
			if cells[n] && !visited[n] {
				queue = append(queue, n)
			}
		}
	}

	return len(visited) == len(positions)
}

// main scans the configs directory (or the directory given as the first
// argument) for *.json files and validates each one, printing a concise
// report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding setup files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateSetup(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All setups are valid!")
	} else {
		fmt.Println("❌ Some setups have errors")
		os.Exit(1)
	}
}
