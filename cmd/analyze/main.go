// Command analyze prints quick, human-readable statistics about setup
// files: piece economics, track layout, and warnings about setups that
// cannot play out well on the configured board.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/quiltworks/quilting/game/engine"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "summarize quilting setup files",
		ArgsUsage: "[setup.json ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Value:   "configs",
				Usage:   "directory scanned when no files are given",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				var err error
				paths, err = setupFiles(cmd.String("dir"))
				if err != nil {
					return err
				}
			}

			for _, path := range paths {
				fmt.Fprintf(cmd.Writer, "\n=== Analyzing %s ===\n", filepath.Base(path))
				if err := analyzeSetup(path, cmd.Writer); err != nil {
					fmt.Fprintf(cmd.Writer, "Error: %v\n", err)
				}
			}
			return nil
		},
	}
}

// setupFiles lists the JSON files in dir, sorted by name.
func setupFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read setup directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// analyzeSetup reads one setup file and writes its statistics to w.
func analyzeSetup(path string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	fmt.Fprintf(w, "Name: %s\n", config.Name)
	fmt.Fprintf(w, "Players: %d | Board: %dx%d | Take depth: %d\n",
		config.Players, config.BoardWidth, config.BoardHeight, config.TakeDepth)
	fmt.Fprintf(w, "Starting currency: %d\n", config.StartingCurrency)
	if config.BonusSquareSize > 0 {
		fmt.Fprintf(w, "Bonus square: %dx%d\n", config.BonusSquareSize, config.BonusSquareSize)
	} else {
		fmt.Fprintf(w, "Bonus square: disabled\n")
	}

	writePieceStats(w, config.Pieces)
	writeTrackStats(w, config.Track)
	writeWarnings(w, &config)
	return nil
}

func writePieceStats(w io.Writer, pieces []engine.Piece) {
	if len(pieces) == 0 {
		fmt.Fprintf(w, "Pieces: none\n")
		return
	}

	id := engine.Identity()
	totalCells, totalCost, free, collecting := 0, 0, 0, 0
	minSize, maxSize := pieces[0].Size(), pieces[0].Size()
	minCost, maxCost := pieces[0].Cost(), pieces[0].Cost()
	minDist, maxDist := pieces[0].Distance(), pieces[0].Distance()
	collectPerPass := 0
	maxWidth, maxHeight := 0, 0

	for _, p := range pieces {
		totalCells += p.Size()
		totalCost += p.Cost()
		minSize = min(minSize, p.Size())
		maxSize = max(maxSize, p.Size())
		minCost = min(minCost, p.Cost())
		maxCost = max(maxCost, p.Cost())
		minDist = min(minDist, p.Distance())
		maxDist = max(maxDist, p.Distance())
		maxWidth = max(maxWidth, p.Width(id))
		maxHeight = max(maxHeight, p.Height(id))
		if p.Cost() == 0 {
			free++
		}
		if p.Collect() > 0 {
			collecting++
			collectPerPass += p.Collect()
		}
	}

	fmt.Fprintf(w, "Pieces: %d | Total cells: %d | Sizes: %d..%d (avg %.1f)\n",
		len(pieces), totalCells, minSize, maxSize, float64(totalCells)/float64(len(pieces)))
	fmt.Fprintf(w, "Costs: %d..%d (avg %.1f) | Free pieces: %d\n",
		minCost, maxCost, float64(totalCost)/float64(len(pieces)), free)
	fmt.Fprintf(w, "Distances: %d..%d | Collecting pieces: %d (income %d per pass if all held)\n",
		minDist, maxDist, collecting, collectPerPass)
	fmt.Fprintf(w, "Largest footprint: %dx%d\n", maxWidth, maxHeight)
}

func writeTrackStats(w io.Writer, track []engine.SquareConfig) {
	collect, granted := 0, 0
	for _, sq := range track {
		if sq.Collect {
			collect++
		}
		if sq.Piece != nil {
			granted++
		}
	}
	fmt.Fprintf(w, "Track: %d squares | Collect squares: %d | Granted pieces: %d\n",
		len(track), collect, granted)
}

func writeWarnings(w io.Writer, config *engine.GameConfig) {
	if err := engine.ValidateGameConfig(config); err != nil {
		fmt.Fprintf(w, "⚠️  WARNING: setup fails validation: %v\n", err)
	} else {
		fmt.Fprintf(w, "✅ Setup validates\n")
	}

	boardW, boardH := config.BoardWidth, config.BoardHeight
	id := engine.Identity()
	oversized := 0
	for i, p := range config.Pieces {
		pw, ph := p.Width(id), p.Height(id)
		// Rotations only swap width and height, so a piece fits when
		// either orientation does.
		fits := (pw <= boardW && ph <= boardH) || (ph <= boardW && pw <= boardH)
		if !fits {
			oversized++
			if oversized <= 5 {
				fmt.Fprintf(w, "   Oversized piece #%d: %dx%d does not fit %dx%d\n",
					i, pw, ph, boardW, boardH)
			}
		}
	}
	if oversized > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d pieces cannot fit the %dx%d board in any orientation!\n",
			oversized, boardW, boardH)
	} else if len(config.Pieces) > 0 {
		fmt.Fprintf(w, "✅ All pieces fit the board\n")
	}

	totalCells := 0
	maxCost := 0
	for _, p := range config.Pieces {
		totalCells += p.Size()
		maxCost = max(maxCost, p.Cost())
	}

	if n := config.BonusSquareSize; n > 0 && totalCells < n*n {
		fmt.Fprintf(w, "⚠️  WARNING: piece set has %d cells, fewer than the %d needed to complete the bonus square!\n",
			totalCells, n*n)
	}
	if area := boardW * boardH; totalCells < area {
		fmt.Fprintf(w, "⚠️  WARNING: piece set has %d cells, so no board (%d cells) can ever be filled\n",
			totalCells, area)
	}
	if maxCost > config.StartingCurrency {
		fmt.Fprintf(w, "Note: priciest piece costs %d vs starting currency %d; players must collect before taking it\n",
			maxCost, config.StartingCurrency)
	}
}
