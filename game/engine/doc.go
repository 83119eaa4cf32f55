// Package engine provides the core rules for the quilting game.
//
// The engine package implements the game mechanics including:
//   - Piece geometry: rotation and flip transformations of polyomino pieces
//   - Per-player quilt boards with overlap and overhang validation
//   - The shared, depth-limited piece queue
//   - The time board that drives turn order and movement side effects
//   - Game state aggregation, turn actions, and the bonus square award
//
// Core Types:
//
// GameState owns one complete game and exposes the turn actions PlacePiece,
// Pass, and PlaceGranted. GameConfig describes a game setup loaded from JSON
// files and is validated by ValidateGameConfig before NewGame assembles the
// state.
//
// Usage:
//
//	rng := rand.New(rand.NewSource(seed))
//	game, err := engine.NewGame(config, rng)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome, err := game.PlacePiece(0, engine.Position{X: 2, Y: 1}, engine.Identity())
//	if errors.Is(err, engine.ErrOverlapsPiece) {
//		// ask the player to retry
//	}
//
// Error Model:
//
// Outcomes a player can cause during normal play (invalid placements,
// invalid queue takes, insufficient currency) are sentinel errors and never
// mutate state. Violations of the caller contract, such as moving after the
// game is over or moving a non-positive distance, panic.
//
// Concurrency:
//
// The engine is single-threaded by design. One logical goroutine must drive
// each GameState; the service layer provides that serialization. The only
// injected dependency is the Rand source used by the initial shuffles.
package engine
