// Package config provides configuration management for the quilting game.
//
// The config package handles:
//   - Loading game setups from JSON files
//   - Configuration validation and verification
//   - Default configuration management
//   - Configuration discovery and listing
//
// Configuration Format:
//
// Game setups are stored as JSON files in the configs directory.
// Each setup defines:
//   - Player count, starting currency, and board dimensions
//   - The piece set: shape cells with cost, distance, and collect values
//   - The race track: square count, collect squares, and piece grants
//   - Queue take depth, the bonus square size, and the shuffle flag
//
// Available Configurations:
//
// The repository ships two setups:
//   - classic: full 9x9 game with the standard piece set and long track
//   - quick: smaller piece set and short track for fast games
//
// A small setup compiled into the binary backs GetDefault when the config
// directory holds no usable files, so the server always starts.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load specific configuration
//	gameConfig, err := manager.LoadConfig("quick")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Get default configuration
//	defaultConfig := manager.GetDefault()
//
//	// List available configurations
//	configs, err := manager.ListConfigs()
//
// Validation:
//
// All configurations are validated on load: at least two players, a
// non-empty piece set, a track of at least two squares, and a bonus square
// that fits the board. Setup files with unknown fields in piece or square
// records are rejected.
package config
