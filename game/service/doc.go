// Package service provides the business logic layer for the quilting game.
//
// The service package implements:
//   - Multi-session game management
//   - Configuration management and loading
//   - Turn action processing and rule-error translation
//   - Session lifecycle management
//   - JSON view construction for all transports
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages game configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, configuration management, and
// business logic orchestration. Each session maintains its own engine game
// state with an independent piece queue, track, and player boards.
//
// Rule Errors:
//
// Turn actions distinguish rule rejections from real failures. A move the
// rules forbid (piece does not fit, not enough currency, a granted piece is
// still pending) comes back as ActionResult{Success: false} with a stable
// error_code; transport-level problems (unknown session, invalid rotation)
// are returned as errors.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Take the front queue piece and place it at the board origin
//	result, err := gameService.PlacePiece(ctx, sessionInfo.ID, service.PlaceRequest{Depth: 0})
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// game state. Multiple sessions can run concurrently with different
// configurations. Sessions track creation time and last access time.
package service
