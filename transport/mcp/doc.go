// Package mcp provides a Model Context Protocol server for the quilting game.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for all turn actions and queries
//   - Session-aware command execution
//
// The client is deliberately thin: every tool call is proxied to the REST
// API, so the MCP process never holds game state of its own and can run
// against any server instance.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Boards, track positions, buttons and turn order
//   - queue: The patch queue with the takeable window
//   - place_piece: Buy a queue patch and sew it onto the board
//   - pass: Skip ahead of the next player for buttons
//   - place_granted: Place a pending granted patch
//   - create_session: Create new game session with config selection
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - list_configs: List available game configurations
//   - game_instructions: Full rules and strategy notes
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Play complete games autonomously
//   - Probe placements cheaply (rule rejections are normal answers,
//     not failures)
//   - Manage multiple concurrent game sessions
package mcp
