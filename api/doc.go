// Package api provides HTTP REST API handlers for the quilting game server.
//
// The api package implements:
//   - RESTful endpoints for turn actions
//   - Session management endpoints
//   - Configuration listing, loading and creation
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional {"config_id": "classic"})
//   - GET /api/sessions - List sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game view
//   - GET /api/sessions/{id}/queue - Piece queue with takeable window
//   - POST /api/sessions/{id}/place - Take a queue piece and sew it on
//   - POST /api/sessions/{id}/pass - Skip ahead of the next player for buttons
//   - POST /api/sessions/{id}/place-granted - Place a pending granted patch
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - GET /api/configs/{name} - Full setup for one configuration
//   - POST /api/configs - Save a new configuration
//
// Placement requests are sent as POST with JSON body:
//
//	{
//	  "depth": 0,              // queue index, 0..depth (place only)
//	  "x": 3, "y": 4,          // board position of the shape's top-left
//	  "rotation": 90,          // 0, 90, 180 or 270
//	  "flip": "horizontal"     // "none" (default) or "horizontal"
//	}
//
// Error Handling:
//
// Rule rejections (overlap, overhang, not enough buttons, ...) come back as
// HTTP 200 with {"success": false, "error_code": "..."}: a refused move is a
// normal game answer. Transport failures use status codes: 404 for unknown
// sessions, 409 for actions on a finished game, 400 for malformed requests.
// Errors are returned as JSON:
//
//	{
//	  "error": "error message"
//	}
package api
