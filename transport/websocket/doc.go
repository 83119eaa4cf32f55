// Package websocket provides real-time state streaming for quilting games.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting after each action
//   - Connection lifecycle management (ping/pong, timeouts, cleanup)
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a pair of
// goroutines (readPump/writePump) that manage reading, writing, and cleanup.
// All session bookkeeping happens on the hub's Run loop, so broadcasts and
// registrations never race.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded envelopes:
//
//	{"sessionId": "abc1", "event": "state_update", "gameState": {...}}
//
// where gameState carries the same view the REST API returns. Clients are
// read-only observers; actions go through the HTTP API, which broadcasts the
// resulting state to every socket watching that session.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=abc1) when
// establishing the connection. State updates are broadcast only to clients
// connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r, r.URL.Query().Get("session"))
//	})
//
// Connection Lifecycle:
//
// 1. Client connects with a session ID
// 2. Connection registered with the hub
// 3. Client receives a state update after every successful action
// 4. Disconnection (or a missed pong) triggers cleanup
package websocket
