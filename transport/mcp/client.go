package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/quiltworks/quilting/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Quilting Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Quilting Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Cover your quilt board with patches. The final score is covered cells plus
the bonus for being first to fill a full square; buttons (currency) buy
patches and are earned along the time track.

AVAILABLE TOOLS:
- game_state: Full board, track and player view
- queue: The patch queue with the takeable window
- place_piece: Buy a patch from the queue and sew it on - requires intent explanation
- pass: Skip ahead of the next player, earning one button per square
- place_granted: Place a pending granted 1x1 patch
- create_session: Create new game session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available configurations
- game_instructions: Get comprehensive game instructions and rules

NOTE: The 'intent' parameter on place_piece serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game state
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state: boards, track positions, buttons and whose turn it is",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "queue",
		Description: "Get the patch queue. Only the first pieces up to the take depth can be bought this turn",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleQueue)

	// Turn actions
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "place_piece",
		Description: "Buy a patch from the queue and place it on the current player's board",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"depth": map[string]interface{}{
					"type":        "integer",
					"description": "Queue index of the patch to take (0 = front, up to the take depth)",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "Board column of the shape's top-left cell (0-based)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Board row of the shape's top-left cell (0-based)",
				},
				"rotation": map[string]interface{}{
					"type":        "integer",
					"enum":        []int{0, 90, 180, 270},
					"description": "Clockwise rotation in degrees",
				},
				"flip": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"none", "horizontal"},
					"description": "Mirror the shape before rotating",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this placement (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id", "depth", "x", "y"},
		},
	}, c.handlePlacePiece)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "pass",
		Description: "Skip past the next player on the time track, earning one button per square moved",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePass)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "place_granted",
		Description: "Place the oldest pending granted patch. Required before any other action when a granted patch is pending",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "Board column (0-based)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Board row (0-based)",
				},
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handlePlaceGranted)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available game configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state service.GameView
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameView(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleQueue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var queue service.QueueView
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/queue", sessionID), nil, &queue)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatQueue(&queue)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePlacePiece(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := placeBody(args)

	var result service.ActionResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/place", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatActionResult("Placement", &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handlePass(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.ActionResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/pass", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatActionResult("Pass", &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handlePlaceGranted(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	body := placeBody(args)

	var result service.ActionResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/place-granted", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatActionResult("Granted placement", &result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Players: %d, Board: %dx%d, Pieces: %d, Track: %d squares\n\n",
			config.Name, config.ConfigID, config.Description,
			config.Players, config.BoardWidth, config.BoardHeight, config.Pieces, config.TrackSize)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `🧵 Quilting Game - Complete Instructions

GAME OBJECTIVE:
Cover as much of your quilt board as possible. Final score is covered cells
plus the 7x7 bonus (first player to fill a complete square of the configured
size). Buttons are the currency: you spend them to buy patches and earn them
along the time track.

TURN ORDER:
The player furthest BEHIND on the time track moves; on ties the player who
arrived last moves first. You may take several turns in a row while you stay
behind your opponent.

ACTIONS (exactly one per turn, unless a granted patch is pending):

1. PLACE A PATCH (place_piece):
   • Choose one of the first patches in the queue (up to the take depth)
   • Pay its button cost, sew it anywhere it fits on your board
   • Advance on the track by the patch's distance
   • Patches may be rotated (0/90/180/270) and flipped horizontally
   • Some patches carry button icons: they raise your collect rate

2. PASS (pass):
   • Jump to the square just past the next player
   • Earn one button per square moved

GRANTED PATCHES:
Some track squares hold a 1x1 patch. The first player to cross one receives
it and MUST place it (place_granted) before any other action. It costs
nothing and does not move you.

COLLECT SQUARES:
Crossing a collect square pays buttons equal to your collect rate (one per
button icon on patches you have sewn).

BOARD NOTATION:
Boards and shapes are rendered as rows of '#' (covered) and '-' (open).
Placement coordinates give the board cell under the shape's top-left cell,
AFTER rotation and flip are applied.

GAME END:
The game ends when every player reaches the end of the track or the patch
queue runs out. Highest score wins; ties share the win.

STRATEGY TIPS:
• Cheap patches with low distance keep you behind, giving you extra turns
• Button-icon patches pay off on every remaining collect square
• A rejected action costs nothing: probe placements freely, the error code
  (overlaps_piece, overhangs_right, insufficient_currency, ...) tells you why
• Watch the queue: BOTH players buy from the same takeable window

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent state and configuration

Good luck, and mind your buttons! 🧵🔲`

	return mcp.NewToolResultText(instructions), nil
}

// placeBody extracts the placement fields MCP delivers as float64s.
func placeBody(args map[string]interface{}) map[string]interface{} {
	body := map[string]interface{}{}
	if depth, ok := args["depth"].(float64); ok {
		body["depth"] = int(depth)
	}
	if x, ok := args["x"].(float64); ok {
		body["x"] = int(x)
	}
	if y, ok := args["y"].(float64); ok {
		body["y"] = int(y)
	}
	if rotation, ok := args["rotation"].(float64); ok {
		body["rotation"] = int(rotation)
	}
	if flip, ok := args["flip"].(string); ok && flip != "" {
		body["flip"] = flip
	}
	return body
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameView(session.GameState))
}

func formatGameView(state *service.GameView) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder

	if state.GameOver {
		b.WriteString("🏁 GAME OVER\n")
		if len(state.Winners) == 1 {
			b.WriteString(fmt.Sprintf("Winner: player %d\n", state.Winners[0]))
		} else if len(state.Winners) > 1 {
			b.WriteString(fmt.Sprintf("Tied winners: %v\n", state.Winners))
		}
	} else {
		b.WriteString(fmt.Sprintf("Turn: player %d (next: player %d)\n", state.CurrentPlayer, state.NextPlayer))
	}
	b.WriteString(fmt.Sprintf("Queue: %d pieces remaining", state.QueueSize))
	if state.BonusSquareSize > 0 {
		b.WriteString(fmt.Sprintf(" | %dx%d bonus still available", state.BonusSquareSize, state.BonusSquareSize))
	}
	b.WriteString("\n")

	for _, p := range state.Players {
		marker := " "
		if !state.GameOver && p.Index == state.CurrentPlayer {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("\n%sPlayer %d | Track: %d | Buttons: %d | Collect rate: %d | Covered: %d | Score: %d\n",
			marker, p.Index, p.Position, p.Currency, p.CollectRate, p.Covered, p.Score))
		for _, row := range p.Board {
			b.WriteString(row + "\n")
		}
		if len(p.Pending) > 0 {
			b.WriteString(fmt.Sprintf("Pending granted patches: %d (must be placed before any other action)\n", len(p.Pending)))
		}
	}

	b.WriteString("\nTrack: ")
	b.WriteString(formatTrackLine(state.Track))
	b.WriteString("\n")

	return b.String()
}

// formatTrackLine renders the track one character per square: digits for
// player positions, $ for collect squares, + for waiting granted patches.
func formatTrackLine(track []service.SquareView) string {
	var b strings.Builder
	for _, sq := range track {
		switch {
		case len(sq.Players) > 0:
			b.WriteString(fmt.Sprintf("%d", sq.Players[len(sq.Players)-1]))
		case sq.Piece != nil:
			b.WriteString("+")
		case sq.Collect:
			b.WriteString("$")
		default:
			b.WriteString(".")
		}
	}
	return b.String()
}

func formatQueue(queue *service.QueueView) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Queue: %d pieces, take depth %d (first %d takeable)\n",
		queue.Size, queue.Depth, len(queue.Takeable)))

	for i, piece := range queue.Pieces {
		tag := ""
		if i < len(queue.Takeable) {
			tag = " [takeable]"
		}
		b.WriteString(fmt.Sprintf("\n#%d%s cost=%d distance=%d", i, tag, piece.Cost, piece.Distance))
		if piece.Collect > 0 {
			b.WriteString(fmt.Sprintf(" buttons=%d", piece.Collect))
		}
		b.WriteString("\n")
		for _, row := range piece.Shape {
			b.WriteString(row + "\n")
		}
	}

	return b.String()
}

func formatActionResult(action string, result *service.ActionResult) string {
	var b strings.Builder

	if result.Success {
		b.WriteString(fmt.Sprintf("✓ %s successful\n", action))
		if o := result.Outcome; o != nil {
			b.WriteString(fmt.Sprintf("Player %d", o.Player))
			if o.Moved > 0 {
				b.WriteString(fmt.Sprintf(" moved %d squares", o.Moved))
			}
			if o.Earned > 0 {
				b.WriteString(fmt.Sprintf(", earned %d buttons", o.Earned))
			}
			if o.Collected > 0 {
				b.WriteString(fmt.Sprintf(", collected %d buttons from %d collect squares", o.Collected, o.CollectSquares))
			}
			if o.Granted > 0 {
				b.WriteString(fmt.Sprintf(", received %d granted patch(es)", o.Granted))
			}
			if o.BonusAwarded {
				b.WriteString(", BONUS AWARDED")
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString(fmt.Sprintf("✗ %s rejected [%s]: %s\n", action, result.ErrorCode, result.Message))
	}

	if result.Message != "" && result.Success {
		b.WriteString(result.Message + "\n")
	}

	b.WriteString("\n")
	b.WriteString(formatGameView(result.GameState))
	return b.String()
}
