package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/quiltworks/quilting/game/engine"
)

// ruleErrors maps player-attributable engine errors to stable codes. These
// come back as ActionResult.ErrorCode with Success=false rather than as a
// transport error: a rejected move is a normal game answer, not a failure.
var ruleErrors = map[error]string{
	engine.ErrOverhangsRight:       "overhangs_right",
	engine.ErrOverhangsBottom:      "overhangs_bottom",
	engine.ErrOverlapsPiece:        "overlaps_piece",
	engine.ErrTakeOverDepth:        "take_over_depth",
	engine.ErrOutOfPieces:          "out_of_pieces",
	engine.ErrInsufficientCurrency: "insufficient_currency",
	engine.ErrPendingPlacement:     "pending_placement",
	engine.ErrNoPendingPiece:       "no_pending_piece",
}

// ErrGameOver is returned for turn actions on a finished game.
var ErrGameOver = errors.New("game is over")

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			// Provide helpful error message with available options
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		configName = "default"
		config = s.configs.GetDefault()
	}

	// Let session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", configName, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return sessionInfo(session), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sessionInfo(session), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}
	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// PlacePiece takes the queue piece at req.Depth and places it on the
// current player's board.
func (s *gameServiceImpl) PlacePiece(ctx context.Context, sessionID string, req PlaceRequest) (*ActionResult, error) {
	return s.act(sessionID, func(game *engine.GameState) (*engine.TurnOutcome, error) {
		t, err := transformation(req)
		if err != nil {
			return nil, err
		}
		return game.PlacePiece(req.Depth, engine.Position{X: req.X, Y: req.Y}, t)
	})
}

// Pass advances the current player past the next player, earning currency.
func (s *gameServiceImpl) Pass(ctx context.Context, sessionID string) (*ActionResult, error) {
	return s.act(sessionID, func(game *engine.GameState) (*engine.TurnOutcome, error) {
		return game.Pass()
	})
}

// PlaceGranted places the current player's oldest pending granted piece.
// req.Depth is ignored.
func (s *gameServiceImpl) PlaceGranted(ctx context.Context, sessionID string, req PlaceRequest) (*ActionResult, error) {
	return s.act(sessionID, func(game *engine.GameState) (*engine.TurnOutcome, error) {
		t, err := transformation(req)
		if err != nil {
			return nil, err
		}
		return game.PlaceGranted(engine.Position{X: req.X, Y: req.Y}, t)
	})
}

// act runs one turn action under the write lock, translating rule errors
// into a failed ActionResult and auto-saving the session on success.
func (s *gameServiceImpl) act(sessionID string, action func(*engine.GameState) (*engine.TurnOutcome, error)) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	if sess.Game.IsGameOver() {
		return nil, ErrGameOver
	}

	outcome, err := action(sess.Game)
	if err != nil {
		if code, ok := ruleError(err); ok {
			return &ActionResult{
				Success:   false,
				Message:   err.Error(),
				ErrorCode: code,
				GameState: NewGameView(sess.Game),
			}, nil
		}
		return nil, err
	}

	if err := s.sessions.Save(sessionID); err != nil {
		logrus.WithError(err).WithField("session", sessionID).Warn("failed to persist session after action")
	}

	result := &ActionResult{
		Success:   true,
		Outcome:   outcomeView(outcome),
		GameState: NewGameView(sess.Game),
	}
	if sess.Game.IsGameOver() {
		result.Message = "game over"
	}
	return result, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*GameView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return NewGameView(sess.Game), nil
}

// GetQueue retrieves the piece queue for a session
func (s *gameServiceImpl) GetQueue(ctx context.Context, sessionID string) (*QueueView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return NewQueueView(sess.Game), nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}

// transformation builds the engine transformation from a request.
func transformation(req PlaceRequest) (engine.Transformation, error) {
	rotation, err := engine.RotationFromDegrees(req.Rotation)
	if err != nil {
		return engine.Transformation{}, err
	}
	flip, err := engine.ParseFlip(req.Flip)
	if err != nil {
		return engine.Transformation{}, err
	}
	return engine.Transformation{Rotation: rotation, Flip: flip}, nil
}

// ruleError reports whether err is a player-attributable rule rejection.
func ruleError(err error) (string, bool) {
	for sentinel, code := range ruleErrors {
		if errors.Is(err, sentinel) {
			return code, true
		}
	}
	return "", false
}

func sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigName:     sess.ConfigName,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      NewGameView(sess.Game),
	}
}

func outcomeView(o *engine.TurnOutcome) *Outcome {
	view := &Outcome{
		Player:         int(o.Player),
		Moved:          o.Moved,
		CollectSquares: o.CollectSquares,
		Collected:      o.Collected,
		Earned:         o.Earned,
		Granted:        len(o.Granted),
		BonusAwarded:   o.BonusAwarded,
	}
	if o.Piece != nil {
		view.Piece = NewPieceView(*o.Piece)
	}
	return view
}
