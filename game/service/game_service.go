package service

import (
	"context"
	"time"

	"github.com/quiltworks/quilting/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Turn Actions
	PlacePiece(ctx context.Context, sessionID string, req PlaceRequest) (*ActionResult, error)
	Pass(ctx context.Context, sessionID string) (*ActionResult, error)
	PlaceGranted(ctx context.Context, sessionID string, req PlaceRequest) (*ActionResult, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*GameView, error)
	GetQueue(ctx context.Context, sessionID string) (*QueueView, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error)
	SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, configName string, config *engine.GameConfig) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles game configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}

// Session represents an active game session
type Session struct {
	ID             string
	ConfigName     string
	Game           *engine.GameState
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
