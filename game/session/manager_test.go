package session

import (
	"strings"
	"testing"
	"time"

	"github.com/quiltworks/quilting/game/engine"
)

func testConfig() *engine.GameConfig {
	return &engine.GameConfig{
		Name:             "test",
		Players:          2,
		StartingCurrency: 5,
		BoardWidth:       9,
		BoardHeight:      9,
		TakeDepth:        2,
		Pieces: []engine.Piece{
			engine.NewPiece([]engine.Position{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1, 2, 0),
			engine.NewPiece([]engine.Position{{X: 0, Y: 0}}, 1, 1, 0),
		},
		Track: make([]engine.SquareConfig, 10),
	}
}

func TestCreateGeneratesID(t *testing.T) {
	m := NewManager()

	sess, err := m.Create("", "test", testConfig())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if len(sess.ID) != 4 {
		t.Errorf("expected a 4-character ID, got %q", sess.ID)
	}
	if sess.Game == nil {
		t.Fatal("expected a game instance")
	}
	if sess.ConfigName != "test" {
		t.Errorf("expected config name 'test', got %q", sess.ConfigName)
	}
}

func TestCreateDuplicateID(t *testing.T) {
	m := NewManager()

	if _, err := m.Create("abcd", "test", testConfig()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := m.Create("abcd", "test", testConfig()); err != ErrSessionAlreadyExists {
		t.Errorf("expected ErrSessionAlreadyExists, got %v", err)
	}
	// Case-insensitive collision.
	if _, err := m.Create("ABCD", "test", testConfig()); err != ErrSessionAlreadyExists {
		t.Errorf("expected ErrSessionAlreadyExists for uppercase ID, got %v", err)
	}
}

func TestGetCaseInsensitive(t *testing.T) {
	m := NewManager()

	created, err := m.Create("AbCd", "test", testConfig())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, id := range []string{"abcd", "ABCD", "AbCd"} {
		got, err := m.Get(id)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", id, err)
		}
		if got != created {
			t.Errorf("Get(%q) returned a different session", id)
		}
	}

	if _, err := m.Get("zzzz"); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSeededGamesAreReproducible(t *testing.T) {
	config := testConfig()
	config.Shuffle = true
	config.Seed = 42

	m := NewManager()
	a, err := m.Create("aaaa", "test", config)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	b, err := m.Create("bbbb", "test", config)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	ap, bp := a.Game.Queue().Pieces(), b.Game.Queue().Pieces()
	for i := range ap {
		if !ap[i].Equal(bp[i]) {
			t.Fatalf("same seed produced different queues at index %d", i)
		}
	}
}

func TestListAndCount(t *testing.T) {
	m := NewManager()

	if m.Count() != 0 {
		t.Errorf("expected 0 sessions, got %d", m.Count())
	}

	m.Create("", "test", testConfig())
	m.Create("", "test", testConfig())

	if m.Count() != 2 {
		t.Errorf("expected 2 sessions, got %d", m.Count())
	}
	if len(m.List()) != 2 {
		t.Errorf("expected 2 sessions in list, got %d", len(m.List()))
	}
}

func TestDelete(t *testing.T) {
	m := NewManager()

	sess, _ := m.Create("", "test", testConfig())

	if err := m.Delete(strings.ToUpper(sess.ID)); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := m.Get(sess.ID); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := m.Delete(sess.ID); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound deleting twice, got %v", err)
	}
}

func TestDeleteFromMemory(t *testing.T) {
	m := NewManager()

	sess, _ := m.Create("", "test", testConfig())

	if err := m.DeleteFromMemory(strings.ToUpper(sess.ID)); err != nil {
		t.Fatalf("DeleteFromMemory failed: %v", err)
	}
	if _, err := m.Get(sess.ID); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound after delete, got %v", err)
	}
	if err := m.DeleteFromMemory(sess.ID); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound deleting twice, got %v", err)
	}
}

func TestUpdateLastAccessed(t *testing.T) {
	m := NewManager()

	sess, _ := m.Create("", "test", testConfig())
	before := sess.LastAccessedAt

	time.Sleep(time.Millisecond)
	if err := m.UpdateLastAccessed(sess.ID); err != nil {
		t.Fatalf("UpdateLastAccessed failed: %v", err)
	}
	if !sess.LastAccessedAt.After(before) {
		t.Error("expected LastAccessedAt to advance")
	}

	if err := m.UpdateLastAccessed("zzzz"); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestCleanupExpiredSessions(t *testing.T) {
	m := NewManager()

	old, _ := m.Create("", "test", testConfig())
	old.LastAccessedAt = time.Now().Add(-2 * time.Hour)
	m.Create("", "test", testConfig())

	removed := m.CleanupExpiredSessions(time.Hour)
	if removed != 1 {
		t.Errorf("expected 1 removed session, got %d", removed)
	}
	if m.Count() != 1 {
		t.Errorf("expected 1 remaining session, got %d", m.Count())
	}
}
