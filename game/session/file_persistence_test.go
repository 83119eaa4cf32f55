package session

import (
	"testing"

	"github.com/quiltworks/quilting/game/service"
)

func newTestPersistence(t *testing.T) *FilePersistence {
	t.Helper()
	fp, err := NewFilePersistence(t.TempDir())
	if err != nil {
		t.Fatalf("NewFilePersistence failed: %v", err)
	}
	return fp
}

func newTestSession(t *testing.T, id string) *service.Session {
	t.Helper()
	m := NewManager()
	sess, err := m.Create(id, "test", testConfig())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	return sess
}

func TestSaveAndLoad(t *testing.T) {
	fp := newTestPersistence(t)
	sess := newTestSession(t, "ab12")

	// Play a move so the persisted state differs from a fresh game.
	if _, err := sess.Game.Pass(); err != nil {
		t.Fatalf("Pass failed: %v", err)
	}

	if err := fp.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !fp.Exists("ab12") {
		t.Fatal("expected session file to exist")
	}

	loaded, err := fp.Load("ab12")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.ID != sess.ID {
		t.Errorf("expected ID %q, got %q", sess.ID, loaded.ID)
	}
	if loaded.ConfigName != "test" {
		t.Errorf("expected config name 'test', got %q", loaded.ConfigName)
	}
	if loaded.Config == nil || loaded.Config.Name != "test" {
		t.Error("expected the full config to round-trip")
	}

	// The pass earned player 0 one currency; the restored game agrees.
	if got := loaded.Game.Player(0).Currency(); got != 6 {
		t.Errorf("expected restored currency 6, got %d", got)
	}
	if got := loaded.Game.Track().PlayerPosition(0); got != 1 {
		t.Errorf("expected restored position 1, got %d", got)
	}
}

func TestSaveNil(t *testing.T) {
	fp := newTestPersistence(t)
	if err := fp.Save(nil); err == nil {
		t.Error("expected error saving nil session")
	}
}

func TestLoadMissing(t *testing.T) {
	fp := newTestPersistence(t)
	if _, err := fp.Load("zzzz"); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeletePersisted(t *testing.T) {
	fp := newTestPersistence(t)
	sess := newTestSession(t, "cd34")

	if err := fp.Save(sess); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := fp.Delete("cd34"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if fp.Exists("cd34") {
		t.Error("expected session file to be gone")
	}
	if err := fp.Delete("cd34"); err != ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound deleting twice, got %v", err)
	}
}

func TestListAll(t *testing.T) {
	fp := newTestPersistence(t)

	ids, err := fp.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no sessions, got %v", ids)
	}

	fp.Save(newTestSession(t, "aa11"))
	fp.Save(newTestSession(t, "bb22"))

	ids, err = fp.ListAll()
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(ids) != 2 {
		t.Errorf("expected 2 sessions, got %v", ids)
	}
}

func TestManagerWithPersistence(t *testing.T) {
	fp := newTestPersistence(t)
	m := NewManagerWithPersistence(fp)

	sess, err := m.Create("ef56", "test", testConfig())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !fp.Exists(sess.ID) {
		t.Fatal("expected session to be persisted on creation")
	}

	// A fresh manager sharing the store finds the session on Get.
	other := NewManagerWithPersistence(fp)
	loaded, err := other.Get("ef56")
	if err != nil {
		t.Fatalf("Get from persistence failed: %v", err)
	}
	if loaded.ID != "ef56" {
		t.Errorf("expected session ef56, got %q", loaded.ID)
	}

	// LoadPersistedSessions warms the cache of another fresh manager.
	third := NewManagerWithPersistence(fp)
	if err := third.LoadPersistedSessions(); err != nil {
		t.Fatalf("LoadPersistedSessions failed: %v", err)
	}
	if third.Count() != 1 {
		t.Errorf("expected 1 loaded session, got %d", third.Count())
	}

	// Delete removes the file too.
	if err := m.Delete("ef56"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if fp.Exists("ef56") {
		t.Error("expected persisted file to be removed")
	}
}

func TestSaveAllSessions(t *testing.T) {
	fp := newTestPersistence(t)
	m := NewManagerWithPersistence(fp)

	m.Create("", "test", testConfig())
	m.Create("", "test", testConfig())

	if err := m.SaveAllSessions(); err != nil {
		t.Fatalf("SaveAllSessions failed: %v", err)
	}

	ids, _ := fp.ListAll()
	if len(ids) != 2 {
		t.Errorf("expected 2 persisted sessions, got %v", ids)
	}
}
