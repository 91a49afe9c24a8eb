package manager

import (
	"path/filepath"
	"testing"
)

func TestStateManagerFreshProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamestats.json")
	sm := NewStateManager(path)

	if sm.HighScore() != 0 {
		t.Errorf("high score = %d, want 0 for a fresh profile", sm.HighScore())
	}
	if len(sm.ScoreHistory()) != 0 {
		t.Errorf("history = %v, want empty", sm.ScoreHistory())
	}
}

func TestStateManagerRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gamestats.json")

	sm := NewStateManager(path)
	if err := sm.RecordRun(5); err != nil {
		t.Fatal(err)
	}
	if err := sm.RecordRun(3); err != nil {
		t.Fatal(err)
	}
	if sm.HighScore() != 5 {
		t.Errorf("high score = %d, want 5: a lower run must not lower it", sm.HighScore())
	}

	reloaded := NewStateManager(path)
	if reloaded.HighScore() != 5 {
		t.Errorf("reloaded high score = %d, want 5", reloaded.HighScore())
	}
	history := reloaded.ScoreHistory()
	if len(history) != 2 || history[0] != 5 || history[1] != 3 {
		t.Errorf("reloaded history = %v, want [5 3]", history)
	}
}

func TestStateManagerCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "gamestats.json")
	sm := NewStateManager(path)

	if err := sm.RecordRun(1); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if NewStateManager(path).HighScore() != 1 {
		t.Error("stats not readable back from a nested directory")
	}
}
