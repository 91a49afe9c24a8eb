package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// GameStats is the on-disk record kept between sessions.
type GameStats struct {
	HighScore    int   `json:"highScore"`
	ScoreHistory []int `json:"scoreHistory"`
}

// StateManager persists the high score and score history. The game engine
// never touches storage itself; the front end feeds finished runs in here.
type StateManager struct {
	path         string
	highScore    int
	scoreHistory []int
}

// NewStateManager loads any previously saved stats from path. A missing or
// unreadable file just means a fresh profile.
func NewStateManager(path string) *StateManager {
	sm := &StateManager{path: path}
	sm.Load()
	return sm
}

func (sm *StateManager) Load() error {
	data, err := os.ReadFile(sm.path)
	if err != nil {
		return err
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return err
	}

	sm.highScore = stats.HighScore
	sm.scoreHistory = stats.ScoreHistory
	return nil
}

func (sm *StateManager) Save() error {
	stats := GameStats{
		HighScore:    sm.highScore,
		ScoreHistory: sm.scoreHistory,
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(sm.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(sm.path, data, 0644)
}

// RecordRun appends a finished run's score to the history, raises the high
// score if it was beaten, and saves.
func (sm *StateManager) RecordRun(score int) error {
	if score > sm.highScore {
		sm.highScore = score
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
	return sm.Save()
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

func (sm *StateManager) ScoreHistory() []int {
	return sm.scoreHistory
}
