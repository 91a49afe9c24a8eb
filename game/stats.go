package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunRecord is the outcome of one finished game.
type RunRecord struct {
	Score     int       `json:"score"`
	Steps     int       `json:"steps"`
	Won       bool      `json:"won"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// RunStats collects the runs of a play session and writes them under
// data/games/<uuid>/stats.json on exit.
type RunStats struct {
	UUID      string      `json:"uuid"`
	StartTime time.Time   `json:"start_time"`
	EndTime   time.Time   `json:"end_time"`
	Runs      []RunRecord `json:"runs"`
}

func NewRunStats() *RunStats {
	return &RunStats{
		UUID:      uuid.New().String(),
		StartTime: time.Now(),
	}
}

func (rs *RunStats) Record(r RunRecord) {
	rs.Runs = append(rs.Runs, r)
}

func (rs *RunStats) Save(dataDir string) error {
	rs.EndTime = time.Now()

	dir := filepath.Join(dataDir, "games", rs.UUID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "stats.json"), data, 0644)
}
