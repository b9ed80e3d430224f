package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"classic-snake/config"
	"classic-snake/game/types"
)

func writeConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	data := `{"window_width": 300, "window_height": 300, "background_color": [0,0,0], "color_of_food": [255,0,0], "difficulty": "easy"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cfg
}

func TestNewAppBuildsGameFromConfig(t *testing.T) {
	app := NewApp(writeConfig(t), 1)
	snap := app.Game.Snapshot()
	if snap.Grid != (types.Grid{Columns: 10, Rows: 10}) {
		t.Errorf("Expected 10x10 grid, got %+v", snap.Grid)
	}
	if snap.Difficulty != types.Easy {
		t.Errorf("Expected easy difficulty, got %s", snap.Difficulty)
	}
	if snap.Highscore != 0 {
		t.Errorf("Expected highscore 0 without a record, got %d", snap.Highscore)
	}
}

func TestFinishRecordsSession(t *testing.T) {
	cfg := writeConfig(t)
	app := NewApp(cfg, 1)
	app.Finish()

	again := NewApp(cfg, 2)
	if again.Stats.GamesPlayed() != 1 {
		t.Errorf("Expected one recorded session, got %d", again.Stats.GamesPlayed())
	}
}

func TestSummaryReportsHistory(t *testing.T) {
	app := NewApp(writeConfig(t), 1)
	if got := app.Summary(); got != "Games played: 0, Average: 0.0, Median: 0.0, Best: 0, Average length: 0s" {
		t.Errorf("Unexpected empty summary %q", got)
	}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, score := range []int{4, 1, 7} {
		app.Stats.Record(score, "easy", start, start.Add(30*time.Second))
	}
	want := "Games played: 3, Average: 4.0, Median: 4.0, Best: 7, Average length: 30s"
	if got := app.Summary(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
