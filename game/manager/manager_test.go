package manager

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/types"

	"github.com/pkg/errors"
)

func TestCheckCollisionWall(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Columns: 10, Rows: 10})
	s := entity.NewSnake([]types.Cell{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 2, Row: 0}}, types.Left)
	s.Body = []types.Cell{{Col: 1, Row: 0}, {Col: 2, Row: 0}, {Col: -1, Row: 0}}
	if got := cm.CheckCollision(s); got != WallCollision {
		t.Errorf("Expected wall collision, got %s", got)
	}
}

func TestCheckCollisionSelf(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Columns: 10, Rows: 10})
	s := entity.NewSnake([]types.Cell{{Col: 5, Row: 5}, {Col: 5, Row: 4}, {Col: 4, Row: 4}, {Col: 4, Row: 5}, {Col: 5, Row: 5}}, types.Up)
	if got := cm.CheckCollision(s); got != SelfCollision {
		t.Errorf("Expected self collision, got %s", got)
	}
}

func TestCheckCollisionNone(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Columns: 10, Rows: 10})
	s := entity.NewSnakeAt(types.Cell{Col: 5, Row: 5})
	if got := cm.CheckCollision(s); got != NoCollision {
		t.Errorf("Expected no collision, got %s", got)
	}
}

func TestScoreStoreMissingFileLoadsZero(t *testing.T) {
	store := NewScoreStore(filepath.Join(t.TempDir(), "highscore.txt"))
	v, err := store.Load()
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if v != 0 {
		t.Errorf("Expected 0, got %d", v)
	}
}

func TestScoreStoreRoundTripAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := NewScoreStore(path).Save(1); err != nil {
		t.Fatalf("Save: %v", err)
	}
	v, err := NewScoreStore(path).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if v != 1 {
		t.Errorf("Expected 1, got %d", v)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "1\n" {
		t.Errorf("Expected decimal text record, got %q", data)
	}
}

func TestScoreStoreCorruptContent(t *testing.T) {
	for _, content := range []string{"abc", "", "12.5", "-4"} {
		path := filepath.Join(t.TempDir(), "highscore.txt")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		v, err := NewScoreStore(path).Load()
		if v != 0 {
			t.Errorf("content %q: expected 0, got %d", content, v)
		}
		if !errors.Is(err, ErrCorruptRecord) {
			t.Errorf("content %q: expected ErrCorruptRecord, got %v", content, err)
		}
	}
}

func TestScoreStoreToleratesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("  42\n"), 0644); err != nil {
		t.Fatal(err)
	}
	v, err := NewScoreStore(path).Load()
	if err != nil || v != 42 {
		t.Errorf("Expected 42, got %d (%v)", v, err)
	}
}

func TestScoreStoreSaveFailure(t *testing.T) {
	store := NewScoreStore(filepath.Join(t.TempDir(), "missing", "dir", "highscore.txt"))
	if err := store.Save(3); err == nil {
		t.Error("Expected write into a missing directory to fail")
	}
}

func TestStatsManagerRecordAndAggregate(t *testing.T) {
	sm := NewStatsManager(filepath.Join(t.TempDir(), "stats.json"))
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, score := range []int{3, 9, 6, 2} {
		sm.Record(score, "medium", start, start.Add(10*time.Second))
	}

	if sm.GamesPlayed() != 4 {
		t.Errorf("Expected 4 games, got %d", sm.GamesPlayed())
	}
	if sm.MaxScore() != 9 {
		t.Errorf("Expected max 9, got %d", sm.MaxScore())
	}
	if sm.AverageScore() != 5 {
		t.Errorf("Expected average 5, got %f", sm.AverageScore())
	}
	if sm.MedianScore() != 4.5 {
		t.Errorf("Expected median 4.5, got %f", sm.MedianScore())
	}

	recs := sm.records
	if recs[0].ID == "" || recs[0].ID == recs[1].ID {
		t.Errorf("Expected unique session ids, got %q and %q", recs[0].ID, recs[1].ID)
	}
	if sm.AverageDuration() != 10 {
		t.Errorf("Expected average duration 10s, got %f", sm.AverageDuration())
	}
}

func TestStatsManagerTrimsHistory(t *testing.T) {
	sm := NewStatsManager(filepath.Join(t.TempDir(), "stats.json"))
	now := time.Now()
	for i := 0; i < MaxRecords+5; i++ {
		sm.Record(i, "easy", now, now)
	}
	recs := sm.records
	if len(recs) != MaxRecords {
		t.Fatalf("Expected %d records, got %d", MaxRecords, len(recs))
	}
	if recs[0].Score != 5 {
		t.Errorf("Expected oldest kept score 5, got %d", recs[0].Score)
	}
}

func TestStatsManagerPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")

	empty := NewStatsManager(path)
	if err := empty.Load(); err != nil {
		t.Fatalf("Expected missing file to load empty, got %v", err)
	}
	if empty.GamesPlayed() != 0 || empty.AverageDuration() != 0 {
		t.Errorf("Expected empty history, got %d", empty.GamesPlayed())
	}

	sm := NewStatsManager(path)
	now := time.Now().UTC().Truncate(time.Second)
	sm.Record(7, "hard", now, now.Add(time.Minute))
	if err := sm.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded := NewStatsManager(path)
	if err := loaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	recs := loaded.records
	if len(recs) != 1 || recs[0].Score != 7 || recs[0].Difficulty != "hard" {
		t.Errorf("Unexpected records after reload: %+v", recs)
	}
}

func TestStatsManagerCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := NewStatsManager(path).Load(); err == nil {
		t.Error("Expected decode error")
	}
}
