package manager

import (
	"encoding/json"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MaxRecords is how many finished sessions the history keeps
const MaxRecords = 100

// SessionRecord describes one finished game
type SessionRecord struct {
	ID         string    `json:"id"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Score      int       `json:"score"`
	Difficulty string    `json:"difficulty"`
}

// Duration of the session in seconds
func (r SessionRecord) Duration() float64 {
	return r.EndTime.Sub(r.StartTime).Seconds()
}

// StatsManager keeps the history of finished sessions, oldest first
type StatsManager struct {
	path    string
	records []SessionRecord
	mutex   sync.RWMutex
}

func NewStatsManager(path string) *StatsManager {
	return &StatsManager{
		path:    path,
		records: make([]SessionRecord, 0),
	}
}

// Record appends a finished session and returns it
func (sm *StatsManager) Record(score int, difficulty string, start, end time.Time) SessionRecord {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	rec := SessionRecord{
		ID:         uuid.New().String(),
		StartTime:  start,
		EndTime:    end,
		Score:      score,
		Difficulty: difficulty,
	}
	sm.records = append(sm.records, rec)
	sm.trim()
	return rec
}

func (sm *StatsManager) trim() {
	if len(sm.records) > MaxRecords {
		sm.records = append([]SessionRecord(nil), sm.records[len(sm.records)-MaxRecords:]...)
	}
}

func (sm *StatsManager) GamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.records)
}

func (sm *StatsManager) AverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.records) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.records {
		total += r.Score
	}
	return float64(total) / float64(len(sm.records))
}

func (sm *StatsManager) MedianScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.records) == 0 {
		return 0
	}
	scores := make([]int, len(sm.records))
	for i, r := range sm.records {
		scores[i] = r.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// AverageDuration is the mean session length in seconds
func (sm *StatsManager) AverageDuration() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	if len(sm.records) == 0 {
		return 0
	}
	var total float64
	for _, r := range sm.records {
		total += r.Duration()
	}
	return total / float64(len(sm.records))
}

func (sm *StatsManager) MaxScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	best := 0
	for _, r := range sm.records {
		if r.Score > best {
			best = r.Score
		}
	}
	return best
}

// Load replaces the in-memory history with the file contents. A missing
// file leaves the history empty.
func (sm *StatsManager) Load() error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	data, err := os.ReadFile(sm.path)
	if err != nil {
		if os.IsNotExist(err) {
			sm.records = make([]SessionRecord, 0)
			return nil
		}
		return errors.Wrapf(err, "read stats %s", sm.path)
	}

	var records []SessionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return errors.Wrapf(err, "decode stats %s", sm.path)
	}
	sm.records = records
	sm.trim()
	return nil
}

func (sm *StatsManager) Save() error {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()

	data, err := json.MarshalIndent(sm.records, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode stats")
	}
	if err := os.WriteFile(sm.path, data, 0644); err != nil {
		return errors.Wrapf(err, "write stats %s", sm.path)
	}
	return nil
}
