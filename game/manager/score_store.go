package manager

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrCorruptRecord is returned by Load when the file holds anything other
// than a non-negative decimal integer.
var ErrCorruptRecord = errors.New("corrupt highscore record")

// ScoreStore persists the best score as decimal text in a single file
type ScoreStore struct {
	path string
}

func NewScoreStore(path string) *ScoreStore {
	return &ScoreStore{path: path}
}

// Load returns the stored highscore. A missing file is not an error. On any
// error the returned value is 0 and callers may treat it as "no record".
func (s *ScoreStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "read highscore %s", s.path)
	}

	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, errors.Wrapf(ErrCorruptRecord, "parse %s: %v", s.path, err)
	}
	if value < 0 {
		return 0, errors.Wrapf(ErrCorruptRecord, "negative value %d in %s", value, s.path)
	}
	return value, nil
}

// Save overwrites the record with value
func (s *ScoreStore) Save(value int) error {
	data := []byte(strconv.Itoa(value) + "\n")
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, "write highscore %s", s.path)
	}
	return nil
}
