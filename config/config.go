package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"classic-snake/game/entity"
	"classic-snake/game/types"

	"github.com/pkg/errors"
)

// DefaultPath is where the game looks for its settings
const DefaultPath = "config.json"

// Color decodes from a JSON [r, g, b] array
type Color types.Color

func (c *Color) UnmarshalJSON(data []byte) error {
	var rgb []int
	if err := json.Unmarshal(data, &rgb); err != nil {
		return errors.Wrap(err, "color must be an [r, g, b] array")
	}
	if len(rgb) != 3 {
		return errors.Errorf("color needs 3 components, got %d", len(rgb))
	}
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return errors.Errorf("color component %d out of range 0-255", v)
		}
	}
	*c = Color{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2])}
	return nil
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]int{int(c.R), int(c.G), int(c.B)})
}

// RGB converts to the engine color type
func (c Color) RGB() types.Color {
	return types.Color(c)
}

type Config struct {
	WindowWidth     int    `json:"window_width"`
	WindowHeight    int    `json:"window_height"`
	BackgroundColor *Color `json:"background_color"`
	FoodColor       *Color `json:"color_of_food"`
	SnakeColor      *Color `json:"color_of_snake"`
	Difficulty      string `json:"difficulty"`
	HighscoreFile   string `json:"highscore_file"`
	StatsFile       string `json:"stats_file"`
	MusicFile       string `json:"music_file"`
}

const (
	defaultHighscoreFile = "highscore.txt"
	defaultStatsFile     = "stats.json"
	defaultMusicFile     = "crazy_frog.mp3"
)

var defaultSnakeColor = Color{R: 0, G: 255, B: 0}

// Load reads and validates the config file. Relative data paths are
// resolved against the config file's directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	dir := filepath.Dir(path)
	cfg.HighscoreFile = resolve(dir, cfg.HighscoreFile)
	cfg.StatsFile = resolve(dir, cfg.StatsFile)
	cfg.MusicFile = resolve(dir, cfg.MusicFile)
	return cfg, nil
}

// Parse decodes config JSON, applies defaults and validates it
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SnakeColor == nil {
		sc := defaultSnakeColor
		c.SnakeColor = &sc
	}
	if c.Difficulty == "" {
		c.Difficulty = types.DefaultDifficulty.String()
	}
	if c.HighscoreFile == "" {
		c.HighscoreFile = defaultHighscoreFile
	}
	if c.StatsFile == "" {
		c.StatsFile = defaultStatsFile
	}
	if c.MusicFile == "" {
		c.MusicFile = defaultMusicFile
	}
}

func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return errors.Errorf("window_width and window_height are required and must be positive, got %dx%d",
			c.WindowWidth, c.WindowHeight)
	}
	if c.BackgroundColor == nil {
		return errors.New("background_color is required")
	}
	if c.FoodColor == nil {
		return errors.New("color_of_food is required")
	}
	grid := c.Grid()
	if grid.Columns < entity.MinLength || grid.Rows < 1 {
		return errors.Errorf("window %dx%d is too small for a %dx%d grid, need at least %d columns and 1 row",
			c.WindowWidth, c.WindowHeight, grid.Columns, grid.Rows, entity.MinLength)
	}
	if _, err := types.ParseDifficulty(c.Difficulty); err != nil {
		return err
	}
	return nil
}

// Grid derives the playing field from the window size
func (c *Config) Grid() types.Grid {
	return types.NewGrid(c.WindowWidth, c.WindowHeight, types.CellSize)
}

func (c *Config) Palette() types.Palette {
	return types.Palette{
		Background: c.BackgroundColor.RGB(),
		Food:       c.FoodColor.RGB(),
		Snake:      c.SnakeColor.RGB(),
	}
}

// StartDifficulty returns the validated difficulty setting
func (c *Config) StartDifficulty() types.Difficulty {
	d, _ := types.ParseDifficulty(c.Difficulty)
	return d
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
