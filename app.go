package main

import (
	"fmt"
	"log"
	"time"

	"classic-snake/config"
	"classic-snake/game"
	"classic-snake/game/manager"

	"golang.org/x/exp/rand"
)

// App is everything a shell needs, built once at startup
type App struct {
	Config *config.Config
	Game   *game.Game
	Stats  *manager.StatsManager
}

func NewApp(cfg *config.Config, seed uint64) *App {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	stats := manager.NewStatsManager(cfg.StatsFile)
	if err := stats.Load(); err != nil {
		log.Printf("session history unavailable: %v", err)
	}

	g := game.NewGame(
		cfg.Grid(),
		manager.NewScoreStore(cfg.HighscoreFile),
		game.WithRand(rand.New(rand.NewSource(seed))),
		game.WithDifficulty(cfg.StartDifficulty()),
	)

	return &App{
		Config: cfg,
		Game:   g,
		Stats:  stats,
	}
}

// Finish records the session in the history file
func (a *App) Finish() {
	snap := a.Game.Snapshot()
	a.Stats.Record(snap.Score, snap.Difficulty.String(), a.Game.StartTime, time.Now())
	if err := a.Stats.Save(); err != nil {
		log.Printf("session history not saved: %v", err)
	}
}

// Summary describes the session history in one line
func (a *App) Summary() string {
	return fmt.Sprintf("Games played: %d, Average: %.1f, Median: %.1f, Best: %d, Average length: %.0fs",
		a.Stats.GamesPlayed(),
		a.Stats.AverageScore(),
		a.Stats.MedianScore(),
		a.Stats.MaxScore(),
		a.Stats.AverageDuration(),
	)
}
