package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"classic-snake/config"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to the JSON config file")
	terminal := flag.Bool("terminal", false, "Play in the terminal instead of a window")
	logPath := flag.String("log", "snake.log", "Log file used in terminal mode")
	seed := flag.Uint64("seed", 0, "Seed for food placement (0 = time based)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *terminal {
		// stderr belongs to the tcell screen while it is active
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	app := NewApp(cfg, *seed)

	if *terminal {
		err = runTerminal(app)
	} else {
		err = runWindow(app)
	}
	if err != nil {
		log.Printf("shell stopped: %v", err)
	}

	app.Finish()
	snap := app.Game.Snapshot()
	fmt.Printf("Game Over! Your score: %d, Highscore: %d\n", snap.Score, snap.Highscore)
	fmt.Println(app.Summary())
}
