package game

import (
	"log"
	"time"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"

	"golang.org/x/exp/rand"
)

// HighscoreStore persists the best score between runs
type HighscoreStore interface {
	Load() (int, error)
	Save(value int) error
}

// Outcome reports what happened during one tick
type Outcome struct {
	Moved     bool
	Ate       bool
	Collision manager.CollisionType
	Over      bool
}

// Snapshot is the read-only view handed to the rendering shell
type Snapshot struct {
	Grid       types.Grid
	Body       []types.Cell
	Food       types.Cell
	Score      int
	Highscore  int
	Difficulty types.Difficulty
	Status     types.Status
	Paused     bool
	Running    bool
}

type Game struct {
	grid         types.Grid
	snake        *entity.Snake
	food         *entity.Food
	collisionMgr *manager.CollisionManager
	store        HighscoreStore

	score      int
	highscore  int
	difficulty types.Difficulty
	status     types.Status
	persistErr error

	StartTime time.Time
}

type Option func(*options)

type options struct {
	rng        *rand.Rand
	snake      *entity.Snake
	difficulty types.Difficulty
}

// WithRand sets the random source used for food placement
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSnake replaces the default starting snake
func WithSnake(s *entity.Snake) Option {
	return func(o *options) { o.snake = s }
}

func WithDifficulty(d types.Difficulty) Option {
	return func(o *options) { o.difficulty = d }
}

// StartHead is where the default snake's head begins
var StartHead = types.Cell{Col: 5, Row: 5}

// NewGame creates a running game. The highscore is read from store; a
// failed read is remembered in PersistErr and counts as 0.
func NewGame(grid types.Grid, store HighscoreStore, opts ...Option) *Game {
	o := options{difficulty: types.DefaultDifficulty}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if o.snake == nil {
		o.snake = entity.NewSnakeAt(startHead(grid))
	}

	g := &Game{
		grid:         grid,
		snake:        o.snake,
		collisionMgr: manager.NewCollisionManager(grid),
		store:        store,
		difficulty:   o.difficulty,
		status:       types.Running,
		StartTime:    time.Now(),
	}
	g.food = entity.NewFood(grid, g.snake.Body, o.rng)

	if store != nil {
		hs, err := store.Load()
		if err != nil {
			log.Printf("highscore unavailable, starting from 0: %v", err)
			g.persistErr = err
			hs = 0
		}
		g.highscore = hs
	}

	return g
}

// startHead keeps the default start inside small grids
func startHead(grid types.Grid) types.Cell {
	head := StartHead
	if head.Col >= grid.Columns {
		head.Col = grid.Columns - 1
	}
	if head.Col < entity.MinLength-1 {
		head.Col = entity.MinLength - 1
	}
	if head.Row >= grid.Rows {
		head.Row = grid.Rows - 1
	}
	if head.Row < 0 {
		head.Row = 0
	}
	return head
}

// Handle applies one input command. Quit belongs to the shell and is ignored.
func (g *Game) Handle(cmd types.Command) {
	if dir, ok := cmd.Direction(); ok {
		g.snake.SetDirection(dir)
		return
	}

	switch cmd.Kind {
	case types.SetDifficulty:
		if cmd.Difficulty >= types.Easy && cmd.Difficulty <= types.Hard {
			g.difficulty = cmd.Difficulty
		}
	case types.TogglePause:
		switch g.status {
		case types.Running:
			g.status = types.Paused
		case types.Paused:
			g.status = types.Running
		}
	}
}

// Tick advances the game by one step when running
func (g *Game) Tick() Outcome {
	if g.status != types.Running {
		return Outcome{Over: g.status == types.Over}
	}
	return g.advance()
}

func (g *Game) advance() Outcome {
	g.snake.Move()
	out := Outcome{Moved: true}

	boardFull := false
	head := g.snake.GetHead()
	if g.collisionMgr.IsFoodCollision(head, g.food) {
		out.Ate = true
		g.snake.Grow()
		if !g.food.Respawn(g.snake.Body) {
			log.Printf("no free cell left for food, ending game")
			boardFull = true
		}
		g.score++
		if g.score > g.highscore {
			g.highscore = g.score
			g.saveHighscore()
		}
	}

	out.Collision = g.collisionMgr.CheckCollision(g.snake)
	if out.Collision != manager.NoCollision || boardFull {
		g.status = types.Over
		out.Over = true
	}
	return out
}

func (g *Game) saveHighscore() {
	if g.store == nil {
		return
	}
	if err := g.store.Save(g.highscore); err != nil {
		log.Printf("highscore not saved: %v", err)
		g.persistErr = err
		return
	}
	g.persistErr = nil
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:       g.grid,
		Body:       g.snake.Cells(),
		Food:       g.food.Position,
		Score:      g.score,
		Highscore:  g.highscore,
		Difficulty: g.difficulty,
		Status:     g.status,
		Paused:     g.status == types.Paused,
		Running:    g.status != types.Over,
	}
}

func (g *Game) Status() types.Status {
	return g.status
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Highscore() int {
	return g.highscore
}

func (g *Game) Difficulty() types.Difficulty {
	return g.difficulty
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

// TickInterval is the pacing for the next tick
func (g *Game) TickInterval() time.Duration {
	return g.difficulty.TickInterval()
}

// PersistErr returns the most recent highscore load or save failure
func (g *Game) PersistErr() error {
	return g.persistErr
}
