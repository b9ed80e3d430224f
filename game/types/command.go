package types

// CommandKind enumerates what the input shell can ask of the engine
type CommandKind int

const (
	MoveUp CommandKind = iota
	MoveDown
	MoveLeft
	MoveRight
	SetDifficulty
	TogglePause
	Quit
)

// Command is a single input intent. Difficulty is only read for SetDifficulty.
type Command struct {
	Kind       CommandKind
	Difficulty Difficulty
}

// MoveCommand builds the move command for d
func MoveCommand(d Direction) Command {
	switch d {
	case Up:
		return Command{Kind: MoveUp}
	case Down:
		return Command{Kind: MoveDown}
	case Left:
		return Command{Kind: MoveLeft}
	default:
		return Command{Kind: MoveRight}
	}
}

// DifficultyCommand builds a SetDifficulty command
func DifficultyCommand(d Difficulty) Command {
	return Command{Kind: SetDifficulty, Difficulty: d}
}

// Direction returns the direction carried by a move command
func (c Command) Direction() (Direction, bool) {
	switch c.Kind {
	case MoveUp:
		return Up, true
	case MoveDown:
		return Down, true
	case MoveLeft:
		return Left, true
	case MoveRight:
		return Right, true
	}
	return 0, false
}
