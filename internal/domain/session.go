package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle           UserState = "idle"
	StateWaitingSetName UserState = "waiting_set_name"
	StateWaitingImport  UserState = "waiting_import"
	StatePlaying        UserState = "playing"
)

// SourceType tells where the vocabulary of a round came from
type SourceType string

const (
	SourceHSK SourceType = "HSK"
	SourceSet SourceType = "SET"
)

// GameConfig describes how the current round was started, so it can be
// restarted or continued with fresh words
type GameConfig struct {
	Source SourceType
	Level  int
	SetID  string
	Mode   Mode
}

// StateData holds temporary data for user's current state
type StateData struct {
	State       UserState
	TargetSetID string // set receiving the next uploaded spreadsheet
	Mode        Mode
}

// HSK levels and round sizing
const (
	MinLevel     = 1
	MaxLevel     = 9
	MinPlayable  = 4
	MaxRoundSize = 12
	DefaultCount = 8
)

// ValidLevel reports whether level is a known HSK level
func ValidLevel(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}
