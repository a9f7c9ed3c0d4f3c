package rules

type RoundState int

const (
	StateStart RoundState = iota
	StatePlaying
	StateLevelComplete
	StateGameOver
)

func (s RoundState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateLevelComplete:
		return "levelComplete"
	case StateGameOver:
		return "gameOver"
	}
	return "unknown"
}

// ScoreStore is the persistence collaborator. Implementations swallow their
// own failures; a failed read reports 0.
type ScoreStore interface {
	ReadHighScore() int
	WriteHighScore(score int)
}

type nopStore struct{}

func (nopStore) ReadHighScore() int   { return 0 }
func (nopStore) WriteHighScore(_ int) {}
