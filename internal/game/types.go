package game

// Cues plays feedback for the action signals. Implementations must not block.
type Cues interface {
	Primary()
	Secondary()
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
