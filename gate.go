package astirecorder

// Decision represents a gate decision
type Decision bool

// Decisions
const (
	Loud  Decision = true
	Quiet Decision = false
)

func (d Decision) String() string {
	if d == Loud {
		return "loud"
	}
	return "quiet"
}

// Gate classifies blocks by comparing their peak amplitude to a threshold
type Gate struct {
	threshold int
}

// NewGate creates a new gate
func NewGate(threshold int) Gate {
	return Gate{threshold: threshold}
}

// Threshold returns the gate's threshold
func (g Gate) Threshold() int { return g.threshold }

// Classify returns Loud if the block's peak is strictly above the threshold. An empty block is Quiet.
func (g Gate) Classify(b Block) Decision {
	return Decision(Peak(b) > g.threshold)
}
