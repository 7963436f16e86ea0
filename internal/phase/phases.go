package phase

// Phase tracks how far the analysis of one source unit got.
//
// Progression is strictly sequential: NotStarted -> Lexed -> Checked.
// Parsing and semantic checking run interleaved, so they share one phase.
type Phase int

const (
	PhaseNotStarted Phase = iota // Source received but not processed
	PhaseLexed                   // Tokens generated
	PhaseChecked                 // Parsed with every semantic action satisfied
)

// Prerequisites maps each phase to its required predecessor phase
var Prerequisites = map[Phase]Phase{
	PhaseLexed:   PhaseNotStarted,
	PhaseChecked: PhaseLexed,
}

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "NotStarted"
	case PhaseLexed:
		return "Lexed"
	case PhaseChecked:
		return "Checked"
	default:
		return "Unknown"
	}
}

// CanAdvance reports whether a unit at from may move to to
func CanAdvance(from, to Phase) bool {
	prereq, ok := Prerequisites[to]
	return ok && prereq == from
}
