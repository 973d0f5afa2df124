package entities

// Stage is the lifecycle state of a maintenance request.
type Stage string

const (
	StageNew        Stage = "new"
	StageInProgress Stage = "in_progress"
	StageRepaired   Stage = "repaired"
	StageScrap      Stage = "scrap"
)

// IsTerminal reports whether a request in this stage is done; terminal
// requests never count as overdue.
func (s Stage) IsTerminal() bool {
	return s == StageRepaired || s == StageScrap
}

// StatusWord is the caller-facing name of a stage. Repaired is reported
// as "completed" on the wire.
func (s Stage) StatusWord() string {
	switch s {
	case StageInProgress:
		return "in-progress"
	case StageRepaired:
		return "completed"
	default:
		return string(s)
	}
}

// StageFromStatus maps a caller-facing status word to a stage.
func StageFromStatus(status string) (Stage, bool) {
	switch status {
	case "new":
		return StageNew, true
	case "in-progress", "in_progress":
		return StageInProgress, true
	case "completed":
		return StageRepaired, true
	case "scrap":
		return StageScrap, true
	}
	return "", false
}

// TransitionPolicy decides whether a stage transition is legal. Legality
// is deliberately a swappable function rather than baked into the
// lifecycle code so the graph can be tightened without touching the
// cascade rules.
type TransitionPolicy func(from, to Stage) bool

// AllowAllTransitions is the default policy: any stage is reachable from
// any other, including reverse moves. A reverse move out of scrap does
// not reset equipment usability.
func AllowAllTransitions(from, to Stage) bool {
	return true
}

// ForwardOnlyTransitions is the stricter table an installation can opt
// into: new → in_progress → repaired/scrap, plus re-opening a repaired
// request.
func ForwardOnlyTransitions(from, to Stage) bool {
	if from == to {
		return true
	}
	allowed := map[Stage][]Stage{
		StageNew:        {StageInProgress, StageScrap},
		StageInProgress: {StageRepaired, StageScrap, StageNew},
		StageRepaired:   {StageInProgress},
		StageScrap:      {},
	}
	for _, next := range allowed[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RequestType distinguishes corrective from preventive maintenance.
type RequestType string

const (
	RequestTypeCorrective RequestType = "corrective"
	RequestTypePreventive RequestType = "preventive"
)

func RequestTypeFromString(s string) RequestType {
	if s == string(RequestTypePreventive) {
		return RequestTypePreventive
	}
	return RequestTypeCorrective
}
