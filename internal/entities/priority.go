package entities

// Priority wire mapping: low=1, medium=2, high=3.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// PriorityFromWord maps a priority word to its stored integer. Unknown
// words default to medium on write.
func PriorityFromWord(word string) int {
	switch word {
	case "low":
		return PriorityLow
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	}
	return PriorityMedium
}

// PriorityWord maps a stored integer back to its word. Unknown integers
// default to "low" on read.
func PriorityWord(priority int) string {
	switch priority {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	}
	return "low"
}
