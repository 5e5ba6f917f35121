package types

// ReadinessTier represents the coarse readiness classification of a backlog item
type ReadinessTier string

const (
	// TierReadyForSprint indicates the item can be pulled into a sprint as-is
	TierReadyForSprint ReadinessTier = "Ready for Sprint"
	// TierMinorRefinements indicates the item is close but needs small fixes
	TierMinorRefinements ReadinessTier = "Minor Refinements Needed"
	// TierNeedsDiscussion indicates the item requires a team conversation
	TierNeedsDiscussion ReadinessTier = "Needs Discussion"
	// TierSignificantRefinement indicates the item is far from sprint-ready
	TierSignificantRefinement ReadinessTier = "Significant Refinement Required"
)

// String returns the string representation of the tier
func (t ReadinessTier) String() string {
	return string(t)
}

// IsValid checks if the tier is valid
func (t ReadinessTier) IsValid() bool {
	switch t {
	case TierReadyForSprint, TierMinorRefinements, TierNeedsDiscussion, TierSignificantRefinement:
		return true
	default:
		return false
	}
}

// AllTiers returns the tiers ordered from most to least ready.
// Used by report renderers to emit summary rows in a stable order.
func AllTiers() []ReadinessTier {
	return []ReadinessTier{
		TierReadyForSprint,
		TierMinorRefinements,
		TierNeedsDiscussion,
		TierSignificantRefinement,
	}
}

// TierForPercentage classifies a weighted percentage score into a readiness
// tier. Thresholds are evaluated high to low with inclusive lower bounds:
// a score of exactly 90.0 is Ready for Sprint.
func TierForPercentage(percentage float64) ReadinessTier {
	switch {
	case percentage >= 90:
		return TierReadyForSprint
	case percentage >= 75:
		return TierMinorRefinements
	case percentage >= 50:
		return TierNeedsDiscussion
	default:
		return TierSignificantRefinement
	}
}
