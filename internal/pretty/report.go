package pretty

// Decision is the flat-or-broken outcome for one group.
type Decision uint8

const (
	DecisionFlat Decision = iota
	DecisionBroken
)

func (d Decision) String() string {
	if d == DecisionBroken {
		return "broken"
	}
	return "flat"
}

// Reason explains why a group got its decision.
type Reason uint8

const (
	// ReasonFits: the flat width fits on the remaining line.
	ReasonFits Reason = iota
	// ReasonWidth: the flat width exceeds the remaining line.
	ReasonWidth
	// ReasonHard: something inside always breaks.
	ReasonHard
	// ReasonForced: the group carries a forced-break policy.
	ReasonForced
	// ReasonInherited: an enclosing group was already decided flat.
	ReasonInherited
)

func (r Reason) String() string {
	switch r {
	case ReasonFits:
		return "fits"
	case ReasonWidth:
		return "width"
	case ReasonHard:
		return "hard"
	case ReasonForced:
		return "forced"
	case ReasonInherited:
		return "inherited"
	}
	return "unknown"
}

// GroupTrace records one group decision. IDs are assigned in document
// order during rendering, starting at 1.
type GroupTrace struct {
	ID        int
	Decision  Decision
	Reason    Reason
	Column    int
	FlatWidth int // -1 when the group always breaks
}

// Report is the inspectable trace of one rendering pass: every group
// encountered, in document order, with the decision made for it.
type Report struct {
	Groups []GroupTrace
}

// Broken counts groups decided broken.
func (r *Report) Broken() int {
	n := 0
	for _, g := range r.Groups {
		if g.Decision == DecisionBroken {
			n++
		}
	}
	return n
}
