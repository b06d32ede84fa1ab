package domain

// RelationState is the lifecycle state of a mentorship relation. Only pending
// and accepted are touched by the request/accept workflow; the terminal states
// exist so listings and future cancel/complete flows share one enum.
type RelationState string

const (
	StatePending   RelationState = "pending"
	StateAccepted  RelationState = "accepted"
	StateRejected  RelationState = "rejected"
	StateCancelled RelationState = "cancelled"
	StateCompleted RelationState = "completed"
)

// MentorshipRelation mediates the three-party workflow between an organization
// representative, a mentor and a mentee. Mentor and mentee are each nullable:
// during the first leg only one side is known. AcceptDate doubles as a sentinel:
// non-nil before the relation is accepted means "first leg accepted, second leg
// still pending".
type MentorshipRelation struct {
	ID           int64         `json:"id" db:"id"`
	MentorID     *int64        `json:"mentor_id" db:"mentor_id"`
	MenteeID     *int64        `json:"mentee_id" db:"mentee_id"`
	ActionUserID int64         `json:"action_user_id" db:"action_user_id"`
	State        RelationState `json:"state" db:"state"`
	CreationDate int64         `json:"creation_date" db:"creation_date"`
	StartDate    int64         `json:"start_date" db:"start_date"`
	EndDate      int64         `json:"end_date" db:"end_date"`
	AcceptDate   *int64        `json:"accept_date" db:"accept_date"`
	Notes        string        `json:"notes" db:"notes"`
	TasksListID  int64         `json:"tasks_list_id" db:"tasks_list_id"`
}

// PartiesPhase tags which sides of a relation are assigned.
type PartiesPhase uint8

const (
	PartiesUnset PartiesPhase = iota
	PartiesMentorOnly
	PartiesMenteeOnly
	PartiesBoth
)

// RelationParties is a tagged view over the nullable mentor/mentee columns so
// workflow code branches on an explicit phase instead of scattered nil checks.
type RelationParties struct {
	phase  PartiesPhase
	mentor int64
	mentee int64
}

func MentorOnlyParties(mentorID int64) RelationParties {
	return RelationParties{phase: PartiesMentorOnly, mentor: mentorID}
}

func MenteeOnlyParties(menteeID int64) RelationParties {
	return RelationParties{phase: PartiesMenteeOnly, mentee: menteeID}
}

func BothParties(mentorID, menteeID int64) RelationParties {
	return RelationParties{phase: PartiesBoth, mentor: mentorID, mentee: menteeID}
}

func (p RelationParties) Phase() PartiesPhase { return p.phase }

// Mentor returns the mentor id when that side is assigned.
func (p RelationParties) Mentor() (int64, bool) {
	return p.mentor, p.phase == PartiesMentorOnly || p.phase == PartiesBoth
}

// Mentee returns the mentee id when that side is assigned.
func (p RelationParties) Mentee() (int64, bool) {
	return p.mentee, p.phase == PartiesMenteeOnly || p.phase == PartiesBoth
}

// WithMentor attaches or replaces the mentor side.
func (p RelationParties) WithMentor(mentorID int64) RelationParties {
	switch p.phase {
	case PartiesUnset, PartiesMentorOnly:
		return MentorOnlyParties(mentorID)
	default:
		return BothParties(mentorID, p.mentee)
	}
}

// WithMentee attaches or replaces the mentee side.
func (p RelationParties) WithMentee(menteeID int64) RelationParties {
	switch p.phase {
	case PartiesUnset, PartiesMenteeOnly:
		return MenteeOnlyParties(menteeID)
	default:
		return BothParties(p.mentor, menteeID)
	}
}

// Parties derives the tagged view from the stored nullable columns.
func (r *MentorshipRelation) Parties() RelationParties {
	switch {
	case r.MentorID != nil && r.MenteeID != nil:
		return BothParties(*r.MentorID, *r.MenteeID)
	case r.MentorID != nil:
		return MentorOnlyParties(*r.MentorID)
	case r.MenteeID != nil:
		return MenteeOnlyParties(*r.MenteeID)
	default:
		return RelationParties{}
	}
}

// SetParties writes the tagged view back to the nullable columns.
func (r *MentorshipRelation) SetParties(p RelationParties) {
	r.MentorID, r.MenteeID = nil, nil
	if id, ok := p.Mentor(); ok {
		r.MentorID = &id
	}
	if id, ok := p.Mentee(); ok {
		r.MenteeID = &id
	}
}

// Involves reports whether the user is one of the relation's named parties.
func (r *MentorshipRelation) Involves(userID int64) bool {
	if r.MentorID != nil && *r.MentorID == userID {
		return true
	}
	return r.MenteeID != nil && *r.MenteeID == userID
}

// AnyAccepted reports whether any relation in the list is accepted. A user may
// hold many relation records but at most one accepted one.
func AnyAccepted(relations []*MentorshipRelation) bool {
	for _, rel := range relations {
		if rel.State == StateAccepted {
			return true
		}
	}
	return false
}
