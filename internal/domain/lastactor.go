package domain

// LastActor identifies who performed the most recent mutating action on a
// relation: either the organization representative or one of the named parties.
// Accepting a request ping-pongs the marker between the two sides, which is what
// forces the two-step org-rep-mediated accept flow.
type LastActor struct {
	orgRep bool
	userID int64
}

func OrgRepActor() LastActor { return LastActor{orgRep: true} }

func NamedPartyActor(userID int64) LastActor { return LastActor{userID: userID} }

// LastActorOf classifies a relation's action user against the org rep id.
func LastActorOf(r *MentorshipRelation, orgRepID int64) LastActor {
	if r.ActionUserID == orgRepID {
		return OrgRepActor()
	}
	return NamedPartyActor(r.ActionUserID)
}

// IsOrgRep reports whether the last actor was the organization representative.
func (a LastActor) IsOrgRep() bool { return a.orgRep }

// Toggle flips the marker to the other side: the org rep hands over to the
// accepting party, a named party hands back to the org rep.
func (a LastActor) Toggle(acceptingUserID int64) LastActor {
	if a.orgRep {
		return NamedPartyActor(acceptingUserID)
	}
	return OrgRepActor()
}

// UserID resolves the marker back to a concrete user id.
func (a LastActor) UserID(orgRepID int64) int64 {
	if a.orgRep {
		return orgRepID
	}
	return a.userID
}
