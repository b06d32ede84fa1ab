package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestLastActorOf(t *testing.T) {
	orgRepID := int64(1)

	rel := &MentorshipRelation{ActionUserID: orgRepID}
	if actor := LastActorOf(rel, orgRepID); !actor.IsOrgRep() {
		t.Errorf("expected org rep actor, got named party")
	}

	rel = &MentorshipRelation{ActionUserID: 42}
	actor := LastActorOf(rel, orgRepID)
	if actor.IsOrgRep() {
		t.Errorf("expected named party actor, got org rep")
	}
	if got := actor.UserID(orgRepID); got != 42 {
		t.Errorf("UserID = %d, want 42", got)
	}
}

func TestLastActorToggle(t *testing.T) {
	orgRepID := int64(1)
	partyID := int64(7)

	handedOver := OrgRepActor().Toggle(partyID)
	if handedOver.IsOrgRep() {
		t.Errorf("toggling the org rep should hand over to the accepting party")
	}
	if got := handedOver.UserID(orgRepID); got != partyID {
		t.Errorf("UserID after handover = %d, want %d", got, partyID)
	}

	handedBack := handedOver.Toggle(99)
	if !handedBack.IsOrgRep() {
		t.Errorf("toggling a named party should hand back to the org rep")
	}
	if got := handedBack.UserID(orgRepID); got != orgRepID {
		t.Errorf("UserID after handback = %d, want %d", got, orgRepID)
	}
}

// The accept flow alternates actors: two toggles for the same accepting party
// always land back on the starting side.
func TestLastActorTogglePingPong(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("double toggle restores the side", prop.ForAll(
		func(orgRepID, partyID int64, startOrgRep bool) bool {
			start := OrgRepActor()
			if !startOrgRep {
				start = NamedPartyActor(partyID)
			}
			end := start.Toggle(partyID).Toggle(partyID)
			return end.IsOrgRep() == start.IsOrgRep() &&
				end.UserID(orgRepID) == start.UserID(orgRepID)
		},
		gen.Int64Range(1, 1_000_000),
		gen.Int64Range(1, 1_000_000),
		gen.Bool(),
	))

	properties.TestingRun(t)
}
