package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestPartiesPhases(t *testing.T) {
	tests := []struct {
		name      string
		mentorID  *int64
		menteeID  *int64
		wantPhase PartiesPhase
	}{
		{"unset", nil, nil, PartiesUnset},
		{"mentor only", ptr(2), nil, PartiesMentorOnly},
		{"mentee only", nil, ptr(5), PartiesMenteeOnly},
		{"both", ptr(2), ptr(5), PartiesBoth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel := &MentorshipRelation{MentorID: tt.mentorID, MenteeID: tt.menteeID}
			if got := rel.Parties().Phase(); got != tt.wantPhase {
				t.Errorf("Phase() = %d, want %d", got, tt.wantPhase)
			}
		})
	}
}

func TestPartiesAttach(t *testing.T) {
	p := MentorOnlyParties(2).WithMentee(5)
	if p.Phase() != PartiesBoth {
		t.Fatalf("Phase() = %d, want PartiesBoth", p.Phase())
	}
	mentor, ok := p.Mentor()
	if !ok || mentor != 2 {
		t.Errorf("Mentor() = %d, %v, want 2, true", mentor, ok)
	}
	mentee, ok := p.Mentee()
	if !ok || mentee != 5 {
		t.Errorf("Mentee() = %d, %v, want 5, true", mentee, ok)
	}
}

func TestSetPartiesRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("Parties survives a SetParties round-trip", prop.ForAll(
		func(mentorID, menteeID int64, hasMentor, hasMentee bool) bool {
			var p RelationParties
			if hasMentor {
				p = p.WithMentor(mentorID)
			}
			if hasMentee {
				p = p.WithMentee(menteeID)
			}

			var rel MentorshipRelation
			rel.SetParties(p)
			got := rel.Parties()

			if got.Phase() != p.Phase() {
				return false
			}
			gm, gok := got.Mentor()
			pm, pok := p.Mentor()
			if gok != pok || gm != pm {
				return false
			}
			ge, gok := got.Mentee()
			pe, pok := p.Mentee()
			return gok == pok && ge == pe
		},
		gen.Int64Range(1, 1_000_000),
		gen.Int64Range(1, 1_000_000),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestInvolves(t *testing.T) {
	rel := &MentorshipRelation{MentorID: ptr(2), MenteeID: ptr(5)}
	if !rel.Involves(2) || !rel.Involves(5) {
		t.Errorf("named parties should be involved")
	}
	if rel.Involves(9) {
		t.Errorf("unrelated user should not be involved")
	}

	partial := &MentorshipRelation{MentorID: ptr(2)}
	if partial.Involves(0) {
		t.Errorf("nil mentee side must not match any user")
	}
}

func TestAnyAccepted(t *testing.T) {
	relations := []*MentorshipRelation{
		{State: StatePending},
		{State: StateRejected},
	}
	if AnyAccepted(relations) {
		t.Errorf("no accepted relation in list")
	}

	relations = append(relations, &MentorshipRelation{State: StateAccepted})
	if !AnyAccepted(relations) {
		t.Errorf("accepted relation should be found")
	}
}

func ptr(v int64) *int64 { return &v }
