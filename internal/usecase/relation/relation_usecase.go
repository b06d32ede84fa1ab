// Package relation implements the program mentorship relation workflow: a
// three-party request/accept state machine between an organization
// representative, a mentor and a mentee.
//
// A relation is fully specified in two legs. First the org representative and
// one party establish a pending link; once that leg is accepted, the second
// party is attached with a follow-up request; a final accept moves the
// relation to the accepted state. AcceptDate being set before the state flip
// marks "first leg accepted, second leg pending".
package relation

import (
	"context"
	"log/slog"
	"time"

	"github.com/progmatch/mentorship-backend/internal/domain"
	"github.com/progmatch/mentorship-backend/internal/repository"
)

type RelationUseCase struct {
	relationRepo repository.RelationRepository
	userRepo     repository.UserRepository
	tasksRepo    repository.TasksListRepository
	notifier     repository.Notifier
	txManager    repository.TxManager
	logger       *slog.Logger

	now func() time.Time
}

func NewRelationUseCase(
	relationRepo repository.RelationRepository,
	userRepo repository.UserRepository,
	tasksRepo repository.TasksListRepository,
	notifier repository.Notifier,
	txManager repository.TxManager,
	logger *slog.Logger,
) *RelationUseCase {
	return &RelationUseCase{
		relationRepo: relationRepo,
		userRepo:     userRepo,
		tasksRepo:    tasksRepo,
		notifier:     notifier,
		txManager:    txManager,
		logger:       logger,
		now:          time.Now,
	}
}

// SendRequestInput carries the identifiers and dates of a send-request call.
// MentorID and MenteeID are each optional; exactly one is supplied by the
// delivery layer. RelationID present marks a second-leg request against an
// existing relation.
type SendRequestInput struct {
	OrgRepID   int64
	MentorID   *int64
	MenteeID   *int64
	RelationID *int64
	StartDate  int64
	EndDate    int64
	Notes      string
}

// SendRequest creates or advances a mentorship relation on behalf of actorID.
//
// Three modes, chosen from the inputs: a first-leg request naming a mentor, a
// first-leg request naming a mentee, or a second-leg request attaching (or
// reassigning) the missing party of an existing relation. On success a "new
// request" notification is emitted for the counterpart.
func (uc *RelationUseCase) SendRequest(ctx context.Context, actorID int64, in *SendRequestInput) (*domain.MentorshipRelation, error) {
	var (
		rel      *domain.MentorshipRelation
		mentorID = in.MentorID
		menteeID = in.MenteeID
	)

	err := uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		if in.RelationID != nil {
			mentorID, menteeID, err = uc.resolveSecondLeg(ctx, in)
			if err != nil {
				return err
			}
			rel, err = uc.submitSecondLeg(ctx, actorID, in, mentorID, menteeID)
			return err
		}

		switch {
		case mentorID != nil && menteeID == nil:
			rel, err = uc.submitMentorLeg(ctx, actorID, in)
		case menteeID != nil && mentorID == nil:
			rel, err = uc.submitMenteeLeg(ctx, actorID, in)
		default:
			// Neither first-leg shape matches. The workflow treats this as a
			// successful no-op rather than an error.
			rel = nil
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if rel != nil {
		uc.notifyRequested(ctx, actorID, rel.ID, in, mentorID, menteeID)
	}
	return rel, nil
}

// resolveSecondLeg fills the party side missing from a second-leg request with
// the value stored on the relation, and rejects requests that would redo an
// already-requested or already-accepted side.
func (uc *RelationUseCase) resolveSecondLeg(ctx context.Context, in *SendRequestInput) (mentorID, menteeID *int64, err error) {
	rel, err := uc.relationRepo.GetByID(ctx, *in.RelationID)
	if err != nil {
		return nil, nil, err
	}
	if rel.AcceptDate == nil {
		return nil, nil, domain.ErrRelationNotAccepted
	}

	mentorID, menteeID = in.MentorID, in.MenteeID

	if in.MentorID != nil {
		if rel.MentorID != nil && *rel.MentorID == *in.MentorID {
			return nil, nil, domain.ErrAlreadyRequested
		}
		menteeID = rel.MenteeID
		if menteeID == nil || (rel.MentorID != nil && rel.ActionUserID == *rel.MentorID && rel.ActionUserID != in.OrgRepID) {
			return nil, nil, domain.ErrMentorAlreadyAccepted
		}
	}

	if in.MenteeID != nil {
		if rel.MenteeID != nil && *rel.MenteeID == *in.MenteeID {
			return nil, nil, domain.ErrAlreadyRequested
		}
		mentorID = rel.MentorID
		if mentorID == nil || (rel.MenteeID != nil && rel.ActionUserID == *rel.MenteeID && rel.ActionUserID != in.OrgRepID) {
			return nil, nil, domain.ErrMenteeAlreadyAccepted
		}
	}

	return mentorID, menteeID, nil
}

// submitMentorLeg handles a first-leg request that names a mentor: the actor
// is either the mentor themselves or the org representative.
func (uc *RelationUseCase) submitMentorLeg(ctx context.Context, actorID int64, in *SendRequestInput) (*domain.MentorshipRelation, error) {
	mentorID := *in.MentorID

	if actorID != mentorID && actorID != in.OrgRepID {
		return nil, domain.ErrNotMentorOrOrgRep
	}
	if mentorID == in.OrgRepID {
		return nil, domain.ErrSameAsOrgRep
	}
	if err := uc.validateEndDate(in.EndDate); err != nil {
		return nil, err
	}

	mentor, err := uc.userRepo.GetByID(ctx, mentorID)
	if err != nil {
		return nil, asNotFound(err, domain.ErrMentorNotFound)
	}
	if !mentor.AvailableToMentor {
		return nil, domain.ErrMentorNotAvailable
	}
	if _, err := uc.userRepo.GetByID(ctx, in.OrgRepID); err != nil {
		return nil, asNotFound(err, domain.ErrOrgRepNotFound)
	}
	if err := uc.ensureNotInRelation(ctx, mentorID, domain.ErrMentorAlreadyInRelation); err != nil {
		return nil, err
	}

	parties := domain.MentorOnlyParties(mentorID)
	if actorID != in.OrgRepID {
		// The mentor initiated: the org rep occupies the open seat until the
		// second leg names the real mentee.
		parties = parties.WithMentee(in.OrgRepID)
	}
	return uc.createRelation(ctx, actorID, in, parties)
}

// submitMenteeLeg mirrors submitMentorLeg for a first-leg request naming a
// mentee, gated on need_mentoring instead of available_to_mentor.
func (uc *RelationUseCase) submitMenteeLeg(ctx context.Context, actorID int64, in *SendRequestInput) (*domain.MentorshipRelation, error) {
	menteeID := *in.MenteeID

	if actorID != menteeID && actorID != in.OrgRepID {
		return nil, domain.ErrNotMenteeOrOrgRep
	}
	if menteeID == in.OrgRepID {
		return nil, domain.ErrSameAsOrgRep
	}
	if err := uc.validateEndDate(in.EndDate); err != nil {
		return nil, err
	}

	mentee, err := uc.userRepo.GetByID(ctx, menteeID)
	if err != nil {
		return nil, asNotFound(err, domain.ErrMenteeNotFound)
	}
	if !mentee.NeedMentoring {
		return nil, domain.ErrMenteeNotAvailable
	}
	if _, err := uc.userRepo.GetByID(ctx, in.OrgRepID); err != nil {
		return nil, asNotFound(err, domain.ErrOrgRepNotFound)
	}
	if err := uc.ensureNotInRelation(ctx, menteeID, domain.ErrMenteeAlreadyInRelation); err != nil {
		return nil, err
	}

	parties := domain.MenteeOnlyParties(menteeID)
	if actorID != in.OrgRepID {
		parties = parties.WithMentor(in.OrgRepID)
	}
	return uc.createRelation(ctx, actorID, in, parties)
}

// submitSecondLeg attaches the missing party to an accepted first leg, or
// reassigns one side of a fully specified relation.
func (uc *RelationUseCase) submitSecondLeg(ctx context.Context, actorID int64, in *SendRequestInput, mentorID, menteeID *int64) (*domain.MentorshipRelation, error) {
	if mentorID != nil && menteeID != nil && *mentorID == *menteeID {
		return nil, domain.ErrSameParty
	}

	rel, err := uc.relationRepo.GetByID(ctx, *in.RelationID)
	if err != nil {
		return nil, err
	}
	if rel.AcceptDate == nil {
		return nil, domain.ErrRelationNotAccepted
	}

	parties := rel.Parties()
	if _, hasMentee := parties.Mentee(); !hasMentee {
		if menteeID == nil {
			return rel, nil
		}
		return uc.attachMentee(ctx, actorID, in, rel, *menteeID)
	}
	if _, hasMentor := parties.Mentor(); !hasMentor {
		if mentorID == nil {
			return nil, domain.ErrMissingMentorID
		}
		return uc.attachMentor(ctx, actorID, in, rel, *mentorID)
	}

	// Both sides assigned: allow exactly one side to change. When neither
	// changes the call is a silent no-op.
	currentMentor, _ := parties.Mentor()
	currentMentee, _ := parties.Mentee()
	switch {
	case mentorID != nil && menteeID != nil && currentMentor == *mentorID && currentMentee != *menteeID:
		return uc.attachMentee(ctx, actorID, in, rel, *menteeID)
	case mentorID != nil && menteeID != nil && currentMentee == *menteeID && currentMentor != *mentorID:
		return uc.attachMentor(ctx, actorID, in, rel, *mentorID)
	default:
		return rel, nil
	}
}

func (uc *RelationUseCase) attachMentee(ctx context.Context, actorID int64, in *SendRequestInput, rel *domain.MentorshipRelation, menteeID int64) (*domain.MentorshipRelation, error) {
	if _, err := uc.userRepo.GetByID(ctx, menteeID); err != nil {
		return nil, asNotFound(err, domain.ErrMenteeNotFound)
	}
	if actorID != menteeID && actorID != in.OrgRepID {
		return nil, domain.ErrNotMenteeOrOrgRep
	}
	if menteeID == in.OrgRepID {
		return nil, domain.ErrSameAsOrgRep
	}
	if err := uc.ensureNotInRelation(ctx, menteeID, domain.ErrMenteeAlreadyInRelation); err != nil {
		return nil, err
	}

	if actorID == in.OrgRepID {
		rel.ActionUserID = in.OrgRepID
	} else {
		rel.ActionUserID = menteeID
	}
	rel.SetParties(rel.Parties().WithMentee(menteeID))
	rel.Notes = in.Notes

	if err := uc.relationRepo.Update(ctx, rel); err != nil {
		return nil, err
	}
	return rel, nil
}

func (uc *RelationUseCase) attachMentor(ctx context.Context, actorID int64, in *SendRequestInput, rel *domain.MentorshipRelation, mentorID int64) (*domain.MentorshipRelation, error) {
	if _, err := uc.userRepo.GetByID(ctx, mentorID); err != nil {
		return nil, asNotFound(err, domain.ErrMentorNotFound)
	}
	if actorID != mentorID && actorID != in.OrgRepID {
		return nil, domain.ErrNotMentorOrOrgRep
	}
	if mentorID == in.OrgRepID {
		return nil, domain.ErrSameAsOrgRep
	}
	if err := uc.ensureNotInRelation(ctx, mentorID, domain.ErrMentorAlreadyInRelation); err != nil {
		return nil, err
	}

	if actorID == in.OrgRepID {
		rel.ActionUserID = in.OrgRepID
	} else {
		rel.ActionUserID = mentorID
	}
	rel.SetParties(rel.Parties().WithMentor(mentorID))
	rel.Notes = in.Notes

	if err := uc.relationRepo.Update(ctx, rel); err != nil {
		return nil, err
	}
	return rel, nil
}

// AcceptRequest accepts a pending relation on behalf of userID. The first
// accept sets the accept-date sentinel and leaves the relation pending; the
// second flips the state to accepted and emits the accepted notification.
func (uc *RelationUseCase) AcceptRequest(ctx context.Context, userID, orgRepID, requestID int64, notes string) error {
	var accepted bool

	err := uc.txManager.WithinTx(ctx, func(ctx context.Context) error {
		rel, err := uc.relationRepo.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if rel.State != domain.StatePending {
			return domain.ErrRelationNotPending
		}
		if rel.ActionUserID == userID {
			return domain.ErrSelfAccept
		}
		if !rel.Involves(userID) && userID != orgRepID {
			return domain.ErrUninvolved
		}

		if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
			return err
		}
		if err := uc.ensureNotInRelation(ctx, userID, domain.ErrUserAlreadyInRelation); err != nil {
			return err
		}

		parties := rel.Parties()
		if parties.Phase() == domain.PartiesBoth {
			mentorID, _ := parties.Mentor()
			menteeID, _ := parties.Mentee()

			// The accepting party's counterpart must also still be free.
			if userID == mentorID {
				if err := uc.ensureNotInRelation(ctx, menteeID, domain.ErrMenteeAlreadyInRelation); err != nil {
					return err
				}
			} else if userID == menteeID {
				if err := uc.ensureNotInRelation(ctx, mentorID, domain.ErrMentorAlreadyInRelation); err != nil {
					return err
				}
			}

			// A named party cannot accept a proposal made by the other named
			// party; that step belongs to the org representative.
			counterpart := (rel.ActionUserID == menteeID && userID == mentorID) ||
				(rel.ActionUserID == mentorID && userID == menteeID)
			if counterpart && userID != orgRepID {
				return domain.ErrUninvolved
			}
		}

		actor := domain.LastActorOf(rel, orgRepID)
		rel.ActionUserID = actor.Toggle(userID).UserID(orgRepID)
		rel.Notes = notes

		// State flips only on the second accept: the sentinel was set by the
		// first one.
		if rel.AcceptDate != nil {
			rel.State = domain.StateAccepted
			accepted = true
		}
		acceptDate := uc.now().Unix()
		rel.AcceptDate = &acceptDate

		return uc.relationRepo.Update(ctx, rel)
	})
	if err != nil {
		return err
	}

	if accepted {
		event := &domain.RelationAcceptedEvent{RelationID: requestID, OrgRepID: orgRepID}
		if err := uc.notifier.RelationAccepted(ctx, event); err != nil {
			uc.logger.Error("failed to publish relation accepted event",
				"relation_id", requestID, "error", err)
		}
	}
	return nil
}

func (uc *RelationUseCase) validateEndDate(endDate int64) error {
	if endDate <= 0 {
		return domain.ErrInvalidEndDate
	}
	if time.Unix(endDate, 0).Before(uc.now()) {
		return domain.ErrEndDateInPast
	}
	return nil
}

// ensureNotInRelation fails with conflictErr when the user already has an
// accepted relation on either side.
func (uc *RelationUseCase) ensureNotInRelation(ctx context.Context, userID int64, conflictErr error) error {
	relations, err := uc.relationRepo.ListByUser(ctx, userID)
	if err != nil {
		return err
	}
	if domain.AnyAccepted(relations) {
		return conflictErr
	}
	return nil
}

func (uc *RelationUseCase) createRelation(ctx context.Context, actorID int64, in *SendRequestInput, parties domain.RelationParties) (*domain.MentorshipRelation, error) {
	list := &domain.TasksList{}
	if err := uc.tasksRepo.Create(ctx, list); err != nil {
		return nil, err
	}

	rel := &domain.MentorshipRelation{
		ActionUserID: actorID,
		State:        domain.StatePending,
		CreationDate: uc.now().Unix(),
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Notes:        in.Notes,
		TasksListID:  list.ID,
	}
	rel.SetParties(parties)

	if err := uc.relationRepo.Create(ctx, rel); err != nil {
		return nil, err
	}
	return rel, nil
}

// notifyRequested emits the "new request" event. A party acting for themselves
// notifies the org rep; the org rep notifies whichever party was named.
func (uc *RelationUseCase) notifyRequested(ctx context.Context, actorID, relationID int64, in *SendRequestInput, mentorID, menteeID *int64) {
	event := &domain.RelationRequestedEvent{
		RelationID: relationID,
		SenderID:   actorID,
		Notes:      in.Notes,
	}

	switch {
	case mentorID != nil && actorID == *mentorID:
		event.SenderRole = domain.RoleMentor
		event.RecipientID = in.OrgRepID
	case menteeID != nil && actorID == *menteeID:
		event.SenderRole = domain.RoleMentee
		event.RecipientID = in.OrgRepID
	default:
		event.SenderRole = domain.RoleOrganization
		if mentorID != nil {
			event.RecipientID = *mentorID
		} else if menteeID != nil {
			event.RecipientID = *menteeID
		}
	}

	if err := uc.notifier.RelationRequested(ctx, event); err != nil {
		uc.logger.Error("failed to publish relation requested event",
			"relation_id", relationID, "error", err)
	}
}

// asNotFound narrows a generic user-not-found error to the role-specific kind;
// infrastructure errors pass through unchanged.
func asNotFound(err, notFound error) error {
	if err == domain.ErrUserNotFound {
		return notFound
	}
	return err
}
