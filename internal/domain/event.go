package domain

// SenderRole identifies which side of the workflow triggered a notification.
type SenderRole string

const (
	RoleMentor       SenderRole = "mentor"
	RoleMentee       SenderRole = "mentee"
	RoleOrganization SenderRole = "organization"
)

// RelationRequestedEvent is emitted after a successful SendRequest. The
// notification worker turns it into an email to the recipient.
type RelationRequestedEvent struct {
	EventID     string     `json:"event_id"`
	RelationID  int64      `json:"relation_id"`
	SenderID    int64      `json:"sender_id"`
	RecipientID int64      `json:"recipient_id"`
	SenderRole  SenderRole `json:"sender_role"`
	Notes       string     `json:"notes"`
}

// RelationAcceptedEvent is emitted after the second, state-flipping accept.
type RelationAcceptedEvent struct {
	EventID    string `json:"event_id"`
	RelationID int64  `json:"relation_id"`
	OrgRepID   int64  `json:"org_rep_id"`
}
