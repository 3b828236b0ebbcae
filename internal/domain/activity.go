package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Activity is an immutable audit record of a client-affecting action.
// Exactly one STATUS_CHANGE activity is written per observed status
// transition, in the same transaction as the client update.
type Activity struct {
	ID             uuid.UUID     `json:"id"`
	Type           ActivityType  `json:"type"`
	ClientID       uuid.UUID     `json:"clientId"`
	ClientName     string        `json:"clientName"`
	Description    string        `json:"description"`
	PreviousStatus *ClientStatus `json:"previousStatus,omitempty"`
	NewStatus      *ClientStatus `json:"newStatus,omitempty"`
	UpdatedBy      *uuid.UUID    `json:"updatedBy,omitempty"`
	Timestamp      time.Time     `json:"timestamp"`
}

// NewStatusChangeActivity builds the audit record for a client status
// transition. The description spells statuses with spaces, matching the
// admin portal's activity feed ("ACTIVE CLIENT", "HOMEOWNER").
func NewStatusChangeActivity(client Client, previous, next ClientStatus, updatedBy uuid.UUID) Activity {
	return Activity{
		ID:             uuid.New(),
		Type:           ActivityTypeStatusChange,
		ClientID:       client.ID,
		ClientName:     client.FullName(),
		Description:    "Client promoted from " + spellStatus(previous) + " to " + spellStatus(next),
		PreviousStatus: &previous,
		NewStatus:      &next,
		UpdatedBy:      &updatedBy,
		Timestamp:      time.Now().UTC(),
	}
}

func spellStatus(s ClientStatus) string {
	return strings.ReplaceAll(s.String(), "_", " ")
}
