package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Event is a public, append-only feed entry consumed by the social-proof
// widget and the status page. Readers take the most recent N by timestamp.
type Event struct {
	ID        uuid.UUID  `json:"id"`
	Message   string     `json:"message"`
	Type      EventType  `json:"type,omitempty"`
	ClientID  *uuid.UUID `json:"clientId,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// NewInquiryReceivedEvent announces a fresh inquiry on the feed.
// The inquiry type is lowercased in the message ("lead", "seller_inquiry").
func NewInquiryReceivedEvent(inq Inquiry) Event {
	return Event{
		ID:        uuid.New(),
		Message:   "New " + strings.ToLower(inq.Status.String()) + " inquiry from " + inq.FullName(),
		Type:      EventTypeInquiryReceived,
		Timestamp: time.Now().UTC(),
	}
}

// NewConfirmationEvent announces a confirmed inquiry. The message flavor
// depends on the inquiry type; the inquiry id doubles as the clientId link.
func NewConfirmationEvent(inq Inquiry) Event {
	var msg string
	if inq.Status == InquiryStatusSellerInquiry {
		msg = inq.ShortName() + " just inquired about selling."
	} else {
		msg = inq.ShortName() + " just booked a viewing!"
	}
	id := inq.ID
	return Event{
		ID:        uuid.New(),
		Message:   msg,
		ClientID:  &id,
		Timestamp: time.Now().UTC(),
	}
}

// NewClientPromotedEvent announces a promotion on the feed.
func NewClientPromotedEvent(client Client) Event {
	id := client.ID
	return Event{
		ID:        uuid.New(),
		Message:   client.FullName() + " promoted to Active Client",
		Type:      EventTypeClientPromoted,
		ClientID:  &id,
		Timestamp: time.Now().UTC(),
	}
}

// NewHomeownerEvent announces that a client reached the terminal
// HOMEOWNER state, optionally naming the location.
func NewHomeownerEvent(firstName, lastName, location string) Event {
	if firstName == "" {
		firstName = "Client"
	}
	msg := shortName(firstName, lastName) + " just became a homeowner"
	if location != "" {
		msg += " in " + location
	}
	msg += "!"
	return Event{
		ID:        uuid.New(),
		Message:   msg,
		Type:      EventTypeHomeownerCreated,
		Timestamp: time.Now().UTC(),
	}
}
