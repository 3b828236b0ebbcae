package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultInquiryNotes is the provenance string stamped on every inquiry
// created through the public intake endpoint.
const DefaultInquiryNotes = "New inquiry received from website."

// Inquiry is a prospective-customer record awaiting qualification.
// It is created by intake, mutated only by the confirmation handler
// (status → CONFIRMED), and destroyed by promotion.
type Inquiry struct {
	ID                 uuid.UUID     `json:"id"`
	FirstName          string        `json:"firstName"`
	LastName           string        `json:"lastName"`
	Email              *string       `json:"email,omitempty"`
	Phone              *string       `json:"phone,omitempty"`
	BusinessPage       *string       `json:"businessPage,omitempty"`
	InterestedProperty *string       `json:"interestedProperty,omitempty"`
	ListingID          *string       `json:"listingId,omitempty"`
	Status             InquiryStatus `json:"status"`
	Notes              string        `json:"notes"`
	CreatedAt          time.Time     `json:"createdAt"`
}

// FullName returns "First Last" for feed messages and notifications.
func (i Inquiry) FullName() string {
	return i.FirstName + " " + i.LastName
}

// ShortName returns "First L." — the form used in public feed messages.
func (i Inquiry) ShortName() string {
	return shortName(i.FirstName, i.LastName)
}
