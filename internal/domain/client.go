package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a qualified relationship record. It is created only by the
// promotion orchestrator (its ID is the promoted inquiry's ID), edited by
// administrators, and never deleted automatically.
type Client struct {
	ID                  uuid.UUID     `json:"id"`
	FirstName           string        `json:"firstName"`
	LastName            string        `json:"lastName"`
	Email               *string       `json:"email,omitempty"`
	Phone               *string       `json:"phone,omitempty"`
	BusinessPage        *string       `json:"businessPage,omitempty"`
	InterestedProperty  *string       `json:"interestedProperty,omitempty"`
	Location            *string       `json:"location,omitempty"`
	OriginalInquiryType InquiryStatus `json:"originalInquiryType"`
	Status              ClientStatus  `json:"status"`
	Notes               string        `json:"notes"`
	ProfilePictureURL   *string       `json:"profilePictureUrl,omitempty"`
	PromotedAt          time.Time     `json:"promotedAt"`
	LastModified        time.Time     `json:"lastModified"`
	UpdatedBy           *uuid.UUID    `json:"updatedBy,omitempty"`
}

// FullName returns "First Last".
func (c Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ShortName returns "First L." — the form used in public feed messages.
func (c Client) ShortName() string {
	return shortName(c.FirstName, c.LastName)
}

func shortName(first, last string) string {
	if last == "" {
		return first
	}
	return first + " " + string([]rune(last)[:1]) + "."
}
