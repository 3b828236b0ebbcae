package domain

// InquiryStatus is the lifecycle state of an Inquiry.
// An inquiry is created as LEAD or SELLER_INQUIRY and may only move to
// CONFIRMED in place; becoming a client goes through promotion, which
// deletes the inquiry.
type InquiryStatus string

const (
	InquiryStatusLead          InquiryStatus = "LEAD"
	InquiryStatusSellerInquiry InquiryStatus = "SELLER_INQUIRY"
	InquiryStatusConfirmed     InquiryStatus = "CONFIRMED"
)

func (s InquiryStatus) String() string { return string(s) }

func (s InquiryStatus) IsValid() bool {
	switch s {
	case InquiryStatusLead, InquiryStatusSellerInquiry, InquiryStatusConfirmed:
		return true
	}
	return false
}

// IsIntakeType reports whether the status is one a public submission may
// carry. CONFIRMED is reachable only via the confirmation handler.
func (s InquiryStatus) IsIntakeType() bool {
	return s == InquiryStatusLead || s == InquiryStatusSellerInquiry
}

// ClientStatus is the lifecycle state of a Client.
type ClientStatus string

const (
	ClientStatusActive    ClientStatus = "ACTIVE_CLIENT"
	ClientStatusHomeowner ClientStatus = "HOMEOWNER"
)

func (s ClientStatus) String() string { return string(s) }

func (s ClientStatus) IsValid() bool {
	switch s {
	case ClientStatusActive, ClientStatusHomeowner:
		return true
	}
	return false
}

// CanTransitionTo reports whether a client status change is allowed.
// The only move is ACTIVE_CLIENT → HOMEOWNER; the store does not enforce
// this, so orchestrating code must.
func (s ClientStatus) CanTransitionTo(next ClientStatus) bool {
	if s == next {
		return true
	}
	return s == ClientStatusActive && next == ClientStatusHomeowner
}

// ActivityType is the kind of client-affecting action recorded in the
// audit trail.
type ActivityType string

const (
	ActivityTypeStatusChange  ActivityType = "STATUS_CHANGE"
	ActivityTypeClientCreated ActivityType = "CLIENT_CREATED"
	ActivityTypeNoteAdded     ActivityType = "NOTE_ADDED"
	ActivityTypeContactUpdate ActivityType = "CONTACT_UPDATE"
)

func (t ActivityType) String() string { return string(t) }

func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeStatusChange, ActivityTypeClientCreated,
		ActivityTypeNoteAdded, ActivityTypeContactUpdate:
		return true
	}
	return false
}

// EventType tags entries of the public feed.
type EventType string

const (
	EventTypeInquiryReceived  EventType = "INQUIRY_RECEIVED"
	EventTypeClientPromoted   EventType = "CLIENT_PROMOTED"
	EventTypeHomeownerCreated EventType = "HOMEOWNER_CREATED"
)

func (t EventType) String() string { return string(t) }
