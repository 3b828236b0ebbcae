package intake

import (
	"strings"

	"github.com/propertypasalo/backend/internal/domain"
)

// SubmitInput is the public inquiry submission payload.
type SubmitInput struct {
	FirstName          string
	LastName           string
	Type               string
	Email              *string
	Phone              *string
	BusinessPage       *string
	InterestedProperty *string
	ListingID          *string
}

// Validate checks the required intake fields. Optional contact fields are
// accepted as-is.
func (in SubmitInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(in.FirstName) == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "is required"})
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "is required"})
	}
	if strings.TrimSpace(in.Type) == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "is required"})
	} else if !domain.InquiryStatus(in.Type).IsIntakeType() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be LEAD or SELLER_INQUIRY"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
