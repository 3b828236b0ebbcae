package client

import (
	"strings"

	"github.com/propertypasalo/backend/internal/domain"
)

// UpdateInput carries an administrator's edits to a client. Nil fields
// are left untouched; non-nil fields overwrite.
type UpdateInput struct {
	FirstName          *string
	LastName           *string
	Email              *string
	Phone              *string
	BusinessPage       *string
	InterestedProperty *string
	Location           *string
	Status             *string
	Notes              *string
	ProfilePictureURL  *string
}

// Validate checks the fields that carry constraints.
func (in UpdateInput) Validate() error {
	var errs []domain.FieldError

	if in.FirstName != nil && strings.TrimSpace(*in.FirstName) == "" {
		errs = append(errs, domain.FieldError{Field: "firstName", Message: "must not be empty"})
	}
	if in.LastName != nil && strings.TrimSpace(*in.LastName) == "" {
		errs = append(errs, domain.FieldError{Field: "lastName", Message: "must not be empty"})
	}
	if in.Status != nil && !domain.ClientStatus(*in.Status).IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be ACTIVE_CLIENT or HOMEOWNER"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// apply copies the non-nil edits onto the client record.
func (in UpdateInput) apply(c *domain.Client) {
	if in.FirstName != nil {
		c.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		c.LastName = *in.LastName
	}
	if in.Email != nil {
		c.Email = in.Email
	}
	if in.Phone != nil {
		c.Phone = in.Phone
	}
	if in.BusinessPage != nil {
		c.BusinessPage = in.BusinessPage
	}
	if in.InterestedProperty != nil {
		c.InterestedProperty = in.InterestedProperty
	}
	if in.Location != nil {
		c.Location = in.Location
	}
	if in.Status != nil {
		c.Status = domain.ClientStatus(*in.Status)
	}
	if in.Notes != nil {
		c.Notes = *in.Notes
	}
	if in.ProfilePictureURL != nil {
		c.ProfilePictureURL = in.ProfilePictureURL
	}
}
