package models

import (
	"github.com/asaskevich/govalidator"

	dErrors "summit-connect/pkg/domain-errors"
)

// Attendee is the persisted registrant record. The id doubles as the storage
// key; a record is only ever replaced wholesale, never partially updated.
type Attendee struct {
	ID                 string  `json:"id"`
	FullName           string  `json:"fullName"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	Profession         string  `json:"profession"`
	BusinessChallenges string  `json:"businessChallenges"`
	Address            Address `json:"address"`
}

// Address is the mailing address nested inside an Attendee. All four fields
// are mandatory.
type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Validate is the structural gate applied before every write and to every
// record read back from the store. It checks fields exhaustively and reports
// the first violation as a validation error naming the field, so callers can
// tell users what to fix.
func (a *Attendee) Validate() error {
	if a == nil {
		return dErrors.New(dErrors.CodeValidation, "attendee is required")
	}

	required := []struct {
		field string
		value string
	}{
		{"id", a.ID},
		{"fullName", a.FullName},
		{"phone", a.Phone},
		{"profession", a.Profession},
		{"businessChallenges", a.BusinessChallenges},
		{"address.street", a.Address.Street},
		{"address.city", a.Address.City},
		{"address.state", a.Address.State},
		{"address.zip", a.Address.Zip},
	}
	for _, f := range required {
		if f.value == "" {
			return dErrors.New(dErrors.CodeValidation, f.field+" is required")
		}
	}

	// Email stays optional; format-checked only when present.
	if a.Email != "" && !govalidator.IsEmail(a.Email) {
		return dErrors.New(dErrors.CodeValidation, "email is not a valid address")
	}

	return nil
}

// IsValid is the total predicate form of Validate, used for read-side
// filtering where malformed entries are dropped rather than surfaced.
func IsValid(a *Attendee) bool {
	return a.Validate() == nil
}
