package domain

import (
	"regexp"
	"strings"
)

// CustomerFields are the per-order customer details entered on the order
// form. Nothing here is persisted; they live only inside one composed message.
type CustomerFields struct {
	GroupName     string `json:"groupName"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
}

var contactRe = regexp.MustCompile(`^[0-9]{10}$`)

// Validate trims the fields in place and rejects empty values and contact
// numbers that are not exactly ten digits. A "+91" prefix is rejected, not
// stripped.
func (c *CustomerFields) Validate() error {
	c.GroupName = strings.TrimSpace(c.GroupName)
	c.Address = strings.TrimSpace(c.Address)
	c.ContactNumber = strings.TrimSpace(c.ContactNumber)

	if c.GroupName == "" {
		return &FieldError{Field: "groupName", Err: ErrFieldRequired}
	}
	if c.Address == "" {
		return &FieldError{Field: "address", Err: ErrFieldRequired}
	}
	if c.ContactNumber == "" {
		return &FieldError{Field: "contactNumber", Err: ErrFieldRequired}
	}
	if !contactRe.MatchString(c.ContactNumber) {
		return &FieldError{Field: "contactNumber", Err: ErrInvalidContact}
	}
	return nil
}
