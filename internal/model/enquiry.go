package model

import "time"

// Fallback text rendered in the notification email when an optional
// form field was left empty.
const (
	NotSpecified      = "Not specified"
	NoDetailsProvided = "No additional details provided"
)

// OptionalText is a free-text form field the visitor may leave empty.
// The display default is chosen explicitly through OrDefault instead of
// truthiness checks at render time.
type OptionalText string

// OrDefault returns the field value, or fallback when the field is empty.
func (o OptionalText) OrDefault(fallback string) string {
	if o == "" {
		return fallback
	}
	return string(o)
}

// Enquiry represents a project enquiry submitted via the website form.
// ID and CreatedAt are assigned by the store; both stay zero-valued in
// deployments running without persistence. Records are immutable once
// written; there is no update or delete.
type Enquiry struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`

	Email string `json:"email"`
	Phone string `json:"phone"`

	ProjectType string `json:"projectType"`
	// HouseType is only meaningful when ProjectType is "residential".
	HouseType string       `json:"houseType,omitempty"`
	Budget    OptionalText `json:"budget,omitempty"`
	Location  string       `json:"location"`
	Timeline  OptionalText `json:"timeline,omitempty"`

	Description OptionalText `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
