package entity

import "time"

// LeadStatus tracks where a lead sits in the intake pipeline.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQuoted    LeadStatus = "quoted"
	LeadStatusWon       LeadStatus = "won"
	LeadStatusLost      LeadStatus = "lost"
)

// IsValid checks if the LeadStatus is a valid value.
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQuoted, LeadStatusWon, LeadStatusLost:
		return true
	default:
		return false
	}
}

// SiteLocation is the project site a lead asks about.
type SiteLocation struct {
	Address string  `json:"address" firestore:"address"`
	Lat     float64 `json:"lat" firestore:"lat"`
	Lng     float64 `json:"lng" firestore:"lng"`
}

// Lead is an inquiry from the marketing site, and the parent record that
// owns uploaded attachments.
type Lead struct {
	ID          string        `json:"id" firestore:"-"` // Document ID.
	Name        string        `json:"name" firestore:"name"`
	Email       string        `json:"email" firestore:"email"`
	Phone       string        `json:"phone,omitempty" firestore:"phone,omitempty"`
	ProjectType string        `json:"projectType,omitempty" firestore:"projectType,omitempty"`
	Message     string        `json:"message,omitempty" firestore:"message,omitempty"`
	Site        *SiteLocation `json:"site,omitempty" firestore:"site,omitempty"`

	// InServiceArea records the intake-time containment check against the
	// configured service polygon. Out-of-area leads are kept, just flagged.
	InServiceArea bool `json:"inServiceArea" firestore:"inServiceArea"`

	Status      LeadStatus   `json:"status" firestore:"status"`
	Attachments []Attachment `json:"attachments" firestore:"attachments"`
	CreatedAt   time.Time    `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt" firestore:"updatedAt"`
}
