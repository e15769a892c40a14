package entity

import "time"

// ServiceOffering is one drafting service advertised on the site.
type ServiceOffering struct {
	ID           string    `json:"id" firestore:"-"` // Document ID.
	Title        string    `json:"title" firestore:"title"`
	Description  string    `json:"description,omitempty" firestore:"description,omitempty"`
	Icon         string    `json:"icon,omitempty" firestore:"icon,omitempty"`
	Active       bool      `json:"active" firestore:"active"`
	DisplayOrder int       `json:"displayOrder" firestore:"displayOrder"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// Testimonial is a customer quote shown on the marketing pages.
type Testimonial struct {
	ID           string    `json:"id" firestore:"-"` // Document ID.
	Author       string    `json:"author" firestore:"author"`
	Quote        string    `json:"quote" firestore:"quote"`
	Rating       int       `json:"rating" firestore:"rating"` // 1..5
	Active       bool      `json:"active" firestore:"active"`
	DisplayOrder int       `json:"displayOrder" firestore:"displayOrder"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}

// CarouselImage is one slide of the homepage hero carousel.
type CarouselImage struct {
	ID           string    `json:"id" firestore:"-"` // Document ID.
	URL          string    `json:"url" firestore:"url"`
	Caption      string    `json:"caption,omitempty" firestore:"caption,omitempty"`
	Active       bool      `json:"active" firestore:"active"`
	DisplayOrder int       `json:"displayOrder" firestore:"displayOrder"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}
