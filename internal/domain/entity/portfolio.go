package entity

import (
	"slices"
	"time"
)

// PortfolioItem is one showcased project on the marketing site.
// DisplayOrder sequences the active items; inactive items are retained in
// storage but excluded from public rendering.
type PortfolioItem struct {
	ID           string    `json:"id" firestore:"-"` // Document ID.
	Title        string    `json:"title" firestore:"title"`
	Category     string    `json:"category" firestore:"category"`
	Description  string    `json:"description,omitempty" firestore:"description,omitempty"`
	Images       []string  `json:"images" firestore:"images"` // Ordered image URLs.
	Active       bool      `json:"active" firestore:"active"`
	DisplayOrder int       `json:"displayOrder" firestore:"displayOrder"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// VisiblePortfolio filters to active items sorted by display order.
func VisiblePortfolio(items []PortfolioItem) []PortfolioItem {
	visible := make([]PortfolioItem, 0, len(items))
	for _, item := range items {
		if item.Active {
			visible = append(visible, item)
		}
	}
	slices.SortStableFunc(visible, func(a, b PortfolioItem) int {
		return a.DisplayOrder - b.DisplayOrder
	})

	return visible
}
