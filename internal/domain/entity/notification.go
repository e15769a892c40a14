package entity

import "time"

// Notification is a per-user portal message (order updates, replies to leads).
type Notification struct {
	ID        string    `json:"id" firestore:"-"` // Document ID.
	UserUID   string    `json:"userUid" firestore:"userUid"`
	Title     string    `json:"title" firestore:"title"`
	Body      string    `json:"body,omitempty" firestore:"body,omitempty"`
	Read      bool      `json:"read" firestore:"read"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
