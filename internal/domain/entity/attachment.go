package entity

import "time"

// Attachment is one file uploaded against a lead. The list stored on the
// lead document is the source of truth once populated; the object storage
// prefix is only consulted when the list is absent.
type Attachment struct {
	Name       string    `json:"name" firestore:"name"`
	URL        string    `json:"url" firestore:"url"`
	Type       string    `json:"type" firestore:"type"` // File extension, without the dot.
	Size       int64     `json:"size" firestore:"size"` // Bytes; 0 when unknown.
	UploadedAt time.Time `json:"uploadedAt" firestore:"uploadedAt"`
}
