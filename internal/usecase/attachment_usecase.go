package usecase

import (
	"context"
	"io"

	"draftdesk/internal/domain/entity"
)

// UploadFile is one incoming attachment body.
type UploadFile struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadAttachmentsInput defines the data for a multi-file upload onto a lead.
type UploadAttachmentsInput struct {
	LeadID string
	Files  []UploadFile
}

// UploadFailure describes one file that could not be stored.
type UploadFailure struct {
	Name   string
	Reason string
}

// UploadAttachmentsOutput carries the uploaded subset. Files are written one
// at a time; a failing file is skipped, not fatal.
type UploadAttachmentsOutput struct {
	Uploaded []entity.Attachment
	Failed   []UploadFailure

	// CORSDetected is raised when a failure looks like bucket cross-origin
	// misconfiguration, which the operator can fix.
	CORSDetected bool
}

// ListAttachmentsOutput carries a lead's attachments and where they came from.
type ListAttachmentsOutput struct {
	Attachments []entity.Attachment

	// FromFallback is true when the lead document had no metadata and the
	// list was recovered by enumerating the bucket prefix.
	FromFallback bool
}

// AttachmentUsecase defines the interface for lead attachment operations.
type AttachmentUsecase interface {
	// Upload stores files sequentially and rewrites the lead's attachment
	// list with the uploaded subset appended.
	Upload(ctx context.Context, input UploadAttachmentsInput) (*UploadAttachmentsOutput, error)

	// List returns the lead's attachments, preferring document metadata and
	// falling back to bucket enumeration, persisting the recovered list.
	List(ctx context.Context, leadID string) (*ListAttachmentsOutput, error)

	// Delete removes the attachment at index from the lead's metadata. The
	// stored blob is retained.
	Delete(ctx context.Context, leadID string, index int) error
}
