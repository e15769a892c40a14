package firestore

import (
	"context"
	"time"

	"draftdesk/internal/domain/entity"
	"draftdesk/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type leadRepository struct {
	client *firestore.Client
}

// NewLeadRepository is the constructor for the Firestore-backed lead store.
func NewLeadRepository(client *firestore.Client) repository.LeadRepository {
	return &leadRepository{client: client}
}

// Create persists a new lead and fills in its document ID.
func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	docRef := r.client.Collection(leadsCollection).NewDoc()
	lead.ID = docRef.ID

	now := time.Now()
	lead.CreatedAt = now
	lead.UpdatedAt = now
	if lead.Status == "" {
		lead.Status = entity.LeadStatusNew
	}
	if lead.Attachments == nil {
		lead.Attachments = []entity.Attachment{}
	}

	if _, err := docRef.Set(ctx, lead); err != nil {
		return errors.Wrap(err, "failed to create lead document")
	}

	return nil
}

// FindByID retrieves a single lead by document ID.
func (r *leadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	snap, err := r.client.Collection(leadsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, repository.ErrLeadNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get lead document")
	}

	var lead entity.Lead
	if err := snap.DataTo(&lead); err != nil {
		return nil, errors.Wrap(err, "failed to decode lead document")
	}
	lead.ID = snap.Ref.ID

	return &lead, nil
}

// List retrieves leads newest-first, optionally filtered by status.
func (r *leadRepository) List(ctx context.Context, leadStatus entity.LeadStatus) ([]entity.Lead, error) {
	query := r.client.Collection(leadsCollection).
		OrderBy("createdAt", firestore.Desc)
	if leadStatus != "" {
		query = query.Where("status", "==", string(leadStatus))
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var leads []entity.Lead
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate lead documents")
		}

		var lead entity.Lead
		if err := snap.DataTo(&lead); err != nil {
			return nil, errors.Wrap(err, "failed to decode lead document")
		}
		lead.ID = snap.Ref.ID
		leads = append(leads, lead)
	}

	return leads, nil
}

// UpdateStatus patches the pipeline status of a lead.
func (r *leadRepository) UpdateStatus(ctx context.Context, id string, leadStatus entity.LeadStatus) error {
	_, err := r.client.Collection(leadsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(leadStatus)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if status.Code(err) == codes.NotFound {
		return repository.ErrLeadNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to update lead status")
	}

	return nil
}

// ReplaceAttachments rewrites the lead's whole attachment list.
func (r *leadRepository) ReplaceAttachments(ctx context.Context, id string, attachments []entity.Attachment) error {
	if attachments == nil {
		attachments = []entity.Attachment{}
	}

	_, err := r.client.Collection(leadsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "attachments", Value: attachments},
		{Path: "updatedAt", Value: time.Now()},
	})
	if status.Code(err) == codes.NotFound {
		return repository.ErrLeadNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to replace lead attachments")
	}

	return nil
}
