package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	deliverycontext "draftdesk/internal/delivery/context"
	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/domain/repository"
	"draftdesk/internal/domain/service"
	"draftdesk/internal/errors"
	"draftdesk/internal/usecase"

	"go.uber.org/fx"
)

// attachmentService implements the AttachmentUsecase interface.
type attachmentService struct {
	leadRepo repository.LeadRepository
	store    service.AttachmentStore
	logger   *slog.Logger
}

// AttachmentServiceParams holds dependencies for AttachmentService, injected by Fx.
type AttachmentServiceParams struct {
	fx.In

	LeadRepo repository.LeadRepository
	Store    service.AttachmentStore
	Logger   *slog.Logger
}

// NewAttachmentService is the constructor for attachmentService.
func NewAttachmentService(params AttachmentServiceParams) usecase.AttachmentUsecase {
	return &attachmentService{
		leadRepo: params.LeadRepo,
		store:    params.Store,
		logger:   params.Logger,
	}
}

func (srv *attachmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func attachmentPrefix(leadID string) string {
	return fmt.Sprintf("leads/%s/", leadID)
}

// Upload stores files one at a time under leads/{id}/{millis}_{name}. A
// failing file is skipped; the uploaded subset is appended to the lead's
// attachment list in a single rewrite.
func (srv *attachmentService) Upload(ctx context.Context, input usecase.UploadAttachmentsInput) (*usecase.UploadAttachmentsOutput, error) {
	lead, err := srv.leadRepo.FindByID(ctx, input.LeadID)
	if errors.Is(err, repository.ErrLeadNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("lead " + input.LeadID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load lead")
	}

	out := &usecase.UploadAttachmentsOutput{}

	for _, file := range input.Files {
		uploadedAt := time.Now()
		key := fmt.Sprintf("%s%d_%s", attachmentPrefix(input.LeadID), uploadedAt.UnixMilli(), file.Name)

		if err := srv.store.Put(ctx, key, file.Body, file.ContentType); err != nil {
			srv.recordFailure(ctx, out, file.Name, err)

			continue
		}

		url, err := srv.store.ResolveURL(ctx, key)
		if err != nil {
			srv.recordFailure(ctx, out, file.Name, err)

			continue
		}

		out.Uploaded = append(out.Uploaded, entity.Attachment{
			Name:       file.Name,
			URL:        url,
			Type:       fileExtension(file.Name),
			Size:       file.Size,
			UploadedAt: uploadedAt,
		})
	}

	if len(out.Uploaded) > 0 {
		merged := append(append([]entity.Attachment{}, lead.Attachments...), out.Uploaded...)
		if err := srv.leadRepo.ReplaceAttachments(ctx, input.LeadID, merged); err != nil {
			return nil, errors.Wrap(err, "failed to persist attachment list")
		}
	}

	return out, nil
}

func (srv *attachmentService) recordFailure(ctx context.Context, out *usecase.UploadAttachmentsOutput, name string, err error) {
	srv.log(ctx).Warn("attachment upload skipped",
		slog.String("file", name),
		slog.Any("error", err),
	)

	out.Failed = append(out.Failed, usecase.UploadFailure{
		Name:   name,
		Reason: err.Error(),
	})
	if isCORSError(err) {
		out.CORSDetected = true
	}
}

func isCORSError(err error) bool {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.ErrorCode() == domainerrors.ErrStorageCORS.ErrorCode()
}

// List prefers the lead document's metadata. An empty metadata list falls
// back to enumerating the bucket prefix; recovered entries report size 0 and
// the recovered list is persisted for future calls.
func (srv *attachmentService) List(ctx context.Context, leadID string) (*usecase.ListAttachmentsOutput, error) {
	lead, err := srv.leadRepo.FindByID(ctx, leadID)
	if errors.Is(err, repository.ErrLeadNotFound) {
		return nil, domainerrors.ErrNotFound.WithDetails("lead " + leadID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load lead")
	}

	if len(lead.Attachments) > 0 {
		return &usecase.ListAttachmentsOutput{Attachments: lead.Attachments}, nil
	}

	keys, err := srv.store.ListKeys(ctx, attachmentPrefix(leadID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate attachment keys")
	}

	recovered := make([]entity.Attachment, 0, len(keys))
	for _, key := range keys {
		url, err := srv.store.ResolveURL(ctx, key)
		if err != nil {
			srv.log(ctx).Warn("failed to resolve recovered attachment",
				slog.String("key", key),
				slog.Any("error", err),
			)

			continue
		}
		name, uploadedAt := parseAttachmentKey(key)
		recovered = append(recovered, entity.Attachment{
			Name:       name,
			URL:        url,
			Type:       fileExtension(name),
			Size:       0,
			UploadedAt: uploadedAt,
		})
	}

	if len(recovered) > 0 {
		if err := srv.leadRepo.ReplaceAttachments(ctx, leadID, recovered); err != nil {
			// The recovered list is still usable; persistence retries on the
			// next call.
			srv.log(ctx).Warn("failed to persist recovered attachment list",
				slog.String("lead_id", leadID),
				slog.Any("error", err),
			)
		}
	}

	return &usecase.ListAttachmentsOutput{
		Attachments:  recovered,
		FromFallback: true,
	}, nil
}

// fileExtension returns the lower-cased extension of a file name, without
// the dot, or "" when the name has none.
func fileExtension(name string) string {
	ext := path.Ext(name)
	if ext == "" {
		return ""
	}

	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// parseAttachmentKey splits a stored key back into the original file name
// and the upload time encoded in its millis prefix.
func parseAttachmentKey(key string) (string, time.Time) {
	base := path.Base(key)

	millis, name, found := strings.Cut(base, "_")
	if !found {
		return base, time.Time{}
	}
	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		return base, time.Time{}
	}

	return name, time.UnixMilli(ms)
}

// Delete splices one attachment out of the lead's metadata. The stored blob
// is retained.
func (srv *attachmentService) Delete(ctx context.Context, leadID string, index int) error {
	lead, err := srv.leadRepo.FindByID(ctx, leadID)
	if errors.Is(err, repository.ErrLeadNotFound) {
		return domainerrors.ErrNotFound.WithDetails("lead " + leadID)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load lead")
	}

	if index < 0 || index >= len(lead.Attachments) {
		return domainerrors.ErrAttachmentIndex.WithDetails(
			fmt.Sprintf("index %d, list length %d", index, len(lead.Attachments)))
	}

	remaining := append(append([]entity.Attachment{}, lead.Attachments[:index]...), lead.Attachments[index+1:]...)
	if err := srv.leadRepo.ReplaceAttachments(ctx, leadID, remaining); err != nil {
		return errors.Wrap(err, "failed to persist attachment list")
	}

	return nil
}
