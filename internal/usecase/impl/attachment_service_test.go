package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/domain/repository"
	"draftdesk/internal/errors"
	"draftdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type attachmentFixture struct {
	service usecase.AttachmentUsecase
	leads   *mockLeadRepository
	store   *mockAttachmentStore
}

func newAttachmentFixture(t *testing.T) *attachmentFixture {
	t.Helper()

	f := &attachmentFixture{
		leads: &mockLeadRepository{},
		store: &mockAttachmentStore{},
	}
	f.service = NewAttachmentService(AttachmentServiceParams{
		LeadRepo: f.leads,
		Store:    f.store,
		Logger:   testLogger(),
	})

	return f
}

func leadWithAttachments(id string, attachments ...entity.Attachment) *entity.Lead {
	return &entity.Lead{
		ID:          id,
		Name:        "Pat",
		Email:       "pat@example.com",
		Status:      entity.LeadStatusNew,
		Attachments: attachments,
	}
}

func TestAttachmentService_Upload_AppendsToExistingList(t *testing.T) {
	f := newAttachmentFixture(t)
	ctx := context.Background()

	existing := entity.Attachment{Name: "old.pdf", URL: "https://bucket/old.pdf", Size: 10}
	f.leads.On("FindByID", ctx, "lead-1").Return(leadWithAttachments("lead-1", existing), nil)

	f.store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "leads/lead-1/") && strings.HasSuffix(key, "_site-plan.pdf")
	}), mock.Anything, "application/pdf").Return(nil)
	f.store.On("ResolveURL", ctx, mock.Anything).Return("https://bucket/signed/site-plan.pdf", nil)

	var persisted []entity.Attachment
	f.leads.On("ReplaceAttachments", ctx, "lead-1", mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(2).([]entity.Attachment)
		}).
		Return(nil)

	out, err := f.service.Upload(ctx, usecase.UploadAttachmentsInput{
		LeadID: "lead-1",
		Files: []usecase.UploadFile{
			{Name: "site-plan.pdf", ContentType: "application/pdf", Size: 2048, Body: strings.NewReader("pdf")},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Uploaded, 1)
	assert.Equal(t, "site-plan.pdf", out.Uploaded[0].Name)
	assert.Equal(t, "pdf", out.Uploaded[0].Type)
	assert.Equal(t, int64(2048), out.Uploaded[0].Size)
	assert.Empty(t, out.Failed)
	assert.False(t, out.CORSDetected)

	// The rewrite carries existing entries plus the new one, in order.
	require.Len(t, persisted, 2)
	assert.Equal(t, "old.pdf", persisted[0].Name)
	assert.Equal(t, "site-plan.pdf", persisted[1].Name)
}

func TestAttachmentService_Upload_SkipsFailedFiles(t *testing.T) {
	f := newAttachmentFixture(t)
	ctx := context.Background()

	f.leads.On("FindByID", ctx, "lead-2").Return(leadWithAttachments("lead-2"), nil)

	f.store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasSuffix(key, "_good.jpg")
	}), mock.Anything, "image/jpeg").Return(nil)
	f.store.On("Put", ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasSuffix(key, "_bad.jpg")
	}), mock.Anything, "image/jpeg").Return(domainerrors.ErrStorageUnknown)
	f.store.On("ResolveURL", ctx, mock.Anything).Return("https://bucket/signed/good.jpg", nil)
	f.leads.On("ReplaceAttachments", ctx, "lead-2", mock.Anything).Return(nil)

	out, err := f.service.Upload(ctx, usecase.UploadAttachmentsInput{
		LeadID: "lead-2",
		Files: []usecase.UploadFile{
			{Name: "good.jpg", ContentType: "image/jpeg", Body: strings.NewReader("a")},
			{Name: "bad.jpg", ContentType: "image/jpeg", Body: strings.NewReader("b")},
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Uploaded, 1)
	assert.Equal(t, "good.jpg", out.Uploaded[0].Name)
	require.Len(t, out.Failed, 1)
	assert.Equal(t, "bad.jpg", out.Failed[0].Name)
	assert.False(t, out.CORSDetected)
}

func TestAttachmentService_Upload_FlagsCORS(t *testing.T) {
	f := newAttachmentFixture(t)
	ctx := context.Background()

	f.leads.On("FindByID", ctx, "lead-3").Return(leadWithAttachments("lead-3"), nil)
	f.store.On("Put", ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(domainerrors.ErrStorageCORS.WrapMessage("preflight blocked"))

	out, err := f.service.Upload(ctx, usecase.UploadAttachmentsInput{
		LeadID: "lead-3",
		Files:  []usecase.UploadFile{{Name: "plan.png", ContentType: "image/png", Body: strings.NewReader("x")}},
	})
	require.NoError(t, err)

	assert.Empty(t, out.Uploaded)
	require.Len(t, out.Failed, 1)
	assert.True(t, out.CORSDetected)

	// Nothing uploaded, so the list is never rewritten.
	f.leads.AssertNotCalled(t, "ReplaceAttachments", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachmentService_Upload_LeadMissing(t *testing.T) {
	f := newAttachmentFixture(t)
	ctx := context.Background()

	f.leads.On("FindByID", ctx, "ghost").Return(nil, repository.ErrLeadNotFound)

	_, err := f.service.Upload(ctx, usecase.UploadAttachmentsInput{LeadID: "ghost"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), appErr.ErrorCode())
}

func TestAttachmentService_List_PrefersMetadata(t *testing.T) {
	f := newAttachmentFixture(t)
	ctx := context.Background()

	stored := entity.Attachment{Name: "plan.pdf", URL: "https://bucket/plan.pdf", Size: 512}
	f.leads.On("FindByID", ctx, "lead-4").Return(leadWithAttachments("lead-4", stored), nil)

	out, err := f.service.List(ctx, "lead-4")
	require.NoError(t, err)

	assert.False(t, out.FromFallback)
	require.Len(t, out.Attachments, 1)
	assert.Equal(t, int64(512), out.Attachments[0].Size)
	f.store.AssertNotCalled(t, "ListKeys", mock.Anything, mock.Anything)
}

func TestAttachmentService_List_FallbackEnumeratesBucket(t *testing.T) {
	f := newAttachmentFixture(t)
	ctx := context.Background()

	f.leads.On("FindByID", ctx, "lead-5").Return(leadWithAttachments("lead-5"), nil)
	f.store.On("ListKeys", ctx, "leads/lead-5/").
		Return([]string{"leads/lead-5/1717171717000_survey.pdf"}, nil)
	f.store.On("ResolveURL", ctx, "leads/lead-5/1717171717000_survey.pdf").
		Return("https://bucket/signed/survey.pdf", nil)

	var persisted []entity.Attachment
	f.leads.On("ReplaceAttachments", ctx, "lead-5", mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(2).([]entity.Attachment)
		}).
		Return(nil)

	out, err := f.service.List(ctx, "lead-5")
	require.NoError(t, err)

	assert.True(t, out.FromFallback)
	require.Len(t, out.Attachments, 1)
	assert.Equal(t, "survey.pdf", out.Attachments[0].Name)
	assert.Equal(t, "pdf", out.Attachments[0].Type)
	// Bucket enumeration cannot see sizes.
	assert.Zero(t, out.Attachments[0].Size)
	assert.Equal(t, time.UnixMilli(1717171717000), out.Attachments[0].UploadedAt)

	// The recovered list is written back for future calls.
	require.Len(t, persisted, 1)
	assert.Equal(t, "survey.pdf", persisted[0].Name)
}

func TestAttachmentService_List_FallbackPersistFailureStillReturns(t *testing.T) {
	f := newAttachmentFixture(t)
	ctx := context.Background()

	f.leads.On("FindByID", ctx, "lead-6").Return(leadWithAttachments("lead-6"), nil)
	f.store.On("ListKeys", ctx, "leads/lead-6/").Return([]string{"leads/lead-6/1000_a.png"}, nil)
	f.store.On("ResolveURL", ctx, mock.Anything).Return("https://bucket/a.png", nil)
	f.leads.On("ReplaceAttachments", ctx, "lead-6", mock.Anything).Return(errors.New("write failed"))

	out, err := f.service.List(ctx, "lead-6")
	require.NoError(t, err)
	assert.Len(t, out.Attachments, 1)
}

func TestAttachmentService_Delete_SplicesByIndex(t *testing.T) {
	f := newAttachmentFixture(t)
	ctx := context.Background()

	a := entity.Attachment{Name: "a.pdf"}
	b := entity.Attachment{Name: "b.pdf"}
	c := entity.Attachment{Name: "c.pdf"}
	f.leads.On("FindByID", ctx, "lead-7").Return(leadWithAttachments("lead-7", a, b, c), nil)

	var persisted []entity.Attachment
	f.leads.On("ReplaceAttachments", ctx, "lead-7", mock.Anything).
		Run(func(args mock.Arguments) {
			persisted = args.Get(2).([]entity.Attachment)
		}).
		Return(nil)

	require.NoError(t, f.service.Delete(ctx, "lead-7", 1))

	require.Len(t, persisted, 2)
	assert.Equal(t, "a.pdf", persisted[0].Name)
	assert.Equal(t, "c.pdf", persisted[1].Name)
}

func TestAttachmentService_Delete_IndexOutOfRange(t *testing.T) {
	f := newAttachmentFixture(t)
	ctx := context.Background()

	f.leads.On("FindByID", ctx, "lead-8").
		Return(leadWithAttachments("lead-8", entity.Attachment{Name: "only.pdf"}), nil)

	for _, index := range []int{-1, 1, 99} {
		err := f.service.Delete(ctx, "lead-8", index)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, domainerrors.ErrAttachmentIndex.ErrorCode(), appErr.ErrorCode())
	}

	f.leads.AssertNotCalled(t, "ReplaceAttachments", mock.Anything, mock.Anything, mock.Anything)
}
