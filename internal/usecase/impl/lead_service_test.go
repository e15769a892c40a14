package impl

import (
	"context"
	"testing"

	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/errors"
	"draftdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLeadService(leads *mockLeadRepository, inside bool) usecase.LeadUsecase {
	return NewLeadService(LeadServiceParams{
		LeadRepo: leads,
		Area:     &stubAreaChecker{inside: inside},
		Logger:   testLogger(),
	})
}

func TestLeadService_Submit_InArea(t *testing.T) {
	leads := &mockLeadRepository{}
	service := newLeadService(leads, true)

	leads.On("Create", mock.Anything, mock.Anything).Return(nil)

	lead, err := service.Submit(context.Background(), usecase.SubmitLeadInput{
		Name:  "Pat",
		Email: "pat@example.com",
		Site:  &entity.SiteLocation{Address: "123 Main St", Lat: 49.2, Lng: -123.0},
	})
	require.NoError(t, err)

	assert.True(t, lead.InServiceArea)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)
}

func TestLeadService_Submit_OutOfAreaStillAccepted(t *testing.T) {
	leads := &mockLeadRepository{}
	service := newLeadService(leads, false)

	leads.On("Create", mock.Anything, mock.Anything).Return(nil)

	lead, err := service.Submit(context.Background(), usecase.SubmitLeadInput{
		Name:  "Sam",
		Email: "sam@example.com",
		Site:  &entity.SiteLocation{Address: "Far away", Lat: 51.0, Lng: -114.0},
	})
	require.NoError(t, err)

	assert.False(t, lead.InServiceArea)
	leads.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLeadService_Submit_NoSiteSkipsCheck(t *testing.T) {
	leads := &mockLeadRepository{}
	service := newLeadService(leads, false)

	leads.On("Create", mock.Anything, mock.Anything).Return(nil)

	lead, err := service.Submit(context.Background(), usecase.SubmitLeadInput{
		Name:  "Max",
		Email: "max@example.com",
	})
	require.NoError(t, err)
	assert.True(t, lead.InServiceArea)
}

func TestLeadService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	leads := &mockLeadRepository{}
	service := newLeadService(leads, true)

	err := service.UpdateStatus(context.Background(), "lead-1", entity.LeadStatus("archived"))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	leads.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestLeadService_List_FilterValidation(t *testing.T) {
	leads := &mockLeadRepository{}
	service := newLeadService(leads, true)

	leads.On("List", mock.Anything, entity.LeadStatusQuoted).Return([]entity.Lead{{ID: "l1"}}, nil)

	got, err := service.List(context.Background(), entity.LeadStatusQuoted)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = service.List(context.Background(), entity.LeadStatus("bogus"))
	assert.Error(t, err)
}
