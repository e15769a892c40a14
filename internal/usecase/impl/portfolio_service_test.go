package impl

import (
	"context"
	"testing"

	"draftdesk/internal/domain/entity"
	domainerrors "draftdesk/internal/domain/errors"
	"draftdesk/internal/domain/repository"
	"draftdesk/internal/errors"
	"draftdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type portfolioFixture struct {
	service   usecase.PortfolioUsecase
	repo      *mockPortfolioRepository
	broadcast *mockContentBroadcast
	qrcodes   *mockQRCodeService
}

func newPortfolioFixture(t *testing.T) *portfolioFixture {
	t.Helper()

	f := &portfolioFixture{
		repo:      &mockPortfolioRepository{},
		broadcast: &mockContentBroadcast{},
		qrcodes:   &mockQRCodeService{},
	}
	f.service = NewPortfolioService(PortfolioServiceParams{
		PortfolioRepo: f.repo,
		Broadcast:     f.broadcast,
		QRCodes:       f.qrcodes,
		Logger:        testLogger(),
	})

	return f
}

func portfolioSet() []entity.PortfolioItem {
	return []entity.PortfolioItem{
		{ID: "p1", Title: "Laneway house", Active: true, DisplayOrder: 2},
		{ID: "p2", Title: "Sunroom", Active: false, DisplayOrder: 0},
		{ID: "p3", Title: "Carport", Active: true, DisplayOrder: 1},
	}
}

func TestPortfolioService_PublicList_FiltersAndSorts(t *testing.T) {
	f := newPortfolioFixture(t)
	ctx := context.Background()

	f.broadcast.On("Current").Return(nil)
	f.repo.On("List", ctx).Return(portfolioSet(), nil)

	items, err := f.service.PublicList(ctx)
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "p3", items[0].ID)
	assert.Equal(t, "p1", items[1].ID)
}

func TestPortfolioService_PublicList_ServedFromSnapshot(t *testing.T) {
	f := newPortfolioFixture(t)

	f.broadcast.On("Current").Return(portfolioSet())

	items, err := f.service.PublicList(context.Background())
	require.NoError(t, err)

	assert.Len(t, items, 2)
	f.repo.AssertNotCalled(t, "List", mock.Anything)
}

func TestPortfolioService_Save_BroadcastsFullList(t *testing.T) {
	f := newPortfolioFixture(t)
	ctx := context.Background()

	f.repo.On("Upsert", ctx, mock.Anything).Return(nil)
	f.repo.On("List", ctx).Return(portfolioSet(), nil)

	var published []entity.PortfolioItem
	f.broadcast.On("Publish", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(1).([]entity.PortfolioItem)
		}).
		Return(nil)

	item, err := f.service.Save(ctx, usecase.SavePortfolioItemInput{
		Title:        "Laneway house",
		Category:     "residential",
		Active:       true,
		DisplayOrder: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "Laneway house", item.Title)

	// The broadcast payload is always the complete list, not a delta.
	assert.Len(t, published, 3)
}

func TestPortfolioService_Save_RequiresTitle(t *testing.T) {
	f := newPortfolioFixture(t)

	_, err := f.service.Save(context.Background(), usecase.SavePortfolioItemInput{})
	require.Error(t, err)
	f.repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestPortfolioService_Delete_NotFound(t *testing.T) {
	f := newPortfolioFixture(t)
	ctx := context.Background()

	f.repo.On("Delete", ctx, "ghost").Return(repository.ErrPortfolioItemNotFound)

	err := f.service.Delete(ctx, "ghost")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), appErr.ErrorCode())
	f.broadcast.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestPortfolioService_Delete_Broadcasts(t *testing.T) {
	f := newPortfolioFixture(t)
	ctx := context.Background()

	f.repo.On("Delete", ctx, "p2").Return(nil)
	f.repo.On("List", ctx).Return(portfolioSet()[:2], nil)
	f.broadcast.On("Publish", ctx, mock.Anything).Return(nil)

	require.NoError(t, f.service.Delete(ctx, "p2"))
	f.broadcast.AssertCalled(t, "Publish", ctx, mock.Anything)
}

func TestPortfolioService_ShareQR(t *testing.T) {
	f := newPortfolioFixture(t)
	ctx := context.Background()

	f.repo.On("List", ctx).Return(portfolioSet(), nil)
	f.qrcodes.On("GenerateShareQR", "p1").Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := f.service.ShareQR(ctx, "p1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	_, err = f.service.ShareQR(ctx, "missing")
	require.Error(t, err)
	f.qrcodes.AssertNotCalled(t, "GenerateShareQR", "missing")
}
