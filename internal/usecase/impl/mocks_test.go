package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"draftdesk/internal/domain/entity"
	"draftdesk/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

type mockIdentityProvider struct {
	mock.Mock
}

func (m *mockIdentityProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Principal, error) {
	args := m.Called(ctx, email, password)
	if p := args.Get(0); p != nil {
		return p.(*entity.Principal), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockIdentityProvider) VerifyIDToken(ctx context.Context, idToken string, want entity.ProviderType) (*entity.Principal, error) {
	args := m.Called(ctx, idToken, want)
	if p := args.Get(0); p != nil {
		return p.(*entity.Principal), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockTokenService struct {
	mock.Mock
}

func (m *mockTokenService) GenerateTokens(uid, email string, roles []string) (string, string, error) {
	args := m.Called(uid, email, roles)

	return args.String(0), args.String(1), args.Error(2)
}

func (m *mockTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if c := args.Get(0); c != nil {
		return c.(*service.Claims), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockTokenService) GetRefreshTokenDuration() time.Duration {
	args := m.Called()

	return args.Get(0).(time.Duration)
}

type mockSessionStore struct {
	mock.Mock
}

func (m *mockSessionStore) Save(ctx context.Context, tokenHash string, sess service.RefreshSession, expiresAt time.Time) error {
	args := m.Called(ctx, tokenHash, sess, expiresAt)

	return args.Error(0)
}

func (m *mockSessionStore) Find(ctx context.Context, tokenHash string) (*service.RefreshSession, error) {
	args := m.Called(ctx, tokenHash)
	if s := args.Get(0); s != nil {
		return s.(*service.RefreshSession), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockSessionStore) Delete(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)

	return args.Error(0)
}

type mockProfileRepository struct {
	mock.Mock
}

func (m *mockProfileRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	args := m.Called(ctx, uid)
	if p := args.Get(0); p != nil {
		return p.(*entity.UserProfile), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockProfileRepository) UpsertOnLogin(ctx context.Context, profile *entity.UserProfile) error {
	args := m.Called(ctx, profile)

	return args.Error(0)
}

type mockLeadRepository struct {
	mock.Mock
}

func (m *mockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)

	return args.Error(0)
}

func (m *mockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if l := args.Get(0); l != nil {
		return l.(*entity.Lead), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockLeadRepository) List(ctx context.Context, status entity.LeadStatus) ([]entity.Lead, error) {
	args := m.Called(ctx, status)
	if l := args.Get(0); l != nil {
		return l.([]entity.Lead), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockLeadRepository) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) error {
	args := m.Called(ctx, id, status)

	return args.Error(0)
}

func (m *mockLeadRepository) ReplaceAttachments(ctx context.Context, id string, attachments []entity.Attachment) error {
	args := m.Called(ctx, id, attachments)

	return args.Error(0)
}

type mockAttachmentStore struct {
	mock.Mock
}

func (m *mockAttachmentStore) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	args := m.Called(ctx, key, body, contentType)

	return args.Error(0)
}

func (m *mockAttachmentStore) ResolveURL(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)

	return args.String(0), args.Error(1)
}

func (m *mockAttachmentStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if k := args.Get(0); k != nil {
		return k.([]string), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) ListByClient(ctx context.Context, clientUID string) ([]entity.Order, error) {
	args := m.Called(ctx, clientUID)
	if o := args.Get(0); o != nil {
		return o.([]entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	args := m.Called(ctx)
	if o := args.Get(0); o != nil {
		return o.([]entity.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

type mockPortfolioRepository struct {
	mock.Mock
}

func (m *mockPortfolioRepository) List(ctx context.Context) ([]entity.PortfolioItem, error) {
	args := m.Called(ctx)
	if i := args.Get(0); i != nil {
		return i.([]entity.PortfolioItem), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockPortfolioRepository) Upsert(ctx context.Context, item *entity.PortfolioItem) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *mockPortfolioRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockPortfolioRepository) Watch(ctx context.Context) (<-chan []entity.PortfolioItem, error) {
	args := m.Called(ctx)
	if ch := args.Get(0); ch != nil {
		return ch.(<-chan []entity.PortfolioItem), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockNotificationRepository struct {
	mock.Mock
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	args := m.Called(ctx, n)

	return args.Error(0)
}

func (m *mockNotificationRepository) ListByUser(ctx context.Context, userUID string) ([]entity.Notification, error) {
	args := m.Called(ctx, userUID)
	if n := args.Get(0); n != nil {
		return n.([]entity.Notification), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockContentRepository struct {
	mock.Mock
}

func (m *mockContentRepository) ListServices(ctx context.Context) ([]entity.ServiceOffering, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]entity.ServiceOffering), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockContentRepository) UpsertService(ctx context.Context, svc *entity.ServiceOffering) error {
	args := m.Called(ctx, svc)

	return args.Error(0)
}

func (m *mockContentRepository) DeleteService(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockContentRepository) ListTestimonials(ctx context.Context) ([]entity.Testimonial, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]entity.Testimonial), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockContentRepository) UpsertTestimonial(ctx context.Context, tst *entity.Testimonial) error {
	args := m.Called(ctx, tst)

	return args.Error(0)
}

func (m *mockContentRepository) DeleteTestimonial(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func (m *mockContentRepository) ListCarousel(ctx context.Context) ([]entity.CarouselImage, error) {
	args := m.Called(ctx)
	if s := args.Get(0); s != nil {
		return s.([]entity.CarouselImage), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockContentRepository) UpsertCarouselImage(ctx context.Context, img *entity.CarouselImage) error {
	args := m.Called(ctx, img)

	return args.Error(0)
}

func (m *mockContentRepository) DeleteCarouselImage(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type mockContentBroadcast struct {
	mock.Mock
}

func (m *mockContentBroadcast) Publish(ctx context.Context, items []entity.PortfolioItem) error {
	args := m.Called(ctx, items)

	return args.Error(0)
}

func (m *mockContentBroadcast) Subscribe(fn func([]entity.PortfolioItem)) func() {
	args := m.Called(fn)
	if u := args.Get(0); u != nil {
		return u.(func())
	}

	return func() {}
}

func (m *mockContentBroadcast) Current() []entity.PortfolioItem {
	args := m.Called()
	if i := args.Get(0); i != nil {
		return i.([]entity.PortfolioItem)
	}

	return nil
}

func (m *mockContentBroadcast) Close() error {
	args := m.Called()

	return args.Error(0)
}

type mockQRCodeService struct {
	mock.Mock
}

func (m *mockQRCodeService) GenerateShareQR(itemID string) ([]byte, error) {
	args := m.Called(itemID)
	if b := args.Get(0); b != nil {
		return b.([]byte), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockNotificationUsecase struct {
	mock.Mock
}

func (m *mockNotificationUsecase) Notify(ctx context.Context, userUID, title, body string) error {
	args := m.Called(ctx, userUID, title, body)

	return args.Error(0)
}

func (m *mockNotificationUsecase) ListMine(ctx context.Context, userUID string) ([]entity.Notification, error) {
	args := m.Called(ctx, userUID)
	if n := args.Get(0); n != nil {
		return n.([]entity.Notification), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockNotificationUsecase) MarkRead(ctx context.Context, userUID, id string) error {
	args := m.Called(ctx, userUID, id)

	return args.Error(0)
}

// stubAreaChecker answers containment from a fixed set of allowed points.
type stubAreaChecker struct {
	inside bool
}

func (s *stubAreaChecker) Contains(float64, float64) bool {
	return s.inside
}
