package services

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/melisaydin/shop-backend/internal/models"
)

type MockUsers struct{ mock.Mock }

func (m *MockUsers) Create(ctx context.Context, username, email, passwordHash, role string) (models.User, error) {
	args := m.Called(ctx, username, email, passwordHash, role)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUsers) GetByID(ctx context.Context, id string) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUsers) GetByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUsers) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUsers) SetOTP(ctx context.Context, id, otp string, expiresAt time.Time) error {
	args := m.Called(ctx, id, otp, expiresAt)
	return args.Error(0)
}

func (m *MockUsers) ResetPassword(ctx context.Context, id, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

type MockProducts struct{ mock.Mock }

func (m *MockProducts) Create(ctx context.Context, p models.Product) (models.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *MockProducts) GetByID(ctx context.Context, id string) (models.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *MockProducts) List(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProducts) Update(ctx context.Context, p models.Product) (models.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(models.Product), args.Error(1)
}

func (m *MockProducts) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProducts) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCarts struct{ mock.Mock }

func (m *MockCarts) AddItem(ctx context.Context, userID, productID string, quantity int) (models.CartItem, error) {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Get(0).(models.CartItem), args.Error(1)
}

func (m *MockCarts) ListItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.CartItem), args.Error(1)
}

func (m *MockCarts) SetQuantity(ctx context.Context, userID, productID string, quantity int) (models.CartItem, error) {
	args := m.Called(ctx, userID, productID, quantity)
	return args.Get(0).(models.CartItem), args.Error(1)
}

func (m *MockCarts) RemoveItem(ctx context.Context, userID, productID string) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

type MockOrders struct{ mock.Mock }

func (m *MockOrders) Create(ctx context.Context, o models.Order) (models.Order, error) {
	args := m.Called(ctx, o)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *MockOrders) GetByID(ctx context.Context, id string) (models.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *MockOrders) List(ctx context.Context) ([]models.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrders) UpdateStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *MockOrders) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockAuditLogs struct{ mock.Mock }

func (m *MockAuditLogs) Create(ctx context.Context, l models.AuditLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

type MockContacts struct{ mock.Mock }

func (m *MockContacts) Create(ctx context.Context, c models.Contact) (models.Contact, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(models.Contact), args.Error(1)
}

type MockSubscribers struct{ mock.Mock }

func (m *MockSubscribers) Create(ctx context.Context, email string) (models.Subscriber, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.Subscriber), args.Error(1)
}

func (m *MockSubscribers) List(ctx context.Context) ([]models.Subscriber, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Subscriber), args.Error(1)
}

func (m *MockSubscribers) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// fakeNotifier records sends and can be told to fail; Send never blocks.
type fakeNotifier struct {
	mu   sync.Mutex
	sent []string
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, to, subject, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+": "+subject)
	return nil
}

func (f *fakeNotifier) deliveries() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}
