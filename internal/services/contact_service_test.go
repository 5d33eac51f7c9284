package services

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/melisaydin/shop-backend/internal/models"
	repo "github.com/melisaydin/shop-backend/internal/repository"
	"github.com/melisaydin/shop-backend/internal/worker"
)

func newContactService(contacts *MockContacts, subs *MockSubscribers, n *fakeNotifier, adminEmail string) (*ContactService, *worker.Pool) {
	wp := worker.NewPool(1)
	return NewContactService(contacts, subs, n, wp, adminEmail, slog.Default()), wp
}

func TestCreateContact(t *testing.T) {
	ctx := context.Background()

	t.Run("NotifiesAdmin", func(t *testing.T) {
		contacts := new(MockContacts)
		notifier := &fakeNotifier{}
		svc, wp := newContactService(contacts, new(MockSubscribers), notifier, "admin@shop.local")

		contacts.On("Create", ctx, mock.Anything).
			Return(models.Contact{ID: "c1", Name: "Lydia", Email: "lydia@example.com", Message: "hi"}, nil).Once()

		_, err := svc.CreateContact(ctx, models.Contact{Name: "Lydia", Email: "lydia@example.com", Message: "hi"})
		require.NoError(t, err)
		wp.Stop()
		assert.Len(t, notifier.deliveries(), 1)
	})

	t.Run("MissingFields", func(t *testing.T) {
		contacts := new(MockContacts)
		svc, wp := newContactService(contacts, new(MockSubscribers), &fakeNotifier{}, "")
		defer wp.Stop()

		_, err := svc.CreateContact(ctx, models.Contact{Name: "Lydia", Email: "lydia@example.com"})
		assert.ErrorIs(t, err, ErrValidation)
		contacts.AssertNotCalled(t, "Create")
	})

	t.Run("NotifierFailureIsSwallowed", func(t *testing.T) {
		contacts := new(MockContacts)
		notifier := &fakeNotifier{err: errors.New("smtp down")}
		svc, wp := newContactService(contacts, new(MockSubscribers), notifier, "admin@shop.local")

		contacts.On("Create", ctx, mock.Anything).
			Return(models.Contact{ID: "c1", Name: "Lydia", Email: "l@x.com", Message: "hi"}, nil).Once()

		_, err := svc.CreateContact(ctx, models.Contact{Name: "Lydia", Email: "l@x.com", Message: "hi"})
		assert.NoError(t, err)
		wp.Stop()
	})
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		subs := new(MockSubscribers)
		svc, wp := newContactService(new(MockContacts), subs, &fakeNotifier{}, "")
		defer wp.Stop()

		subs.On("Create", ctx, "yvan@example.com").
			Return(models.Subscriber{ID: "s1", Email: "yvan@example.com"}, nil).Once()

		sub, err := svc.Subscribe(ctx, "yvan@example.com")
		require.NoError(t, err)
		assert.Equal(t, "s1", sub.ID)
	})

	t.Run("Duplicate", func(t *testing.T) {
		subs := new(MockSubscribers)
		svc, wp := newContactService(new(MockContacts), subs, &fakeNotifier{}, "")
		defer wp.Stop()

		subs.On("Create", ctx, "yvan@example.com").
			Return(models.Subscriber{}, repo.ErrDuplicate).Once()

		_, err := svc.Subscribe(ctx, "yvan@example.com")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		subs := new(MockSubscribers)
		svc, wp := newContactService(new(MockContacts), subs, &fakeNotifier{}, "")
		defer wp.Stop()

		_, err := svc.Subscribe(ctx, "not-an-email")
		assert.ErrorIs(t, err, ErrValidation)
		subs.AssertNotCalled(t, "Create")
	})

	t.Run("DeleteUnknown", func(t *testing.T) {
		subs := new(MockSubscribers)
		svc, wp := newContactService(new(MockContacts), subs, &fakeNotifier{}, "")
		defer wp.Stop()

		subs.On("Delete", ctx, "ghost").Return(repo.ErrNotFound).Once()

		assert.ErrorIs(t, svc.DeleteSubscriber(ctx, "ghost"), ErrNotFound)
	})
}
