package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/melisaydin/shop-backend/internal/mailer"
	"github.com/melisaydin/shop-backend/internal/metrics"
	"github.com/melisaydin/shop-backend/internal/models"
	repo "github.com/melisaydin/shop-backend/internal/repository"
	"github.com/melisaydin/shop-backend/internal/worker"
)

type ContactService struct {
	contacts    repo.Contacts
	subscribers repo.Subscribers
	notifier    mailer.Notifier
	wp          *worker.Pool
	adminEmail  string
	log         *slog.Logger
}

func NewContactService(contacts repo.Contacts, subscribers repo.Subscribers, n mailer.Notifier, wp *worker.Pool, adminEmail string, log *slog.Logger) *ContactService {
	return &ContactService{contacts: contacts, subscribers: subscribers, notifier: n, wp: wp, adminEmail: adminEmail, log: log}
}

// CreateContact stores the message; the admin notification is best effort.
func (s *ContactService) CreateContact(ctx context.Context, c models.Contact) (models.Contact, error) {
	if err := c.Validate(); err != nil {
		return models.Contact{}, invalidf("%s", err)
	}
	saved, err := s.contacts.Create(ctx, c)
	if err != nil {
		return models.Contact{}, err
	}

	if s.adminEmail != "" {
		phone := "N/A"
		if saved.Phone != nil {
			phone = *saved.Phone
		}
		body := fmt.Sprintf(
			`<h3>New Contact Message</h3>
			 <p><strong>Name:</strong> %s</p>
			 <p><strong>Email:</strong> %s</p>
			 <p><strong>Phone:</strong> %s</p>
			 <p><strong>Message:</strong> %s</p>`,
			saved.Name, saved.Email, phone, saved.Message)
		to := s.adminEmail
		s.wp.Submit(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := s.notifier.Send(ctx, to, "New Contact Message Received", body); err != nil {
				metrics.MailTotal.WithLabelValues("failed").Inc()
				s.log.Error("admin contact mail", "err", err)
				return
			}
			metrics.MailTotal.WithLabelValues("sent").Inc()
		})
	}
	return saved, nil
}

func (s *ContactService) Subscribe(ctx context.Context, email string) (models.Subscriber, error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return models.Subscriber{}, invalidf("invalid email")
	}
	sub, err := s.subscribers.Create(ctx, email)
	if errors.Is(err, repo.ErrDuplicate) {
		return models.Subscriber{}, fmt.Errorf("%w: already subscribed", ErrConflict)
	}
	return sub, err
}

func (s *ContactService) ListSubscribers(ctx context.Context) ([]models.Subscriber, error) {
	return s.subscribers.List(ctx)
}

func (s *ContactService) DeleteSubscriber(ctx context.Context, id string) error {
	err := s.subscribers.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
