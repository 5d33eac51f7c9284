package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/melisaydin/shop-backend/internal/auth"
	"github.com/melisaydin/shop-backend/internal/mailer"
	"github.com/melisaydin/shop-backend/internal/metrics"
	"github.com/melisaydin/shop-backend/internal/models"
	repo "github.com/melisaydin/shop-backend/internal/repository"
	"github.com/melisaydin/shop-backend/internal/worker"
)

type UserService struct {
	users    repo.Users
	audit    repo.AuditLogs
	tm       *auth.TokenManager
	notifier mailer.Notifier
	wp       *worker.Pool
	log      *slog.Logger

	now func() time.Time
}

func NewUserService(users repo.Users, audit repo.AuditLogs, tm *auth.TokenManager, n mailer.Notifier, wp *worker.Pool, log *slog.Logger) *UserService {
	return &UserService{users: users, audit: audit, tm: tm, notifier: n, wp: wp, log: log, now: time.Now}
}

// Register creates the user and issues a session token in one step, the way
// the storefront's signup flow expects.
func (s *UserService) Register(ctx context.Context, username, email, password, role string) (models.User, string, error) {
	u := models.User{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Role:     role,
	}
	if err := u.Validate(); err != nil {
		return models.User{}, "", invalidf("%s", err)
	}
	if password == "" {
		return models.User{}, "", invalidf("password required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}

	created, err := s.users.Create(ctx, u.Username, u.Email, hash, u.Role)
	if errors.Is(err, repo.ErrDuplicate) {
		return models.User{}, "", fmt.Errorf("%w: username or email taken", ErrConflict)
	}
	if err != nil {
		return models.User{}, "", err
	}

	token, err := s.tm.Issue(created.ID, created.Role)
	if err != nil {
		return models.User{}, "", err
	}
	metrics.RegistrationsTotal.Inc()
	return created, token, nil
}

// Login deliberately reports the same failure for an unknown email and a
// wrong password.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	u, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, "", err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	token, err := s.tm.Issue(u.ID, u.Role)
	if err != nil {
		return models.User{}, "", err
	}
	return u, token, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// ForgotPassword stores a fresh 6-digit code (overwriting any outstanding
// one) and hands the mail to the notifier. Delivery failure does not change
// the outcome: once the code is stored, the operation has succeeded.
func (s *UserService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return invalidf("email required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	code, err := auth.NewOTP()
	if err != nil {
		return err
	}
	if err := s.users.SetOTP(ctx, u.ID, code, s.now().Add(auth.OTPTTL)); err != nil {
		return err
	}
	metrics.OTPIssuedTotal.Inc()

	body := fmt.Sprintf(
		`<p>Your OTP is <strong>%s</strong>. It expires in 15 minutes.</p>
		 <p>Choose a strong password mixing letters, numbers, and symbols.</p>`, code)
	s.sendAsync(u.Email, "Password Reset OTP", body)
	return nil
}

// ResetPassword exchanges a live code for a password change. The repo clears
// the code in the same write as the hash, so a redeemed code is gone even if
// something fails afterwards.
func (s *UserService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = strings.TrimSpace(email)
	if email == "" || code == "" || newPassword == "" {
		return invalidf("email, otp and new password are required")
	}

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if !u.HasValidOTP(code, s.now()) {
		return ErrInvalidOTP
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.ResetPassword(ctx, u.ID, hash); err != nil {
		return err
	}

	uid := u.ID
	s.wp.Submit(func() {
		_ = s.audit.Create(context.Background(), models.AuditLog{
			EntityType: "user",
			EntityID:   &uid,
			Action:     "password_reset",
		})
	})
	return nil
}

func (s *UserService) sendAsync(to, subject, body string) {
	s.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.notifier.Send(ctx, to, subject, body); err != nil {
			metrics.MailTotal.WithLabelValues("failed").Inc()
			s.log.Error("mail send", "to", to, "subject", subject, "err", err)
			return
		}
		metrics.MailTotal.WithLabelValues("sent").Inc()
	})
}
