package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrUserAlreadyExists  = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

const passwordCost = bcrypt.DefaultCost

// dummyHash is compared against when the email is unknown so that both
// login failures take the same time.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), passwordCost)

// AuthService handles registration, login and token refresh.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      TokenGenerator
	adminIDs map[uuid.UUID]struct{}
}

// NewAuthService creates a new AuthService instance. adminIDs lists the
// accounts that are granted the admin role regardless of their stored role.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator, adminIDs []string) *AuthService {
	ids := make(map[uuid.UUID]struct{}, len(adminIDs))
	for _, raw := range adminIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Log.Warnw("ignoring invalid admin account id", "id", raw, "err", err)
			continue
		}
		ids[id] = struct{}{}
	}

	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		adminIDs: ids,
	}
}

// RoleOf resolves the role carried by the user's tokens. The role is fixed
// at issuance: revoking an admin id or changing a stored role takes effect
// only once previously issued tokens expire.
func (svc *AuthService) RoleOf(user *models.User) string {
	if user.Role == models.RoleAdmin {
		return models.RoleAdmin
	}
	if _, ok := svc.adminIDs[user.UserID]; ok {
		return models.RoleAdmin
	}
	return models.RoleUser
}

// Register validates the credentials, stores a new user and returns a session token.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	log := logger.FromContext(ctx)

	if username == "" || email == "" || password == "" {
		return "", ErrMissingFields
	}
	if err := validation.Username(username); err != nil {
		return "", err
	}
	if err := validation.Email(email); err != nil {
		return "", err
	}
	if err := validation.Password(password); err != nil {
		return "", err
	}

	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to check user exists", "err", err)
		return "", err
	}
	if existing != nil {
		log.Infow("email already in use", "email", email)
		return "", ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), passwordCost)
	if err != nil {
		log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	user, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if errors.Is(err, models.ErrDuplicate) {
		log.Infow("email already in use", "email", email)
		return "", ErrUserAlreadyExists
	}
	if err != nil {
		log.Errorw("failed to save user", "err", err)
		return "", err
	}

	return svc.issue(ctx, user)
}

// Login authenticates a user by email and password and returns a session token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return "", ErrMissingFields
	}

	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		log.Infow("login failed", "email", email)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Infow("login failed", "email", email)
		return "", ErrInvalidCredentials
	}

	return svc.issue(ctx, user)
}

// Refresh issues a fresh token for a user that still exists.
func (svc *AuthService) Refresh(ctx context.Context, userID uuid.UUID) (string, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "user_id", userID, "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	return svc.issue(ctx, user)
}

func (svc *AuthService) issue(ctx context.Context, user *models.User) (string, error) {
	token, err := svc.jwt.Generate(ctx, user.UserID, svc.RoleOf(user))
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to generate JWT", "err", err)
		return "", err
	}
	return token, nil
}
