package auth

import (
	"context"

	serverError "github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/logger"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UserStore is the part of the users model login needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (objects.User, error)
	Insert(ctx context.Context, user objects.User) error
}

type Service struct {
	users  UserStore
	tokens *TokenService
}

func NewService(users UserStore, tokens *TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Login answers InvalidCredentialsError for an unknown email and a wrong password alike.
func (s *Service) Login(ctx context.Context, email, password string) (objects.LoginResult, error) {

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {

		if serverError.HasCode(err, serverError.ObjectIDNotFoundErrorCode) {
			logger.GetLogger().Warn("Login with unknown email", zap.String("email", email))
			return objects.LoginResult{}, serverError.InvalidCredentialsError.New()
		}

		return objects.LoginResult{}, err
	}

	if !CheckPassword(user.PasswordHash, password) {
		logger.GetLogger().Warn("Login with wrong password", zap.String("user_id", user.UserID))
		return objects.LoginResult{}, serverError.InvalidCredentialsError.New()
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return objects.LoginResult{}, err
	}

	user.PasswordHash = ""

	logger.GetLogger().Info("User logged in", zap.String("user_id", user.UserID))

	return objects.LoginResult{Token: token, User: user}, nil
}

// EnsureUser creates the account unless its email is already registered.
func (s *Service) EnsureUser(ctx context.Context, username, email, password string) error {

	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}

	if !serverError.HasCode(err, serverError.ObjectIDNotFoundErrorCode) {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	err = s.users.Insert(ctx, objects.User{
		UserID:       uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return err
	}

	logger.GetLogger().Info("Seeded user", zap.String("username", username), zap.String("email", email))

	return nil
}
