package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type memoryUsers struct {
	byEmail map[string]objects.User
}

func (m *memoryUsers) GetByEmail(_ context.Context, email string) (objects.User, error) {

	user, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return objects.User{}, errors.ObjectIDNotFoundError.New(email)
	}

	return user, nil
}

func (m *memoryUsers) Insert(_ context.Context, user objects.User) error {

	if _, ok := m.byEmail[user.Email]; ok {
		return errors.DataAlreadyInUsedError.New()
	}

	m.byEmail[user.Email] = user
	return nil
}

func TestTokenService(t *testing.T) {

	user := objects.User{UserID: gofakeit.UUID(), Username: "Merge", Email: gofakeit.Email()}

	t.Run("Should verify a token it issued", func(t *testing.T) {

		tokens := NewTokenService("secret", time.Hour)

		token, err := tokens.Issue(user)
		require.NoError(t, err)

		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		require.Equal(t, Claims{UserID: user.UserID, Username: user.Username, Email: user.Email}, claims)
	})

	t.Run("Should reject a token signed with another secret", func(t *testing.T) {

		token, err := NewTokenService("other", time.Hour).Issue(user)
		require.NoError(t, err)

		_, err = NewTokenService("secret", time.Hour).Verify(token)
		require.True(t, errors.IsError(err, errors.UnauthorizedError.New()))
	})

	t.Run("Should reject an expired token", func(t *testing.T) {

		tokens := NewTokenService("secret", time.Minute)
		issuedAt := time.Now().Add(-time.Hour)
		tokens.now = func() time.Time { return issuedAt }

		token, err := tokens.Issue(user)
		require.NoError(t, err)

		tokens.now = time.Now
		_, err = tokens.Verify(token)
		require.True(t, errors.HasCode(err, errors.UnauthorizedErrorCode))
	})

	t.Run("Should reject garbage", func(t *testing.T) {

		_, err := NewTokenService("secret", time.Hour).Verify("not.a.token")
		require.Error(t, err)
	})

	t.Run("Should fall back to default expiration", func(t *testing.T) {
		require.Equal(t, DefaultTokenExpiration, NewTokenService("secret", 0).expiration)
	})
}

func TestPassword(t *testing.T) {

	password := gofakeit.Password(true, true, true, false, false, 12)

	hash, err := HashPassword(password)
	require.NoError(t, err)
	require.NotEqual(t, password, hash)
	require.True(t, CheckPassword(hash, password))
	require.False(t, CheckPassword(hash, password+"x"))
	require.False(t, CheckPassword("not-a-hash", password))
}

type ServiceTestSuite struct {
	suite.Suite
	users   *memoryUsers
	service *Service
}

func (s *ServiceTestSuite) SetupTest() {

	s.users = &memoryUsers{byEmail: map[string]objects.User{}}
	s.service = NewService(s.users, NewTokenService("secret", time.Hour))

	s.Require().NoError(s.service.EnsureUser(context.Background(), "Merge", "admin@example.com", "s3cret!"))
}

func (s *ServiceTestSuite) TestLogin() {

	s.Run("Should issue a token for valid credentials", func() {

		result, err := s.service.Login(context.Background(), "admin@example.com", "s3cret!")
		s.Require().NoError(err)
		s.Require().Equal("Merge", result.User.Username)
		s.Require().Empty(result.User.PasswordHash)

		claims, err := s.service.Tokens().Verify(result.Token)
		s.Require().NoError(err)
		s.Require().Equal(result.User.UserID, claims.UserID)
	})

	s.Run("Should answer invalid credentials for a wrong password", func() {

		_, err := s.service.Login(context.Background(), "admin@example.com", "wrong")
		s.Require().True(errors.IsError(err, errors.InvalidCredentialsError.New()))
	})

	s.Run("Should answer invalid credentials for an unknown email", func() {

		_, err := s.service.Login(context.Background(), gofakeit.Email(), "s3cret!")
		s.Require().True(errors.IsError(err, errors.InvalidCredentialsError.New()))
	})
}

func (s *ServiceTestSuite) TestEnsureUser() {

	s.Require().NoError(s.service.EnsureUser(context.Background(), "Merge", "admin@example.com", "changed"))
	s.Require().Len(s.users.byEmail, 1)

	_, err := s.service.Login(context.Background(), "admin@example.com", "s3cret!")
	s.Require().NoError(err, "existing account must keep its password")
}

func TestService(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func TestBearerToken(t *testing.T) {

	var testCases = map[string]struct {
		Header string
		Token  string
		OK     bool
	}{
		"Valid":            {Header: "Bearer abc.def", Token: "abc.def", OK: true},
		"Lowercase scheme": {Header: "bearer abc", Token: "abc", OK: true},
		"Missing token":    {Header: "Bearer ", OK: false},
		"Other scheme":     {Header: "Basic abc", OK: false},
		"Empty":            {Header: "", OK: false},
		"No scheme":        {Header: "abc", OK: false},
	}

	for name, testCase := range testCases {

		t.Run(name, func(t *testing.T) {

			token, ok := BearerToken(testCase.Header)
			require.Equal(t, testCase.OK, ok)
			require.Equal(t, testCase.Token, token)
		})
	}
}
