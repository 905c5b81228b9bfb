package auth

import (
	"fmt"
	"strings"
	"time"

	serverError "github.com/AsmaaWasel/Dashboard/errors"
	"github.com/AsmaaWasel/Dashboard/objects"
	"github.com/golang-jwt/jwt/v5"
)

const DefaultTokenExpiration = 24 * time.Hour

// Claims is the subset of the token payload handlers care about.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type TokenService struct {
	secretKey  []byte
	expiration time.Duration
	now        func() time.Time
}

func NewTokenService(secretKey string, expiration time.Duration) *TokenService {

	if expiration <= 0 {
		expiration = DefaultTokenExpiration
	}

	return &TokenService{
		secretKey:  []byte(secretKey),
		expiration: expiration,
		now:        time.Now,
	}
}

// Issue signs an HS256 token for user.
func (s *TokenService) Issue(user objects.User) (string, error) {

	now := s.now()
	claims := jwt.MapClaims{
		"user_id":  user.UserID,
		"username": user.Username,
		"email":    user.Email,
		"exp":      now.Add(s.expiration).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Verify checks signature and expiry. Every failure is reported as UnauthorizedError.
func (s *TokenService) Verify(tokenString string) (Claims, error) {

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {

		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}

		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return Claims{}, serverError.UnauthorizedError.New()
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, serverError.UnauthorizedError.New()
	}

	userID, _ := mapClaims["user_id"].(string)
	if userID == "" {
		return Claims{}, serverError.UnauthorizedError.New()
	}

	username, _ := mapClaims["username"].(string)
	email, _ := mapClaims["email"].(string)

	return Claims{UserID: userID, Username: username, Email: email}, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header value.
func BearerToken(header string) (string, bool) {

	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	return token, token != ""
}
