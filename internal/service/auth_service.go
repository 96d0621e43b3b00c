package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/nickmonteleone/sharebandb-backend/internal/domain"
	"github.com/nickmonteleone/sharebandb-backend/internal/repository"
	"golang.org/x/crypto/argon2"
)

var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrInvalidCreds  = errors.New("invalid username or password")
)

// TokenUser is the identity carried inside a bearer token's "data" claim.
type TokenUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewAuthService builds the auth module. tokenTTL of 0 issues tokens
// without an expiry claim.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

type CredentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Signup creates the user and returns a signed token. The username
// pre-check is an optimization; the store's unique constraint is the
// authoritative guard under concurrent identical signups.
func (s *AuthService) Signup(ctx context.Context, input CredentialsInput) (string, error) {
	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", ErrUsernameTaken
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("creating user: %w", err)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return token, nil
}

// Login authenticates and returns a signed token. Unknown usernames and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input CredentialsInput) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCreds
	}

	if !verifyPassword(input.Password, user.PasswordHash) {
		return "", ErrInvalidCreds
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return token, nil
}

// IssueToken signs an HS256 token with payload {data: {username, id}}.
func (s *AuthService) IssueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"data": map[string]any{
			"username": user.Username,
			"id":       user.ID,
		},
	}
	if s.tokenTTL > 0 {
		claims["iat"] = time.Now().Unix()
		claims["exp"] = time.Now().Add(s.tokenTTL).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// VerifyToken decodes and verifies a bearer token. It never returns an
// error; malformed, tampered, expired, or wrong-algorithm tokens all come
// back as (nil, false) and callers treat that uniformly as unauthenticated.
func (s *AuthService) VerifyToken(tokenStr string) (*TokenUser, bool) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	data, ok := claims["data"].(map[string]any)
	if !ok {
		return nil, false
	}

	username, ok := data["username"].(string)
	if !ok {
		return nil, false
	}
	id, ok := data["id"].(float64)
	if !ok {
		return nil, false
	}

	return &TokenUser{ID: int64(id), Username: username}, true
}

func hashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)

	return fmt.Sprintf("%s:%s",
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

func verifyPassword(password, encoded string) bool {
	saltB64, hashB64, ok := strings.Cut(encoded, ":")
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}

	expectedHash, err := base64.RawStdEncoding.DecodeString(hashB64)
	if err != nil {
		return false
	}

	hash := argon2.IDKey([]byte(password), salt, 1, 64*1024, 4, 32)
	return subtle.ConstantTimeCompare(hash, expectedHash) == 1
}
