package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harley-is-not-available/ClosetManager/internal/model"
	"github.com/harley-is-not-available/ClosetManager/internal/pkg/jwtutil"
	"github.com/harley-is-not-available/ClosetManager/internal/pkg/passhash"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmailExists       = errors.New("user with this email already exists")
	ErrInvalidCredential = errors.New("invalid email or password")
)

// UserStore is the persistence surface AuthService needs.
type UserStore interface {
	Create(user *model.User) error
	GetByEmail(email string) (*model.User, error)
	GetByID(id uint) (*model.User, error)
}

type AuthService struct {
	userStore     UserStore
	jwtSecret     string
	jwtExpiration time.Duration
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token string
	User  *model.User
}

func NewAuthService(userStore UserStore, jwtSecret string, jwtExpiration time.Duration) *AuthService {
	return &AuthService{
		userStore:     userStore,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

func (s *AuthService) Register(input RegisterInput) (*model.User, error) {
	email := strings.TrimSpace(input.Email)
	password := input.Password
	fullName := strings.TrimSpace(input.FullName)

	if email == "" || password == "" || fullName == "" {
		return nil, ErrInvalidInput
	}

	// Email lookup is an exact, case-sensitive match.
	existing, err := s.userStore.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	salt, err := passhash.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("derive salt failed: %w", err)
	}

	user := &model.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: passhash.Hash(password, salt),
		Salt:         salt,
	}
	if err := s.userStore.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(input LoginInput) (*AuthResult, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.userStore.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredential
	}

	if !passhash.Verify(input.Password, user.Salt, user.PasswordHash) {
		return nil, ErrInvalidCredential
	}

	token, err := jwtutil.GenerateToken(s.jwtSecret, s.jwtExpiration, user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) GetUserByID(id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	return s.userStore.GetByID(id)
}
