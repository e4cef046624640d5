//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"werkstatt/auth"
	"werkstatt/errors"
	"werkstatt/repositories"

	"github.com/samber/lo"
)

type IAuthService interface {
	Login(email, password string) (Token, error)
	Register(req auth.RegisterRequest) (Token, error)
	Me(userID string) (Profile, error)
}

type AuthService struct {
	userRepository repositories.IUserRepository
	issuer         *auth.TokenIssuer
	admins         []string
}

type Token string

// Profile is the public part of an account.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar,omitempty"`
	Expertise string    `json:"expertise,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAuthService builds the service. Accounts registered with one of adminEmails
// also get the admin role.
func NewAuthService(repo repositories.IUserRepository, issuer *auth.TokenIssuer, adminEmails ...string) IAuthService {
	admins := lo.Map(adminEmails, func(e string, _ int) string { return strings.ToLower(strings.TrimSpace(e)) })
	return &AuthService{userRepository: repo, issuer: issuer, admins: admins}
}

func (s *AuthService) Register(req auth.RegisterRequest) (Token, error) {
	// 1. Validate business rules before any expensive cryptographic operation.
	if err := auth.ValidateRegister(req); err != nil {
		if stderrors.Is(err, errors.ErrInvalidPassword) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidRequest, err)
	}

	// 2. Hash the password with Argon2id, the repository never sees plain passwords.
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Persist, ErrUserAlreadyExists propagates when the email is taken.
	user, err := s.userRepository.CreateUser(repositories.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Name:         req.Name,
		Avatar:       req.Avatar,
		Expertise:    req.Expertise,
		Roles:        s.roles(req.Email, nil),
	})
	if err != nil {
		return "", err
	}

	// 4. Initial session token
	token, err := s.issuer.GenerateToken(user.ID, user.Roles)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

func (s *AuthService) Login(email, password string) (Token, error) {
	user, err := s.userRepository.GetUserByEmail(email)
	if err != nil {
		// Generic error to prevent user enumeration
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.issuer.GenerateToken(user.ID, s.roles(user.Email, user.Roles))
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

// roles adds the admin role to configured admin emails, so promotions apply on the next login.
func (s *AuthService) roles(email string, stored []string) []string {
	roles := lo.Uniq(append([]string{auth.RoleUser}, stored...))
	if slices.Contains(s.admins, strings.ToLower(email)) && !slices.Contains(roles, auth.RoleAdmin) {
		roles = append(roles, auth.RoleAdmin)
	}
	return roles
}

func (s *AuthService) Me(userID string) (Profile, error) {
	user, err := s.userRepository.GetUserByID(userID)
	if err != nil {
		return Profile{}, err
	}
	return Profile{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Avatar:    user.Avatar,
		Expertise: user.Expertise,
		CreatedAt: user.CreatedAt,
	}, nil
}
