// Package auth содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/magazine-subscriptions/internal/lib/jwt"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/lib/password"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/models"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/storage/repository"
)

// Ошибки бизнес-уровня аутентификации.
var (
	// ErrInvalidCredentials — пользователь не найден или пароль не подошёл.
	// Наружу обе причины выглядят одинаково.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound — subject токена или email не разрешается в пользователя.
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)
	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// ListUsers возвращает список пользователей с пагинацией.
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)
	// DeactivateUser помечает пользователя неактивным.
	DeactivateUser(ctx context.Context, username string) error
}

// ResetNotifier публикует событие сброса пароля во внешнюю очередь.
// Отправкой письма занимается отдельный воркер, не этот сервис.
type ResetNotifier interface {
	PublishPasswordReset(email string) error
}

// TokenPair — пара токенов, выдаваемая при входе и обновлении сессии.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// Service отвечает за регистрацию, авторизацию, обновление сессии
// и разрешение идентичности по токену.
type Service struct {
	users    UserRepository
	jwtMaker jwt.Maker
	notifier ResetNotifier
	log      *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserRepository, jwtMaker jwt.Maker, notifier ResetNotifier, log *slog.Logger) *Service {
	return &Service{
		users:    users,
		jwtMaker: jwtMaker,
		notifier: notifier,
		log:      log,
	}
}

// Register создает нового пользователя с хэшированием пароля.
// При занятом email возвращает repository.ErrEmailTaken.
// Уникальность username не проверяется.
func (s *Service) Register(ctx context.Context, username, email, rawPassword string) (*models.User, error) {
	const op = "auth.Register"
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		IsActive:     true,
	}
	uid, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user.UID = uid
	return &user, nil
}

// Login проверяет пароль пользователя и выдаёт пару токенов,
// оба несут subject = username.
func (s *Service) Login(ctx context.Context, username, rawPassword string) (*TokenPair, error) {
	const op = "auth.Login"
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	return s.issueTokens(user.Username)
}

// Refresh проверяет refresh-токен и выдаёт новую пару токенов (ротация):
// старый refresh-токен ничем не отличить от нового по правам, но клиенту
// всегда возвращается свежая пара.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	const op = "auth.Refresh"
	claims, err := s.jwtMaker.ParseToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.users.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.issueTokens(user.Username)
}

// ResolveIdentity проверяет access-токен и возвращает пользователя,
// которому он принадлежит. Это вход для всех защищённых операций.
func (s *Service) ResolveIdentity(ctx context.Context, accessToken string) (*models.User, error) {
	const op = "auth.ResolveIdentity"
	claims, err := s.jwtMaker.ParseToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	user, err := s.users.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// Deactivate помечает пользователя неактивным (мягкое удаление).
// Жёсткого удаления пользователей в системе нет.
func (s *Service) Deactivate(ctx context.Context, username string) error {
	const op = "auth.Deactivate"
	if err := s.users.DeactivateUser(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// RequestPasswordReset находит пользователя по email и публикует событие
// сброса пароля. Письмо сервис не отправляет.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	const op = "auth.RequestPasswordReset"
	if _, err := s.users.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.notifier.PublishPasswordReset(email); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("password reset event published", slog.String("email", email))
	return nil
}

// ListUsers возвращает список пользователей с пагинацией.
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "auth.ListUsers"
	users, err := s.users.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

func (s *Service) issueTokens(username string) (*TokenPair, error) {
	const op = "auth.issueTokens"
	access, err := s.jwtMaker.GenerateAccessToken(username)
	if err != nil {
		s.log.Error("failed to generate access token", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	refresh, err := s.jwtMaker.GenerateRefreshToken(username)
	if err != nil {
		s.log.Error("failed to generate refresh token", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}
