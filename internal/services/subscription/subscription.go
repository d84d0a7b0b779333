// Package subscription содержит бизнес-логику жизненного цикла подписки.
//
// Подписка живёт в двух состояниях: активна и неактивна. Создание всегда
// даёт активную подписку; «удаление» переводит её в неактивное состояние,
// не стирая запись; полный update может двигать состояние в обе стороны.
package subscription

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/magazine-subscriptions/internal/models"
)

// Repository определяет методы для работы с подписками в хранилище.
type Repository interface {
	// CreateSubscription добавляет новую подписку и возвращает её ID.
	CreateSubscription(ctx context.Context, sub models.Subscription) (int, error)
	// ReadSubscription возвращает подписку по ID.
	ReadSubscription(ctx context.Context, id int) (*models.Subscription, error)
	// ListSubscriptions возвращает список подписок с пагинацией.
	ListSubscriptions(ctx context.Context, limit, offset int) ([]*models.Subscription, error)
	// UpdateSubscription полностью заменяет данные подписки по ID.
	UpdateSubscription(ctx context.Context, sub models.Subscription, id int) (int, error)
	// DeactivateSubscription помечает подписку неактивной.
	DeactivateSubscription(ctx context.Context, id int) error
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// Service реализует бизнес-логику работы с подписками, включая кеширование.
type Service struct {
	repo  Repository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новую подписку и возвращает созданную запись.
// Подписка всегда создаётся активной, что бы ни прислал клиент.
// Цена сохраняется как есть — это снимок, от цены плана она не зависит.
func (s *Service) Create(ctx context.Context, req models.DummySubscription) (*models.Subscription, error) {
	renewalDate, err := time.Parse(models.RenewalDateLayout, req.NextRenewalDate)
	if err != nil {
		return nil, fmt.Errorf("invalid next renewal date: %w", err)
	}

	sub := models.Subscription{
		UserUID:         req.UserUID,
		PlanID:          req.PlanID,
		Price:           req.Price,
		NextRenewalDate: renewalDate,
		IsActive:        true,
	}

	id, err := s.repo.CreateSubscription(ctx, sub)
	if err != nil {
		return nil, err
	}

	s.log.Info("created new subscription", slog.Int("id", id))

	cacheKey := fmt.Sprintf("subscription:%d", id)
	sub.ID = id
	if err := s.cache.Set(cacheKey, sub, time.Hour); err != nil {
		s.log.Warn("failed to cache subscription", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return &sub, nil
}

// Read возвращает подписку по ID, используя кеш или репозиторий.
// Неактивные подписки читаются так же, как активные.
func (s *Service) Read(ctx context.Context, id int) (*models.Subscription, error) {
	var result *models.Subscription
	cacheKey := fmt.Sprintf("subscription:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadSubscription(ctx, id)
	if err != nil {
		return nil, err
	}

	if result != nil {
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", cacheKey),
				slog.Any("err", err))
		}
	}
	return result, nil
}

// List возвращает список подписок с пагинацией.
// Список не фильтруется по состоянию: неактивные подписки возвращаются тоже.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.Subscription, error) {
	return s.repo.ListSubscriptions(ctx, limit, offset)
}

// Update полностью заменяет подписку, включая явный флаг is_active:
// этим же вызовом можно реактивировать мягко удалённую подписку.
// Возвращает количество изменённых строк.
func (s *Service) Update(ctx context.Context, req models.DummySubscriptionUpdate, id int) (int, error) {
	renewalDate, err := time.Parse(models.RenewalDateLayout, req.NextRenewalDate)
	if err != nil {
		return 0, fmt.Errorf("invalid next renewal date: %w", err)
	}

	sub := models.Subscription{
		UserUID:         req.UserUID,
		PlanID:          req.PlanID,
		Price:           req.Price,
		NextRenewalDate: renewalDate,
		IsActive:        *req.IsActive,
	}
	res, err := s.repo.UpdateSubscription(ctx, sub, id)
	if err != nil {
		return 0, err
	}

	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return res, nil
}

// Deactivate переводит подписку в неактивное состояние, не трогая
// остальные поля и не удаляя запись. Повторная деактивация — успех.
func (s *Service) Deactivate(ctx context.Context, id int) error {
	cacheKey := fmt.Sprintf("subscription:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return s.repo.DeactivateSubscription(ctx, id)
}
