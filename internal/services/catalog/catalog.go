// Package catalog содержит бизнес-логику каталога: журналы и тарифные планы.
//
// В отличие от подписок обе сущности удаляются жёстко — это отдельная
// политика жизненного цикла, а не упущение.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/magazine-subscriptions/internal/models"
)

// Repository определяет методы для работы с каталогом в хранилище.
type Repository interface {
	CreateMagazine(ctx context.Context, magazine models.Magazine) (int, error)
	ReadMagazine(ctx context.Context, id int) (*models.Magazine, error)
	ListMagazines(ctx context.Context, limit, offset int) ([]*models.Magazine, error)
	UpdateMagazine(ctx context.Context, magazine models.Magazine, id int) (int, error)
	RemoveMagazine(ctx context.Context, id int) (int, error)

	CreatePlan(ctx context.Context, plan models.Plan) (int, error)
	ReadPlan(ctx context.Context, id int) (*models.Plan, error)
	ListPlans(ctx context.Context, limit, offset int) ([]*models.Plan, error)
	UpdatePlan(ctx context.Context, plan models.Plan, id int) (int, error)
	RemovePlan(ctx context.Context, id int) (int, error)
}

// Cache описывает методы для кэширования данных каталога.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует бизнес-логику каталога с кешированием чтений.
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

// CreateMagazine создает новый журнал и возвращает его ID.
func (s *Service) CreateMagazine(ctx context.Context, req models.DummyMagazine) (int, error) {
	magazine := models.Magazine{
		Title:       req.Title,
		Description: req.Description,
		BasePrice:   req.BasePrice,
	}
	id, err := s.repo.CreateMagazine(ctx, magazine)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new magazine", slog.Int("id", id))
	return id, nil
}

// ReadMagazine возвращает журнал по ID, используя кеш или репозиторий.
func (s *Service) ReadMagazine(ctx context.Context, id int) (*models.Magazine, error) {
	var result *models.Magazine
	cacheKey := fmt.Sprintf("magazine:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadMagazine(ctx, id)
	if err != nil {
		return nil, err
	}
	if result != nil {
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}
	return result, nil
}

// ListMagazines возвращает список журналов с пагинацией.
func (s *Service) ListMagazines(ctx context.Context, limit, offset int) ([]*models.Magazine, error) {
	return s.repo.ListMagazines(ctx, limit, offset)
}

// UpdateMagazine обновляет журнал и инвалидирует кеш.
func (s *Service) UpdateMagazine(ctx context.Context, req models.DummyMagazine, id int) (int, error) {
	magazine := models.Magazine{
		Title:       req.Title,
		Description: req.Description,
		BasePrice:   req.BasePrice,
	}
	res, err := s.repo.UpdateMagazine(ctx, magazine, id)
	if err != nil {
		return 0, err
	}
	s.invalidate(fmt.Sprintf("magazine:%d", id))
	return res, nil
}

// RemoveMagazine жёстко удаляет журнал и инвалидирует кеш.
// Ссылочная целостность обеспечивается ограничениями базы:
// журнал с живыми планами удалить не получится.
func (s *Service) RemoveMagazine(ctx context.Context, id int) (int, error) {
	s.invalidate(fmt.Sprintf("magazine:%d", id))
	return s.repo.RemoveMagazine(ctx, id)
}

// CreatePlan создает новый тарифный план и возвращает его ID.
func (s *Service) CreatePlan(ctx context.Context, req models.DummyPlan) (int, error) {
	plan := models.Plan{
		Name:       req.Name,
		Price:      req.Price,
		MagazineID: req.MagazineID,
	}
	id, err := s.repo.CreatePlan(ctx, plan)
	if err != nil {
		return 0, err
	}
	s.log.Info("created new plan", slog.Int("id", id))
	return id, nil
}

// ReadPlan возвращает тарифный план по ID, используя кеш или репозиторий.
func (s *Service) ReadPlan(ctx context.Context, id int) (*models.Plan, error) {
	var result *models.Plan
	cacheKey := fmt.Sprintf("plan:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadPlan(ctx, id)
	if err != nil {
		return nil, err
	}
	if result != nil {
		if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
			s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
		}
	}
	return result, nil
}

// ListPlans возвращает список тарифных планов с пагинацией.
func (s *Service) ListPlans(ctx context.Context, limit, offset int) ([]*models.Plan, error) {
	return s.repo.ListPlans(ctx, limit, offset)
}

// UpdatePlan обновляет тарифный план и инвалидирует кеш.
func (s *Service) UpdatePlan(ctx context.Context, req models.DummyPlan, id int) (int, error) {
	plan := models.Plan{
		Name:       req.Name,
		Price:      req.Price,
		MagazineID: req.MagazineID,
	}
	res, err := s.repo.UpdatePlan(ctx, plan, id)
	if err != nil {
		return 0, err
	}
	s.invalidate(fmt.Sprintf("plan:%d", id))
	return res, nil
}

// RemovePlan жёстко удаляет тарифный план и инвалидирует кеш.
func (s *Service) RemovePlan(ctx context.Context, id int) (int, error) {
	s.invalidate(fmt.Sprintf("plan:%d", id))
	return s.repo.RemovePlan(ctx, id)
}

func (s *Service) invalidate(cacheKey string) {
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
}
