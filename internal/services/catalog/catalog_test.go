package catalog

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/magazine-subscriptions/internal/models"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/storage/repository"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateMagazine(ctx context.Context, magazine models.Magazine) (int, error) {
	args := m.Called(ctx, magazine)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ReadMagazine(ctx context.Context, id int) (*models.Magazine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Magazine), args.Error(1)
}
func (m *RepoMock) ListMagazines(ctx context.Context, limit, offset int) ([]*models.Magazine, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Magazine), args.Error(1)
}
func (m *RepoMock) UpdateMagazine(ctx context.Context, magazine models.Magazine, id int) (int, error) {
	args := m.Called(ctx, magazine, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemoveMagazine(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) CreatePlan(ctx context.Context, plan models.Plan) (int, error) {
	args := m.Called(ctx, plan)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) ReadPlan(ctx context.Context, id int) (*models.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Plan), args.Error(1)
}
func (m *RepoMock) ListPlans(ctx context.Context, limit, offset int) ([]*models.Plan, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Plan), args.Error(1)
}
func (m *RepoMock) UpdatePlan(ctx context.Context, plan models.Plan, id int) (int, error) {
	args := m.Called(ctx, plan, id)
	return args.Int(0), args.Error(1)
}
func (m *RepoMock) RemovePlan(ctx context.Context, id int) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

type CacheMock struct{ mock.Mock }

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}
func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	return m.Called(key, value, expiration).Error(0)
}
func (m *CacheMock) Invalidate(key string) error {
	return m.Called(key).Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCatalogService_ReadMagazine(t *testing.T) {
	mag := &models.Magazine{ID: 1, Title: "Nature Monthly", Description: "Science magazine", BasePrice: 9.99}

	t.Run("промах кеша, чтение из репозитория", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		cache.On("Get", "magazine:1", mock.Anything).Return(false, nil).Once()
		repo.On("ReadMagazine", mock.Anything, 1).Return(mag, nil).Once()
		cache.On("Set", "magazine:1", mag, time.Hour).Return(nil).Once()

		svc := New(repo, cache, newNoopLogger())
		got, err := svc.ReadMagazine(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Nature Monthly", got.Title)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("журнал не найден", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		cache.On("Get", "magazine:404", mock.Anything).Return(false, nil).Once()
		repo.On("ReadMagazine", mock.Anything, 404).Return(nil, repository.ErrNotFound).Once()

		svc := New(repo, cache, newNoopLogger())
		_, err := svc.ReadMagazine(context.Background(), 404)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestCatalogService_UpdateMagazine_InvalidatesCache(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	repo.On("UpdateMagazine", mock.Anything, mock.MatchedBy(func(m models.Magazine) bool {
		return m.Title == "Nature Weekly" && m.BasePrice == 4.99
	}), 1).Return(1, nil).Once()
	cache.On("Invalidate", "magazine:1").Return(nil).Once()

	svc := New(repo, cache, newNoopLogger())
	res, err := svc.UpdateMagazine(context.Background(), models.DummyMagazine{
		Title:       "Nature Weekly",
		Description: "Science magazine",
		BasePrice:   4.99,
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res)
	cache.AssertExpectations(t)
}

func TestCatalogService_RemovePlan(t *testing.T) {
	t.Run("успешное удаление", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		cache.On("Invalidate", "plan:7").Return(nil).Once()
		repo.On("RemovePlan", mock.Anything, 7).Return(1, nil).Once()

		svc := New(repo, cache, newNoopLogger())
		res, err := svc.RemovePlan(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, 1, res)
	})

	t.Run("план не найден", func(t *testing.T) {
		repo := new(RepoMock)
		cache := new(CacheMock)
		cache.On("Invalidate", "plan:404").Return(nil).Once()
		repo.On("RemovePlan", mock.Anything, 404).Return(0, repository.ErrNotFound).Once()

		svc := New(repo, cache, newNoopLogger())
		_, err := svc.RemovePlan(context.Background(), 404)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestCatalogService_CreatePlan(t *testing.T) {
	repo := new(RepoMock)
	cache := new(CacheMock)
	repo.On("CreatePlan", mock.Anything, models.Plan{
		Name:       "annual",
		Price:      100,
		MagazineID: 1,
	}).Return(7, nil).Once()

	svc := New(repo, cache, newNoopLogger())
	id, err := svc.CreatePlan(context.Background(), models.DummyPlan{
		Name:       "annual",
		Price:      100,
		MagazineID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, id)
	repo.AssertExpectations(t)
}
