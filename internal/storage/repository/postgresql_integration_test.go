package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/magazine-subscriptions/internal/models"
)

func TestStorage_RegisterUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	uid, err := storage.RegisterUser(context.Background(), models.User{
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, uid)

	// Повторная регистрация с тем же email — конфликт
	_, err = storage.RegisterUser(context.Background(), models.User{
		Username:     "otheruser",
		Email:        "test@example.com",
		PasswordHash: "hashedpassword",
		IsActive:     true,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)

	got, err := storage.GetUserByUsername(context.Background(), "testuser")
	require.NoError(t, err)
	assert.Equal(t, uid, got.UID)
	assert.Equal(t, "test@example.com", got.Email)
	assert.True(t, got.IsActive)
}

func TestStorage_GetUserByUsername_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.GetUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_DeactivateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	uid := factory.CreateUser(t, "testuser", "test@example.com", "hashedpassword", true)

	require.NoError(t, storage.DeactivateUser(context.Background(), "testuser"))

	verification := NewTestVerification(storage)
	verification.VerifyUserActive(t, uid, false)

	// Несуществующий пользователь
	assert.ErrorIs(t, storage.DeactivateUser(context.Background(), "ghost"), ErrNotFound)
}

func TestStorage_SubscriptionLifecycle(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	uid := factory.CreateUser(t, "testuser", "test@example.com", "hashedpassword", true)
	magazineID := factory.CreateMagazine(t, "Nature Monthly", "Science magazine", 9.99)
	planID := factory.CreatePlan(t, "annual", 100, magazineID)

	renewalDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	id, err := storage.CreateSubscription(context.Background(), models.Subscription{
		UserUID:         uid,
		PlanID:          planID,
		Price:           10.0,
		NextRenewalDate: renewalDate,
		IsActive:        true,
	})
	require.NoError(t, err)

	got, err := storage.ReadSubscription(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, uid, got.UserUID)
	assert.Equal(t, 10.0, got.Price)
	assert.True(t, got.IsActive)
	assert.True(t, renewalDate.Equal(got.NextRenewalDate))

	// Мягкое удаление: запись остаётся, is_active снимается
	require.NoError(t, storage.DeactivateSubscription(context.Background(), id))

	verification := NewTestVerification(storage)
	verification.VerifySubscriptionExists(t, id)
	verification.VerifySubscriptionActive(t, id, false)

	// Повторная деактивация — тоже успех
	require.NoError(t, storage.DeactivateSubscription(context.Background(), id))

	// Неактивная подписка по-прежнему читается
	got, err = storage.ReadSubscription(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	// Полный update реактивирует подписку
	rows, err := storage.UpdateSubscription(context.Background(), models.Subscription{
		UserUID:         uid,
		PlanID:          planID,
		Price:           12.5,
		NextRenewalDate: renewalDate.AddDate(1, 0, 0),
		IsActive:        true,
	}, id)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
	verification.VerifySubscriptionActive(t, id, true)
}

func TestStorage_Subscription_NotFound(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	_, err := storage.ReadSubscription(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, storage.DeactivateSubscription(context.Background(), 9999), ErrNotFound)

	_, err = storage.UpdateSubscription(context.Background(), models.Subscription{
		UserUID:         uuid.New().String(),
		PlanID:          1,
		Price:           10.0,
		NextRenewalDate: time.Now(),
		IsActive:        true,
	}, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_ListSubscriptions(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	uid := factory.CreateUser(t, "testuser", "test@example.com", "hashedpassword", true)
	magazineID := factory.CreateMagazine(t, "Nature Monthly", "Science magazine", 9.99)
	planID := factory.CreatePlan(t, "annual", 100, magazineID)

	renewalDate := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	factory.CreateSubscription(t, uid, planID, 10.0, renewalDate, true)
	factory.CreateSubscription(t, uid, planID, 11.0, renewalDate, false)
	factory.CreateSubscription(t, uid, planID, 12.0, renewalDate, true)

	// Неактивные подписки попадают в список наравне с активными
	got, err := storage.ListSubscriptions(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	// Пагинация
	got, err = storage.ListSubscriptions(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStorage_MagazineCRUD(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	id, err := storage.CreateMagazine(context.Background(), models.Magazine{
		Title:       "Nature Monthly",
		Description: "Science magazine",
		BasePrice:   9.99,
	})
	require.NoError(t, err)

	got, err := storage.ReadMagazine(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Nature Monthly", got.Title)

	rows, err := storage.UpdateMagazine(context.Background(), models.Magazine{
		Title:       "Nature Weekly",
		Description: "Science magazine",
		BasePrice:   4.99,
	}, id)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	// Журналы удаляются жёстко, в отличие от подписок
	rows, err = storage.RemoveMagazine(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	verification := NewTestVerification(storage)
	verification.VerifyMagazineDeleted(t, id)

	_, err = storage.ReadMagazine(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStorage_PlanCRUD(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	magazineID := factory.CreateMagazine(t, "Nature Monthly", "Science magazine", 9.99)

	id, err := storage.CreatePlan(context.Background(), models.Plan{
		Name:       "annual",
		Price:      100,
		MagazineID: magazineID,
	})
	require.NoError(t, err)

	got, err := storage.ReadPlan(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "annual", got.Name)
	assert.Equal(t, 100, got.Price)
	assert.Equal(t, magazineID, got.MagazineID)

	rows, err := storage.UpdatePlan(context.Background(), models.Plan{
		Name:       "monthly",
		Price:      10,
		MagazineID: magazineID,
	}, id)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	rows, err = storage.RemovePlan(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	_, err = storage.ReadPlan(context.Background(), id)
	assert.ErrorIs(t, err, ErrNotFound)
}
