package create

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/magazine-subscriptions/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummySubscription) (*models.Subscription, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Subscription), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validBody := `{"user_id":"7c1f3e1a-1111-2222-3333-444455556666","plan_id":1,"price":10.0,"next_renewal_date":"2024-12-31"}`

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное создание подписки",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.MatchedBy(func(r models.DummySubscription) bool {
					return r.PlanID == 1 && r.Price == 10.0 && r.NextRenewalDate == "2024-12-31"
				})).Return(&models.Subscription{
					ID:              42,
					UserUID:         "7c1f3e1a-1111-2222-3333-444455556666",
					PlanID:          1,
					Price:           10.0,
					NextRenewalDate: time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
					IsActive:        true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"IsActive":true`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"user_id":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "невалидный uuid пользователя",
			body:           `{"user_id":"not-a-uuid","plan_id":1,"price":10.0,"next_renewal_date":"2024-12-31"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name:           "дата в неверном формате",
			body:           `{"user_id":"7c1f3e1a-1111-2222-3333-444455556666","plan_id":1,"price":10.0,"next_renewal_date":"31-12-2024"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name: "ошибка сервиса",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not create subscription`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/subscriptions", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
