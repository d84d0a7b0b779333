package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/magazine-subscriptions/internal/models"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/storage/repository"
)

// MockService реализует интерфейс update.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Update(ctx context.Context, req models.DummySubscriptionUpdate, id int) (int, error) {
	args := m.Called(ctx, req, id)
	return args.Int(0), args.Error(1)
}

func TestUpdateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	validBody := `{"user_id":"7c1f3e1a-1111-2222-3333-444455556666","plan_id":2,"price":15.5,"next_renewal_date":"2025-06-30","is_active":true}`

	tests := []struct {
		name           string
		id             string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное обновление подписки",
			id:   "42",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, mock.MatchedBy(func(r models.DummySubscriptionUpdate) bool {
					return r.PlanID == 2 && r.NextRenewalDate == "2025-06-30" &&
						r.IsActive != nil && *r.IsActive
				}), 42).Return(1, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"updated_count":1`,
		},
		{
			name:           "некорректный id",
			id:             "abc",
			body:           validBody,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid id`,
		},
		{
			name:           "некорректный JSON",
			id:             "42",
			body:           `{"user_id":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name:           "дата в неверном формате",
			id:             "42",
			body:           `{"user_id":"7c1f3e1a-1111-2222-3333-444455556666","plan_id":2,"price":15.5,"next_renewal_date":"30-06-2025","is_active":true}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name:           "отсутствует флаг is_active",
			id:             "42",
			body:           `{"user_id":"7c1f3e1a-1111-2222-3333-444455556666","plan_id":2,"price":15.5,"next_renewal_date":"2025-06-30"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name: "подписка не найдена",
			id:   "404",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, mock.Anything, 404).
					Return(0, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `subscription not found`,
		},
		{
			name: "ошибка сервиса",
			id:   "42",
			body: validBody,
			setupMock: func(m *MockService) {
				m.On("Update", mock.Anything, mock.Anything, 42).
					Return(0, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `could not update subscription`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPut, "/subscriptions/"+tt.id, strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
