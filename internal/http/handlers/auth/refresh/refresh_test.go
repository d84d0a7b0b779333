package refresh

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	jwtlib "github.com/magabrotheeeer/magazine-subscriptions/internal/lib/jwt"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/services/auth"
)

// MockService реализует интерфейс refresh.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if res := args.Get(0); res != nil {
		return res.(*auth.TokenPair), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestRefreshHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная ротация токенов",
			body: `{"refresh_token":"old-refresh"}`,
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "old-refresh").
					Return(&auth.TokenPair{
						AccessToken:  "new-access",
						RefreshToken: "new-refresh",
						TokenType:    "bearer",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"refresh_token":"new-refresh"`,
		},
		{
			name: "просроченный токен",
			body: `{"refresh_token":"expired"}`,
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "expired").
					Return(nil, jwtlib.ErrTokenExpired)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `token has expired`,
		},
		{
			name: "невалидный токен",
			body: `{"refresh_token":"garbage"}`,
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "garbage").
					Return(nil, jwtlib.ErrInvalidToken)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `invalid token`,
		},
		{
			name: "токен без exp",
			body: `{"refresh_token":"no-exp"}`,
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "no-exp").
					Return(nil, jwtlib.ErrMissingExpiry)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `invalid token`,
		},
		{
			name: "пользователь исчез",
			body: `{"refresh_token":"ghost-token"}`,
			setupMock: func(m *MockService) {
				m.On("Refresh", mock.Anything, "ghost-token").
					Return(nil, auth.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `user not found`,
		},
		{
			name:           "пустое тело запроса",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/token/refresh", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
