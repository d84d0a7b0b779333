// Package me реализует HTTP-обработчик текущей сессии ("кто я").
//
// Пользователь уже прошёл JWT middleware, но обработчик ещё раз прогоняет
// токен из контекста через сервис — вторая, избыточная проверка срока
// действия, сохранённая от исходного поведения системы.
package me

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/middlewarectx"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/http/response"
	jwtlib "github.com/magabrotheeeer/magazine-subscriptions/internal/lib/jwt"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/lib/sl"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/models"
	"github.com/magabrotheeeer/magazine-subscriptions/internal/services/auth"
)

// Handler обрабатывает запросы текущей сессии.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс разрешения идентичности по токену.
type Service interface {
	ResolveIdentity(ctx context.Context, accessToken string) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token, ok := r.Context().Value(middlewarectx.Token).(string)
	if !ok || token == "" {
		log.Error("token not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	user, err := h.service.ResolveIdentity(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			log.Error("user not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("user not found"))
		case errors.Is(err, jwtlib.ErrTokenExpired):
			log.Error("token expired", sl.Err(err))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("token has expired"))
		default:
			log.Error("failed to resolve identity", sl.Err(err))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid token"))
		}
		return
	}

	render.JSON(w, r, response.OKWithData(models.UserInfo{
		UID:      user.UID,
		Username: user.Username,
		Email:    user.Email,
	}))
}
