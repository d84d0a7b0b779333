// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и признак активности.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пользователя системы.
type User struct {
	UID          string // Уникальный идентификатор пользователя
	Username     string // Имя пользователя (уникальность не гарантируется)
	Email        string // Электронная почта (уникальная)
	PasswordHash string // Хэш пароля пользователя
	IsActive     bool   // Признак активности учётной записи
}

// RegisterRequest используется для приёма данных регистрации из JSON-запроса.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserInfo — представление пользователя в ответах API, без хэша пароля.
type UserInfo struct {
	UID      string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
