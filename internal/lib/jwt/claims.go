// Package jwt реализует генерацию и парсинг JWT токенов доступа и обновления.
//
// Maker определяет интерфейс для создания и проверки пары токенов,
// MakerImpl — конкретная реализация с секретным ключом и двумя TTL.
package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Ошибки валидации токена.
var (
	// ErrInvalidToken — подпись не сошлась или полезная нагрузка не распарсилась.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — токен просрочен; момент exp == now уже считается просрочкой.
	ErrTokenExpired = errors.New("token has expired")
	// ErrMissingExpiry — в полезной нагрузке нет поля exp.
	ErrMissingExpiry = errors.New("token has no expiry time")
)

// Claims описывает полезную нагрузку токена. Идентичность пользователя
// хранится в стандартном поле Subject.
type Claims struct {
	jwt.RegisteredClaims
}

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateAccessToken создаёт короткоживущий токен доступа для username.
	GenerateAccessToken(username string) (string, error)
	// GenerateRefreshToken создаёт долгоживущий токен обновления для username.
	GenerateRefreshToken(username string) (string, error)
	// ParseToken возвращает *Claims, если токен корректен и не просрочен.
	ParseToken(tokenStr string) (*Claims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни для каждого вида токена.
type MakerImpl struct {
	secretKey  string        // Секретный ключ для подписи токенов
	accessTTL  time.Duration // Время жизни токена доступа
	refreshTTL time.Duration // Время жизни токена обновления
}

// NewJWTMaker создаёт новый экземпляр MakerImpl. Секретный ключ приходит
// из конфигурации и нигде больше не читается.
func NewJWTMaker(secretKey string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}
