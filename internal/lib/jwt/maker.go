package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken создает JWT токен доступа с subject = username,
// подписывая его секретным ключом. Время жизни определяется accessTTL.
func (j *MakerImpl) GenerateAccessToken(username string) (string, error) {
	return j.generate(username, j.accessTTL)
}

// GenerateRefreshToken создает JWT токен обновления с subject = username.
// Время жизни определяется refreshTTL.
func (j *MakerImpl) GenerateRefreshToken(username string) (string, error) {
	return j.generate(username, j.refreshTTL)
}

func (j *MakerImpl) generate(username string, ttl time.Duration) (string, error) {
	const op = "jwt.generate"
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

// ParseToken парсит JWT токен, проверяет подпись и срок действия,
// возвращает Claims с данными, если токен корректен.
//
// Поле exp обязательно: токен без него отклоняется с ErrMissingExpiry.
// Просроченный токен (включая момент exp == now) отклоняется с ErrTokenExpired,
// все прочие дефекты токена сводятся к ErrInvalidToken.
func (j *MakerImpl) ParseToken(tokenStr string) (*Claims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(_ *jwt.Token) (any, error) {
			return []byte(j.secretKey), nil
		},
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
			return nil, fmt.Errorf("%s: %w", op, ErrMissingExpiry)
		default:
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
		}
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	return claims, nil
}
