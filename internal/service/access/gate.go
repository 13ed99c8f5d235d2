package access

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Claims полезная нагрузка management-токена
type Claims struct {
	Capability string `json:"capability"`
	jwt.RegisteredClaims
}

// Gate проверяет PIN площадки и выдает capability-токены управления.
//
// Токен - единственный пропуск к мутирующим операциям: middleware
// отклоняет запрос без валидного токена, а не полагается на скрытие
// кнопок в интерфейсе.
type Gate struct {
	pin      []byte
	secret   []byte
	tokenTTL time.Duration
	logger   Logger
}

// NewGate создает новый Access Gate.
// PIN и секрет подписи приходят из конфигурации, не из констант.
func NewGate(pin, tokenSecret string, tokenTTL time.Duration, logger Logger) *Gate {
	return &Gate{
		pin:      []byte(pin),
		secret:   []byte(tokenSecret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

// VerifyPIN сравнивает введенный PIN с настроенным секретом.
// Сравнение за константное время, чтобы не утекала длина совпавшего префикса.
func (g *Gate) VerifyPIN(pin string) error {
	if subtle.ConstantTimeCompare([]byte(pin), g.pin) != 1 {
		g.logger.Warn("VerifyPIN: pin mismatch")
		return ErrInvalidPIN
	}
	return nil
}

// IssueToken выдает подписанный токен управления с ограниченным сроком жизни
func (g *Gate) IssueToken(now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(g.tokenTTL)

	claims := &Claims{
		Capability: "management",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		g.logger.Error("IssueToken: failed to sign token: %v", err)
		return "", time.Time{}, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	g.logger.Info("IssueToken: management token issued, expires at %s", expiresAt.Format(time.RFC3339))
	return signed, expiresAt, nil
}

// ValidateToken проверяет подпись и срок жизни токена управления
func (g *Gate) ValidateToken(tokenString string) error {
	if tokenString == "" {
		return ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	if claims.Capability != "management" {
		return ErrInvalidToken
	}

	return nil
}
