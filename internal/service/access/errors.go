package access

import "errors"

var (
	// ErrInvalidPIN возвращается при несовпадении PIN
	ErrInvalidPIN = errors.New("access: invalid pin")

	// ErrInvalidToken возвращается при отсутствующем или невалидном токене
	ErrInvalidToken = errors.New("access: invalid token")

	// ErrInternal возвращается при ошибках подписи токена
	ErrInternal = errors.New("access: internal error")
)
