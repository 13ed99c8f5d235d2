package schedule

import "errors"

var (
	// ErrPersistence возвращается, когда хранилище не подтвердило запись.
	// In-memory состояние при этом остается нетронутым.
	ErrPersistence = errors.New("schedule: persistence failure")

	// ErrNotLoaded возвращается при обращении к сервису до начальной загрузки
	ErrNotLoaded = errors.New("schedule: bookings not loaded")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
