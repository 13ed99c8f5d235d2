package booking

import (
	"github.com/Immortalpie-11/VJK-Mahal-Booking/pkg/dbmetrics"
)

// Переиспользуем интерфейс исполнителя запросов из dbmetrics
type DBExecutor = dbmetrics.DBExecutor
