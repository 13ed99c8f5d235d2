package verify_pin

import "time"

// AccessGate интерфейс проверки PIN и выдачи токенов
type AccessGate interface {
	VerifyPIN(pin string) error
	IssueToken(now time.Time) (string, time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
