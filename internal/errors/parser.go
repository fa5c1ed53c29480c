package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo pairs an error code with the localized message shown to the user
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError maps an infrastructure error to a user-safe code and message.
// Internal detail (SQL text, hostnames) never reaches the client; it is the
// caller's job to log the original error with context.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: "Помилка сервера",
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: notFoundMessage(context),
		}
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "Сервіс тимчасово недоступний. Спробуйте пізніше",
		}
	}

	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "Помилка сервера",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: "Помилка сервера",
	}
}

func notFoundMessage(context string) string {
	switch context {
	case "drone":
		return "Дрон не знайдено"
	case "ews":
		return "Система не знайдена"
	case "detector":
		return "Детектор не знайдено"
	case "battery":
		return "Батарею не знайдено"
	default:
		return "Нічого не знайдено"
	}
}
