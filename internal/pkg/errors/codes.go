package errors

import "net/http"

const (
	CodeUpstreamProvider = "UPSTREAM_PROVIDER_ERROR"
	CodeDatabaseQuery    = "DATABASE_QUERY_ERROR"
	CodeValidation       = "VALIDATION_ERROR"
	CodeInternal         = "INTERNAL_SERVER_ERROR"
)

var (
	// ErrUpstreamProvider - провайдер геокодирования или поиска недоступен либо вернул некорректный ответ
	ErrUpstreamProvider = New(
		CodeUpstreamProvider,
		"Upstream provider request failed",
		http.StatusBadGateway,
	)

	// ErrDatabaseQuery - ошибка соединения или запроса к пространственной БД
	ErrDatabaseQuery = New(
		CodeDatabaseQuery,
		"Database query failed",
		http.StatusInternalServerError,
	)

	// ErrValidation - отсутствуют или некорректны обязательные параметры запроса
	ErrValidation = New(
		CodeValidation,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		CodeValidation,
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		CodeInternal,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
