package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ErrorCode представляет код ошибки
type ErrorCode string

const (
	// Общие ошибки
	ErrCodeInternal        ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation      ErrorCode = "VALIDATION_ERROR"
	ErrCodeBadRequest      ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound        ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeTooManyRequests ErrorCode = "TOO_MANY_REQUESTS"

	// Ошибки регистрации
	ErrCodeDuplicateIdentity ErrorCode = "DUPLICATE_IDENTITY"

	// Ошибки OAuth-рукопожатия с провайдером
	ErrCodeProviderNotConfigured     ErrorCode = "PROVIDER_NOT_CONFIGURED"
	ErrCodeUpstreamUnavailable       ErrorCode = "UPSTREAM_UNAVAILABLE"
	ErrCodeMalformedUpstreamResponse ErrorCode = "MALFORMED_UPSTREAM_RESPONSE"
	ErrCodeAccessTokenExchangeFailed ErrorCode = "ACCESS_TOKEN_EXCHANGE_FAILED"
	ErrCodeProfileFetchFailed        ErrorCode = "PROFILE_FETCH_FAILED"
	ErrCodeUnknownOrExpiredToken     ErrorCode = "UNKNOWN_OR_EXPIRED_TOKEN"
	ErrCodeAccessDenied              ErrorCode = "ACCESS_DENIED"

	// Ошибки хранилища
	ErrCodeStorageUnavailable ErrorCode = "STORAGE_UNAVAILABLE"
)

// AppError представляет типизированную ошибку приложения
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Context   map[string]string      `json:"-"`
	Timestamp time.Time              `json:"timestamp"`
	RequestID string                 `json:"request_id,omitempty"`
	Cause     error                  `json:"-"`
}

// Error возвращает строковое представление ошибки
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap возвращает причину ошибки
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is сравнивает ошибки по коду, чтобы работал errors.Is с шаблонными ошибками
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// IsValidation проверяет, является ли ошибка ошибкой валидации
func (e *AppError) IsValidation() bool {
	return e.Code == ErrCodeValidation ||
		e.Code == ErrCodeBadRequest ||
		e.Code == ErrCodeDuplicateIdentity
}

// IsUnauthorized проверяет, является ли ошибка ошибкой авторизации
func (e *AppError) IsUnauthorized() bool {
	return e.Code == ErrCodeUnauthorized || e.Code == ErrCodeAccessDenied
}

// IsUpstream проверяет, относится ли ошибка к провайдеру идентификации
func (e *AppError) IsUpstream() bool {
	switch e.Code {
	case ErrCodeProviderNotConfigured,
		ErrCodeUpstreamUnavailable,
		ErrCodeMalformedUpstreamResponse,
		ErrCodeAccessTokenExchangeFailed,
		ErrCodeProfileFetchFailed:
		return true
	}
	return false
}

// IsInternal проверяет, является ли ошибка внутренней ошибкой
func (e *AppError) IsInternal() bool {
	return e.Code == ErrCodeInternal ||
		e.Code == ErrCodeStorageUnavailable ||
		e.IsUpstream()
}

// RedirectCode возвращает код ошибки в виде параметра для редиректа браузера
func (e *AppError) RedirectCode() string {
	return strings.ToLower(string(e.Code))
}

// WithContext добавляет контекст к ошибке
func (e *AppError) WithContext(key, value string) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithDetail добавляет детальную информацию к ошибке
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithRequestID добавляет ID запроса к ошибке
func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

// New создает новую ошибку приложения
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Wrap оборачивает существующую ошибку
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

// Конструкторы для часто используемых ошибок

// NewValidationError создает ошибку валидации для одного поля
func NewValidationError(field, reason string) *AppError {
	return NewFieldValidationError(map[string]string{field: reason})
}

// NewFieldValidationError создает ошибку валидации с сообщениями по каждому полю
func NewFieldValidationError(fields map[string]string) *AppError {
	return New(ErrCodeValidation, "Validation failed").
		WithDetail("fields", fields)
}

// NewDuplicateIdentityError не раскрывает, какое именно поле совпало
func NewDuplicateIdentityError(cause error) *AppError {
	return Wrap(cause, ErrCodeDuplicateIdentity,
		"A registration with this Twitter account, Telegram username or wallet address already exists")
}

// NewUnauthorizedError создает ошибку авторизации
func NewUnauthorizedError(reason string) *AppError {
	return New(ErrCodeUnauthorized, fmt.Sprintf("Unauthorized: %s", reason))
}

// NewStorageError создает ошибку базы данных
func NewStorageError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeStorageUnavailable, "Storage is temporarily unavailable").
		WithContext("operation", operation)
}

// NewUpstreamError создает ошибку обращения к провайдеру
func NewUpstreamError(code ErrorCode, operation string, err error) *AppError {
	return Wrap(err, code, "Identity provider request failed").
		WithContext("operation", operation)
}

// NewRateLimitError создает ошибку превышения лимита запросов
func NewRateLimitError(retryAfter time.Duration) *AppError {
	return New(ErrCodeTooManyRequests, "Too many requests, please try again later").
		WithDetail("retry_after", retryAfter.String())
}

// AsAppError приводит ошибку к AppError с учетом обертки
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil && stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode проверяет код ошибки в цепочке
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
