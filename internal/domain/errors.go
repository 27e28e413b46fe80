package domain

// ValidationError отказ бизнес-валидации с сообщением для клиента
// Unwrap возвращает sentinel-ошибку пакета, который отклонил запрос
type ValidationError struct {
	Message string
	Err     error
}

// NewValidationError создает ValidationError, оборачивающую err
func NewValidationError(err error, message string) *ValidationError {
	return &ValidationError{Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Err.Error() + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
