package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных настройках
	// Конкретное сообщение передается через *domain.ValidationError
	ErrInvalidInput = errors.New("availability: invalid settings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("availability: internal error")
)
