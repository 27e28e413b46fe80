package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrDuplicateName возвращается, когда услуга с таким названием уже есть
	ErrDuplicateName = errors.New("catalog: service with this name already exists")

	// ErrInvalidInput возвращается при некорректных данных услуги
	ErrInvalidInput = errors.New("catalog: invalid service data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
