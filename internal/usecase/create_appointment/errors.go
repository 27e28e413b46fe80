package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при неполном или некорректном запросе
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrInvalidSlot возвращается, когда окно записи не прошло проверку по настройкам
	// Сообщение для клиента передается через *domain.ValidationError
	ErrInvalidSlot = errors.New("create_appointment: invalid slot")

	// ErrSlotAlreadyBooked возвращается, когда окно пересекается с активной записью на ту же услугу
	ErrSlotAlreadyBooked = errors.New("create_appointment: slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
