package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда клиент меняет чужую запись
	ErrAccessDenied = errors.New("update_appointment: access denied")

	// ErrCustomerStatusChange возвращается, когда клиент ставит статус, отличный от cancelled
	ErrCustomerStatusChange = errors.New("update_appointment: customers can only change status to cancelled")

	// ErrInvalidStatus возвращается, когда администратор возвращает запись в pending
	ErrInvalidStatus = errors.New("update_appointment: invalid target status")

	// ErrAppointmentFinal возвращается, когда клиент меняет отмененную или завершенную запись
	ErrAppointmentFinal = errors.New("update_appointment: appointment can no longer be changed")

	// ErrInvalidInput возвращается при некорректных данных запроса
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrServiceNotFound возвращается, когда новая услуга не найдена
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrInvalidSlot возвращается, когда новое окно не прошло проверку по настройкам
	// Сообщение для клиента передается через *domain.ValidationError
	ErrInvalidSlot = errors.New("update_appointment: invalid slot")

	// ErrSlotAlreadyBooked возвращается, когда новое окно пересекается с другой активной записью
	ErrSlotAlreadyBooked = errors.New("update_appointment: slot already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
