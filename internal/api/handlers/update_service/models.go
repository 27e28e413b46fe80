package update_service

import (
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

// UpdateServiceRequest HTTP request model
type UpdateServiceRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	IsActive        *bool    `json:"isActive,omitempty"`
}

// ServiceEnvelope HTTP response model
type ServiceEnvelope struct {
	Message string                  `json:"message"`
	Service *models.ServiceResponse `json:"service"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateServiceRequest) ToServiceRequest() *models.UpdateServiceRequest {
	return &models.UpdateServiceRequest{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		IsActive:        r.IsActive,
	}
}
