package create_service

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/catalog/models"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	IsActive        *bool   `json:"isActive,omitempty"`
}

// ServiceEnvelope HTTP response model
type ServiceEnvelope struct {
	Message string                  `json:"message"`
	Service *models.ServiceResponse `json:"service"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest(createdBy domain.UserID) *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		Name:            r.Name,
		Description:     r.Description,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		IsActive:        r.IsActive,
		CreatedBy:       createdBy,
	}
}
