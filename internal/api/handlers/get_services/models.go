package get_services

import (
	"github.com/eh-co/CryoBookingService/internal/domain"
)

// ServiceResponse HTTP response model одной услуги каталога
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
}

// ServiceListResponse HTTP response model каталога услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует каталог в HTTP response
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, len(services))
	for i, s := range services {
		result[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Description:     s.Description,
			Price:           s.Price,
			Category:        string(s.Category),
		}
	}
	return &ServiceListResponse{Services: result}
}
