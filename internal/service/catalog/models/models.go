package models

import "github.com/Jelenicat/abeauty/internal/domain"

// ServiceResponse услуга каталога с ценой после скидки
type ServiceResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CategoryID      string `json:"categoryId"`
	DurationMin     int    `json:"durationMin"`
	BasePrice       int    `json:"basePrice"`
	DiscountPercent int    `json:"discountPercent"`
	FinalPrice      int    `json:"finalPrice"`
}

// ServiceListResponse список услуг каталога
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// FromDomainServices конвертирует услуги каталога в response
func FromDomainServices(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]*ServiceResponse, 0, len(services)),
		Total:    len(services),
	}
	for _, s := range services {
		resp.Services = append(resp.Services, &ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			CategoryID:      s.CategoryID,
			DurationMin:     s.DurationMin,
			BasePrice:       s.BasePrice,
			DiscountPercent: s.DiscountPercent,
			FinalPrice:      s.FinalPrice(),
		})
	}
	return resp
}
