package search_cars

import (
	"net/url"

	carModels "github.com/driveshare/DS-RentalService/internal/service/cars/models"
)

// ParseQuery собирает параметры поиска из query string.
// Отсутствующие параметры остаются nil и не участвуют в фильтре.
func ParseQuery(values url.Values) *carModels.SearchRequest {
	req := &carModels.SearchRequest{}

	if city := values.Get("city"); city != "" {
		req.City = &city
	}
	if category := values.Get("category"); category != "" {
		req.Category = &category
	}
	if values.Get("available") == "true" {
		req.AvailableOnly = true
	}

	return req
}
