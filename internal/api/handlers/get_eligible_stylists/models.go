package get_eligible_stylists

import "github.com/m04kA/SMC-SalonService/internal/integrations/catalog"

// StylistResponse HTTP response model
type StylistResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
}

// StylistListResponse HTTP response model со списком стилистов
type StylistListResponse struct {
	Stylists []StylistResponse `json:"stylists"`
}

// FromCatalogStylists конвертирует стилистов каталога в HTTP response
func FromCatalogStylists(stylists []*catalog.Stylist) *StylistListResponse {
	resp := &StylistListResponse{
		Stylists: make([]StylistResponse, 0, len(stylists)),
	}
	for _, stylist := range stylists {
		resp.Stylists = append(resp.Stylists, StylistResponse{
			ID:        stylist.ID,
			Name:      stylist.Name,
			Specialty: stylist.Specialty,
		})
	}
	return resp
}
