package yahoo

import "price_checker/internal/domain/entity"

type searchResponse struct {
	TotalResultsReturned int      `json:"totalResultsReturned"`
	Hits                 []hitDTO `json:"hits"`
}

type hitDTO struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	URL   string `json:"url"`
	Image struct {
		Small  string `json:"small"`
		Medium string `json:"medium"`
	} `json:"image"`
}

func (h hitDTO) toHit() entity.Hit {
	return entity.Hit{
		Title:    h.Name,
		Price:    h.Price,
		URL:      h.URL,
		ImageURL: h.Image.Medium,
	}
}
