package rakuten

import "price_checker/internal/domain/entity"

type searchResponse struct {
	Items []struct {
		Item itemDTO `json:"Item"`
	} `json:"Items"`
}

type itemDTO struct {
	ItemName        string `json:"itemName"`
	ItemPrice       int64  `json:"itemPrice"`
	ItemURL         string `json:"itemUrl"`
	AffiliateURL    string `json:"affiliateUrl"`
	MediumImageURLs []struct {
		ImageURL string `json:"imageUrl"`
	} `json:"mediumImageUrls"`
}

// toHit keeps the direct item link unless the search was made with an affiliate
// id, in which case the affiliate link to the same item is used.
func (i itemDTO) toHit(withAffiliate bool) entity.Hit {
	hit := entity.Hit{
		Title: i.ItemName,
		Price: i.ItemPrice,
		URL:   i.ItemURL,
	}

	if withAffiliate && i.AffiliateURL != "" {
		hit.URL = i.AffiliateURL
	}

	if len(i.MediumImageURLs) > 0 {
		hit.ImageURL = i.MediumImageURLs[0].ImageURL
	}

	return hit
}
