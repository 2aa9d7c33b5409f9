// internal/mapper/product.go
package mapper

import (
	"strings"
	"time"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/dto"
)

// ToProduct builds a product owned by seller. A zero promotional price
// falls back to the regular price.
func ToProduct(in dto.ProductRequest, seller *domain.Seller, now time.Time) *domain.Product {
	p := &domain.Product{
		SellerID:       seller.ID,
		SellerName:     seller.Name,
		Title:          strings.TrimSpace(in.Title),
		Description:    in.Description,
		Brand:          in.Brand,
		Category:       strings.TrimSpace(in.Category),
		Price:          in.Price,
		PricePromotion: in.PricePromotion,
		ImageURL:       in.ImageURL,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if p.PricePromotion == 0 {
		p.PricePromotion = p.Price
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	return p
}

// ApplyProductUpdate copies the editable fields of in onto p.
// Title, seller and stock are not editable here.
func ApplyProductUpdate(p *domain.Product, in dto.ProductRequest, now time.Time) {
	p.Description = in.Description
	p.Brand = in.Brand
	p.Category = strings.TrimSpace(in.Category)
	p.Price = in.Price
	p.PricePromotion = in.PricePromotion
	if p.PricePromotion == 0 {
		p.PricePromotion = p.Price
	}
	p.ImageURL = in.ImageURL
	p.UpdatedAt = now
}

func ToProductResponse(p *domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:             p.ID,
		SellerID:       p.SellerID,
		SellerName:     p.SellerName,
		Title:          p.Title,
		Description:    p.Description,
		Brand:          p.Brand,
		Category:       p.Category,
		Price:          p.Price,
		PricePromotion: p.PricePromotion,
		Stock:          p.Stock,
		ImageURL:       p.ImageURL,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func ToProductResponses(products []*domain.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}
