// internal/mapper/request.go
package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/dto"
)

type Totals struct {
	TotalPrice          float64
	TotalPricePromotion float64
	TotalQuantity       int
	TotalValue          float64
}

// ComputeTotals sums prices in decimal so that e.g. 3 x 9.99 is 29.97.
func ComputeTotals(items []domain.LineItem, shippingPrice float64) Totals {
	price := decimal.Zero
	promo := decimal.Zero
	qty := 0
	for _, it := range items {
		q := decimal.NewFromInt(int64(it.Quantity))
		price = price.Add(decimal.NewFromFloat(it.Price).Mul(q))
		promo = promo.Add(decimal.NewFromFloat(it.PricePromotion).Mul(q))
		qty += it.Quantity
	}
	value := price.Add(decimal.NewFromFloat(shippingPrice))
	return Totals{
		TotalPrice:          price.InexactFloat64(),
		TotalPricePromotion: promo.InexactFloat64(),
		TotalQuantity:       qty,
		TotalValue:          value.InexactFloat64(),
	}
}

func ToLineItem(p *domain.Product, quantity int) domain.LineItem {
	return domain.LineItem{
		ProductID:      p.ID,
		Title:          p.Title,
		Price:          p.Price,
		PricePromotion: p.PricePromotion,
		Quantity:       quantity,
	}
}

// ToRequest builds a CREATED order stamped with now.
func ToRequest(seller *domain.Seller, user *domain.User, items []domain.LineItem, shippingPrice float64, now time.Time) (*domain.Request, error) {
	switch {
	case seller == nil:
		return nil, domain.MappingError("Vendedor ausente no mapeamento do pedido")
	case user == nil:
		return nil, domain.MappingError("Usuário ausente no mapeamento do pedido")
	case len(items) == 0:
		return nil, domain.MappingError("Pedido sem produtos no mapeamento")
	}
	t := ComputeTotals(items, shippingPrice)
	total := t.TotalValue
	return &domain.Request{
		SellerID:            seller.ID,
		SellerName:          seller.Name,
		UserID:              user.ID,
		UserName:            user.Name,
		Items:               append([]domain.LineItem(nil), items...),
		ShippingPrice:       shippingPrice,
		TotalPrice:          t.TotalPrice,
		TotalPricePromotion: t.TotalPricePromotion,
		TotalQuantity:       t.TotalQuantity,
		TotalValue:          &total,
		Status:              domain.StatusCreated,
		CreatedAt:           now,
		UpdatedAt:           now,
	}, nil
}

// ToRequestResponse fails with a mapping error if the total was never computed.
func ToRequestResponse(r *domain.Request) (dto.RequestResponse, error) {
	if r == nil {
		return dto.RequestResponse{}, domain.MappingError("Pedido ausente")
	}
	if r.TotalValue == nil {
		return dto.RequestResponse{}, domain.MappingError("Valor total do pedido não calculado")
	}
	items := make([]dto.LineItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.LineItemResponse{
			ProductID:      it.ProductID,
			Title:          it.Title,
			Price:          it.Price,
			PricePromotion: it.PricePromotion,
			Quantity:       it.Quantity,
		})
	}
	return dto.RequestResponse{
		ID:                  r.ID,
		SellerID:            r.SellerID,
		SellerName:          r.SellerName,
		UserID:              r.UserID,
		UserName:            r.UserName,
		Items:               items,
		ShippingPrice:       r.ShippingPrice,
		TotalPrice:          r.TotalPrice,
		TotalPricePromotion: r.TotalPricePromotion,
		TotalQuantity:       r.TotalQuantity,
		TotalValue:          *r.TotalValue,
		Status:              string(r.Status),
		Rating:              r.Rating,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}, nil
}

func ToRequestResponses(requests []*domain.Request) ([]dto.RequestResponse, error) {
	out := make([]dto.RequestResponse, 0, len(requests))
	for _, r := range requests {
		resp, err := ToRequestResponse(r)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}
