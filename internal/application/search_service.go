// internal/application/search_service.go
package application

import (
	"context"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/dto"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/mapper"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/ports"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/pkg/validate"
)

// SearchService answers catalog queries. Text patterns are matched as
// literal, case-insensitive substrings.
type SearchService struct {
	sellers  ports.SellerRepositoryPort
	products ports.ProductRepositoryPort
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

// NewSearchService uses loc to decide whether a seller is open; nil means UTC.
func NewSearchService(sellers ports.SellerRepositoryPort, products ports.ProductRepositoryPort, loc *time.Location, logger *zap.Logger) *SearchService {
	if loc == nil {
		loc = time.UTC
	}
	return &SearchService{sellers: sellers, products: products, location: loc, logger: logger, now: time.Now}
}

func (s *SearchService) ProductsByTitle(ctx context.Context, title string) ([]dto.ProductResponse, error) {
	if validate.IsBlank(title) {
		return nil, domain.InvalidInput("Título para busca inválido (vazio ou nulo)")
	}
	products, err := s.products.FindProductsByTitle(ctx, regexp.QuoteMeta(title))
	if err != nil {
		return nil, storeErr("buscar produtos por título", err)
	}
	return mapper.ToProductResponses(products), nil
}

func (s *SearchService) ProductsByCategory(ctx context.Context, category string) ([]dto.ProductResponse, error) {
	if validate.IsBlank(category) {
		return nil, domain.InvalidInput("Categoria para busca inválida (vazia ou nula)")
	}
	products, err := s.products.FindProductsByCategory(ctx, category)
	if err != nil {
		return nil, storeErr("buscar produtos por categoria", err)
	}
	return mapper.ToProductResponses(products), nil
}

func (s *SearchService) SellersByName(ctx context.Context, name string) ([]dto.SellerResponse, error) {
	if validate.IsBlank(name) {
		return nil, domain.InvalidInput("Nome para busca inválido (vazio ou nulo)")
	}
	sellers, err := s.sellers.FindSellersByName(ctx, regexp.QuoteMeta(name))
	if err != nil {
		return nil, storeErr("buscar vendedores por nome", err)
	}
	return mapper.ToSellerResponses(sellers), nil
}

func (s *SearchService) SellersByCategory(ctx context.Context, category string) ([]dto.SellerResponse, error) {
	if validate.IsBlank(category) {
		return nil, domain.InvalidInput("Categoria para busca inválida (vazia ou nula)")
	}
	sellers, err := s.sellers.FindSellersByCategory(ctx, category)
	if err != nil {
		return nil, storeErr("buscar vendedores por categoria", err)
	}
	return mapper.ToSellerResponses(sellers), nil
}

// OpenSellers lists sellers open right now, optionally within a category.
// Sellers with malformed hours are skipped.
func (s *SearchService) OpenSellers(ctx context.Context, category string) ([]dto.SellerResponse, error) {
	var (
		sellers []*domain.Seller
		err     error
	)
	if validate.IsBlank(category) {
		sellers, err = s.sellers.ListSellers(ctx)
	} else {
		sellers, err = s.sellers.FindSellersByCategory(ctx, category)
	}
	if err != nil {
		return nil, storeErr("buscar vendedores", err)
	}

	now := s.now().In(s.location)
	open := make([]*domain.Seller, 0, len(sellers))
	for _, seller := range sellers {
		ok, err := seller.IsOpenAt(now)
		if err != nil {
			s.logger.Warn("seller has invalid operating hours",
				zap.String("seller", seller.Name),
				zap.Error(err))
			continue
		}
		if ok {
			open = append(open, seller)
		}
	}
	return mapper.ToSellerResponses(open), nil
}
