// internal/application/product_service.go
package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/dto"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/mapper"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/ports"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/pkg/validate"
)

type ProductService struct {
	sellers  ports.SellerRepositoryPort
	products ports.ProductRepositoryPort
	now      func() time.Time
}

func NewProductService(sellers ports.SellerRepositoryPort, products ports.ProductRepositoryPort) *ProductService {
	return &ProductService{sellers: sellers, products: products, now: func() time.Time { return time.Now().UTC() }}
}

func (s *ProductService) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if validate.AnyBlank(in.SellerName, in.Title, in.Category) {
		return nil, domain.InvalidInput("Campos obrigatórios do produto não informados (vendedor, título, categoria)")
	}
	if err := validatePrices(in.Price, in.PricePromotion); err != nil {
		return nil, err
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.InvalidInput("Estoque do produto inválido (negativo)")
	}

	seller, err := s.sellers.FindSellerByName(ctx, in.SellerName)
	if err != nil {
		return nil, storeErr("buscar vendedor", err)
	}
	if seller == nil {
		return nil, domain.NotFound(fmt.Sprintf("Vendedor com o nome: %s não encontrado", in.SellerName))
	}

	title := strings.TrimSpace(in.Title)
	existing, err := s.products.FindProductByTitle(ctx, title, seller.Name)
	if err != nil {
		return nil, storeErr("buscar produto", err)
	}
	if existing != nil {
		return nil, domain.InvalidInput(fmt.Sprintf("Produto com o título: %s já cadastrado para o vendedor", title))
	}

	created, err := s.products.CreateProduct(ctx, mapper.ToProduct(in, seller, s.now()))
	if err != nil {
		return nil, storeErr("salvar produto", err)
	}
	resp := mapper.ToProductResponse(created)
	return &resp, nil
}

// Update changes the catalog fields of an existing product.
func (s *ProductService) Update(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if validate.AnyBlank(in.SellerName, in.Title) {
		return nil, domain.InvalidInput("Vendedor e título do produto são obrigatórios")
	}
	if err := validatePrices(in.Price, in.PricePromotion); err != nil {
		return nil, err
	}
	p, err := s.find(ctx, in.Title, in.SellerName)
	if err != nil {
		return nil, err
	}
	mapper.ApplyProductUpdate(p, in, s.now())
	if err := s.products.UpdateProduct(ctx, p); err != nil {
		return nil, storeErr("atualizar produto", err)
	}
	resp := mapper.ToProductResponse(p)
	return &resp, nil
}

func (s *ProductService) UpdateStock(ctx context.Context, in dto.ProductStockRequest) (*dto.ProductResponse, error) {
	if validate.AnyBlank(in.SellerName, in.Title) {
		return nil, domain.InvalidInput("Vendedor e título do produto são obrigatórios")
	}
	if in.Stock == nil || *in.Stock < 0 {
		return nil, domain.InvalidInput("Estoque do produto inválido (vazio ou negativo)")
	}
	p, err := s.find(ctx, in.Title, in.SellerName)
	if err != nil {
		return nil, err
	}
	p.Stock = *in.Stock
	p.UpdatedAt = s.now()
	if err := s.products.UpdateProduct(ctx, p); err != nil {
		return nil, storeErr("atualizar estoque do produto", err)
	}
	resp := mapper.ToProductResponse(p)
	return &resp, nil
}

func (s *ProductService) ListBySeller(ctx context.Context, sellerName string) ([]dto.ProductResponse, error) {
	if validate.IsBlank(sellerName) {
		return nil, domain.InvalidInput("Nome do vendedor inválido (vazio ou nulo)")
	}
	products, err := s.products.FindProductsBySeller(ctx, sellerName)
	if err != nil {
		return nil, storeErr("buscar produtos do vendedor", err)
	}
	return mapper.ToProductResponses(products), nil
}

func (s *ProductService) find(ctx context.Context, title, sellerName string) (*domain.Product, error) {
	title = strings.TrimSpace(title)
	p, err := s.products.FindProductByTitle(ctx, title, sellerName)
	if err != nil {
		return nil, storeErr("buscar produto", err)
	}
	if p == nil {
		return nil, domain.NotFound(fmt.Sprintf("Produto com o título: %s não encontrado para o vendedor %s", title, sellerName))
	}
	return p, nil
}

func validatePrices(price, promotion float64) error {
	if price <= 0 {
		return domain.InvalidInput("Preço do produto inválido (deve ser maior que zero)")
	}
	if promotion < 0 {
		return domain.InvalidInput("Preço promocional do produto inválido (negativo)")
	}
	return nil
}
