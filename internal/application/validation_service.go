// internal/application/validation_service.go
package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/dto"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/mapper"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/ports"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/pkg/validate"
)

const (
	reasonQuantityMissing = "sem quantidade informada"
	reasonQuantityInvalid = "com quantidade inválida"
	reasonProductNotFound = "não encontrado para o vendedor"
)

// ValidationService checks the parts of an incoming order against the store.
type ValidationService struct {
	sellers  ports.SellerRepositoryPort
	users    ports.UserRepositoryPort
	products ports.ProductRepositoryPort
}

func NewValidationService(sellers ports.SellerRepositoryPort, users ports.UserRepositoryPort, products ports.ProductRepositoryPort) *ValidationService {
	return &ValidationService{sellers: sellers, users: users, products: products}
}

func (s *ValidationService) ValidateSeller(ctx context.Context, name string) (*domain.Seller, error) {
	if validate.IsBlank(name) {
		return nil, domain.InvalidInput("Nome do vendedor inválido (vazio ou nulo)")
	}
	name = strings.TrimSpace(name)
	seller, err := s.sellers.FindSellerByName(ctx, name)
	if err != nil {
		return nil, storeErr("buscar vendedor", err)
	}
	if seller == nil {
		return nil, domain.NotFound(fmt.Sprintf("Vendedor com o nome: %s não encontrado", name))
	}
	return seller, nil
}

func (s *ValidationService) ValidateUser(ctx context.Context, name string) (*domain.User, error) {
	if validate.IsBlank(name) {
		return nil, domain.InvalidInput("Nome do usuário inválido (vazio ou nulo)")
	}
	name = strings.TrimSpace(name)
	user, err := s.users.FindUserByName(ctx, name)
	if err != nil {
		return nil, storeErr("buscar usuário", err)
	}
	if user == nil {
		return nil, domain.NotFound(fmt.Sprintf("Usuário com o nome: %s não encontrado", name))
	}
	return user, nil
}

// ValidateLineItems resolves every item against sellerName's catalog and
// snapshots it. Either every item is valid or none is returned; the error
// then lists each failing item in input order.
func (s *ValidationService) ValidateLineItems(ctx context.Context, items []dto.RequestItem, sellerName string) ([]domain.LineItem, error) {
	if len(items) == 0 {
		return nil, domain.InvalidInput("Lista de produtos do pedido inválida (vazia ou nula)")
	}

	var failures []string
	lineItems := make([]domain.LineItem, 0, len(items))
	// quantity already taken by earlier lines of this order, per product
	reserved := make(map[string]int)
	for _, item := range items {
		if item.Quantity == nil {
			failures = append(failures, itemFailure(item.Title, reasonQuantityMissing))
			continue
		}
		qty := *item.Quantity
		if qty <= 0 {
			failures = append(failures, itemFailure(item.Title, reasonQuantityInvalid))
			continue
		}

		product, err := s.products.FindProductByTitle(ctx, item.Title, sellerName)
		if err != nil {
			return nil, storeErr("buscar produto", err)
		}
		if product == nil {
			failures = append(failures, itemFailure(item.Title, reasonProductNotFound))
			continue
		}
		requested := reserved[product.ID] + qty
		if product.Stock == 0 || product.Stock < requested {
			reason := fmt.Sprintf("não possui o estoque necessário, solicitado=%d, disponível=%d", requested, product.Stock)
			failures = append(failures, itemFailure(item.Title, reason))
			continue
		}
		reserved[product.ID] = requested
		lineItems = append(lineItems, mapper.ToLineItem(product, qty))
	}

	if len(failures) > 0 {
		return nil, domain.InvalidInput(strings.Join(failures, ""))
	}
	return lineItems, nil
}

func itemFailure(title, reason string) string {
	return fmt.Sprintf(" [Produto com o título: {%s} %s] ", title, reason)
}

func (s *ValidationService) ValidateShipping(price float64) error {
	if price < 0 {
		return domain.InvalidInput("Valor do frete inválido (negativo)")
	}
	return nil
}

func (s *ValidationService) ValidateTotal(r *domain.Request) error {
	if r == nil || r.TotalValue == nil {
		return domain.MappingError("Valor total do pedido não calculado")
	}
	if *r.TotalValue <= 0 {
		return domain.InvalidInput(fmt.Sprintf("Valor total do pedido inválido: %.2f", *r.TotalValue))
	}
	return nil
}

func (s *ValidationService) ValidateFindByID(id string) error {
	if validate.IsBlank(id) {
		return domain.InvalidInput("Id do pedido inválido (vazio ou nulo)")
	}
	return nil
}

func (s *ValidationService) ValidateFindBySeller(sellerName string) error {
	if validate.IsBlank(sellerName) {
		return domain.InvalidInput("Nome do vendedor inválido (vazio ou nulo)")
	}
	return nil
}

func (s *ValidationService) ValidateFindByUser(userName string) error {
	if validate.IsBlank(userName) {
		return domain.InvalidInput("Nome do usuário inválido (vazio ou nulo)")
	}
	return nil
}

// storeErr passes domain errors through and classifies anything else as a
// store failure.
func storeErr(op string, err error) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return domain.StoreError(op, err)
}
