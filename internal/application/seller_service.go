// internal/application/seller_service.go
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

type SellerService struct {
	repo ports.SellerRepositoryPort
	now  func() time.Time
}

func NewSellerService(repo ports.SellerRepositoryPort) *SellerService {
	return &SellerService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *SellerService) Register(ctx context.Context, in dto.SellerRequest) (*dto.SellerResponse, error) {
	if validate.AnyBlank(in.Name, in.Email, in.Password, in.Document) {
		return nil, domain.InvalidInput("Campos obrigatórios do vendedor não informados (nome, email, senha, documento)")
	}
	weekday := domain.OperatingHours{Start: in.WeekdayStart, End: in.WeekdayEnd}
	if err := weekday.Validate(); err != nil {
		return nil, domain.InvalidInput("Horário de funcionamento em dias úteis inválido: " + err.Error())
	}
	weekend := domain.OperatingHours{Start: in.WeekendStart, End: in.WeekendEnd}
	if err := weekend.Validate(); err != nil {
		return nil, domain.InvalidInput("Horário de funcionamento no fim de semana inválido: " + err.Error())
	}

	name := strings.TrimSpace(in.Name)
	existing, err := s.repo.FindSellerByName(ctx, name)
	if err != nil {
		return nil, storeErr("buscar vendedor", err)
	}
	if existing != nil {
		return nil, domain.InvalidInput(fmt.Sprintf("Vendedor com o nome: %s já cadastrado", name))
	}
	email := normalizeEmail(in.Email)
	existing, err = s.repo.FindSellerByEmail(ctx, email)
	if err != nil {
		return nil, storeErr("buscar vendedor", err)
	}
	if existing != nil {
		return nil, domain.InvalidInput(fmt.Sprintf("Vendedor com o email: %s já cadastrado", email))
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	seller, err := s.repo.CreateSeller(ctx, mapper.ToSeller(in, hash, s.now()))
	if err != nil {
		return nil, storeErr("salvar vendedor", err)
	}
	resp := mapper.ToSellerResponse(seller)
	return &resp, nil
}

func (s *SellerService) FindByName(ctx context.Context, name string) (*dto.SellerResponse, error) {
	if validate.IsBlank(name) {
		return nil, domain.InvalidInput("Nome do vendedor inválido (vazio ou nulo)")
	}
	seller, err := s.repo.FindSellerByName(ctx, name)
	if err != nil {
		return nil, storeErr("buscar vendedor", err)
	}
	if seller == nil {
		return nil, domain.NotFound(fmt.Sprintf("Vendedor com o nome: %s não encontrado", name))
	}
	resp := mapper.ToSellerResponse(seller)
	return &resp, nil
}
