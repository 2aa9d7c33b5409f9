// internal/application/user_service.go
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

type UserService struct {
	repo ports.UserRepositoryPort
	now  func() time.Time
}

func NewUserService(repo ports.UserRepositoryPort) *UserService {
	return &UserService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (s *UserService) Register(ctx context.Context, in dto.UserRequest) (*dto.UserResponse, error) {
	if validate.AnyBlank(in.Name, in.Email, in.Password, in.Document) {
		return nil, domain.InvalidInput("Campos obrigatórios do usuário não informados (nome, email, senha, documento)")
	}

	name := strings.TrimSpace(in.Name)
	existing, err := s.repo.FindUserByName(ctx, name)
	if err != nil {
		return nil, storeErr("buscar usuário", err)
	}
	if existing != nil {
		return nil, domain.InvalidInput(fmt.Sprintf("Usuário com o nome: %s já cadastrado", name))
	}
	email := normalizeEmail(in.Email)
	existing, err = s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, storeErr("buscar usuário", err)
	}
	if existing != nil {
		return nil, domain.InvalidInput(fmt.Sprintf("Usuário com o email: %s já cadastrado", email))
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user, err := mapper.ToUser(in, hash, s.now())
	if err != nil {
		return nil, err
	}
	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		return nil, storeErr("salvar usuário", err)
	}
	resp := mapper.ToUserResponse(created)
	return &resp, nil
}

func (s *UserService) FindByName(ctx context.Context, name string) (*dto.UserResponse, error) {
	if validate.IsBlank(name) {
		return nil, domain.InvalidInput("Nome do usuário inválido (vazio ou nulo)")
	}
	user, err := s.repo.FindUserByName(ctx, name)
	if err != nil {
		return nil, storeErr("buscar usuário", err)
	}
	if user == nil {
		return nil, domain.NotFound(fmt.Sprintf("Usuário com o nome: %s não encontrado", name))
	}
	resp := mapper.ToUserResponse(user)
	return &resp, nil
}
