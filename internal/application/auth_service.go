// internal/application/auth_service.go
package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/dto"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/ports"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/pkg/auth"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/pkg/validate"
)

const invalidCredentials = "credenciais inválidas"

type AuthService struct {
	sellers   ports.SellerRepositoryPort
	users     ports.UserRepositoryPort
	tokens    *auth.Manager
	blacklist ports.TokenBlacklistPort
	now       func() time.Time
}

func NewAuthService(sellers ports.SellerRepositoryPort, users ports.UserRepositoryPort, tokens *auth.Manager, blacklist ports.TokenBlacklistPort) *AuthService {
	return &AuthService{sellers: sellers, users: users, tokens: tokens, blacklist: blacklist, now: time.Now}
}

func (s *AuthService) LoginSeller(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	if validate.AnyBlank(email, password) {
		return nil, domain.Unauthorized(invalidCredentials)
	}
	seller, err := s.sellers.FindSellerByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, storeErr("buscar vendedor", err)
	}
	if seller == nil {
		return nil, domain.Unauthorized(invalidCredentials)
	}
	return s.issue(seller.Name, seller.Password, password, auth.RoleSeller)
}

func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	if validate.AnyBlank(email, password) {
		return nil, domain.Unauthorized(invalidCredentials)
	}
	user, err := s.users.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, storeErr("buscar usuário", err)
	}
	if user == nil {
		return nil, domain.Unauthorized(invalidCredentials)
	}
	return s.issue(user.Name, user.Password, password, auth.RoleUser)
}

func (s *AuthService) issue(name, hash, password, role string) (*dto.LoginResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, domain.Unauthorized(invalidCredentials)
	}
	token, _, err := s.tokens.GenerateToken(name, role)
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindStore, Message: "falha ao gerar token", Err: err}
	}
	return &dto.LoginResponse{
		TokenType:   "Bearer",
		AccessToken: token,
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
		Name:        name,
		Role:        role,
	}, nil
}

// Logout revokes the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	if claims == nil || claims.ID == "" {
		return domain.Unauthorized("token inválido")
	}
	ttl := claims.Remaining(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
		return storeErr("revogar token", err)
	}
	return nil
}

// Authenticate validates a bearer token and rejects revoked ones.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*auth.Claims, error) {
	if validate.IsBlank(token) {
		return nil, domain.Unauthorized("token não informado")
	}
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, &domain.Error{Kind: domain.KindUnauthorized, Message: "token inválido", Err: err}
	}
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, storeErr("consultar token revogado", err)
	}
	if revoked {
		return nil, domain.Unauthorized("token revogado")
	}
	return claims, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.InvalidInput("Senha inválida (máximo de 72 bytes)")
	}
	if err != nil {
		return "", &domain.Error{Kind: domain.KindStore, Message: "falha ao gerar hash da senha", Err: err}
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
