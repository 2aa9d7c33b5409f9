// internal/ports/ports.go
package ports

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

import (
	"context"
	"time"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
)

// Finders return (nil, nil) when nothing matches.

type SellerRepositoryPort interface {
	CreateSeller(ctx context.Context, seller *domain.Seller) (*domain.Seller, error)
	FindSellerByName(ctx context.Context, name string) (*domain.Seller, error)
	FindSellerByEmail(ctx context.Context, email string) (*domain.Seller, error)
	FindSellersByName(ctx context.Context, pattern string) ([]*domain.Seller, error)
	FindSellersByCategory(ctx context.Context, category string) ([]*domain.Seller, error)
	ListSellers(ctx context.Context) ([]*domain.Seller, error)
}

type UserRepositoryPort interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	FindUserByName(ctx context.Context, name string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProductRepositoryPort interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindProductByTitle(ctx context.Context, title, sellerName string) (*domain.Product, error)
	FindProductsBySeller(ctx context.Context, sellerName string) ([]*domain.Product, error)
	FindProductsByTitle(ctx context.Context, pattern string) ([]*domain.Product, error)
	FindProductsByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DecrementStock(ctx context.Context, productID string, quantity int) error
}

type RequestRepositoryPort interface {
	CreateRequest(ctx context.Context, request *domain.Request) (*domain.Request, error)
	FindRequestByID(ctx context.Context, id string) (*domain.Request, error)
	FindRequestsBySeller(ctx context.Context, sellerName string) ([]*domain.Request, error)
	FindRequestsByUser(ctx context.Context, userName string) ([]*domain.Request, error)
	UpdateRequest(ctx context.Context, request *domain.Request) error
	FindStaleRequests(ctx context.Context, createdBefore time.Time, page, size int) ([]*domain.Request, error)
}

// StorePort is implemented by each entity store backend.
type StorePort interface {
	SellerRepositoryPort
	UserRepositoryPort
	ProductRepositoryPort
	RequestRepositoryPort
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type TokenBlacklistPort interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type EventPublisherPort interface {
	Publish(ctx context.Context, event domain.RequestEvent) error
}
