// internal/dto/dto.go
package dto

import "time"

type SellerRequest struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Password     string   `json:"password"`
	Document     string   `json:"document"`
	Phone        string   `json:"phone"`
	Address      string   `json:"address"`
	Number       string   `json:"number"`
	PostalCode   string   `json:"postalCode"`
	City         string   `json:"city"`
	WeekdayStart string   `json:"weekdayStart"`
	WeekdayEnd   string   `json:"weekdayEnd"`
	WeekendStart string   `json:"weekendStart"`
	WeekendEnd   string   `json:"weekendEnd"`
	Categories   []string `json:"categories"`
	ImageURL     string   `json:"imageUrl"`
}

type SellerResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Document     string    `json:"document"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Number       string    `json:"number"`
	PostalCode   string    `json:"postalCode"`
	City         string    `json:"city"`
	WeekdayStart string    `json:"weekdayStart"`
	WeekdayEnd   string    `json:"weekdayEnd"`
	WeekendStart string    `json:"weekendStart"`
	WeekendEnd   string    `json:"weekendEnd"`
	Categories   []string  `json:"categories"`
	ImageURL     string    `json:"imageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

type UserRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Document   string `json:"document"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Number     string `json:"number"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
	BirthDate  string `json:"birthDate"` // YYYY-MM-DD
	PetType    string `json:"petType"`
	CityZone   string `json:"cityZone"`
}

type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Document   string    `json:"document"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Number     string    `json:"number"`
	PostalCode string    `json:"postalCode"`
	City       string    `json:"city"`
	BirthDate  string    `json:"birthDate,omitempty"`
	PetType    string    `json:"petType"`
	CityZone   string    `json:"cityZone"`
	CreatedAt  time.Time `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	TokenType   string `json:"tokenType"`
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
	Name        string `json:"name"`
	Role        string `json:"role"`
}

type ProductRequest struct {
	SellerName     string  `json:"sellerName"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Brand          string  `json:"brand"`
	Category       string  `json:"category"`
	Price          float64 `json:"price"`
	PricePromotion float64 `json:"pricePromotion"`
	Stock          *int    `json:"stock"`
	ImageURL       string  `json:"imageUrl"`
}

type ProductStockRequest struct {
	SellerName string `json:"sellerName"`
	Title      string `json:"title"`
	Stock      *int   `json:"stock"`
}

type ProductResponse struct {
	ID             string    `json:"id"`
	SellerID       string    `json:"sellerId"`
	SellerName     string    `json:"sellerName"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Brand          string    `json:"brand"`
	Category       string    `json:"category"`
	Price          float64   `json:"price"`
	PricePromotion float64   `json:"pricePromotion"`
	Stock          int       `json:"stock"`
	ImageURL       string    `json:"imageUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type RequestItem struct {
	Title    string `json:"title"`
	Quantity *int   `json:"quantity"`
}

type CreateRequestRequest struct {
	SellerName    string        `json:"sellerName"`
	UserName      string        `json:"userName"`
	Items         []RequestItem `json:"items"`
	ShippingPrice float64       `json:"shippingPrice"`
}

type LineItemResponse struct {
	ProductID      string  `json:"productId"`
	Title          string  `json:"title"`
	Price          float64 `json:"price"`
	PricePromotion float64 `json:"pricePromotion"`
	Quantity       int     `json:"quantity"`
}

type RequestResponse struct {
	ID                  string             `json:"id"`
	SellerID            string             `json:"sellerId"`
	SellerName          string             `json:"sellerName"`
	UserID              string             `json:"userId"`
	UserName            string             `json:"userName"`
	Items               []LineItemResponse `json:"items"`
	ShippingPrice       float64            `json:"shippingPrice"`
	TotalPrice          float64            `json:"totalPrice"`
	TotalPricePromotion float64            `json:"totalPricePromotion"`
	TotalQuantity       int                `json:"totalQuantity"`
	TotalValue          float64            `json:"totalValue"`
	Status              string             `json:"status"`
	Rating              *int               `json:"rating,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

type RateRequest struct {
	Rating int `json:"rating"`
}
