// internal/domain/models.go
package domain

import "time"

type RequestStatus string

const (
	StatusCreated  RequestStatus = "CREATED"
	StatusRated    RequestStatus = "RATED"
	StatusCanceled RequestStatus = "CANCELED"
)

const (
	MinRating = 1
	MaxRating = 5
)

// OperatingHours holds a local opening window as "HH:MM" strings.
type OperatingHours struct {
	Start string `bson:"start"`
	End   string `bson:"end"`
}

type Seller struct {
	ID           string         `bson:"_id,omitempty"`
	Name         string         `bson:"name"`
	Email        string         `bson:"email"`
	Password     string         `bson:"password"`
	Document     string         `bson:"document"`
	Phone        string         `bson:"phone"`
	Address      string         `bson:"address"`
	Number       string         `bson:"number"`
	PostalCode   string         `bson:"postalCode"`
	City         string         `bson:"city"`
	WeekdayHours OperatingHours `bson:"weekdayHours"`
	WeekendHours OperatingHours `bson:"weekendHours"`
	Categories   []string       `bson:"categories"`
	ImageURL     string         `bson:"imageUrl"`
	CreatedAt    time.Time      `bson:"createdAt"`
}

type User struct {
	ID         string    `bson:"_id,omitempty"`
	Name       string    `bson:"name"`
	Email      string    `bson:"email"`
	Password   string    `bson:"password"`
	Document   string    `bson:"document"`
	Phone      string    `bson:"phone"`
	Address    string    `bson:"address"`
	Number     string    `bson:"number"`
	PostalCode string    `bson:"postalCode"`
	City       string    `bson:"city"`
	BirthDate  time.Time `bson:"birthDate"`
	PetType    string    `bson:"petType"`
	CityZone   string    `bson:"cityZone"`
	CreatedAt  time.Time `bson:"createdAt"`
}

type Product struct {
	ID             string    `bson:"_id,omitempty"`
	SellerID       string    `bson:"sellerId"`
	SellerName     string    `bson:"sellerName"`
	Title          string    `bson:"title"`
	Description    string    `bson:"description"`
	Brand          string    `bson:"brand"`
	Category       string    `bson:"category"`
	Price          float64   `bson:"price"`
	PricePromotion float64   `bson:"pricePromotion"`
	Stock          int       `bson:"stock"`
	ImageURL       string    `bson:"imageUrl"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

// LineItem is a snapshot of a product's economics taken when the order is
// placed. Later product changes never alter it.
type LineItem struct {
	ProductID      string  `bson:"productId" json:"productId"`
	Title          string  `bson:"title" json:"title"`
	Price          float64 `bson:"price" json:"price"`
	PricePromotion float64 `bson:"pricePromotion" json:"pricePromotion"`
	Quantity       int     `bson:"quantity" json:"quantity"`
}

// Request is a buyer's order against one seller's products.
// TotalValue is nil until the order has been built from its line items.
type Request struct {
	ID                  string        `bson:"_id,omitempty"`
	SellerID            string        `bson:"sellerId"`
	SellerName          string        `bson:"sellerName"`
	UserID              string        `bson:"userId"`
	UserName            string        `bson:"userName"`
	Items               []LineItem    `bson:"items"`
	ShippingPrice       float64       `bson:"shippingPrice"`
	TotalPrice          float64       `bson:"totalPrice"`
	TotalPricePromotion float64       `bson:"totalPricePromotion"`
	TotalQuantity       int           `bson:"totalQuantity"`
	TotalValue          *float64      `bson:"totalValue"`
	Status              RequestStatus `bson:"status"`
	Rating              *int          `bson:"rating,omitempty"`
	CreatedAt           time.Time     `bson:"createdAt"`
	UpdatedAt           time.Time     `bson:"updatedAt"`
}

// Cancel moves a CREATED request to CANCELED.
func (r *Request) Cancel(now time.Time) error {
	if r.Status != StatusCreated {
		return InvalidInput("Pedido com status " + string(r.Status) + " não pode ser cancelado")
	}
	r.Status = StatusCanceled
	r.UpdatedAt = now
	return nil
}

// Rate moves a CREATED request to RATED with the given score.
func (r *Request) Rate(rating int, now time.Time) error {
	if rating < MinRating || rating > MaxRating {
		return InvalidInput("Avaliação inválida, deve estar entre 1 e 5")
	}
	if r.Status != StatusCreated {
		return InvalidInput("Pedido com status " + string(r.Status) + " não pode ser avaliado")
	}
	r.Rating = &rating
	r.Status = StatusRated
	r.UpdatedAt = now
	return nil
}

// IsStale reports whether the request is still CREATED and older than maxAge.
func (r *Request) IsStale(now time.Time, maxAge time.Duration) bool {
	return r.Status == StatusCreated && r.CreatedAt.Before(now.Add(-maxAge))
}
