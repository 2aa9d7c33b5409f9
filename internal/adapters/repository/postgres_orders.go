// internal/adapters/repository/postgres_orders.go
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
)

const productColumns = `id, seller_id, seller_name, title, description, brand, category, price, price_promotion,
	stock, image_url, created_at, updated_at`

func scanProduct(row scanner) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(&p.ID, &p.SellerID, &p.SellerName, &p.Title, &p.Description, &p.Brand, &p.Category,
		&p.Price, &p.PricePromotion, &p.Stock, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PostgresStore) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	p.ID = uuid.NewString()
	query := `INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.SellerID, p.SellerName, p.Title, p.Description, p.Brand, p.Category,
		p.Price, p.PricePromotion, p.Stock, p.ImageURL, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) FindProductByTitle(ctx context.Context, title, sellerName string) (*domain.Product, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE title = $1 AND seller_name = $2", title, sellerName)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select product: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) queryProducts(ctx context.Context, query string, args ...any) ([]*domain.Product, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *PostgresStore) FindProductsBySeller(ctx context.Context, sellerName string) ([]*domain.Product, error) {
	return s.queryProducts(ctx, "SELECT "+productColumns+" FROM products WHERE seller_name = $1 ORDER BY title", sellerName)
}

func (s *PostgresStore) FindProductsByTitle(ctx context.Context, pattern string) ([]*domain.Product, error) {
	return s.queryProducts(ctx, "SELECT "+productColumns+" FROM products WHERE title ~* $1 ORDER BY title", pattern)
}

func (s *PostgresStore) FindProductsByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.queryProducts(ctx, "SELECT "+productColumns+" FROM products WHERE category = $1 ORDER BY title", category)
}

func (s *PostgresStore) UpdateProduct(ctx context.Context, p *domain.Product) error {
	res, err := s.db.ExecContext(ctx, `UPDATE products SET description = $1, brand = $2, category = $3, price = $4,
		price_promotion = $5, stock = $6, image_url = $7, updated_at = $8 WHERE id = $9`,
		p.Description, p.Brand, p.Category, p.Price, p.PricePromotion, p.Stock, p.ImageURL, p.UpdatedAt, p.ID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return expectOneRow(res, "product", p.ID)
}

// DecrementStock subtracts quantity without checking the current stock.
func (s *PostgresStore) DecrementStock(ctx context.Context, productID string, quantity int) error {
	res, err := s.db.ExecContext(ctx, "UPDATE products SET stock = stock - $1, updated_at = $2 WHERE id = $3",
		quantity, time.Now().UTC(), productID)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return expectOneRow(res, "product", productID)
}

const requestColumns = `id, seller_id, seller_name, user_id, user_name, items, shipping_price, total_price,
	total_price_promotion, total_quantity, total_value, status, rating, created_at, updated_at`

func scanRequest(row scanner) (*domain.Request, error) {
	r := &domain.Request{}
	var (
		items  []byte
		total  sql.NullFloat64
		rating sql.NullInt64
		status string
	)
	err := row.Scan(&r.ID, &r.SellerID, &r.SellerName, &r.UserID, &r.UserName, &items, &r.ShippingPrice, &r.TotalPrice,
		&r.TotalPricePromotion, &r.TotalQuantity, &total, &status, &rating, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &r.Items); err != nil {
		return nil, fmt.Errorf("decode items of request %s: %w", r.ID, err)
	}
	r.Status = domain.RequestStatus(status)
	if total.Valid {
		v := total.Float64
		r.TotalValue = &v
	}
	if rating.Valid {
		v := int(rating.Int64)
		r.Rating = &v
	}
	return r, nil
}

func (s *PostgresStore) CreateRequest(ctx context.Context, r *domain.Request) (*domain.Request, error) {
	items, err := json.Marshal(r.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}
	r.ID = uuid.NewString()
	query := `INSERT INTO requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = s.db.ExecContext(ctx, query,
		r.ID, r.SellerID, r.SellerName, r.UserID, r.UserName, items, r.ShippingPrice, r.TotalPrice,
		r.TotalPricePromotion, r.TotalQuantity, nullFloat(r.TotalValue), string(r.Status), nullInt(r.Rating),
		r.CreatedAt, r.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) FindRequestByID(ctx context.Context, id string) (*domain.Request, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+requestColumns+" FROM requests WHERE id = $1", id)
	r, err := scanRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select request: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) queryRequests(ctx context.Context, query string, args ...any) ([]*domain.Request, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select requests: %w", err)
	}
	defer rows.Close()

	var requests []*domain.Request
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan request: %w", err)
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

func (s *PostgresStore) FindRequestsBySeller(ctx context.Context, sellerName string) ([]*domain.Request, error) {
	return s.queryRequests(ctx, "SELECT "+requestColumns+" FROM requests WHERE seller_name = $1 ORDER BY created_at DESC", sellerName)
}

func (s *PostgresStore) FindRequestsByUser(ctx context.Context, userName string) ([]*domain.Request, error) {
	return s.queryRequests(ctx, "SELECT "+requestColumns+" FROM requests WHERE user_name = $1 ORDER BY created_at DESC", userName)
}

func (s *PostgresStore) UpdateRequest(ctx context.Context, r *domain.Request) error {
	res, err := s.db.ExecContext(ctx, "UPDATE requests SET status = $1, rating = $2, updated_at = $3 WHERE id = $4",
		string(r.Status), nullInt(r.Rating), r.UpdatedAt, r.ID)
	if err != nil {
		return fmt.Errorf("update request: %w", err)
	}
	return expectOneRow(res, "request", r.ID)
}

// FindStaleRequests pages through CREATED requests older than createdBefore,
// oldest first. page is zero-based.
func (s *PostgresStore) FindStaleRequests(ctx context.Context, createdBefore time.Time, page, size int) ([]*domain.Request, error) {
	size, offset := pageBounds(page, size)
	return s.queryRequests(ctx, "SELECT "+requestColumns+` FROM requests
		WHERE status = $1 AND created_at < $2 ORDER BY created_at LIMIT $3 OFFSET $4`,
		string(domain.StatusCreated), createdBefore, size, offset)
}

func expectOneRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s not found", entity, id)
	}
	return nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
