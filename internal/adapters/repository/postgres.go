// internal/adapters/repository/postgres.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenPostgres connects with lib/pq and checks the connection.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS sellers (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) UNIQUE NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		document VARCHAR(32) NOT NULL,
		phone VARCHAR(32),
		address TEXT,
		number VARCHAR(16),
		postal_code VARCHAR(16),
		city VARCHAR(255),
		weekday_start VARCHAR(5) NOT NULL,
		weekday_end VARCHAR(5) NOT NULL,
		weekend_start VARCHAR(5) NOT NULL,
		weekend_end VARCHAR(5) NOT NULL,
		categories TEXT[] NOT NULL DEFAULT '{}',
		image_url TEXT,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) UNIQUE NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password VARCHAR(255) NOT NULL,
		document VARCHAR(32) NOT NULL,
		phone VARCHAR(32),
		address TEXT,
		number VARCHAR(16),
		postal_code VARCHAR(16),
		city VARCHAR(255),
		birth_date TIMESTAMPTZ,
		pet_type VARCHAR(64),
		city_zone VARCHAR(64),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(36) PRIMARY KEY,
		seller_id VARCHAR(36) NOT NULL REFERENCES sellers(id),
		seller_name VARCHAR(255) NOT NULL,
		title VARCHAR(255) NOT NULL,
		description TEXT,
		brand VARCHAR(255),
		category VARCHAR(255) NOT NULL,
		price FLOAT NOT NULL,
		price_promotion FLOAT NOT NULL,
		stock INTEGER NOT NULL,
		image_url TEXT,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (seller_name, title)
	)`,
	`CREATE TABLE IF NOT EXISTS requests (
		id VARCHAR(36) PRIMARY KEY,
		seller_id VARCHAR(36) NOT NULL,
		seller_name VARCHAR(255) NOT NULL,
		user_id VARCHAR(36) NOT NULL,
		user_name VARCHAR(255) NOT NULL,
		items JSONB NOT NULL,
		shipping_price FLOAT NOT NULL,
		total_price FLOAT NOT NULL,
		total_price_promotion FLOAT NOT NULL,
		total_quantity INTEGER NOT NULL,
		total_value FLOAT,
		status VARCHAR(16) NOT NULL,
		rating INTEGER,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS requests_status_created_at_idx ON requests (status, created_at)`,
}

// InitSchema creates the tables if they don't exist yet.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	for _, q := range schema {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) Close(ctx context.Context) error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

const sellerColumns = `id, name, email, password, document, phone, address, number, postal_code, city,
	weekday_start, weekday_end, weekend_start, weekend_end, categories, image_url, created_at`

func scanSeller(row scanner) (*domain.Seller, error) {
	s := &domain.Seller{}
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Password, &s.Document, &s.Phone, &s.Address, &s.Number, &s.PostalCode, &s.City,
		&s.WeekdayHours.Start, &s.WeekdayHours.End, &s.WeekendHours.Start, &s.WeekendHours.End,
		pq.Array(&s.Categories), &s.ImageURL, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) CreateSeller(ctx context.Context, seller *domain.Seller) (*domain.Seller, error) {
	seller.ID = uuid.NewString()
	query := `INSERT INTO sellers (` + sellerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := s.db.ExecContext(ctx, query,
		seller.ID, seller.Name, seller.Email, seller.Password, seller.Document, seller.Phone, seller.Address, seller.Number,
		seller.PostalCode, seller.City, seller.WeekdayHours.Start, seller.WeekdayHours.End, seller.WeekendHours.Start,
		seller.WeekendHours.End, pq.Array(seller.Categories), seller.ImageURL, seller.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert seller: %w", err)
	}
	return seller, nil
}

func (s *PostgresStore) findSeller(ctx context.Context, where string, arg any) (*domain.Seller, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+sellerColumns+" FROM sellers WHERE "+where, arg)
	seller, err := scanSeller(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select seller: %w", err)
	}
	return seller, nil
}

func (s *PostgresStore) FindSellerByName(ctx context.Context, name string) (*domain.Seller, error) {
	return s.findSeller(ctx, "name = $1", name)
}

func (s *PostgresStore) FindSellerByEmail(ctx context.Context, email string) (*domain.Seller, error) {
	return s.findSeller(ctx, "email = $1", email)
}

func (s *PostgresStore) querySellers(ctx context.Context, query string, args ...any) ([]*domain.Seller, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select sellers: %w", err)
	}
	defer rows.Close()

	var sellers []*domain.Seller
	for rows.Next() {
		seller, err := scanSeller(rows)
		if err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		sellers = append(sellers, seller)
	}
	return sellers, rows.Err()
}

// FindSellersByName matches pattern as a case-insensitive regular expression.
func (s *PostgresStore) FindSellersByName(ctx context.Context, pattern string) ([]*domain.Seller, error) {
	return s.querySellers(ctx, "SELECT "+sellerColumns+" FROM sellers WHERE name ~* $1 ORDER BY name", pattern)
}

func (s *PostgresStore) FindSellersByCategory(ctx context.Context, category string) ([]*domain.Seller, error) {
	return s.querySellers(ctx, "SELECT "+sellerColumns+" FROM sellers WHERE $1 = ANY(categories) ORDER BY name", category)
}

func (s *PostgresStore) ListSellers(ctx context.Context) ([]*domain.Seller, error) {
	return s.querySellers(ctx, "SELECT "+sellerColumns+" FROM sellers ORDER BY name")
}

const userColumns = `id, name, email, password, document, phone, address, number, postal_code, city,
	birth_date, pet_type, city_zone, created_at`

func (s *PostgresStore) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.ID = uuid.NewString()
	var birth sql.NullTime
	if !user.BirthDate.IsZero() {
		birth = sql.NullTime{Time: user.BirthDate, Valid: true}
	}
	query := `INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := s.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Password, user.Document, user.Phone, user.Address, user.Number,
		user.PostalCode, user.City, birth, user.PetType, user.CityZone, user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (s *PostgresStore) findUser(ctx context.Context, where string, arg any) (*domain.User, error) {
	u := &domain.User{}
	var birth sql.NullTime
	err := s.db.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+where, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.Password, &u.Document, &u.Phone, &u.Address, &u.Number, &u.PostalCode, &u.City,
		&birth, &u.PetType, &u.CityZone, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	if birth.Valid {
		u.BirthDate = birth.Time
	}
	return u, nil
}

func (s *PostgresStore) FindUserByName(ctx context.Context, name string) (*domain.User, error) {
	return s.findUser(ctx, "name = $1", name)
}

func (s *PostgresStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findUser(ctx, "email = $1", email)
}
