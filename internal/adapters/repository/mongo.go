// internal/adapters/repository/mongo.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
)

const (
	sellersCollection  = "sellers"
	usersCollection    = "users"
	productsCollection = "products"
	requestsCollection = "requests"
)

// MongoStore keeps every entity in its own collection. Documents use an
// ObjectID hex string as _id.
type MongoStore struct {
	db       *mongo.Database
	sellers  *mongo.Collection
	users    *mongo.Collection
	products *mongo.Collection
	requests *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		db:       db,
		sellers:  db.Collection(sellersCollection),
		users:    db.Collection(usersCollection),
		products: db.Collection(productsCollection),
		requests: db.Collection(requestsCollection),
	}
}

func ConnectMongo(ctx context.Context, uri, database string, timeout time.Duration) (*MongoStore, error) {
	opts := options.Client().ApplyURI(uri).SetTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return NewMongoStore(client.Database(database)), nil
}

// EnsureIndexes creates the uniqueness and lookup indexes.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	indexes := map[*mongo.Collection][]mongo.IndexModel{
		s.sellers: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "categories", Value: 1}}},
		},
		s.users: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		s.products: {
			{Keys: bson.D{{Key: "sellerName", Value: 1}, {Key: "title", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		s.requests: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}}},
			{Keys: bson.D{{Key: "sellerName", Value: 1}}},
			{Keys: bson.D{{Key: "userName", Value: 1}}},
		},
	}
	for coll, models := range indexes {
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll.Name(), err)
		}
	}
	return nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.db.Client().Disconnect(ctx)
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

func caseInsensitive(pattern string) primitive.Regex {
	return primitive.Regex{Pattern: pattern, Options: "i"}
}

// findOne decodes the first match into out and reports whether one existed.
func findOne(ctx context.Context, coll *mongo.Collection, filter bson.M, out any) (bool, error) {
	err := coll.FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	return true, nil
}

func findMany[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, opts ...*options.FindOptions) ([]*T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	defer cur.Close(ctx)

	var out []*T
	for cur.Next(ctx) {
		v := new(T)
		if err := cur.Decode(v); err != nil {
			return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
		}
		out = append(out, v)
	}
	return out, cur.Err()
}

func updateByID(ctx context.Context, coll *mongo.Collection, id string, update bson.M) error {
	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update %s: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s %s not found", coll.Name(), id)
	}
	return nil
}

func (s *MongoStore) CreateSeller(ctx context.Context, seller *domain.Seller) (*domain.Seller, error) {
	seller.ID = newID()
	if _, err := s.sellers.InsertOne(ctx, seller); err != nil {
		return nil, fmt.Errorf("insert seller: %w", err)
	}
	return seller, nil
}

func (s *MongoStore) findSeller(ctx context.Context, filter bson.M) (*domain.Seller, error) {
	seller := &domain.Seller{}
	ok, err := findOne(ctx, s.sellers, filter, seller)
	if err != nil || !ok {
		return nil, err
	}
	return seller, nil
}

func (s *MongoStore) FindSellerByName(ctx context.Context, name string) (*domain.Seller, error) {
	return s.findSeller(ctx, bson.M{"name": name})
}

func (s *MongoStore) FindSellerByEmail(ctx context.Context, email string) (*domain.Seller, error) {
	return s.findSeller(ctx, bson.M{"email": email})
}

func (s *MongoStore) FindSellersByName(ctx context.Context, pattern string) ([]*domain.Seller, error) {
	return findMany[domain.Seller](ctx, s.sellers, bson.M{"name": caseInsensitive(pattern)}, sortBy("name", 1))
}

func (s *MongoStore) FindSellersByCategory(ctx context.Context, category string) ([]*domain.Seller, error) {
	return findMany[domain.Seller](ctx, s.sellers, bson.M{"categories": category}, sortBy("name", 1))
}

func (s *MongoStore) ListSellers(ctx context.Context) ([]*domain.Seller, error) {
	return findMany[domain.Seller](ctx, s.sellers, bson.M{}, sortBy("name", 1))
}

func (s *MongoStore) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	user.ID = newID()
	if _, err := s.users.InsertOne(ctx, user); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (s *MongoStore) findUser(ctx context.Context, filter bson.M) (*domain.User, error) {
	user := &domain.User{}
	ok, err := findOne(ctx, s.users, filter, user)
	if err != nil || !ok {
		return nil, err
	}
	return user, nil
}

func (s *MongoStore) FindUserByName(ctx context.Context, name string) (*domain.User, error) {
	return s.findUser(ctx, bson.M{"name": name})
}

func (s *MongoStore) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findUser(ctx, bson.M{"email": email})
}

func (s *MongoStore) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	p.ID = newID()
	if _, err := s.products.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

func (s *MongoStore) FindProductByTitle(ctx context.Context, title, sellerName string) (*domain.Product, error) {
	p := &domain.Product{}
	ok, err := findOne(ctx, s.products, bson.M{"title": title, "sellerName": sellerName}, p)
	if err != nil || !ok {
		return nil, err
	}
	return p, nil
}

func (s *MongoStore) FindProductsBySeller(ctx context.Context, sellerName string) ([]*domain.Product, error) {
	return findMany[domain.Product](ctx, s.products, bson.M{"sellerName": sellerName}, sortBy("title", 1))
}

func (s *MongoStore) FindProductsByTitle(ctx context.Context, pattern string) ([]*domain.Product, error) {
	return findMany[domain.Product](ctx, s.products, bson.M{"title": caseInsensitive(pattern)}, sortBy("title", 1))
}

func (s *MongoStore) FindProductsByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	return findMany[domain.Product](ctx, s.products, bson.M{"category": category}, sortBy("title", 1))
}

func (s *MongoStore) UpdateProduct(ctx context.Context, p *domain.Product) error {
	return updateByID(ctx, s.products, p.ID, bson.M{"$set": bson.M{
		"description":    p.Description,
		"brand":          p.Brand,
		"category":       p.Category,
		"price":          p.Price,
		"pricePromotion": p.PricePromotion,
		"stock":          p.Stock,
		"imageUrl":       p.ImageURL,
		"updatedAt":      p.UpdatedAt,
	}})
}

// DecrementStock subtracts quantity without checking the current stock.
func (s *MongoStore) DecrementStock(ctx context.Context, productID string, quantity int) error {
	return updateByID(ctx, s.products, productID, bson.M{
		"$inc": bson.M{"stock": -quantity},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
}

func (s *MongoStore) CreateRequest(ctx context.Context, r *domain.Request) (*domain.Request, error) {
	r.ID = newID()
	if _, err := s.requests.InsertOne(ctx, r); err != nil {
		return nil, fmt.Errorf("insert request: %w", err)
	}
	return r, nil
}

func (s *MongoStore) FindRequestByID(ctx context.Context, id string) (*domain.Request, error) {
	r := &domain.Request{}
	ok, err := findOne(ctx, s.requests, bson.M{"_id": id}, r)
	if err != nil || !ok {
		return nil, err
	}
	return r, nil
}

func (s *MongoStore) FindRequestsBySeller(ctx context.Context, sellerName string) ([]*domain.Request, error) {
	return findMany[domain.Request](ctx, s.requests, bson.M{"sellerName": sellerName}, sortBy("createdAt", -1))
}

func (s *MongoStore) FindRequestsByUser(ctx context.Context, userName string) ([]*domain.Request, error) {
	return findMany[domain.Request](ctx, s.requests, bson.M{"userName": userName}, sortBy("createdAt", -1))
}

func (s *MongoStore) UpdateRequest(ctx context.Context, r *domain.Request) error {
	return updateByID(ctx, s.requests, r.ID, bson.M{"$set": bson.M{
		"status":    r.Status,
		"rating":    r.Rating,
		"updatedAt": r.UpdatedAt,
	}})
}

func (s *MongoStore) FindStaleRequests(ctx context.Context, createdBefore time.Time, page, size int) ([]*domain.Request, error) {
	limit, offset := pageBounds(page, size)
	opts := sortBy("createdAt", 1).SetSkip(int64(offset)).SetLimit(int64(limit))
	filter := bson.M{
		"status":    domain.StatusCreated,
		"createdAt": bson.M{"$lt": createdBefore},
	}
	return findMany[domain.Request](ctx, s.requests, filter, opts)
}

func sortBy(field string, order int) *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: field, Value: order}})
}
