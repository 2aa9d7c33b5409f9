// internal/adapters/repository/mongo_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
)

func toDoc(t *testing.T, v any) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	if err != nil {
		t.Fatalf("bson.Marshal() error: %v", err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("bson.Unmarshal() error: %v", err)
	}
	return doc
}

func TestMongoStore_Sellers(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns an object id", func(mt *mtest.T) {
		store := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		seller, err := store.CreateSeller(context.Background(), &domain.Seller{Name: "PetShop", Email: "loja@pet.com"})
		if err != nil {
			mt.Fatalf("CreateSeller() unexpected error: %v", err)
		}
		if !primitive.IsValidObjectID(seller.ID) {
			mt.Errorf("CreateSeller() id = %q, want object id hex", seller.ID)
		}
	})

	mt.Run("find by name", func(mt *mtest.T) {
		store := NewMongoStore(mt.DB)
		want := domain.Seller{
			ID:           "65f1c0ffee00000000000001",
			Name:         "PetShop",
			WeekdayHours: domain.OperatingHours{Start: "08:00", End: "18:00"},
			Categories:   []string{"cães", "gatos"},
			CreatedAt:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.sellers", mtest.FirstBatch, toDoc(mt.T, want)))

		got, err := store.FindSellerByName(context.Background(), "PetShop")
		if err != nil {
			mt.Fatalf("FindSellerByName() unexpected error: %v", err)
		}
		if got.ID != want.ID || got.WeekdayHours != want.WeekdayHours || len(got.Categories) != 2 || !got.CreatedAt.Equal(want.CreatedAt) {
			mt.Errorf("FindSellerByName() = %+v, want %+v", got, want)
		}
	})

	mt.Run("missing seller is nil, nil", func(mt *mtest.T) {
		store := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.sellers", mtest.FirstBatch))

		got, err := store.FindSellerByEmail(context.Background(), "nobody@pet.com")
		if err != nil || got != nil {
			mt.Errorf("FindSellerByEmail() = %v, %v, want nil, nil", got, err)
		}
	})

	mt.Run("list by category", func(mt *mtest.T) {
		store := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.sellers", mtest.FirstBatch,
			toDoc(mt.T, domain.Seller{ID: "a", Name: "A", Categories: []string{"aves"}}),
			toDoc(mt.T, domain.Seller{ID: "b", Name: "B", Categories: []string{"aves", "gatos"}}),
		))

		got, err := store.FindSellersByCategory(context.Background(), "aves")
		if err != nil || len(got) != 2 || got[1].Name != "B" {
			mt.Errorf("FindSellersByCategory() = %v, %v", got, err)
		}
	})

	mt.Run("duplicate key surfaces as error", func(mt *mtest.T) {
		store := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		if _, err := store.CreateSeller(context.Background(), &domain.Seller{Name: "PetShop"}); err == nil {
			mt.Error("CreateSeller() expected duplicate key error")
		}
	})
}

func TestMongoStore_Products(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find by title and seller", func(mt *mtest.T) {
		store := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.products", mtest.FirstBatch,
			toDoc(mt.T, domain.Product{ID: "p1", SellerName: "PetShop", Title: "Ração", Price: 9.99, PricePromotion: 8.5, Stock: 7})))

		p, err := store.FindProductByTitle(context.Background(), "Ração", "PetShop")
		if err != nil || p.ID != "p1" || p.Stock != 7 || p.PricePromotion != 8.5 {
			mt.Errorf("FindProductByTitle() = %+v, %v", p, err)
		}
	})

	mt.Run("decrement stock", func(mt *mtest.T) {
		store := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		if err := store.DecrementStock(context.Background(), "p1", 2); err != nil {
			mt.Errorf("DecrementStock() unexpected error: %v", err)
		}
	})

	mt.Run("decrement stock of unknown product", func(mt *mtest.T) {
		store := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		if err := store.DecrementStock(context.Background(), "missing", 2); err == nil {
			mt.Error("DecrementStock() expected not found error")
		}
	})
}

func TestMongoStore_Requests(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	created := time.Date(2024, 3, 13, 15, 30, 0, 0, time.UTC)
	total := 14.99

	mt.Run("find by id decodes line items and totals", func(mt *mtest.T) {
		store := NewMongoStore(mt.DB)
		stored := domain.Request{
			ID:         "65f1c0ffee00000000000009",
			SellerName: "PetShop",
			UserName:   "ana",
			Items:      []domain.LineItem{{ProductID: "p1", Title: "Ração", Price: 9.99, PricePromotion: 9.99, Quantity: 1}},
			TotalValue: &total,
			Status:     domain.StatusCreated,
			CreatedAt:  created,
			UpdatedAt:  created,
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.requests", mtest.FirstBatch, toDoc(mt.T, stored)))

		got, err := store.FindRequestByID(context.Background(), stored.ID)
		if err != nil {
			mt.Fatalf("FindRequestByID() unexpected error: %v", err)
		}
		if got.TotalValue == nil || *got.TotalValue != 14.99 || len(got.Items) != 1 || got.Items[0] != stored.Items[0] {
			mt.Errorf("FindRequestByID() = %+v", got)
		}
		if got.Rating != nil || got.Status != domain.StatusCreated {
			mt.Errorf("FindRequestByID() status/rating = %v/%v", got.Status, got.Rating)
		}
	})

	mt.Run("stale page", func(mt *mtest.T) {
		store := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.requests", mtest.FirstBatch,
			toDoc(mt.T, domain.Request{ID: "r1", Status: domain.StatusCreated, TotalValue: &total, CreatedAt: created}),
			toDoc(mt.T, domain.Request{ID: "r2", Status: domain.StatusCreated, TotalValue: &total, CreatedAt: created}),
		))

		got, err := store.FindStaleRequests(context.Background(), created.Add(time.Hour), 0, 10)
		if err != nil || len(got) != 2 {
			mt.Errorf("FindStaleRequests() = %v, %v", got, err)
		}
	})

	mt.Run("update request", func(mt *mtest.T) {
		store := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		rating := 5
		err := store.UpdateRequest(context.Background(), &domain.Request{ID: "r1", Status: domain.StatusRated, Rating: &rating, UpdatedAt: created})
		if err != nil {
			mt.Errorf("UpdateRequest() unexpected error: %v", err)
		}
	})

	mt.Run("create request", func(mt *mtest.T) {
		store := NewMongoStore(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		r, err := store.CreateRequest(context.Background(), &domain.Request{TotalValue: &total, Status: domain.StatusCreated})
		if err != nil || !primitive.IsValidObjectID(r.ID) {
			mt.Errorf("CreateRequest() = %+v, %v", r, err)
		}
	})
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		page, size          int
		wantLimit, wantSkip int
	}{
		{page: 0, size: 10, wantLimit: 10, wantSkip: 0},
		{page: 3, size: 10, wantLimit: 10, wantSkip: 30},
		{page: -1, size: 0, wantLimit: defaultPageSize, wantSkip: 0},
	}
	for _, tt := range tests {
		limit, skip := pageBounds(tt.page, tt.size)
		if limit != tt.wantLimit || skip != tt.wantSkip {
			t.Errorf("pageBounds(%d, %d) = %d, %d, want %d, %d", tt.page, tt.size, limit, skip, tt.wantLimit, tt.wantSkip)
		}
	}
}
