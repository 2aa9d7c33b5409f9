// internal/mapper/request_test.go
package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
)

func TestComputeTotals(t *testing.T) {
	items := []domain.LineItem{
		{Title: "Food", Price: 9.99, PricePromotion: 8.99, Quantity: 3},
		{Title: "Bone", Price: 0.1, PricePromotion: 0.1, Quantity: 3},
		{Title: "Leash", Price: 25.5, PricePromotion: 20, Quantity: 1},
	}

	got := ComputeTotals(items, 12.35)

	assert.Equal(t, 55.77, got.TotalPrice)
	assert.Equal(t, 47.27, got.TotalPricePromotion)
	assert.Equal(t, 7, got.TotalQuantity)
	assert.Equal(t, 68.12, got.TotalValue)
}

func TestComputeTotals_Empty(t *testing.T) {
	got := ComputeTotals(nil, 10)
	assert.Equal(t, 0.0, got.TotalPrice)
	assert.Equal(t, 0, got.TotalQuantity)
	assert.Equal(t, 10.0, got.TotalValue)
}

func TestToRequest(t *testing.T) {
	now := time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC)
	seller := &domain.Seller{ID: "s1", Name: "A"}
	user := &domain.User{ID: "u1", Name: "Bob"}
	food := &domain.Product{ID: "p1", Title: "Food", Price: 9.99, PricePromotion: 9.99, Stock: 5}

	r, err := ToRequest(seller, user, []domain.LineItem{ToLineItem(food, 1)}, 5, now)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCreated, r.Status)
	assert.Equal(t, "s1", r.SellerID)
	assert.Equal(t, "A", r.SellerName)
	assert.Equal(t, "u1", r.UserID)
	assert.Equal(t, 9.99, r.TotalPrice)
	assert.Equal(t, 9.99, r.TotalPricePromotion)
	assert.Equal(t, 1, r.TotalQuantity)
	require.NotNil(t, r.TotalValue)
	assert.Equal(t, 14.99, *r.TotalValue)
	assert.Equal(t, now, r.CreatedAt)
	assert.Equal(t, now, r.UpdatedAt)
	assert.Nil(t, r.Rating)
}

func TestToRequest_DocumentRoundTrip(t *testing.T) {
	now := time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC)
	seller := &domain.Seller{ID: "s1", Name: "A"}
	user := &domain.User{ID: "u1", Name: "Bob"}
	items := []domain.LineItem{
		{ProductID: "p1", Title: "Food", Price: 9.99, PricePromotion: 8.5, Quantity: 2},
		{ProductID: "p2", Title: "Toy", Price: 15, PricePromotion: 15, Quantity: 1},
	}
	built, err := ToRequest(seller, user, items, 7.5, now)
	require.NoError(t, err)

	raw, err := bson.Marshal(built)
	require.NoError(t, err)
	var reread domain.Request
	require.NoError(t, bson.Unmarshal(raw, &reread))

	assert.Equal(t, built.SellerID, reread.SellerID)
	assert.Equal(t, built.UserID, reread.UserID)
	assert.Equal(t, built.Items, reread.Items)
	assert.Equal(t, built.TotalPrice, reread.TotalPrice)
	assert.Equal(t, built.TotalPricePromotion, reread.TotalPricePromotion)
	assert.Equal(t, built.TotalQuantity, reread.TotalQuantity)
	require.NotNil(t, reread.TotalValue)
	assert.Equal(t, *built.TotalValue, *reread.TotalValue)
	assert.True(t, built.CreatedAt.Equal(reread.CreatedAt))
}

func TestToRequest_MappingErrors(t *testing.T) {
	now := time.Now()
	seller := &domain.Seller{ID: "s1", Name: "A"}
	user := &domain.User{ID: "u1", Name: "Bob"}
	items := []domain.LineItem{{Title: "Food", Price: 1, Quantity: 1}}

	_, err := ToRequest(nil, user, items, 0, now)
	assert.Equal(t, domain.KindMapping, domain.KindOf(err))
	_, err = ToRequest(seller, nil, items, 0, now)
	assert.Equal(t, domain.KindMapping, domain.KindOf(err))
	_, err = ToRequest(seller, user, nil, 0, now)
	assert.Equal(t, domain.KindMapping, domain.KindOf(err))
}

func TestToRequestResponse_MissingTotal(t *testing.T) {
	_, err := ToRequestResponse(&domain.Request{ID: "r1"})
	require.Error(t, err)
	assert.Equal(t, domain.KindMapping, domain.KindOf(err))
}

func TestToRequestResponses(t *testing.T) {
	v := 10.0
	out, err := ToRequestResponses([]*domain.Request{
		{ID: "r1", TotalValue: &v, Status: domain.StatusCreated, Items: []domain.LineItem{{Title: "Food", Quantity: 1}}},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "CREATED", out[0].Status)
	assert.Equal(t, 10.0, out[0].TotalValue)
	assert.Equal(t, "Food", out[0].Items[0].Title)
}
