// internal/application/search_service_test.go
package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/ports"
)

func TestSearchService_ProductsByTitle_QuotesPattern(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := ports.NewMockStorePort(ctrl)
	svc := NewSearchService(mockStore, mockStore, time.UTC, zaptest.NewLogger(t))

	mockStore.EXPECT().FindProductsByTitle(gomock.Any(), `ra\.o\(1kg\)`).Return([]*domain.Product{{ID: "p1", Title: "ra.o(1kg)"}}, nil)
	got, err := svc.ProductsByTitle(context.Background(), "ra.o(1kg)")
	if err != nil || len(got) != 1 {
		t.Errorf("ProductsByTitle() = %v, %v", got, err)
	}

	_, err = svc.ProductsByTitle(context.Background(), "")
	assertKind(t, err, domain.KindInvalidInput)
}

func TestSearchService_ByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := ports.NewMockStorePort(ctrl)
	svc := NewSearchService(mockStore, mockStore, nil, zaptest.NewLogger(t))

	mockStore.EXPECT().FindProductsByCategory(gomock.Any(), "cães").Return(nil, nil)
	products, err := svc.ProductsByCategory(context.Background(), "cães")
	if err != nil || len(products) != 0 {
		t.Errorf("ProductsByCategory() = %v, %v", products, err)
	}

	mockStore.EXPECT().FindSellersByCategory(gomock.Any(), "gatos").Return([]*domain.Seller{{Name: "PetShop"}}, nil)
	sellers, err := svc.SellersByCategory(context.Background(), "gatos")
	if err != nil || len(sellers) != 1 || sellers[0].Name != "PetShop" {
		t.Errorf("SellersByCategory() = %v, %v", sellers, err)
	}

	mockStore.EXPECT().FindSellersByName(gomock.Any(), "Pet").Return(nil, nil)
	if _, err := svc.SellersByName(context.Background(), "Pet"); err != nil {
		t.Errorf("SellersByName() unexpected error: %v", err)
	}
}

func TestSearchService_OpenSellers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loc := time.FixedZone("BRT", -3*60*60)
	mockStore := ports.NewMockStorePort(ctrl)
	svc := NewSearchService(mockStore, mockStore, loc, zaptest.NewLogger(t))
	// Wednesday 13:00 UTC is 10:00 local.
	svc.now = func() time.Time { return time.Date(2024, time.March, 13, 13, 0, 0, 0, time.UTC) }

	open := &domain.Seller{Name: "Aberto",
		WeekdayHours: domain.OperatingHours{Start: "09:00", End: "18:00"},
		WeekendHours: domain.OperatingHours{Start: "10:00", End: "14:00"}}
	closed := &domain.Seller{Name: "Fechado",
		WeekdayHours: domain.OperatingHours{Start: "12:00", End: "20:00"},
		WeekendHours: domain.OperatingHours{Start: "08:00", End: "22:00"}}
	overnight := &domain.Seller{Name: "Noturno",
		WeekdayHours: domain.OperatingHours{Start: "22:00", End: "11:00"},
		WeekendHours: domain.OperatingHours{Start: "22:00", End: "06:00"}}
	broken := &domain.Seller{Name: "Quebrado",
		WeekdayHours: domain.OperatingHours{Start: "nove", End: "18:00"}}

	mockStore.EXPECT().ListSellers(gomock.Any()).Return([]*domain.Seller{open, closed, overnight, broken}, nil)
	got, err := svc.OpenSellers(context.Background(), "")
	if err != nil {
		t.Fatalf("OpenSellers() unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Aberto" || got[1].Name != "Noturno" {
		t.Errorf("OpenSellers() = %v, want [Aberto Noturno]", got)
	}

	mockStore.EXPECT().FindSellersByCategory(gomock.Any(), "aves").Return([]*domain.Seller{closed}, nil)
	got, err = svc.OpenSellers(context.Background(), "aves")
	if err != nil || len(got) != 0 {
		t.Errorf("OpenSellers(aves) = %v, %v, want none", got, err)
	}
}
