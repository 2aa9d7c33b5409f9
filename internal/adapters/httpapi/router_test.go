// internal/adapters/httpapi/router_test.go
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/application"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/domain"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/ports"
	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/pkg/auth"
)

type testServer struct {
	router    *gin.Engine
	store     *ports.MockStorePort
	blacklist *ports.MockTokenBlacklistPort
	tokens    *auth.Manager
}

func newTestServer(t *testing.T, ctrl *gomock.Controller) *testServer {
	gin.SetMode(gin.TestMode)
	logger := zaptest.NewLogger(t)
	store := ports.NewMockStorePort(ctrl)
	blacklist := ports.NewMockTokenBlacklistPort(ctrl)
	tokens := auth.NewManager("test-secret", time.Hour)

	validation := application.NewValidationService(store, store, store)
	svc := Services{
		Sellers:  application.NewSellerService(store),
		Users:    application.NewUserService(store),
		Products: application.NewProductService(store, store),
		Search:   application.NewSearchService(store, store, time.UTC, logger),
		Requests: application.NewRequestService(validation, store, store, nil, logger),
		Auth:     application.NewAuthService(store, store, tokens, blacklist),
	}
	return &testServer{
		router:    NewRouter("pet-food", svc, logger),
		store:     store,
		blacklist: blacklist,
		tokens:    tokens,
	}
}

func (s *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) token(t *testing.T, name, role string) string {
	t.Helper()
	token, _, err := s.tokens.GenerateToken(name, role)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return token
}

func createdRequest() *domain.Request {
	total := 24.98
	return &domain.Request{
		ID:            "r1",
		SellerName:    "PetShop",
		UserName:      "ana",
		Items:         []domain.LineItem{{ProductID: "p1", Title: "Ração", Price: 9.99, PricePromotion: 9.99, Quantity: 2}},
		ShippingPrice: 5,
		TotalPrice:    19.98,
		TotalValue:    &total,
		TotalQuantity: 2,
		Status:        domain.StatusCreated,
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"Invalid input", domain.InvalidInput("x"), http.StatusBadRequest},
		{"Not found", domain.NotFound("x"), http.StatusBadRequest},
		{"Unauthorized", domain.Unauthorized("x"), http.StatusUnauthorized},
		{"Forbidden", domain.Forbidden("x"), http.StatusForbidden},
		{"Mapping", domain.MappingError("x"), http.StatusInternalServerError},
		{"Unclassified", errors.New("boom"), http.StatusInternalServerError},
		{"Wrapped invalid input", domain.Wrap("etapa", domain.InvalidInput("x")), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.err); got != tt.want {
				t.Errorf("statusFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	srv := newTestServer(t, ctrl)

	w := srv.do(http.MethodGet, "/health", "", "")

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	expectedBody := `{"service":"pet-food","status":"healthy"}`
	if w.Body.String() != expectedBody {
		t.Errorf("Expected body %s, got %s", expectedBody, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	srv := newTestServer(t, ctrl)

	srv.do(http.MethodGet, "/health", "", "")
	w := srv.do(http.MethodGet, "/metrics", "", "")

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "http_requests_total") {
		t.Errorf("metrics output does not contain http_requests_total")
	}
}

func TestRequestRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	srv := newTestServer(t, ctrl)

	seller := &domain.Seller{ID: "s1", Name: "PetShop"}
	user := &domain.User{ID: "u1", Name: "ana"}
	ration := &domain.Product{ID: "p1", Title: "Ração", Price: 9.99, PricePromotion: 9.99, Stock: 5}

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      func() string
		mockSetup  func()
		wantStatus int
		wantBody   string
	}{
		{
			name:   "Create order",
			method: http.MethodPost,
			path:   "/requests",
			body:   `{"sellerName":"PetShop","userName":"ana","items":[{"title":"Ração","quantity":2}],"shippingPrice":5}`,
			mockSetup: func() {
				srv.store.EXPECT().FindSellerByName(gomock.Any(), "PetShop").Return(seller, nil)
				srv.store.EXPECT().FindUserByName(gomock.Any(), "ana").Return(user, nil)
				srv.store.EXPECT().FindProductByTitle(gomock.Any(), "Ração", "PetShop").Return(ration, nil)
				srv.store.EXPECT().CreateRequest(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, r *domain.Request) (*domain.Request, error) {
						r.ID = "r1"
						return r, nil
					})
				srv.store.EXPECT().DecrementStock(gomock.Any(), "p1", 2).Return(nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"totalValue":24.98`,
		},
		{
			name:       "Malformed body",
			method:     http.MethodPost,
			path:       "/requests",
			body:       `{"sellerName":`,
			mockSetup:  func() {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Corpo da requisição inválido",
		},
		{
			name:   "Unknown seller",
			method: http.MethodPost,
			path:   "/requests",
			body:   `{"sellerName":"Ghost","userName":"ana","items":[{"title":"Ração","quantity":1}]}`,
			mockSetup: func() {
				srv.store.EXPECT().FindSellerByName(gomock.Any(), "Ghost").Return(nil, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Erro na validação do vendedor para criação do pedido",
		},
		{
			name:   "Get order",
			method: http.MethodGet,
			path:   "/requests/r1",
			mockSetup: func() {
				srv.store.EXPECT().FindRequestByID(gomock.Any(), "r1").Return(createdRequest(), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"r1"`,
		},
		{
			name:   "Order not found",
			method: http.MethodGet,
			path:   "/requests/missing",
			mockSetup: func() {
				srv.store.EXPECT().FindRequestByID(gomock.Any(), "missing").Return(nil, nil)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Pedido com o id: missing não encontrado",
		},
		{
			name:   "Store failure",
			method: http.MethodGet,
			path:   "/requests/r1",
			mockSetup: func() {
				srv.store.EXPECT().FindRequestByID(gomock.Any(), "r1").Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "connection reset",
		},
		{
			name:   "List by seller",
			method: http.MethodGet,
			path:   "/requests/seller/PetShop",
			mockSetup: func() {
				srv.store.EXPECT().FindRequestsBySeller(gomock.Any(), "PetShop").Return([]*domain.Request{createdRequest()}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"sellerName":"PetShop"`,
		},
		{
			name:   "List by user",
			method: http.MethodGet,
			path:   "/requests/user/ana",
			mockSetup: func() {
				srv.store.EXPECT().FindRequestsByUser(gomock.Any(), "ana").Return([]*domain.Request{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "Rate without token",
			method:     http.MethodPut,
			path:       "/requests/r1/rate",
			body:       `{"rating":5}`,
			mockSetup:  func() {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "token não informado",
		},
		{
			name:   "Rate as buyer",
			method: http.MethodPut,
			path:   "/requests/r1/rate",
			body:   `{"rating":5}`,
			token:  func() string { return srv.token(t, "ana", auth.RoleUser) },
			mockSetup: func() {
				srv.blacklist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
				srv.store.EXPECT().FindRequestByID(gomock.Any(), "r1").Return(createdRequest(), nil)
				srv.store.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"RATED"`,
		},
		{
			name:   "Rate with revoked token",
			method: http.MethodPut,
			path:   "/requests/r1/rate",
			body:   `{"rating":5}`,
			token:  func() string { return srv.token(t, "ana", auth.RoleUser) },
			mockSetup: func() {
				srv.blacklist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "token revogado",
		},
		{
			name:   "Cancel by stranger",
			method: http.MethodPut,
			path:   "/requests/r1/cancel",
			token:  func() string { return srv.token(t, "bob", auth.RoleUser) },
			mockSetup: func() {
				srv.blacklist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
				srv.store.EXPECT().FindRequestByID(gomock.Any(), "r1").Return(createdRequest(), nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "Cancel by seller",
			method: http.MethodPut,
			path:   "/requests/r1/cancel",
			token:  func() string { return srv.token(t, "PetShop", auth.RoleSeller) },
			mockSetup: func() {
				srv.blacklist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
				srv.store.EXPECT().FindRequestByID(gomock.Any(), "r1").Return(createdRequest(), nil)
				srv.store.EXPECT().UpdateRequest(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"status":"CANCELED"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			token := ""
			if tt.token != nil {
				token = tt.token()
			}
			w := srv.do(tt.method, tt.path, tt.body, token)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d (body %s)", tt.method, tt.path, w.Code, tt.wantStatus, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("%s %s body = %s, want it to contain %s", tt.method, tt.path, w.Body.String(), tt.wantBody)
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	srv := newTestServer(t, ctrl)

	w := srv.do(http.MethodOptions, "/requests/r1/rate", "", "")

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestCORSOnlyOnRequestRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	srv := newTestServer(t, ctrl)

	srv.store.EXPECT().FindSellerByName(gomock.Any(), "PetShop").Return(&domain.Seller{ID: "s1", Name: "PetShop"}, nil)

	w := srv.do(http.MethodGet, "/sellers/PetShop", "", "")

	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
	}
}

func TestAccountRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	srv := newTestServer(t, ctrl)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		token      func() string
		mockSetup  func()
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Register seller with malformed body",
			method:     http.MethodPost,
			path:       "/sellers",
			body:       `not json`,
			mockSetup:  func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Unknown user",
			method: http.MethodGet,
			path:   "/users/ghost",
			mockSetup: func() {
				srv.store.EXPECT().FindUserByName(gomock.Any(), "ghost").Return(nil, nil)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Login without password",
			method:     http.MethodPost,
			path:       "/users/login",
			body:       `{"email":"ana@pet.com"}`,
			mockSetup:  func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "Login with unknown email",
			method: http.MethodPost,
			path:   "/sellers/login",
			body:   `{"email":"loja@pet.com","password":"securepass"}`,
			mockSetup: func() {
				srv.store.EXPECT().FindSellerByEmail(gomock.Any(), "loja@pet.com").Return(nil, nil)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "credenciais inválidas",
		},
		{
			name:   "Logout revokes token",
			method: http.MethodPost,
			path:   "/logout",
			token:  func() string { return srv.token(t, "ana", auth.RoleUser) },
			mockSetup: func() {
				srv.blacklist.EXPECT().IsRevoked(gomock.Any(), gomock.Any()).Return(false, nil)
				srv.blacklist.EXPECT().Revoke(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, id string, ttl time.Duration) error {
						if id == "" || ttl <= 0 || ttl > time.Hour {
							t.Errorf("Revoke(%q, %v)", id, ttl)
						}
						return nil
					})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Logout with garbage token",
			method:     http.MethodPost,
			path:       "/logout",
			token:      func() string { return "not-a-jwt" },
			mockSetup:  func() {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "token inválido",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			token := ""
			if tt.token != nil {
				token = tt.token()
			}
			w := srv.do(tt.method, tt.path, tt.body, token)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s status = %d, want %d (body %s)", tt.method, tt.path, w.Code, tt.wantStatus, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("%s %s body = %s, want it to contain %s", tt.method, tt.path, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestSearchRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	srv := newTestServer(t, ctrl)

	tests := []struct {
		name       string
		path       string
		mockSetup  func()
		wantStatus int
		wantBody   string
	}{
		{
			name:       "Products by blank title",
			path:       "/search/products?title=",
			mockSetup:  func() {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Products by title",
			path: "/search/products?title=ra%C3%A7%C3%A3o",
			mockSetup: func() {
				srv.store.EXPECT().FindProductsByTitle(gomock.Any(), "ração").Return([]*domain.Product{{ID: "p1", Title: "Ração"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"title":"Ração"`,
		},
		{
			name: "Sellers by category",
			path: "/search/sellers/category/gatos",
			mockSetup: func() {
				srv.store.EXPECT().FindSellersByCategory(gomock.Any(), "gatos").Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "Open sellers skips malformed hours",
			path: "/search/sellers/open",
			mockSetup: func() {
				srv.store.EXPECT().ListSellers(gomock.Any()).Return([]*domain.Seller{
					{Name: "Broken", WeekdayHours: domain.OperatingHours{Start: "25:99", End: "x"}, WeekendHours: domain.OperatingHours{Start: "25:99", End: "x"}},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			w := srv.do(http.MethodGet, tt.path, "", "")

			if w.Code != tt.wantStatus {
				t.Errorf("GET %s status = %d, want %d (body %s)", tt.path, w.Code, tt.wantStatus, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("GET %s body = %s, want it to contain %s", tt.path, w.Body.String(), tt.wantBody)
			}
		})
	}
}
