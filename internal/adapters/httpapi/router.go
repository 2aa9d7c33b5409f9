// internal/adapters/httpapi/router.go
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/GuilhermeDomkedeThomaz/pet-food-sub000/internal/application"
)

var tracer = otel.Tracer("pet-food/httpapi")

type Services struct {
	Sellers  *application.SellerService
	Users    *application.UserService
	Products *application.ProductService
	Search   *application.SearchService
	Requests *application.RequestService
	Auth     *application.AuthService
}

func NewRouter(serviceName string, svc Services, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(LoggerMiddleware(logger))
	r.Use(MetricsMiddleware())
	r.Use(CORSMiddleware("/requests"))

	accounts := NewAccountHandler(svc.Sellers, svc.Users, svc.Auth, logger)
	products := NewProductHandler(svc.Products, svc.Search, logger)
	requests := NewRequestHandler(svc.Requests, logger)
	authRequired := AuthMiddleware(svc.Auth, logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
	})
	r.GET("/metrics", PrometheusHandler())

	r.POST("/sellers", accounts.RegisterSeller)
	r.POST("/sellers/login", accounts.LoginSeller)
	r.GET("/sellers/:name", accounts.GetSeller)
	r.POST("/users", accounts.RegisterUser)
	r.POST("/users/login", accounts.LoginUser)
	r.GET("/users/:name", accounts.GetUser)
	r.POST("/logout", authRequired, accounts.Logout)

	r.POST("/products", products.Create)
	r.PUT("/products", products.Update)
	r.PUT("/products/stock", products.UpdateStock)
	r.GET("/products/seller/:sellerName", products.ListBySeller)

	search := r.Group("/search")
	{
		search.GET("/products", products.SearchByTitle)
		search.GET("/products/category/:category", products.SearchByCategory)
		search.GET("/sellers", products.SearchSellersByName)
		search.GET("/sellers/category/:category", products.SearchSellersByCategory)
		search.GET("/sellers/open", products.OpenSellers)
	}

	orders := r.Group("/requests")
	{
		orders.POST("", requests.Create)
		orders.GET("/:id", requests.Get)
		orders.GET("/seller/:sellerName", requests.ListBySeller)
		orders.GET("/user/:userName", requests.ListByUser)
		orders.PUT("/:id/rate", authRequired, requests.Rate)
		orders.PUT("/:id/cancel", authRequired, requests.Cancel)
	}

	return r
}
