package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"golfa/internal/domain"
	"golfa/internal/metrics"
	"golfa/internal/repository"
	"golfa/internal/service"
)

type Server struct {
	engine   *gin.Engine
	catalog  *service.CatalogService
	products *service.ProductService
	orders   *service.OrderService
	metrics  *metrics.Registry
}

func NewServer(catalog *service.CatalogService, products *service.ProductService, orders *service.OrderService, reg *metrics.Registry) *Server {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), requestID())
	s := &Server{engine: r, catalog: catalog, products: products, orders: orders, metrics: reg}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	// Prometheus
	s.engine.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	v1 := s.engine.Group("/api/v1")
	{
		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.GET(":id", s.getProduct)
		products.POST("", s.createProduct)
		products.PUT(":id", s.updateProduct)
		products.DELETE(":id", s.deleteProduct)

		v1.POST("/orders/handoff", s.orderHandoff)
		v1.GET("/testimonials", s.listTestimonials)
	}
}

// requestID проставляет X-Request-Id, если клиент его не прислал
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-Id", id)
		c.Next()
	}
}

// @Summary List products
// @Tags products
// @Produce json
// @Param category query string false "Category or 'all'"
// @Param q query string false "Name or description contains"
// @Param is_new query bool false "Only new arrivals"
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	category := domain.Category(c.DefaultQuery("category", string(domain.CategoryAll)))
	query := c.Query("q")

	var (
		list []domain.Product
		err  error
	)
	if c.Query("is_new") == "true" {
		list, err = s.catalog.NewArrivals(c, category, query)
	} else {
		list, err = s.catalog.Browse(c, category, query)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get product by id
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	p, err := s.catalog.GetByID(c, id)
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Create product
// @Tags products
// @Accept json
// @Produce json
// @Param input body domain.ProductDraft true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Router /products [post]
func (s *Server) createProduct(c *gin.Context) {
	var draft domain.ProductDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.products.Create(c, draft)
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	s.metrics.ProductsCreated.Inc()
	c.JSON(http.StatusCreated, p)
}

// @Summary Update product
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param input body domain.ProductPatch true "Partial update; id in the body is ignored"
// @Success 200 {object} domain.Product
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [put]
func (s *Server) updateProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var patch domain.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	p, err := s.products.Update(c, id, patch)
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	s.metrics.ProductsUpdated.Inc()
	c.JSON(http.StatusOK, p)
}

// @Summary Delete product
// @Tags products
// @Param id path int true "Product ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [delete]
func (s *Server) deleteProduct(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.products.Delete(c, id); err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	s.metrics.ProductsDeleted.Inc()
	c.Status(http.StatusNoContent)
}

type orderHandoffReq struct {
	ProductID int64  `json:"productId"`
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Phone     string `json:"phone"`
	Channel   string `json:"channel"`
}

// @Summary Compose order handoff link
// @Tags orders
// @Accept json
// @Produce json
// @Param input body orderHandoffReq true "Order intent"
// @Success 200 {object} domain.Handoff
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/handoff [post]
func (s *Server) orderHandoff(c *gin.Context) {
	var req orderHandoffReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	buyer := domain.Buyer{LastName: req.LastName, FirstName: req.FirstName, Phone: req.Phone}
	h, err := s.orders.Compose(c, req.ProductID, buyer, domain.Channel(req.Channel))
	if err != nil {
		status := mapErrorToStatus(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	s.metrics.OrderHandoffs.WithLabelValues(string(h.Channel)).Inc()
	c.JSON(http.StatusOK, h)
}

// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {array} domain.Testimonial
// @Router /testimonials [get]
func (s *Server) listTestimonials(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Testimonials())
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrPersistence):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
