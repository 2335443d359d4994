package http

import (
	"errors"
	"net/http"
	"strconv"

	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	products *usecase.Products
}

func NewProductHandler(products *usecase.Products) *ProductHandler {
	return &ProductHandler{products: products}
}

type productReq struct {
	ID          string  `json:"id" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Tax         float64 `json:"tax"`
}

func (r productReq) toDomain() domain.Product {
	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Tax:         r.Tax,
	}
}

// POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	p := req.toDomain()
	created, err := h.products.Create(c.Request.Context(), &p)
	if err != nil {
		if errors.Is(err, usecase.ErrProductExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}
	c.JSON(http.StatusOK, created)
}

// GET /products/:id (public)
func (h *ProductHandler) GetByID(c *gin.Context) {
	p, err := h.products.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// GET /products?skip=0&limit=10 (public)
func (h *ProductHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	list, err := h.products.List(c.Request.Context(), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}
	c.JSON(http.StatusOK, list)
}
