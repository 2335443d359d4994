package http

import (
	"errors"
	"net/http"

	"github.com/aq2208/gshop-api/internal/adapter/http/middleware"
	domain "github.com/aq2208/gshop-api/internal/entity"
	"github.com/aq2208/gshop-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	create *usecase.CreateOrder
	get    *usecase.GetOrder
}

func NewOrderHandler(create *usecase.CreateOrder, get *usecase.GetOrder) *OrderHandler {
	return &OrderHandler{create: create, get: get}
}

type createOrderReq struct {
	ID       string       `json:"id" binding:"required"`
	UserID   string       `json:"user_id" binding:"required"`
	Products []productReq `json:"products" binding:"required,dive"`
	Total    float64      `json:"total"`
	Status   string       `json:"status"`
}

// POST /orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	products := make([]domain.Product, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, p.toDomain())
	}
	order := &domain.Order{
		ID:       req.ID,
		UserID:   req.UserID,
		Products: products,
		Total:    req.Total,
		Status:   domain.Status(req.Status),
	}

	created, err := h.create.Execute(c.Request.Context(), order)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, usecase.ErrOrderExists):
			status = http.StatusBadRequest
		case errors.Is(err, usecase.ErrProductNotFound):
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

// GET /orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	requester := middleware.CurrentUser(c)
	if requester == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": usecase.ErrUnauthenticated.Error()})
		return
	}

	o, err := h.get.Execute(c.Request.Context(), c.Param("id"), requester)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			status = http.StatusNotFound
		case errors.Is(err, usecase.ErrForbidden):
			status = http.StatusForbidden
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}
