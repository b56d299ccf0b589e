package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookstore-api/internals/service"
	"bookstore-api/internals/validation"
)

type OrderItemRequest struct {
	BookID   uint `json:"book_id" validate:"required,gte=1"`
	Quantity *int `json:"quantity" validate:"omitempty,gte=1"`
}

type OrderRequest struct {
	CustomerID uint               `json:"customer_id" validate:"required,gte=1"`
	OrderItems []OrderItemRequest `json:"order_items" validate:"required,min=1,dive"`
}

// OrderUpdateRequest replaces the item set. customer_id may be sent
// but only with its current value; price_total and order_date are
// never accepted from the client.
type OrderUpdateRequest struct {
	CustomerID *uint              `json:"customer_id" validate:"omitempty,gte=1"`
	OrderItems []OrderItemRequest `json:"order_items" validate:"required,min=1,dive"`
}

func toItemInputs(items []OrderItemRequest) []service.OrderItemInput {
	inputs := make([]service.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, service.OrderItemInput{BookID: item.BookID, Quantity: item.Quantity})
	}
	return inputs
}

type OrdersController struct {
	DB *gorm.DB
}

func NewOrdersController(db *gorm.DB) *OrdersController {
	return &OrdersController{DB: db}
}

func (oc *OrdersController) Create(c *gin.Context) {
	var req OrderRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	if err := validation.Struct(&req); err != nil {
		respondError(c, err)
		return
	}

	order, err := service.CreateOrder(oc.DB, &service.OrderInput{
		CustomerID: req.CustomerID,
		Items:      toItemInputs(req.OrderItems),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (oc *OrdersController) GetAll(c *gin.Context) {
	orders, err := service.ListOrders(oc.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, toOrderResponse(&orders[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (oc *OrdersController) GetByID(c *gin.Context) {
	id, ok := parseID(c, "Order")
	if !ok {
		return
	}
	order, err := service.GetOrder(oc.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (oc *OrdersController) Update(c *gin.Context) {
	id, ok := parseID(c, "Order")
	if !ok {
		return
	}

	var req OrderUpdateRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	if err := validation.Struct(&req); err != nil {
		respondError(c, err)
		return
	}

	order, err := service.UpdateOrder(oc.DB, id, &service.OrderUpdate{
		CustomerID: req.CustomerID,
		Items:      toItemInputs(req.OrderItems),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (oc *OrdersController) Delete(c *gin.Context) {
	id, ok := parseID(c, "Order")
	if !ok {
		return
	}
	order, err := service.DeleteOrder(oc.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}
