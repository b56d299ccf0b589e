package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookstore-api/internals/cache"
	"bookstore-api/internals/middleware"
)

// SetupRouter wires every route onto a gin engine. Tests build the
// same router against their own database handle.
func SetupRouter(db *gorm.DB, bookCache *cache.Cache) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID, middleware.RequestLogger)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "welcome to the bookstore api"})
	})

	addresses := NewAddressesController(db)
	addressRoutes := r.Group("/addresses")
	{
		addressRoutes.POST("", addresses.Create)
		addressRoutes.GET("", addresses.GetAll)
		addressRoutes.GET("/:id", addresses.GetByID)
		addressRoutes.PUT("/:id", addresses.Update)
		addressRoutes.PATCH("/:id", addresses.Update)
		addressRoutes.DELETE("/:id", addresses.Delete)
	}

	books := NewBooksController(db, bookCache)
	bookRoutes := r.Group("/books")
	{
		bookRoutes.POST("", books.Create)
		bookRoutes.GET("", books.GetAll)
		bookRoutes.GET("/:id", books.GetByID)
		bookRoutes.PUT("/:id", books.Update)
		bookRoutes.PATCH("/:id", books.Update)
		bookRoutes.DELETE("/:id", books.Delete)
	}

	customers := NewCustomersController(db)
	customerRoutes := r.Group("/customers")
	{
		customerRoutes.POST("", customers.Create)
		customerRoutes.GET("", customers.GetAll)
		customerRoutes.GET("/:id", customers.GetByID)
		customerRoutes.PUT("/:id", customers.Update)
		customerRoutes.PATCH("/:id", customers.Update)
		customerRoutes.DELETE("/:id", customers.Delete)
	}

	orders := NewOrdersController(db)
	orderRoutes := r.Group("/orders")
	{
		orderRoutes.POST("", orders.Create)
		orderRoutes.GET("", orders.GetAll)
		orderRoutes.GET("/:id", orders.GetByID)
		orderRoutes.PUT("/:id", orders.Update)
		orderRoutes.PATCH("/:id", orders.Update)
		orderRoutes.DELETE("/:id", orders.Delete)
	}

	return r
}
