package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookstore-api/internals/service"
	"bookstore-api/internals/validation"
)

type CustomerRequest struct {
	Email     string       `json:"email" validate:"required,min=3,max=254,email"`
	Phone     *string      `json:"phone" validate:"omitempty,min=7,max=20,phone"`
	AddressID *uint        `json:"address_id" validate:"omitempty,gte=1"`
	Name      *NameRequest `json:"name" validate:"required"`
}

func (r *CustomerRequest) Normalize() {
	r.Email = validation.Trim(r.Email)
	r.Phone = validation.TrimPtr(r.Phone)
	if r.Name != nil {
		r.Name.Normalize()
	}
}

type CustomerPatchRequest struct {
	Email     *string      `json:"email" validate:"omitempty,min=3,max=254,email"`
	Phone     *string      `json:"phone" validate:"omitempty,min=7,max=20,phone"`
	AddressID *uint        `json:"address_id" validate:"omitempty,gte=1"`
	Name      *NameRequest `json:"name"`
}

func (r *CustomerPatchRequest) Normalize() {
	if r.Email != nil {
		email := validation.Trim(*r.Email)
		r.Email = &email
	}
	r.Phone = validation.TrimPtr(r.Phone)
	if r.Name != nil {
		r.Name.Normalize()
	}
}

type CustomersController struct {
	DB *gorm.DB
}

func NewCustomersController(db *gorm.DB) *CustomersController {
	return &CustomersController{DB: db}
}

func (cc *CustomersController) Create(c *gin.Context) {
	var req CustomerRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	req.Normalize()
	if err := validation.Struct(&req); err != nil {
		respondError(c, err)
		return
	}

	customer, err := service.CreateCustomer(cc.DB, &service.CustomerInput{
		Email:     req.Email,
		Phone:     req.Phone,
		AddressID: req.AddressID,
		Name:      req.Name.toInput(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCustomerResponse(customer))
}

func (cc *CustomersController) GetAll(c *gin.Context) {
	customers, err := service.ListCustomers(cc.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		response = append(response, toCustomerResponse(&customers[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (cc *CustomersController) GetByID(c *gin.Context) {
	id, ok := parseID(c, "Customer")
	if !ok {
		return
	}
	customer, err := service.GetCustomer(cc.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

func (cc *CustomersController) Update(c *gin.Context) {
	id, ok := parseID(c, "Customer")
	if !ok {
		return
	}

	var patch service.CustomerPatch
	if c.Request.Method == http.MethodPut {
		var req CustomerRequest
		if _, ok := bindJSON(c, &req); !ok {
			return
		}
		req.Normalize()
		if err := validation.Struct(&req); err != nil {
			respondError(c, err)
			return
		}
		name := req.Name.toInput()
		patch = service.CustomerPatch{
			Email:        &req.Email,
			Phone:        req.Phone,
			AddressID:    req.AddressID,
			AddressIDSet: true,
			Name:         &name,
		}
	} else {
		var req CustomerPatchRequest
		present, ok := bindJSON(c, &req)
		if !ok {
			return
		}
		req.Normalize()
		if err := validation.Struct(&req); err != nil {
			respondError(c, err)
			return
		}
		_, addressSet := present["address_id"]
		patch = service.CustomerPatch{
			Email:        req.Email,
			Phone:        req.Phone,
			AddressID:    req.AddressID,
			AddressIDSet: addressSet,
		}
		if req.Name != nil {
			name := req.Name.toInput()
			patch.Name = &name
		}
	}

	customer, err := service.UpdateCustomer(cc.DB, id, &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}

func (cc *CustomersController) Delete(c *gin.Context) {
	id, ok := parseID(c, "Customer")
	if !ok {
		return
	}
	customer, err := service.DeleteCustomer(cc.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCustomerResponse(customer))
}
