package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bookstore-api/internals/service"
	"bookstore-api/internals/validation"
)

type AddressRequest struct {
	CountryCode string  `json:"country_code" validate:"required,len=2,alpha"`
	StateCode   string  `json:"state_code" validate:"required,min=2,max=3,alphanum"`
	City        *string `json:"city" validate:"omitempty,max=50"`
	Street      string  `json:"street" validate:"required,max=100"`
	Postcode    string  `json:"postcode" validate:"required,max=10,alphanum"`
}

// Normalize applies the field-specific case rules before validation:
// codes upper-cased, postcode reduced to upper-cased alphanumerics.
func (r *AddressRequest) Normalize() {
	r.CountryCode = validation.UpperCode(r.CountryCode)
	r.StateCode = validation.UpperCode(r.StateCode)
	r.City = validation.TrimPtr(r.City)
	r.Street = validation.Trim(r.Street)
	r.Postcode = validation.CleanPostcode(r.Postcode)
}

type AddressPatchRequest struct {
	CountryCode *string `json:"country_code" validate:"omitempty,len=2,alpha"`
	StateCode   *string `json:"state_code" validate:"omitempty,min=2,max=3,alphanum"`
	City        *string `json:"city" validate:"omitempty,max=50"`
	Street      *string `json:"street" validate:"omitempty,max=100"`
	Postcode    *string `json:"postcode" validate:"omitempty,max=10,alphanum"`
}

func (r *AddressPatchRequest) Normalize() {
	if r.CountryCode != nil {
		code := validation.UpperCode(*r.CountryCode)
		r.CountryCode = &code
	}
	if r.StateCode != nil {
		code := validation.UpperCode(*r.StateCode)
		r.StateCode = &code
	}
	r.City = validation.TrimPtr(r.City)
	if r.Street != nil {
		street := validation.Trim(*r.Street)
		r.Street = &street
	}
	if r.Postcode != nil {
		postcode := validation.CleanPostcode(*r.Postcode)
		r.Postcode = &postcode
	}
}

type AddressesController struct {
	DB *gorm.DB
}

func NewAddressesController(db *gorm.DB) *AddressesController {
	return &AddressesController{DB: db}
}

func (ac *AddressesController) Create(c *gin.Context) {
	var req AddressRequest
	if _, ok := bindJSON(c, &req); !ok {
		return
	}
	req.Normalize()
	if err := validation.Struct(&req); err != nil {
		respondError(c, err)
		return
	}

	address, err := service.CreateAddress(ac.DB, &service.AddressInput{
		CountryCode: req.CountryCode,
		StateCode:   req.StateCode,
		City:        req.City,
		Street:      req.Street,
		Postcode:    req.Postcode,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAddressResponse(address))
}

func (ac *AddressesController) GetAll(c *gin.Context) {
	addresses, err := service.ListAddresses(ac.DB)
	if err != nil {
		respondError(c, err)
		return
	}
	response := make([]AddressResponse, 0, len(addresses))
	for i := range addresses {
		response = append(response, toAddressResponse(&addresses[i]))
	}
	c.JSON(http.StatusOK, response)
}

func (ac *AddressesController) GetByID(c *gin.Context) {
	id, ok := parseID(c, "Address")
	if !ok {
		return
	}
	address, err := service.GetAddress(ac.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAddressResponse(address))
}

func (ac *AddressesController) Update(c *gin.Context) {
	id, ok := parseID(c, "Address")
	if !ok {
		return
	}

	var patch service.AddressPatch
	if c.Request.Method == http.MethodPut {
		var req AddressRequest
		if _, ok := bindJSON(c, &req); !ok {
			return
		}
		req.Normalize()
		if err := validation.Struct(&req); err != nil {
			respondError(c, err)
			return
		}
		patch = service.AddressPatch{
			CountryCode: &req.CountryCode,
			StateCode:   &req.StateCode,
			City:        req.City,
			CitySet:     true,
			Street:      &req.Street,
			Postcode:    &req.Postcode,
		}
	} else {
		var req AddressPatchRequest
		present, ok := bindJSON(c, &req)
		if !ok {
			return
		}
		req.Normalize()
		if err := validation.Struct(&req); err != nil {
			respondError(c, err)
			return
		}
		_, citySet := present["city"]
		patch = service.AddressPatch{
			CountryCode: req.CountryCode,
			StateCode:   req.StateCode,
			City:        req.City,
			CitySet:     citySet,
			Street:      req.Street,
			Postcode:    req.Postcode,
		}
	}

	address, err := service.UpdateAddress(ac.DB, id, &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAddressResponse(address))
}

func (ac *AddressesController) Delete(c *gin.Context) {
	id, ok := parseID(c, "Address")
	if !ok {
		return
	}
	address, err := service.DeleteAddress(ac.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAddressResponse(address))
}
