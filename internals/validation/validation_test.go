package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internals/apperrors"
)

func TestCleanISBN(t *testing.T) {
	assert.Equal(t, "9780765326355", CleanISBN(" 978-0-7653-2635-5 "))
	assert.Equal(t, "9780765326355", CleanISBN("978 0765 326355"))
}

func TestCleanPostcode(t *testing.T) {
	assert.Equal(t, "W1D2LT", CleanPostcode("w1d 2lt"))
	assert.Equal(t, "M5H2N2", CleanPostcode("m5h-2n2"))
}

func TestUpperCode(t *testing.T) {
	assert.Equal(t, "US", UpperCode(" us "))
	assert.Equal(t, "NSW", UpperCode("nsw"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "The Way Of Kings", TitleCase("the way of kings"))
}

func TestTrimPtrCollapsesEmptyToNil(t *testing.T) {
	empty := "   "
	assert.Nil(t, TrimPtr(&empty))
	assert.Nil(t, TrimPtr(nil))

	padded := "  The Wheel of Time  "
	got := TrimPtr(&padded)
	require.NotNil(t, got)
	assert.Equal(t, "The Wheel of Time", *got)
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
		ISBN  string `json:"isbn" validate:"required,min=10,max=13,isbn_digits"`
	}

	err := Struct(payload{Email: "not-an-email", ISBN: "abc4567890"})

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "invalid email address provided, please use valid email", ve.Fields["email"])
	assert.Equal(t, "isbn must contain numeric characters only", ve.Fields["isbn"])
}

func TestStructRequiredMessage(t *testing.T) {
	type payload struct {
		Street string `json:"street" validate:"required,max=100"`
	}

	err := Struct(payload{})

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "street is required", ve.Fields["street"])
}

func TestPhoneValidation(t *testing.T) {
	type payload struct {
		Phone string `json:"phone" validate:"phone"`
	}

	require.NoError(t, Struct(payload{Phone: "+61 412 345 678"}))
	require.NoError(t, Struct(payload{Phone: "02 (9999) 9999"}))

	err := Struct(payload{Phone: "call me maybe"})
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "invalid phone number provided", ve.Fields["phone"])
}

func TestPublicationYearValidation(t *testing.T) {
	type payload struct {
		Year int `json:"publication_year" validate:"pub_year"`
	}

	require.NoError(t, Struct(payload{Year: 1990}))

	for _, year := range []int{999, 3000} {
		err := Struct(payload{Year: year})
		var ve *apperrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "publication_year must be between 1000 and the current year",
			ve.Fields["publication_year"])
	}
}

func TestCheckBookPrice(t *testing.T) {
	require.NoError(t, CheckBookPrice(9.99, false))
	require.NoError(t, CheckBookPrice(0, true))

	err := CheckBookPrice(0, false)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "price can only be 0 if discontinued", ve.Fields["price"])
}
