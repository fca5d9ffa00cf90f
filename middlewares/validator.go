package middlewares

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct is used inside handlers for query-bound structs that gin's
// body binding does not cover.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
