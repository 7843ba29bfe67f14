// internal/app/app.go
package app

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"company-site-api/config"
	"company-site-api/internal/auth"
	"company-site-api/internal/storage"
)

// Application holds core application dependencies. The composition root in
// main builds exactly one of these and threads it through to the routes.
type Application struct {
	Config     *config.Config
	Store      *storage.Store
	TokenStore auth.TokenStore
	Validator  *validator.Validate
}

// NewValidator builds the validator used across handlers. Field names in
// validation errors come from the json tag so clients see the same names they
// sent.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return validate
}
