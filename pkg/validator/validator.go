package validator

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Echo adapts go-playground/validator to echo's Validator interface. Failed
// validations come back as 400s naming the offending json fields.
type Echo struct {
	validate *validator.Validate
}

func NewEcho() *Echo {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &Echo{validate: v}
}

func (e *Echo) Validate(i any) error {
	err := e.validate.Struct(i)
	if err == nil {
		return nil
	}
	if ve, ok := err.(validator.ValidationErrors); ok {
		fields := make([]string, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, fe.Field())
		}
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("Missing or invalid fields: %s", strings.Join(fields, ", ")))
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
