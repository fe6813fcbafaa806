package api

import (
	"github.com/MrAlaeALK/afriq-ai-ranking/internal/pkg/constants"
	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return constants.Wrap(constants.KindBadInput, err, "validation failed")
	}
	return nil
}

// Binder binds the request and validates the result in one step, so
// controllers receive ready-to-use DTOs.
type Binder struct {
	binder echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i any, c echo.Context) error {
	if err := b.binder.Bind(i, c); err != nil {
		return constants.Wrap(constants.KindBadInput, err, "failed to bind request")
	}
	return c.Validate(i)
}

type JSONSerializer struct{}

func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

func (s *JSONSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := sonic.ConfigDefault.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *JSONSerializer) Deserialize(c echo.Context, i any) error {
	err := sonic.ConfigDefault.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return constants.Wrap(constants.KindBadInput, err, "failed to decode json body")
	}
	return nil
}
