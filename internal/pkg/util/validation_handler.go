package util

import (
	"GrowAGram/internal/model"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrValidation DTO 校验失败
var ErrValidation = errors.New("参数校验失败")

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("growstage", func(fl validator.FieldLevel) bool {
		_, ok := model.GrowStages[fl.Field().String()]
		return ok
	})
	_ = validate.RegisterValidation("environment", func(fl validator.FieldLevel) bool {
		_, ok := model.Environments[fl.Field().String()]
		return ok
	})
}

func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			firstError := vErrs[0]
			return fmt.Errorf("%w: 字段 [%s] 校验失败，规则 [%s]",
				ErrValidation,
				firstError.Field(),
				firstError.Tag())
		}
		return err
	}
	return nil
}
