package handlers

import (
	"errors"
	"fmt"
	"sync"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ledgerValidations are the custom binding tags used by the request DTOs.
var ledgerValidations = map[string]validator.Func{
	"category": func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).IsValid()
	},
	"attribution": func(fl validator.FieldLevel) bool {
		return domain.Attribution(fl.Field().String()).IsValid()
	},
	"isodate": func(fl validator.FieldLevel) bool {
		return domain.IsValidDate(fl.Field().String())
	},
}

var (
	registerValidatorsOnce sync.Once
	registerValidatorsErr  error
)

// registerValidators adds the ledger binding tags to gin's validator engine.
func registerValidators() error {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerValidatorsErr = fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
			return
		}
		registerValidatorsErr = registerValidations(v, ledgerValidations)
	})
	return registerValidatorsErr
}

func registerValidations(v *validator.Validate, validations map[string]validator.Func) error {
	var errs []error
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			errs = append(errs, fmt.Errorf("register %q validation: %w", tag, err))
		}
	}
	return errors.Join(errs...)
}
