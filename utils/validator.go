// Package utils contains shared helpers for the service.
package utils

import (
	"sync"

	"github.com/creasty/defaults"
	"github.com/lumen-home/light/plugins/common"
	"github.com/lumen-home/light/providers"
	"gopkg.in/go-playground/validator.v9"
)

// Validator implementation.
type validatorProvider struct {
	sync.Mutex
	validator *validator.Validate
	logger    common.ILoggerProvider
}

// NewValidator constructs a new validator.
func NewValidator(logger common.ILoggerProvider) providers.IValidatorProvider {
	val := &validatorProvider{
		logger: logger,
	}

	v := validator.New()
	loadNewValidator(v, logger, "port", port)
	loadNewValidator(v, logger, "percent", percent)

	val.validator = v
	return val
}

// SetLogger updates the logger.
// Since logger is loaded after first init, we need to re-assign it.
func (v *validatorProvider) SetLogger(logger common.ILoggerProvider) {
	v.logger = logger
}

// Validate performs validation of an un-marshaled object.
func (v *validatorProvider) Validate(object interface{}) bool {
	v.Lock()
	defer v.Unlock()

	err := defaults.Set(object)
	if err != nil {
		v.logger.Error("Failed to set default field values", err)
		return false
	}

	err = v.validator.Struct(object)
	if err != nil {
		for _, e := range err.(validator.ValidationErrors) {
			v.logger.Warn("Validation error", common.LogFieldToken, e.Field())
		}

		return false
	}

	return true
}

// Port type validation.
func port(fl validator.FieldLevel) bool {
	p := fl.Field().Int()
	return p > 0 && p < 65536
}

// Percent type validation.
func percent(fl validator.FieldLevel) bool {
	return fl.Field().Uint() <= 100
}

// Registers a new custom validator.
func loadNewValidator(v *validator.Validate, logger common.ILoggerProvider,
	name string, fn validator.Func) {
	err := v.RegisterValidation(name, fn)
	if err != nil {
		logger.Error("Failed to register validation", err, common.LogFieldToken, name)
	}
}
