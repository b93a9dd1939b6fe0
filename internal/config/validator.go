package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aleister1102/paramindex/internal/common/errorwrapper"
	"github.com/go-playground/validator/v10"
)

// enumRules maps custom validation tags to their accepted values. The
// empty string is accepted so omitempty fields keep working.
var enumRules = map[string][]string{
	"loglevel":     {"", "trace", "debug", "info", "warn", "error", "fatal", "panic"},
	"logformat":    {"", "console", "text", "json"},
	"outputformat": {"", "json", "yaml", "text"},
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		for tag, allowed := range enumRules {
			_ = validate.RegisterValidation(tag, oneOfFold(allowed))
		}
	})
	return validate
}

func oneOfFold(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := strings.ToLower(strings.TrimSpace(fl.Field().String()))
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}

// ValidateConfig checks cfg against its struct tags. Every failure is
// reported in one error wrapping ErrInvalidConfiguration.
func ValidateConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return errorwrapper.NewValidationError("config", nil, "configuration is nil")
	}

	err := configValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errorwrapper.WrapError(err, "configuration validation error")
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problem := fmt.Sprintf("%s fails '%s'", fe.Namespace(), fe.Tag())
		if fe.Param() != "" {
			problem += fmt.Sprintf(" %s", fe.Param())
		}
		if v := fe.Value(); v != nil && v != "" {
			problem += fmt.Sprintf(" (got %v)", v)
		}
		problems = append(problems, problem)
	}
	return errorwrapper.WrapError(errorwrapper.ErrInvalidConfiguration, strings.Join(problems, "; "))
}
