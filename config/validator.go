package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/ByLCY/slidesmith/layout"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	tokenPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("channel", func(fl validator.FieldLevel) bool {
			_, err := ParseChannel(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("emu_length", func(fl validator.FieldLevel) bool {
			l, ok := layout.ParseRawLengthStr(fl.Field().String())
			return ok && l.EMU() > 0
		})

		_ = v.RegisterValidation("token", func(fl validator.FieldLevel) bool {
			return tokenPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// FieldError 是单个字段的校验失败。
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

// ValidationError 汇总配置中所有无效字段。
type ValidationError struct {
	Fields []FieldError
	Err    error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "配置无效: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return e.Err }

// convertValidationError normalizes validator errors into ValidationError.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return &ValidationError{Fields: []FieldError{{Field: "config", Message: err.Error()}}, Err: err}
	}
	out := &ValidationError{Err: err}
	for _, fe := range ves {
		field := yamlishFieldName(fe)
		out.Fields = append(out.Fields, FieldError{
			Field:   field,
			Tag:     fe.Tag(),
			Message: fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()),
		})
	}
	return out
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, lowerFirst(part))
	}
	return strings.Join(lowered, ".")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
