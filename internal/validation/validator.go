// Amazon Q Dashboard - Developer Productivity Analytics
// Copyright 2026 CoderXLab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/coderxlab/amazonq-dashboard-sub000

// Package validation wraps go-playground/validator v10 behind a
// thread-safe singleton and translates field errors into the API's
// INVALID_PARAMETERS error shape.
//
// Request structs declare their rules with validate tags:
//
//	type TrendsRequest struct {
//	    StartDate string `validate:"required,datetime=2006-01-02"`
//	    Interval  string `validate:"omitempty,oneof=day week month"`
//	}
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is a single failed validation rule.
type FieldError struct {
	Field   string      `json:"field"`
	Tag     string      `json:"tag"`
	Param   string      `json:"param,omitempty"`
	Value   interface{} `json:"value,omitempty"`
	Message string      `json:"message"`
}

func (e FieldError) Error() string {
	return e.Message
}

// RequestError aggregates every failed rule for one request struct.
type RequestError struct {
	Fields []FieldError
}

func (re *RequestError) Error() string {
	if len(re.Fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(re.Fields))
	for i, fe := range re.Fields {
		messages[i] = fe.Message
	}
	return strings.Join(messages, "; ")
}

// Details renders the field errors for the API error Details payload.
func (re *RequestError) Details() map[string]interface{} {
	fields := make([]map[string]interface{}, len(re.Fields))
	for i, fe := range re.Fields {
		fields[i] = map[string]interface{}{
			"field":   fe.Field,
			"tag":     fe.Tag,
			"message": fe.Message,
		}
	}
	return map[string]interface{}{"fields": fields}
}

// GetValidator returns the singleton validator. Initialization is
// thread-safe and happens once; validator.Validate caches struct
// metadata internally so sharing one instance is the intended usage.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateStruct validates a tagged request struct. A nil return means
// the struct passed.
func ValidateStruct(s interface{}) *RequestError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestError{Fields: []FieldError{{
			Field:   "unknown",
			Tag:     "unknown",
			Message: err.Error(),
		}}}
	}

	fields := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: translateError(fe),
		}
	}
	return &RequestError{Fields: fields}
}

var messageTemplates = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email address",
}

var messageTemplatesWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"min":   "%s must be at least %s",
	"max":   "%s must be at most %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
}

func translateError(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()

	if tag == "datetime" {
		layout := fe.Param()
		if layout == "2006-01-02" {
			layout = "YYYY-MM-DD"
		}
		return fmt.Sprintf("%s must be a date in %s format", field, layout)
	}
	if tpl, ok := messageTemplates[tag]; ok {
		return fmt.Sprintf(tpl, field)
	}
	if tpl, ok := messageTemplatesWithParam[tag]; ok {
		return fmt.Sprintf(tpl, field, fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", field, tag)
}
