// internal/app/system/inputval/inputval.go
//
// Package inputval validates form input structs via `validate` struct tags.
//
// Supported rules: required, max=N, email, httpurl, objectid.
// The `label` tag supplies the human-readable field name used in messages.
//
// Usage:
//
//	type createInput struct {
//	    Title string `validate:"required,max=100" label:"Title"`
//	}
//	if result := inputval.Validate(input); result.HasErrors() {
//	    // show result.First() to the user
//	}
package inputval

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldError is one failed rule on one field.
type FieldError struct {
	Field   string
	Message string
}

// Result collects validation errors in field declaration order.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first error message, or "" if none.
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every error message with "; ".
func (r *Result) All() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every string field of the struct against its tags.
func Validate(input any) *Result {
	res := &Result{}

	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return res
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		rules := field.Tag.Get("validate")
		if rules == "" {
			continue
		}
		label := field.Tag.Get("label")
		if label == "" {
			label = field.Name
		}
		if field.Type.Kind() != reflect.String {
			continue
		}
		value := v.Field(i).String()
		checkField(res, field.Name, label, value, rules)
	}
	return res
}

func checkField(res *Result, name, label, value, rules string) {
	trimmed := strings.TrimSpace(value)

	for _, rule := range strings.Split(rules, ",") {
		rule = strings.TrimSpace(rule)
		switch {
		case rule == "required":
			if trimmed == "" {
				res.add(name, label+" is required.")
				return // no point checking further rules on an empty value
			}
		case strings.HasPrefix(rule, "max="):
			n, err := strconv.Atoi(strings.TrimPrefix(rule, "max="))
			if err != nil {
				continue
			}
			if utf8.RuneCountInString(trimmed) > n {
				res.add(name, fmt.Sprintf("%s must be at most %d characters.", label, n))
			}
		case rule == "email":
			if trimmed != "" && !IsValidEmail(trimmed) {
				res.add(name, "A valid email address is required.")
			}
		case rule == "httpurl":
			if trimmed != "" && !IsValidHTTPURL(trimmed) {
				res.add(name, label+" must be a valid http(s) URL.")
			}
		case rule == "objectid":
			if trimmed != "" {
				if _, err := primitive.ObjectIDFromHex(trimmed); err != nil {
					res.add(name, label+" is not a valid identifier.")
				}
			}
		}
	}
}

func (r *Result) add(field, msg string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: msg})
}
