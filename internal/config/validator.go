package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	selecterrors "github.com/alexisbeaulieu97/selectbox/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	fieldNamePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(sf reflect.StructField) string {
			name := strings.SplitN(sf.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return strings.ToLower(sf.Name)
			}
			return name
		})

		_ = v.RegisterValidation("field_name", func(fl validator.FieldLevel) bool {
			return fieldNamePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateForm performs schema and cross-field validation on a form.
func ValidateForm(form *Form) error {
	if form == nil {
		return selecterrors.NewValidationError("form", "form is nil", nil)
	}

	if err := validatorInstance().Struct(form); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(form.Fields))
	for i, field := range form.Fields {
		if first, exists := seen[field.Name]; exists {
			return selecterrors.NewValidationError(fieldPath(i, "name"), fmt.Sprintf("duplicate field name %q (first used by fields[%d])", field.Name, first), nil)
		}
		seen[field.Name] = i

		if err := validateFieldOptions(i, field); err != nil {
			return err
		}
	}

	return nil
}

func validateFieldOptions(index int, field Field) error {
	selected := -1
	for j, opt := range field.Options {
		if !opt.Selected {
			continue
		}
		if opt.Disabled {
			return selecterrors.NewValidationError(optionPath(index, j, "selected"), "a disabled option cannot be selected", nil)
		}
		if selected >= 0 {
			return selecterrors.NewValidationError(optionPath(index, j, "selected"), fmt.Sprintf("field %q already selects options[%d]", field.Name, selected), nil)
		}
		selected = j
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return selecterrors.NewValidationError(field, msg, err)
	}

	return selecterrors.NewValidationError("form", err.Error(), err)
}

// fieldName drops the root struct name from the namespace, leaving the
// document path, e.g. "fields[0].options[1].label".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldPath(index int, key string) string {
	return fmt.Sprintf("fields[%d].%s", index, key)
}

func optionPath(field, option int, key string) string {
	return fmt.Sprintf("fields[%d].options[%d].%s", field, option, key)
}
