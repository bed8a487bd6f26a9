package validation

import (
	"fmt"
	"github.com/deepesh-sr/Textura-Backend/app/server/models"
	"github.com/go-playground/validator/v10"
	"reflect"
	"regexp"
	"sort"
	"strings"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// 错误里使用 JSON 字段名
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// 注册失败只会发生在 tag 名称冲突时，属于编程错误
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		_, err := models.ParseRole(fl.Field().String())
		return err == nil
	}); err != nil {
		panic(err)
	}

	return v
}

// Errors 是字段到失败原因列表的映射，包含所有失败的字段
type Errors map[string][]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e Errors) add(field, reason string) {
	e[field] = append(e[field], reason)
}

// check 运行 struct 上的规则，并把所有失败收集到 Errors 里
func check(rules any) error {
	err := validate.Struct(rules)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate: %w", err)
	}

	errs := Errors{}
	for _, fe := range fieldErrs {
		errs.add(fe.Field(), reason(fe))
	}
	return errs
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "slug":
		return "must contain only lowercase letters, numbers and hyphens"
	case "url":
		return "must be a valid URL"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "role":
		return "must be one of: Admin, User"
	default:
		return "is invalid"
	}
}
