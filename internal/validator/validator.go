package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
)

// trans is the singleton English translator for validation errors.
var (
	trans     ut.Translator
	setupOnce sync.Once
)

var (
	batchPattern    = regexp.MustCompile(`^\d{4}-\d{4}$`)
	registerPattern = regexp.MustCompile(`^\d{12}$`)
)

// customTags are the project-specific tags and their error texts.
var customTags = []struct {
	tag     string
	fn      govalidator.Func
	message string
}{
	{"batch", isBatch, "{0} must look like 2025-2029"},
	{"gradepoint", isGradePoint, "{0} must be one of 0, 4, 5, 6, 7, 8, 9 or 10"},
	{"register", isRegisterNumber, "{0} must be a 12-digit register number"},
}

// Setup registers the validator with English translations on Gin's binding engine.
// Repeated calls are no-ops.
func Setup() {
	setupOnce.Do(setup)
}

func setup() {
	v, ok := binding.Validator.Engine().(*govalidator.Validate)
	if !ok {
		return
	}

	// Use JSON tag name for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	for _, ct := range customTags {
		_ = v.RegisterValidation(ct.tag, ct.fn)
		_ = v.RegisterTranslation(ct.tag, trans,
			func(ut ut.Translator) error { return ut.Add(ct.tag, ct.message, true) },
			func(ut ut.Translator, fe govalidator.FieldError) string {
				msg, _ := ut.T(fe.Tag(), fe.Field())
				return msg
			},
		)
	}
}

func isBatch(fl govalidator.FieldLevel) bool {
	return batchPattern.MatchString(fl.Field().String())
}

func isRegisterNumber(fl govalidator.FieldLevel) bool {
	return registerPattern.MatchString(fl.Field().String())
}

func isGradePoint(fl govalidator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return grading.GradePoint(f.Int()).Valid()
	case reflect.Float32, reflect.Float64:
		v := f.Float()
		return v == float64(int(v)) && grading.GradePoint(int(v)).Valid()
	}
	return false
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name to human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			key := fe.Field()
			if ns := fe.Namespace(); strings.Contains(ns, "[") {
				// keep map keys and slice indexes, drop the root struct name
				if _, rest, ok := strings.Cut(ns, "."); ok {
					key = rest
				}
			}
			if trans != nil {
				fields[key] = fe.Translate(trans)
			} else {
				fields[key] = fe.Error()
			}
		}
		return fields
	}

	// Not a validation error (e.g., JSON syntax error).
	fields["detail"] = err.Error()
	return fields
}

// Bind binds and validates the request body into dst.
// Returns nil on success or a translated field error map on failure.
func Bind(c *gin.Context, dst any) map[string]string {
	if err := c.ShouldBindJSON(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}

// BindQuery binds and validates query parameters into dst.
func BindQuery(c *gin.Context, dst any) map[string]string {
	if err := c.ShouldBindQuery(dst); err != nil {
		return TranslateErrors(err)
	}
	return nil
}
