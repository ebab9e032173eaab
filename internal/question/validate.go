package question

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue captures a validation problem in a question.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("has_choice", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.Slice {
			return false
		}
		for i := 0; i < field.Len(); i++ {
			if strings.TrimSpace(field.Index(i).String()) != "" {
				return true
			}
		}
		return false
	})
	return v
}

// Validate checks a Record or Entry against its invariants: non-empty question text,
// at least one non-empty choice and no more than MaxChoices choices.
func Validate(value any) error {
	collector := &issueCollector{}
	if err := validate.Struct(value); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate question: %w", err)
		}
		for _, fieldErr := range fieldErrs {
			collector.add(fieldErr.Field(), describeTag(fieldErr))
		}
	}
	if record, ok := value.(Record); ok && strings.TrimSpace(record.Question) == "" && record.Question != "" {
		collector.add("question", "is required")
	}
	if entry, ok := value.(Entry); ok && entry.CorrectIndex > len(entry.Choices) {
		collector.add("correct", fmt.Sprintf("index %d exceeds %d choices", entry.CorrectIndex, len(entry.Choices)))
	}
	return collector.result()
}

func describeTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "has_choice":
		return "must include at least one non-empty choice"
	case "max":
		return fmt.Sprintf("must include at most %s entries", fieldErr.Param())
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %q check", fieldErr.Tag())
	}
}
