package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
)

// planValidator checks domain.DayPlan struct tags. It is safe for
// concurrent use and caches struct metadata, so one instance is shared.
var planValidator = newPlanValidator()

func newPlanValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so details match the wire format.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("clock24", func(fl validator.FieldLevel) bool {
		return clockRE.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ParseDayPlan decodes raw model output and re-checks it against the day
// plan schema independently of whatever the model provider enforced.
// Unknown fields are rejected and activities must number 1 to 8. String
// fields are trimmed before checking, after which every activity needs a
// name, a venue, an HH:MM start time and a positive sort_order.
// Failures are returned as *domain.ResponseValidationError.
func ParseDayPlan(raw []byte) (domain.DayPlan, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var plan domain.DayPlan
	if err := dec.Decode(&plan); err != nil {
		return domain.DayPlan{}, &domain.ResponseValidationError{Details: []string{err.Error()}}
	}
	if dec.More() {
		return domain.DayPlan{}, &domain.ResponseValidationError{Details: []string{"unexpected data after day plan object"}}
	}

	trimPlan(&plan)

	if err := planValidator.Struct(plan); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return domain.DayPlan{}, &domain.ResponseValidationError{Details: []string{err.Error()}}
		}
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, describeFieldError(fe))
		}
		return domain.DayPlan{}, &domain.ResponseValidationError{Details: details}
	}
	return plan, nil
}

// trimPlan applies the same whitespace rules as manually entered
// activities. A blank description becomes nil.
func trimPlan(plan *domain.DayPlan) {
	for i := range plan.Activities {
		a := &plan.Activities[i]
		a.ActivityName = strings.TrimSpace(a.ActivityName)
		a.VenueName = strings.TrimSpace(a.VenueName)
		a.StartTime = strings.TrimSpace(a.StartTime)
		if a.Description != nil {
			d := strings.TrimSpace(*a.Description)
			if d == "" {
				a.Description = nil
			} else {
				a.Description = &d
			}
		}
	}
}

// describeFieldError renders one violation as "path: problem",
// e.g. "activities[2].start_time: must be a 24-hour HH:MM time".
func describeFieldError(fe validator.FieldError) string {
	path := fe.Namespace()
	if _, rest, ok := strings.Cut(path, "."); ok {
		path = rest
	}

	var problem string
	switch fe.Tag() {
	case "required":
		problem = "is required"
	case "clock24":
		problem = "must be a 24-hour HH:MM time"
	case "min":
		if fe.Kind() == reflect.Slice {
			problem = fmt.Sprintf("must contain at least %s items", fe.Param())
		} else {
			problem = fmt.Sprintf("must be at least %s", fe.Param())
		}
	case "max":
		problem = fmt.Sprintf("must contain at most %s items", fe.Param())
	default:
		problem = fmt.Sprintf("failed %q check", fe.Tag())
	}
	return path + ": " + problem
}
