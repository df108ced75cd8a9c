// Package validation checks drafts, campaigns and request payloads with
// go-playground/validator and reports failures as domain.ValidationError.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"promo-ads/internal/core/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report JSON names when a field has one.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	_ = validate.RegisterValidation("objective", func(fl validator.FieldLevel) bool {
		return domain.Objective(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("time_window", func(fl validator.FieldLevel) bool {
		return domain.TimeWindow(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("status", func(fl validator.FieldLevel) bool {
		return domain.Status(fl.Field().String()).Valid()
	})

	validate.RegisterStructValidation(budgetStructLevel, domain.Budget{})
	validate.RegisterStructValidation(draftStructLevel, domain.CampaignDraft{})
}

func budgetStructLevel(sl validator.StructLevel) {
	b := sl.Current().Interface().(domain.Budget)
	if b.StartDate.IsZero() {
		sl.ReportError(b.StartDate, "StartDate", "StartDate", "required", "")
	}
	if b.EndDate != nil && domain.DateOf(*b.EndDate).Before(domain.DateOf(b.StartDate)) {
		sl.ReportError(b.EndDate, "EndDate", "EndDate", "after_start", "")
	}
}

func draftStructLevel(sl validator.StructLevel) {
	d := sl.Current().Interface().(domain.CampaignDraft)
	if !d.CreatedOn.IsZero() && domain.DateOf(d.Budget.StartDate).Before(domain.DateOf(d.CreatedOn)) {
		sl.ReportError(d.Budget.StartDate, "StartDate", "StartDate", "not_before_creation", "")
	}
}

// Struct validates s and returns a *domain.ValidationError listing every
// failing field, or nil.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &domain.ValidationError{}
	for _, fe := range verrs {
		out.Add(fieldName(fe), reason(fe))
	}
	return out
}

// Var validates a single value against tag, reporting failures under field.
func Var(field string, v any, tag string) error {
	err := validate.Var(v, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	return domain.NewValidationError(field, reason(verrs[0]))
}

// Draft checks the structural constraints of an in-progress draft: radius
// range, known tokens, message length, non-negative money and date order.
func Draft(d domain.CampaignDraft) error {
	return Struct(d)
}

// Campaign checks an edited campaign before it is stored.
func Campaign(c domain.Campaign) error {
	err := Struct(c)
	if c.Budget.DailyAmountCents <= 0 {
		verr, ok := err.(*domain.ValidationError)
		if !ok {
			verr = &domain.ValidationError{}
		}
		verr.Add("DailyAmountCents", "Value must be greater than 0")
		return verr
	}
	return err
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too small (min: " + fe.Param() + ")"
	case "max":
		return "Value is too long (max: " + fe.Param() + ")"
	case "gte":
		return "Value must be at least " + fe.Param()
	case "gt":
		return "Value must be greater than " + fe.Param()
	case "lte":
		return "Value must be at most " + fe.Param()
	case "oneof":
		return "Value must be one of: " + fe.Param()
	case "objective":
		return "Invalid objective. Must be: bookings, profile_visits or whatsapp_clicks"
	case "time_window":
		return "Invalid time window. Must be: early_morning, morning, afternoon or evening"
	case "status":
		return "Invalid status. Must be: draft, active, paused or ended"
	case "after_start":
		return "End date must not be earlier than start date"
	case "not_before_creation":
		return "Start date must not be earlier than the creation date"
	default:
		return "Invalid value"
	}
}
