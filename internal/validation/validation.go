// Package validation checks inbound DTOs against their validate tags. Every function returns the
// list of human-readable problems in field order; an empty list means the input is acceptable.
package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"campushub/internal/domain"
	"campushub/internal/dto"

	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^[\d\s\+\-\(\)]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})

	custom := map[string]validator.Func{
		"notblank": func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
		"enum": func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(interface{ Valid() bool })
			return ok && e.Valid()
		},
		"weburl": func(fl validator.FieldLevel) bool {
			return IsValidURL(fl.Field().String())
		},
		"phone": func(fl validator.FieldLevel) bool {
			return IsValidPhoneNumber(fl.Field().String())
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("validation: register %s: %v", tag, err))
		}
	}

	v.RegisterAlias("itemstatus", "oneof="+joinStatuses(domain.ItemStatuses))
	v.RegisterAlias("reportstatus", "oneof="+joinStatuses(domain.ReportStatuses))
	v.RegisterAlias("priority", "oneof="+strings.Join([]string{domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh}, " "))
	return v
}

func joinStatuses[S ~string](values []S) string {
	parts := make([]string, len(values))
	for i, s := range values {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}

// fixedMessages override the generic wording, keyed by "<Struct.Field>|tag" or "<label>|tag".
var fixedMessages = map[string]string{
	"UpdateMarketplaceItem.ID|required": "Invalid item ID",
	"Price|lte":                         "Price cannot exceed ₱999,999",
	"Password|min":                      "Password must be between 6 and 100 characters",
	"Password|max":                      "Password must be between 6 and 100 characters",
	"Event date|required":               "Event date is required",
	"Event end date|gtefield":           "Event end date cannot be before the start date",
}

func message(fe validator.FieldError) string {
	if msg, ok := fixedMessages[fe.StructNamespace()+"|"+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := fixedMessages[fe.Field()+"|"+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return "Valid " + fe.Field() + " is required"
	case "notblank":
		return fe.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "enum":
		return "Please select a valid " + fe.Field()
	case "email":
		return "Please enter a valid email address"
	case "weburl":
		return "Please enter a valid URL"
	case "phone":
		return "Please enter a valid contact number"
	case "itemstatus":
		return "Invalid item status"
	case "reportstatus":
		return "Invalid report status"
	case "priority":
		return "Please select a valid priority"
	}
	return fe.Field() + " is invalid"
}

func check(in any) []string {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{"Invalid request"}
	}
	errs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, message(fe))
	}
	return errs
}

func CreateMarketplaceItem(in dto.CreateMarketplaceItem) []string { return check(in) }
func UpdateMarketplaceItem(in dto.UpdateMarketplaceItem) []string { return check(in) }
func CreateUser(in dto.CreateUser) []string { return check(in) }
func Login(in dto.Login) []string { return check(in) }
func UpdateProfile(in dto.UpdateProfile) []string { return check(in) }
func ToggleLike(in dto.ToggleLike) []string { return check(in) }
func ItemStatusOperation(in dto.ItemStatusOperation) []string { return check(in) }
func CreateReport(in dto.CreateReport) []string { return check(in) }
func ItemStatusUpdate(in dto.ItemStatusUpdate) []string { return check(in) }
func ReportResolution(in dto.ReportResolution) []string { return check(in) }
func FlagItem(in dto.FlagItem) []string { return check(in) }
func Event(in dto.EventInput) []string { return check(in) }

func UserID(id uint) []string { return requiredID(id, "Valid user ID is required") }
func ItemID(id uint) []string { return requiredID(id, "Valid item ID is required") }
func EventID(id uint) []string { return requiredID(id, "Invalid event ID") }
func CollegeID(id uint) []string { return requiredID(id, "Invalid college ID") }

func requiredID(id uint, msg string) []string {
	if validate.Var(id, "required") != nil {
		return []string{msg}
	}
	return nil
}

// IsValidURL accepts absolute http and https URLs only.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// IsValidPhoneNumber allows digits, spaces and + - ( ) with at least one digit.
func IsValidPhoneNumber(phone string) bool {
	if !phonePattern.MatchString(phone) {
		return false
	}
	return strings.IndexFunc(phone, unicode.IsDigit) >= 0
}
