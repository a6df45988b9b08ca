package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a JSON field name to a message fit for display.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msg := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

type OrderForm struct {
	BagNo   string `json:"bagNo" validate:"required,bagno"`
	Clothes Count  `json:"numberOfClothes" validate:"clothes"`
}

func (f *OrderForm) Normalize() {
	f.BagNo = NormalizeBagNo(f.BagNo)
}

type CountForm struct {
	Clothes Count `json:"numberOfClothes" validate:"clothes"`
}

type StatusForm struct {
	Status string `json:"status" validate:"required,oneof=PENDING INPROGRESS COMPLETE"`
}

func (f *StatusForm) Normalize() {
	f.Status = strings.ToUpper(strings.TrimSpace(f.Status))
}

type StudentForm struct {
	BagNo        string `json:"bagNo" validate:"required,bagno"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	EnrollmentNo string `json:"enrollmentNo"`
	PhoneNo      string `json:"phoneNo"`
	ResidencyNo  string `json:"residencyNo"`
	Password     string `json:"password" validate:"required"`
}

func (f *StudentForm) Normalize() {
	f.BagNo = NormalizeBagNo(f.BagNo)
	f.Email = strings.TrimSpace(f.Email)
}

// StudentUpdateForm leaves the bag number to the URL; an empty password is no change.
type StudentUpdateForm struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	EnrollmentNo string `json:"enrollmentNo"`
	PhoneNo      string `json:"phoneNo"`
	ResidencyNo  string `json:"residencyNo"`
	Password     string `json:"password"`
}

func (f *StudentUpdateForm) Normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

type WashermanForm struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,password"`
}

func (f *WashermanForm) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
}

// WashermanUpdateForm accepts an empty password, meaning no change.
type WashermanUpdateForm struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"password_update"`
}

func (f *WashermanUpdateForm) Normalize() {
	f.Username = strings.TrimSpace(f.Username)
}

type LoginForm struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var forms = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	custom := map[string]validator.Func{
		"bagno": func(fl validator.FieldLevel) bool {
			return BagNo(fl.Field().String())
		},
		"clothes": func(fl validator.FieldLevel) bool {
			return Clothes(int(fl.Field().Int()))
		},
		"username": func(fl validator.FieldLevel) bool {
			return Username(fl.Field().String())
		},
		"password": func(fl validator.FieldLevel) bool {
			return Password(fl.Field().String(), true)
		},
		"password_update": func(fl validator.FieldLevel) bool {
			return Password(fl.Field().String(), false)
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	return v
}

// Struct validates a form and returns nil or FieldErrors.
func Struct(form any) error {
	err := forms.Struct(form)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return FieldErrors{"_": "Form data is invalid"}
	}

	out := FieldErrors{}
	for _, fe := range ve {
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "bagno":
		return "Invalid format. Use B-001 or G-001"
	case "email":
		return "Enter a valid email address"
	case "oneof":
		return "Must be one of " + fe.Param()
	case "clothes":
		return fmt.Sprintf("Must be between %d and %d", MinClothes, MaxClothes)
	case "username":
		return fmt.Sprintf("Must be at least %d characters", MinUsernameLen)
	case "password", "password_update":
		return fmt.Sprintf("Must be at least %d characters", MinPasswordLen)
	default:
		return "Invalid value"
	}
}
