package forms

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ServiceForm is the add/edit service dialog payload.
type ServiceForm struct {
	Provider    string `json:"provider" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Image       string `json:"image" validate:"required"`
	Description string `json:"description" validate:"required"`
	URL         string `json:"url" validate:"required,httpurl"`
	Country     string `json:"country" validate:"required"`
	Tags        string `json:"tags"`
}

// TagList splits the comma separated tags field.
func (f ServiceForm) TagList() []string {

	var tags []string
	for _, tag := range strings.Split(f.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

type CategoryForm struct {
	Title string `json:"title" validate:"required,min=3"`
}

func (f *CategoryForm) normalize() {
	f.Title = strings.TrimSpace(f.Title)
}

type PlanForm struct {
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"gt=0"`
	BillingCycle string  `json:"billingCycle" validate:"oneof=monthly yearly"`
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (f *LoginForm) normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

var httpURLPattern = regexp.MustCompile(`^https?://.+\..+`)

var validate = newValidator()

func newValidator() *validator.Validate {

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		return name
	})

	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return httpURLPattern.MatchString(fl.Field().String())
	})

	return v
}
