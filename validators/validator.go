package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"learnhub/apierr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates req and converts failures into a 422 error keyed by JSON field name.
func Struct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apierr.Validation("Validation failed!", map[string]string{"body": err.Error()})
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return apierr.Validation("Validation failed!", fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long!", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s!", fe.Field(), fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long!", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s!", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s!", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s!", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s!", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address!", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL!", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid!", fe.Field())
	}
}

// Body parses the request body into a new T, validates it and stores it under key.
func Body[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return apierr.Validation("Invalid request body!", nil)
		}
		if n, ok := any(reqData).(normalizer); ok {
			n.Normalize()
		}
		if err := Struct(reqData); err != nil {
			return err
		}
		c.Locals(key, reqData)
		return c.Next()
	}
}

// normalizer is implemented by requests that trim or default their fields before validation.
type normalizer interface {
	Normalize()
}

// Get returns the value a validator stored under key.
func Get[T any](c *fiber.Ctx, key string) *T {
	v, _ := c.Locals(key).(*T)
	return v
}

// ID validates the positive integer path parameter param and stores it under the same name.
func ID(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return apierr.Validation("Validation failed!", map[string]string{param: fmt.Sprintf("Invalid %s!", param)})
		}
		c.Locals(param, uint(id))
		return c.Next()
	}
}

// IDParam returns the id stored by ID.
func IDParam(c *fiber.Ctx, param string) uint {
	id, _ := c.Locals(param).(uint)
	return id
}

// Page is a skip/limit window.
type Page struct {
	Skip  int
	Limit int
}

const pageLocal = "page"

// Pagination validates the skip and limit query parameters. limit is capped at maxLimit.
func Pagination(defaultLimit, maxLimit int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		errs := make(map[string]string)
		page := Page{Skip: 0, Limit: defaultLimit}

		if raw := c.Query("skip"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				errs["skip"] = "skip must be a non-negative integer!"
			}
			page.Skip = n
		}
		if raw := c.Query("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				errs["limit"] = "limit must be a non-negative integer!"
			}
			page.Limit = n
		}
		if len(errs) > 0 {
			return apierr.Validation("Validation failed!", errs)
		}
		if page.Limit > maxLimit {
			page.Limit = maxLimit
		}

		c.Locals(pageLocal, page)
		return c.Next()
	}
}

// GetPage returns the window stored by Pagination.
func GetPage(c *fiber.Ctx) Page {
	page, ok := c.Locals(pageLocal).(Page)
	if !ok {
		return Page{Limit: 100}
	}
	return page
}

// OptionalQueryID parses an optional positive integer query parameter such as category_id.
// A zero value means the filter was not supplied.
func OptionalQueryID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apierr.Validation("Validation failed!", map[string]string{name: fmt.Sprintf("Invalid %s!", name)})
	}
	return uint(id), nil
}

// ReorderItem is one entry of a reorder request. The id may be sent as "id" or as the
// entity-specific key (unit_id, video_id).
type ReorderItem struct {
	ID      *uint `json:"id"`
	UnitID  *uint `json:"unit_id"`
	VideoID *uint `json:"video_id"`
	Order   *int  `json:"order"`
}

// TargetID returns whichever id key was supplied.
func (r ReorderItem) TargetID() (uint, bool) {
	for _, id := range []*uint{r.ID, r.UnitID, r.VideoID} {
		if id != nil {
			return *id, true
		}
	}
	return 0, false
}

// Reorder validates a JSON array of ReorderItem and stores it under "reorder".
func Reorder(idKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var items []ReorderItem
		if err := c.BodyParser(&items); err != nil {
			return apierr.Validation("Invalid request body!", nil)
		}
		if len(items) == 0 {
			return apierr.Validation("Validation failed!", map[string]string{"body": "At least one item is required!"})
		}
		for i, item := range items {
			if _, ok := item.TargetID(); !ok || item.Order == nil {
				return apierr.Validation(
					fmt.Sprintf("Each item must contain %s and order", idKey),
					map[string]string{strconv.Itoa(i): fmt.Sprintf("%s and order are required!", idKey)},
				)
			}
		}
		c.Locals("reorder", items)
		return c.Next()
	}
}

// GetReorder returns the items stored by Reorder.
func GetReorder(c *fiber.Ctx) []ReorderItem {
	items, _ := c.Locals("reorder").([]ReorderItem)
	return items
}
