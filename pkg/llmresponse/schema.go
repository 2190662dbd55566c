package llmresponse

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

var (
	structValidator     *validator.Validate
	structValidatorOnce sync.Once
)

func getValidator() *validator.Validate {
	structValidatorOnce.Do(func() {
		structValidator = validator.New(validator.WithRequiredStructEnabled())
		structValidator.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
	return structValidator
}

// Validate checks a parsed value against the action-item batch schema and
// returns the normalized batch. Validation is all-or-nothing: the first
// offending element fails the whole batch.
func Validate(value gjson.Result) (Batch, error) {
	if !value.IsArray() {
		return nil, invalid("expected array")
	}

	elems := value.Array()
	if len(elems) == 0 {
		return nil, invalid("at least one item required")
	}

	batch := make(Batch, 0, len(elems))
	for i, elem := range elems {
		item, err := validateItem(i, elem)
		if err != nil {
			return nil, err
		}
		batch = append(batch, item)
	}
	return batch, nil
}

func validateItem(idx int, elem gjson.Result) (ActionItem, error) {
	if !elem.IsObject() {
		return ActionItem{}, invalid("item %d: expected object", idx)
	}

	task := elem.Get("task")
	if !task.Exists() || task.Type == gjson.Null {
		return ActionItem{}, invalid("item %d: task is required", idx)
	}
	if task.Type != gjson.String {
		return ActionItem{}, invalid("item %d: task must be a string", idx)
	}

	owner, err := optionalString(idx, elem, "owner")
	if err != nil {
		return ActionItem{}, err
	}
	dueDate, err := optionalString(idx, elem, "dueDate")
	if err != nil {
		return ActionItem{}, err
	}
	tags, err := stringList(idx, elem, "tags")
	if err != nil {
		return ActionItem{}, err
	}

	item := ActionItem{
		Task:    task.Str,
		Owner:   owner,
		DueDate: dueDate,
		Tags:    tags,
	}
	if err := getValidator().Struct(item); err != nil {
		return ActionItem{}, invalid("item %d: %s", idx, describe(err))
	}
	return item, nil
}

// optionalString reads a field that may be a string, null, or omitted.
func optionalString(idx int, elem gjson.Result, field string) (*string, error) {
	v := elem.Get(field)
	switch {
	case !v.Exists(), v.Type == gjson.Null:
		return nil, nil
	case v.Type == gjson.String:
		s := v.Str
		return &s, nil
	default:
		return nil, invalid("item %d: %s must be a string or null", idx, field)
	}
}

// stringList reads a field that may be an array of strings, null, or omitted.
// The result is never nil.
func stringList(idx int, elem gjson.Result, field string) ([]string, error) {
	v := elem.Get(field)
	if !v.Exists() || v.Type == gjson.Null {
		return []string{}, nil
	}
	if !v.IsArray() {
		return nil, invalid("item %d: %s must be an array of strings", idx, field)
	}

	out := make([]string, 0, len(v.Array()))
	for _, t := range v.Array() {
		if t.Type != gjson.String {
			return nil, invalid("item %d: %s must be an array of strings", idx, field)
		}
		out = append(out, t.Str)
	}
	return out, nil
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	if fe.Tag() == "required" {
		return fmt.Sprintf("%s is required", fe.Field())
	}
	return fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag())
}
