package llmresponse

import (
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	openingFence = regexp.MustCompile("^```(?:[A-Za-z0-9_+-]*[ \t]*\r?\n|json)?")
	closingFence = regexp.MustCompile("\r?\n?```$")
)

// Parse turns raw model output into a validated batch.
func Parse(raw string) (Batch, error) {
	value, err := Normalize(raw)
	if err != nil {
		return nil, err
	}
	return Validate(value)
}

// Normalize strips formatting artifacts from raw model output and unwraps
// container objects, returning a value ready for Validate.
//
// When the model wraps the list in an object ({"items": [...]} and the like)
// the first array-valued property in document order is used. That recovery is
// best-effort: with several array properties, the earliest one wins.
func Normalize(raw string) (gjson.Result, error) {
	cleaned := stripFence(strings.TrimSpace(raw))

	if !gjson.Valid(cleaned) {
		return gjson.Result{}, newInvalidJSONError(cleaned)
	}
	value := gjson.Parse(cleaned)

	if value.IsObject() {
		var inner gjson.Result
		value.ForEach(func(_, v gjson.Result) bool {
			if v.IsArray() {
				inner = v
				return false
			}
			return true
		})
		if inner.Exists() {
			value = inner
		}
	}
	return value, nil
}

// stripFence removes a surrounding markdown code fence, with or without a
// language tag. Unfenced text is returned unchanged.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = openingFence.ReplaceAllString(text, "")
	text = closingFence.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
