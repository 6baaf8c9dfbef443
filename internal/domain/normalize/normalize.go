// Package normalize turns heterogeneous declared and extracted personal data
// into canonical forms that can be compared for equality.
package normalize

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CanonicalDateLayout is the layout every parsed date of birth is rendered in.
const CanonicalDateLayout = "2006-01-02"

var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"02.01.2006",
	CanonicalDateLayout,
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
}

// addressParts are concatenated in this order when an address is structured.
var addressParts = []string{"street", "ward", "district", "province"}

// Name strips diacritics, collapses whitespace and folds case.
// It is idempotent.
func Name(s string) string {
	return strings.ToLower(collapseSpaces(Fold(s)))
}

// Fold removes combining marks after canonical decomposition and maps the
// Vietnamese letter đ, which has no decomposition, to d.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return strings.NewReplacer("đ", "d", "Đ", "D").Replace(folded)
}

// IDNumber removes all whitespace and upper-cases letters.
func IDNumber(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// DOB canonicalizes a date of birth to yyyy-mm-dd.
// It accepts dd/mm/yyyy, ISO dates with or without a time part and time values.
// Anything unparseable yields nil.
func DOB(v any) *string {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		if val.IsZero() {
			return nil
		}
		out := val.Format(CanonicalDateLayout)

		return &out
	case *time.Time:
		if val == nil {
			return nil
		}

		return DOB(*val)
	case *string:
		if val == nil {
			return nil
		}

		return DOB(*val)
	case string:
		return parseDateString(val)
	default:
		return nil
	}
}

func parseDateString(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		out := t.Format(CanonicalDateLayout)

		return &out
	}

	return nil
}

// Address flattens a stored address into a single line.
// A history list yields its most recent (last) entry, an object is joined from
// street, ward, district and province skipping empties, a string passes through.
func Address(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}

		return *val
	case []any:
		for i := len(val) - 1; i >= 0; i-- {
			if line := Address(val[i]); strings.TrimSpace(line) != "" {
				return line
			}
		}

		return ""
	case []string:
		for i := len(val) - 1; i >= 0; i-- {
			if strings.TrimSpace(val[i]) != "" {
				return val[i]
			}
		}

		return ""
	case map[string]any:
		return addressFromMap(val)
	default:
		return addressFromJSON(val)
	}
}

func addressFromMap(m map[string]any) string {
	if nested, ok := m["address"]; ok {
		return Address(nested)
	}

	parts := make([]string, 0, len(addressParts))
	for _, key := range addressParts {
		s, _ := m[key].(string)
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, ", ")
}

// addressFromJSON converts typed values (structs, typed slices) through their
// JSON form so they follow the same rules as decoded documents.
func addressFromJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return ""
	}

	switch generic.(type) {
	case string, []any, map[string]any:
		return Address(generic)
	default:
		return ""
	}
}

// IsEmpty reports whether a resolved value counts as missing: nil, a nil
// pointer or a string that is blank after trimming.
func IsEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case *string:
		return val == nil || strings.TrimSpace(*val) == ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
