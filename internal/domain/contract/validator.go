package contract

import (
	"encoding/json"
	"strconv"
	"strings"

	"rentflow/internal/domain/entity"
	domainerrors "rentflow/internal/domain/errors"
	"rentflow/internal/domain/normalize"
)

// Roots of the dotted key paths a template field may reference.
const (
	RootPartyA   = "A"
	RootPartyB   = "B"
	RootContract = "contract"
	RootRoom     = "room"
)

// MissingField is a required template field without a value.
type MissingField struct {
	Key      string `json:"key"`
	PdfField string `json:"pdfField"`
	Type     string `json:"type"`
}

// MissingDetails is the structured detail of a VALIDATION_REQUIRED_MISSING error.
type MissingDetails struct {
	Missing []MissingField `json:"missing"`
}

// MissingFields returns every required field of fields whose resolved value
// is empty, in template order.
func MissingFields(fields []entity.TemplateField, c *entity.Contract) []MissingField {
	resolver := newResolver(c)

	missing := make([]MissingField, 0)
	for _, field := range fields {
		if !field.Required {
			continue
		}
		if normalize.IsEmpty(resolver.resolve(field.Key)) {
			missing = append(missing, MissingField{Key: field.Key, PdfField: field.PdfField, Type: field.Type})
		}
	}

	return missing
}

// ValidateRequired fails with VALIDATION_REQUIRED_MISSING carrying the full
// list of missing fields.
func ValidateRequired(tmpl *entity.ContractTemplate, c *entity.Contract) error {
	if tmpl == nil {
		return nil
	}

	missing := MissingFields(tmpl.Fields, c)
	if len(missing) == 0 {
		return nil
	}

	return domainerrors.ErrRequiredFieldsMissing.
		WithMessagef("%d required field(s) missing", len(missing)).
		WithDetails(MissingDetails{Missing: missing})
}

type resolver struct {
	overrides map[string]any
	root      map[string]any
}

func newResolver(c *entity.Contract) *resolver {
	overrides := make(map[string]any, len(c.FieldValues))
	for _, fv := range c.FieldValues {
		// A later entry with the same key wins.
		overrides[fv.Key] = fv.Value
	}

	return &resolver{
		overrides: overrides,
		root: map[string]any{
			RootPartyA:   toGeneric(c.PartyA),
			RootPartyB:   toGeneric(c.PartyB),
			RootContract: toGeneric(c.Terms),
			RootRoom:     toGeneric(c.RoomSnapshot),
		},
	}
}

// resolve prefers an explicit field value and falls back to the key path
// when the override is absent or null.
func (r *resolver) resolve(key string) any {
	if v, ok := r.overrides[key]; ok && v != nil {
		return v
	}

	return lookupPath(r.root, key)
}

func lookupPath(root any, key string) any {
	current := root
	for _, segment := range strings.Split(key, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil
			}
			current = node[idx]
		default:
			return nil
		}
	}

	return current
}

// toGeneric maps a typed value onto its JSON shape so template keys use the
// same names as the API payloads.
func toGeneric(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil
	}

	return generic
}
