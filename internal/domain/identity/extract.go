// Package identity holds the matching rules of the eKYC flow: extracting card
// fields from provider output and deciding a verdict against declared data.
package identity

import (
	"fmt"
	"strconv"
	"strings"

	"rentflow/internal/domain/entity"
)

// Alternate keys used by OCR providers, most specific first.
var (
	nameKeys     = []string{"fullname", "full_name", "name"}
	dobKeys      = []string{"dob", "date_of_birth", "birthday"}
	idNumberKeys = []string{"id", "number", "id_number"}
	addressKeys  = []string{"address", "permanent_address", "home_town", "home"}
)

// ExtractIDCard reads the first OCR record into an IDCardData.
// It returns nil when records is empty.
func ExtractIDCard(records []map[string]any) *entity.IDCardData {
	if len(records) == 0 || records[0] == nil {
		return nil
	}
	record := records[0]

	return &entity.IDCardData{
		Name:             firstString(record, nameKeys),
		DOB:              firstString(record, dobKeys),
		IDNumber:         firstString(record, idNumberKeys),
		PermanentAddress: firstString(record, addressKeys),
	}
}

func firstString(record map[string]any, keys []string) string {
	for _, key := range keys {
		v, ok := record[key]
		if !ok || v == nil {
			continue
		}

		var s string
		switch val := v.(type) {
		case string:
			s = val
		case fmt.Stringer:
			s = val.String()
		case float64:
			s = strconv.FormatFloat(val, 'f', -1, 64)
		case int, int64:
			s = fmt.Sprint(val)
		default:
			continue
		}

		if s = strings.TrimSpace(s); s != "" && !strings.EqualFold(s, "N/A") {
			return s
		}
	}

	return ""
}
