package identity

import (
	"testing"

	"rentflow/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func declaredTenant() entity.Person {
	return entity.Person{
		Name:     "Nguyễn Văn A",
		DOB:      "15/03/1998",
		IDNumber: "001098012345",
		Address:  map[string]any{"street": "12 Lý Thường Kiệt", "district": "Hoàn Kiếm", "province": "Hà Nội"},
	}
}

func matchingCard() *entity.IDCardData {
	return &entity.IDCardData{
		Name:             "NGUYỄN VĂN A",
		DOB:              "15/03/1998",
		IDNumber:         "001098012345",
		PermanentAddress: "12 Lý Thường Kiệt, Hoàn Kiếm, Hà Nội, Việt Nam",
	}
}

func intPtr(v int) *int {
	return &v
}

func TestExtractIDCard_AlternateKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record map[string]any
		want   entity.IDCardData
	}{
		{
			name:   "primary keys",
			record: map[string]any{"name": "A", "dob": "01/01/2000", "id": "123", "address": "X"},
			want:   entity.IDCardData{Name: "A", DOB: "01/01/2000", IDNumber: "123", PermanentAddress: "X"},
		},
		{
			name:   "alternate keys",
			record: map[string]any{"fullname": "B", "date_of_birth": "02/02/2001", "number": "456", "permanent_address": "Y"},
			want:   entity.IDCardData{Name: "B", DOB: "02/02/2001", IDNumber: "456", PermanentAddress: "Y"},
		},
		{
			name:   "home town fallback and N/A skipped",
			record: map[string]any{"name": "C", "dob": "N/A", "id": "789", "address": "N/A", "home_town": "Z"},
			want:   entity.IDCardData{Name: "C", IDNumber: "789", PermanentAddress: "Z"},
		},
		{
			name:   "numeric id",
			record: map[string]any{"name": "D", "id": float64(1098012345)},
			want:   entity.IDCardData{Name: "D", IDNumber: "1098012345"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ExtractIDCard([]map[string]any{tt.record, {"name": "ignored"}})
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}

	assert.Nil(t, ExtractIDCard(nil))
}

func TestEvaluate_AllMatch(t *testing.T) {
	t.Parallel()

	v := Evaluate(declaredTenant(), matchingCard(), intPtr(92), Policy{FaceMatchThreshold: 80})

	assert.True(t, v.Verified())
	assert.Empty(t, v.RejectedReason())
}

func TestEvaluate_DOBMismatch(t *testing.T) {
	t.Parallel()

	card := matchingCard()
	card.DOB = "16/03/1998"

	v := Evaluate(declaredTenant(), card, intPtr(92), Policy{FaceMatchThreshold: 80})

	assert.False(t, v.Verified())
	assert.False(t, v.DOBMatch)
	assert.Equal(t, ReasonDOBMismatch, v.RejectedReason())
}

func TestEvaluate_CollectsEveryReason(t *testing.T) {
	t.Parallel()

	card := &entity.IDCardData{Name: "Trần B", DOB: "garbage", IDNumber: "999", PermanentAddress: "Đà Nẵng"}
	v := Evaluate(declaredTenant(), card, intPtr(10), Policy{FaceMatchThreshold: 80})

	assert.Equal(t, []string{
		ReasonNameMismatch,
		ReasonIDNumberMismatch,
		ReasonDOBMismatch,
		ReasonAddressMismatch,
		"face match score below threshold (10 < 80)",
	}, v.Reasons)
}

func TestEvaluate_FaceThresholdBoundary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score *int
		want  bool
	}{
		{name: "equal to threshold passes", score: intPtr(80), want: true},
		{name: "one below threshold fails", score: intPtr(79), want: false},
		{name: "no score skips the check", score: nil, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			v := Evaluate(declaredTenant(), matchingCard(), tt.score, Policy{FaceMatchThreshold: 80})
			assert.Equal(t, tt.want, v.FaceMatch)
			assert.Equal(t, tt.want, v.Verified())
		})
	}
}

func TestEvaluate_NoOCRData(t *testing.T) {
	t.Parallel()

	v := Evaluate(declaredTenant(), nil, nil, Policy{FaceMatchThreshold: 80})

	assert.False(t, v.Verified())
	assert.Equal(t, ReasonOCRNoData, v.RejectedReason())
}

func TestEvaluate_EmptyDeclaredFieldsNeverMatch(t *testing.T) {
	t.Parallel()

	v := Evaluate(entity.Person{}, &entity.IDCardData{}, nil, Policy{FaceMatchThreshold: 80})

	assert.False(t, v.NameMatch)
	assert.False(t, v.IDNumberMatch)
	assert.False(t, v.DOBMatch)
	assert.False(t, v.AddressMatch)
}

func TestAddressMatchers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		matcher   AddressMatcher
		declared  string
		extracted string
		want      bool
	}{
		{name: "substring case insensitive", matcher: SubstringMatcher, declared: "hoàn kiếm, HÀ NỘI", extracted: "12 Lý Thường Kiệt, Hoàn Kiếm, Hà Nội", want: true},
		{name: "substring requires diacritics", matcher: SubstringMatcher, declared: "Hoan Kiem", extracted: "Hoàn Kiếm, Hà Nội", want: false},
		{name: "folded ignores diacritics", matcher: FoldedMatcher, declared: "Hoan Kiem", extracted: "Hoàn Kiếm, Hà Nội", want: true},
		{name: "folded ignores punctuation", matcher: FoldedMatcher, declared: "Hoan Kiem Ha Noi", extracted: "Hoàn Kiếm, Hà Nội", want: true},
		{name: "empty declared never matches", matcher: SubstringMatcher, declared: "  ", extracted: "Hà Nội", want: false},
		{name: "longer declared does not match", matcher: SubstringMatcher, declared: "Hà Nội, Việt Nam, Châu Á", extracted: "Hà Nội, Việt Nam", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.matcher.Match(tt.declared, tt.extracted))
		})
	}
}

func TestMatcherByName(t *testing.T) {
	t.Parallel()

	assert.True(t, MatcherByName("folded").Match("Ha Noi", "Hà Nội"))
	assert.False(t, MatcherByName("substring").Match("Ha Noi", "Hà Nội"))
	assert.False(t, MatcherByName("").Match("Ha Noi", "Hà Nội"))
}

func TestRoundScore(t *testing.T) {
	t.Parallel()

	f := func(v float64) *float64 { return &v }

	assert.Nil(t, RoundScore(nil))
	assert.Equal(t, 92, *RoundScore(f(91.6)))
	assert.Equal(t, 80, *RoundScore(f(79.5)))
	assert.Equal(t, 100, *RoundScore(f(100.4)))
	assert.Equal(t, 0, *RoundScore(f(-3)))
}
