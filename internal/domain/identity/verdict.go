package identity

import (
	"fmt"
	"math"
	"strings"

	"rentflow/internal/domain/entity"
	"rentflow/internal/domain/normalize"
)

// Rejection labels joined into IdentityVerification.RejectedReason.
const (
	ReasonNameMismatch     = "name mismatch"
	ReasonIDNumberMismatch = "ID number mismatch"
	ReasonDOBMismatch      = "date of birth mismatch"
	ReasonAddressMismatch  = "address mismatch"
	ReasonFaceMismatch     = "face match score below threshold"
	ReasonOCRNoData        = "no data extracted from ID card"
)

// Policy configures the verdict.
type Policy struct {
	FaceMatchThreshold int
	AddressMatcher     AddressMatcher
}

// Verdict is the outcome of comparing declared data against the ID card.
type Verdict struct {
	NameMatch     bool
	IDNumberMatch bool
	DOBMatch      bool
	AddressMatch  bool
	FaceMatch     bool // True when the score reaches the threshold or no score applies.
	Reasons       []string
}

// Verified reports whether every check passed.
func (v Verdict) Verified() bool {
	return len(v.Reasons) == 0
}

// RejectedReason joins the failed checks for persistence.
func (v Verdict) RejectedReason() string {
	return strings.Join(v.Reasons, "; ")
}

// RoundScore converts a provider similarity to the stored 0-100 integer score.
func RoundScore(similarity *float64) *int {
	if similarity == nil || math.IsNaN(*similarity) {
		return nil
	}

	score := int(math.Round(*similarity))
	score = max(0, min(100, score))

	return &score
}

// Evaluate compares the tenant's declared data with OCR output.
// A nil faceScore means the face check does not apply.
func Evaluate(declared entity.Person, ocr *entity.IDCardData, faceScore *int, policy Policy) Verdict {
	matcher := policy.AddressMatcher
	if matcher == nil {
		matcher = SubstringMatcher
	}

	if ocr == nil {
		return Verdict{FaceMatch: faceScore == nil, Reasons: []string{ReasonOCRNoData}}
	}

	v := Verdict{
		NameMatch:     nonEmptyEqual(normalize.Name(declared.Name), normalize.Name(ocr.Name)),
		IDNumberMatch: nonEmptyEqual(normalize.IDNumber(declared.IDNumber), normalize.IDNumber(ocr.IDNumber)),
		DOBMatch:      dobEqual(declared.DOB, ocr.DOB),
		AddressMatch:  matcher.Match(normalize.Address(declared.Address), ocr.PermanentAddress),
		FaceMatch:     faceScore == nil || *faceScore >= policy.FaceMatchThreshold,
	}

	if !v.NameMatch {
		v.Reasons = append(v.Reasons, ReasonNameMismatch)
	}
	if !v.IDNumberMatch {
		v.Reasons = append(v.Reasons, ReasonIDNumberMismatch)
	}
	if !v.DOBMatch {
		v.Reasons = append(v.Reasons, ReasonDOBMismatch)
	}
	if !v.AddressMatch {
		v.Reasons = append(v.Reasons, ReasonAddressMismatch)
	}
	if !v.FaceMatch {
		v.Reasons = append(v.Reasons, fmt.Sprintf("%s (%d < %d)", ReasonFaceMismatch, *faceScore, policy.FaceMatchThreshold))
	}

	return v
}

func nonEmptyEqual(a, b string) bool {
	return a != "" && a == b
}

func dobEqual(declared any, extracted string) bool {
	a := normalize.DOB(declared)
	b := normalize.DOB(extracted)

	return a != nil && b != nil && *a == *b
}
