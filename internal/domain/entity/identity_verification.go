package entity

import "time"

// VerificationStatus is the verdict of an identity verification.
type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusFailed   VerificationStatus = "failed"
)

// IDCardData is the set of fields extracted from an ID card by OCR.
type IDCardData struct {
	Name             string `json:"name"`
	DOB              string `json:"dob"`
	IDNumber         string `json:"idNumber"`
	PermanentAddress string `json:"permanentAddress"`
}

// IdentityVerification records the outcome of an eKYC submission.
type IdentityVerification struct {
	CCCDFrontURL        string             `json:"cccdFrontUrl"`
	CCCDBackURL         string             `json:"cccdBackUrl"`
	SelfieURL           string             `json:"selfieUrl"`
	OCRData             *IDCardData        `json:"ocrData,omitempty"`
	FaceMatchScore      *int               `json:"faceMatchScore,omitempty"`
	Provider            string             `json:"provider"`
	Status              VerificationStatus `json:"status"`
	VerifiedAt          *time.Time         `json:"verifiedAt,omitempty"`
	RejectedReason      string             `json:"rejectedReason,omitempty"`
	RawProviderResponse map[string]any     `json:"rawProviderResponse,omitempty"`
	Attempts            int                `json:"attempts"`
	SubmittedAt         time.Time          `json:"submittedAt"`
}
