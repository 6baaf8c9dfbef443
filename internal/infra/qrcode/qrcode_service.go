package qrcode

import (
	"net/url"
	"path"
	"strings"

	"rentflow/config"
	"rentflow/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "https://app.rentflow.local/contracts"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// New builds the QR code service from configuration, falling back to defaults.
func New(cfg *config.Config) service.QRCodeService {
	if cfg == nil || cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "", defaultBaseURL)
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateContractQR renders a PNG linking to the tenant view of the contract
func (s *qrcodeService) GenerateContractQR(contractID uuid.UUID) ([]byte, error) {
	if contractID == uuid.Nil {
		return nil, errors.New("contract ID is required")
	}

	code, err := qrcode.New(s.contractURL(contractID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	png, err := code.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return png, nil
}

// ParseContractQR extracts the contract ID from a scanned share link
func (s *qrcodeService) ParseContractQR(qrData string) (uuid.UUID, error) {
	link := strings.TrimSpace(qrData)
	if !strings.HasPrefix(link, s.baseURL+"/") {
		return uuid.Nil, errors.Errorf("QR code does not link to a contract: %q", qrData)
	}

	u, err := url.Parse(link)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code link")
	}

	contractID, err := uuid.Parse(path.Base(u.Path))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse contract ID")
	}

	return contractID, nil
}

func (s *qrcodeService) contractURL(contractID uuid.UUID) string {
	return s.baseURL + "/" + contractID.String()
}
