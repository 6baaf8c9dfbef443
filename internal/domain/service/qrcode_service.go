package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateContractQR generates a QR code linking to the tenant view of a contract
	GenerateContractQR(contractID uuid.UUID) ([]byte, error)

	// ParseContractQR parses QR code data and returns the contract ID
	ParseContractQR(qrData string) (uuid.UUID, error)
}
