package entity

import (
	"time"

	"github.com/google/uuid"
)

// RenewalStatus is the state of a renewal request.
type RenewalStatus string

const (
	RenewalStatusPending  RenewalStatus = "pending"
	RenewalStatusApproved RenewalStatus = "approved"
	RenewalStatusRejected RenewalStatus = "rejected"
)

// RenewalRequest is a tenant request to extend a completed contract.
type RenewalRequest struct {
	Months           int           `json:"months"`
	RequestedEndDate time.Time     `json:"requestedEndDate"`
	Note             string        `json:"note,omitempty"`
	Status           RenewalStatus `json:"status"`
	RequestedAt      time.Time     `json:"requestedAt"`
	RequestedByID    uuid.UUID     `json:"requestedById"`
	RequestedByRole  Role          `json:"requestedByRole"`
	RespondedAt      *time.Time    `json:"respondedAt,omitempty"`
	RespondedByID    *uuid.UUID    `json:"respondedById,omitempty"`
}
