package domain

import (
	"fmt"
	"time"
)

// Core domain models used internally. API types are generated from OpenAPI and
// sit in internal/api; keep these decoupled where helpful.

// KYCStatus is the server-driven verification state of a merchant.
type KYCStatus string

const (
	KYCPending  KYCStatus = "pending_verification"
	KYCApproved KYCStatus = "approved"
	KYCRejected KYCStatus = "rejected"
)

// ParseKYCStatus maps a wire value to a known status. Unknown values are an
// error so callers decide how to degrade instead of silently defaulting.
func ParseKYCStatus(s string) (KYCStatus, error) {
	switch KYCStatus(s) {
	case KYCPending, KYCApproved, KYCRejected:
		return KYCStatus(s), nil
	}
	return "", fmt.Errorf("unknown kyc status %q", s)
}

// PSPType identifies the payment service provider a merchant connects to.
type PSPType string

const (
	PSPStripe  PSPType = "stripe"
	PSPAdyen   PSPType = "adyen"
	PSPShopPay PSPType = "shoppay"
)

func ParsePSPType(s string) (PSPType, error) {
	switch PSPType(s) {
	case PSPStripe, PSPAdyen, PSPShopPay:
		return PSPType(s), nil
	}
	return "", fmt.Errorf("unsupported psp type %q", s)
}

// Merchant is the server-owned onboarding record.
type Merchant struct {
	ID                string
	BusinessName      string
	StoreURL          string
	RegistrableDomain string
	Region            string
	ContactEmail      string
	ContactPhone      string

	KYCStatus       KYCStatus
	ConfidenceScore float64
	AutoApproved    bool
	RejectReason    *string

	PSPConnected bool
	PSPType      *PSPType
	APIKeyHash   *string

	FullKYBDeadline time.Time
	CreatedAt       time.Time
	VerifiedAt      *time.Time
}

// APIKeyIssued reports whether a PSP key has ever been handed out. Only the
// hash is retained server-side; the plaintext is returned once at setup time.
func (m *Merchant) APIKeyIssued() bool { return m.APIKeyHash != nil }

// Document is stored KYC/KYB evidence metadata. File bytes live elsewhere;
// the record keeps enough to audit what was received.
type Document struct {
	ID          string
	MerchantID  string
	Filename    string
	ContentType string
	SizeBytes   int64
	SHA256      string
	UploadedAt  time.Time
}

// Event is one row of the per-merchant system log.
type Event struct {
	ID         string
	MerchantID string
	Code       string
	Detail     string
	CreatedAt  time.Time
}

// Event codes written by the onboarding service.
const (
	EventRegistered   = "merchant.registered"
	EventAutoApproved = "kyb.auto_approved"
	EventManualReview = "kyb.manual_review"
	EventApproved     = "kyb.approved"
	EventRejected     = "kyb.rejected"
	EventPSPConnected = "psp.connected"
	EventDocUploaded  = "document.uploaded"
)
