package ports

import (
	"context"
	"errors"
	"time"

	"pivota/internal/domain"
)

// ErrNotFound is returned by repositories when a record does not exist.
// Shared here so services and adapters agree on one sentinel.
var ErrNotFound = errors.New("not found")

// RegisterMerchantParams carries everything the repository needs to persist a
// new onboarding record.
type RegisterMerchantParams struct {
	ID                string
	BusinessName      string
	StoreURL          string
	RegistrableDomain string
	Region            string
	ContactEmail      string
	ContactPhone      string
	ConfidenceScore   float64
	AutoApproved      bool
	FullKYBDeadline   time.Time
	// ReviewDueAt is when the queued KYB review job becomes claimable.
	ReviewDueAt time.Time
	// IdempotencyKey, when set, dedups retried registrations: a second insert
	// with the same key returns the original row instead of a new merchant.
	IdempotencyKey *string
}

// MerchantListFilter narrows the admin listing.
type MerchantListFilter struct {
	KYCStatus *domain.KYCStatus
	Limit     int
	Offset    int
}

// MerchantRepository manages onboarding records.
type MerchantRepository interface {
	Insert(ctx context.Context, p RegisterMerchantParams) (m *domain.Merchant, created bool, err error)
	Get(ctx context.Context, merchantID string) (*domain.Merchant, error)
	SetKYCStatus(ctx context.Context, merchantID string, status domain.KYCStatus, reason *string) error
	ConnectPSP(ctx context.Context, merchantID string, psp domain.PSPType, apiKeyHash string) error
	List(ctx context.Context, f MerchantListFilter) ([]domain.Merchant, error)
}

// DocumentRepository stores uploaded KYC document metadata.
type DocumentRepository interface {
	AddDocument(ctx context.Context, doc domain.Document) error
	DocumentsByMerchant(ctx context.Context, merchantID string) ([]domain.Document, error)
}

// EventRepository appends to and reads the per-merchant system log.
type EventRepository interface {
	AppendEvent(ctx context.Context, merchantID, code, detail string) error
	EventsByMerchant(ctx context.Context, merchantID string, limit int) ([]domain.Event, error)
}
