package ports

import (
	"context"

	"pivota/internal/domain"
)

// RegisterInput is the register action payload after transport decoding.
type RegisterInput struct {
	BusinessName   string
	StoreURL       string
	Region         string
	ContactEmail   string
	ContactPhone   string
	IdempotencyKey *string
}

// RegisterResult is what the register endpoint returns to the merchant.
type RegisterResult struct {
	Merchant     *domain.Merchant
	Deduplicated bool
}

// PSPSetupInput is the connect-PSP action payload.
type PSPSetupInput struct {
	MerchantID     string
	PSPType        string
	SandboxKey     string
	IdempotencyKey *string
}

// PSPSetupResult carries the one-time plaintext API key.
type PSPSetupResult struct {
	APIKey    string
	Validated bool
}

// UploadInput is one uploaded KYC document.
type UploadInput struct {
	MerchantID  string
	Filename    string
	ContentType string
	Content     []byte
}

// Onboarding is the application service behind the HTTP API.
type Onboarding interface {
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	Status(ctx context.Context, merchantID string) (*domain.Merchant, error)
	SetupPSP(ctx context.Context, in PSPSetupInput) (*PSPSetupResult, error)
	Approve(ctx context.Context, merchantID string) error
	Reject(ctx context.Context, merchantID, reason string) error
	UploadDocuments(ctx context.Context, merchantID string, docs []UploadInput) ([]domain.Document, error)
	ListMerchants(ctx context.Context, f MerchantListFilter) ([]domain.Merchant, error)
	Events(ctx context.Context, merchantID string, limit int) ([]domain.Event, error)
}

// Notifier pushes operator-facing messages (e.g. manual review escalations).
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
