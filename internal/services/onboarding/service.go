package onboarding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/publicsuffix"

	"pivota/internal/domain"
	"pivota/internal/ports"
)

// MsgPSPAlreadyConnected is the conflict message clients special-case as a
// soft success when retrying PSP setup.
const MsgPSPAlreadyConnected = "PSP already connected"

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Msg) }

// ConflictError reports a business-rule conflict (HTTP 409).
type ConflictError struct{ Msg string }

func (e *ConflictError) Error() string { return e.Msg }

// Config tunes review scheduling and approval.
type Config struct {
	// ReviewDelay is how long after registration the KYB review job becomes
	// due. The default mirrors the observed auto-approval window.
	ReviewDelay time.Duration
	// AutoApproveThreshold is the minimum confidence score for unattended
	// approval; merchants below it wait for an admin decision.
	AutoApproveThreshold float64
	// FullKYBDeadline is how long a merchant may process before full KYB
	// documentation is mandatory.
	FullKYBDeadline time.Duration
}

func (c Config) withDefaults() Config {
	if c.ReviewDelay <= 0 {
		c.ReviewDelay = 5 * time.Second
	}
	if c.AutoApproveThreshold <= 0 {
		c.AutoApproveThreshold = 0.75
	}
	if c.FullKYBDeadline <= 0 {
		c.FullKYBDeadline = 90 * 24 * time.Hour
	}
	return c
}

type Service struct {
	merchants ports.MerchantRepository
	docs      ports.DocumentRepository
	events    ports.EventRepository
	jobs      ports.ReviewJobRepository
	cfg       Config
	now       func() time.Time
}

func New(merchants ports.MerchantRepository, docs ports.DocumentRepository, events ports.EventRepository, jobs ports.ReviewJobRepository, cfg Config) *Service {
	return &Service{
		merchants: merchants,
		docs:      docs,
		events:    events,
		jobs:      jobs,
		cfg:       cfg.withDefaults(),
		now:       time.Now,
	}
}

func (s *Service) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	if err := validateRegister(in); err != nil {
		return nil, err
	}
	registrable := registrableDomain(in.StoreURL)
	score := confidenceScore(in, registrable)

	now := s.now()
	params := ports.RegisterMerchantParams{
		ID:                "merch_" + uuid.NewString(),
		BusinessName:      strings.TrimSpace(in.BusinessName),
		StoreURL:          in.StoreURL,
		RegistrableDomain: registrable,
		Region:            in.Region,
		ContactEmail:      in.ContactEmail,
		ContactPhone:      in.ContactPhone,
		ConfidenceScore:   score,
		AutoApproved:      score >= s.cfg.AutoApproveThreshold,
		FullKYBDeadline:   now.Add(s.cfg.FullKYBDeadline),
		ReviewDueAt:       now.Add(s.cfg.ReviewDelay),
		IdempotencyKey:    in.IdempotencyKey,
	}
	m, created, err := s.merchants.Insert(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("register merchant: %w", err)
	}
	if created {
		detail := fmt.Sprintf("business=%q domain=%s score=%.2f", m.BusinessName, m.RegistrableDomain, m.ConfidenceScore)
		if err := s.events.AppendEvent(ctx, m.ID, domain.EventRegistered, detail); err != nil {
			return nil, err
		}
	}
	return &ports.RegisterResult{Merchant: m, Deduplicated: !created}, nil
}

func (s *Service) Status(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	return s.merchants.Get(ctx, merchantID)
}

func (s *Service) SetupPSP(ctx context.Context, in ports.PSPSetupInput) (*ports.PSPSetupResult, error) {
	psp, err := domain.ParsePSPType(in.PSPType)
	if err != nil {
		return nil, &ValidationError{Field: "psp_type", Msg: err.Error()}
	}
	if len(strings.TrimSpace(in.SandboxKey)) < 8 {
		return nil, &ValidationError{Field: "psp_sandbox_key", Msg: "sandbox key is required"}
	}
	m, err := s.merchants.Get(ctx, in.MerchantID)
	if err != nil {
		return nil, err
	}
	// Duplicate setup attempts (retries without the idempotency key, double
	// clicks) land here; clients treat this exact message as a soft success.
	if m.PSPConnected {
		return nil, &ConflictError{Msg: MsgPSPAlreadyConnected}
	}
	if m.KYCStatus != domain.KYCApproved {
		return nil, &ConflictError{Msg: fmt.Sprintf("KYC not approved (status %s)", m.KYCStatus)}
	}

	key := "pk_live_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	sum := sha256.Sum256([]byte(key))
	if err := s.merchants.ConnectPSP(ctx, m.ID, psp, hex.EncodeToString(sum[:])); err != nil {
		return nil, fmt.Errorf("connect psp: %w", err)
	}
	if err := s.events.AppendEvent(ctx, m.ID, domain.EventPSPConnected, string(psp)); err != nil {
		return nil, err
	}
	return &ports.PSPSetupResult{APIKey: key, Validated: true}, nil
}

func (s *Service) Approve(ctx context.Context, merchantID string) error {
	m, err := s.merchants.Get(ctx, merchantID)
	if err != nil {
		return err
	}
	if m.KYCStatus == domain.KYCApproved {
		return &ConflictError{Msg: "merchant already approved"}
	}
	if err := s.merchants.SetKYCStatus(ctx, merchantID, domain.KYCApproved, nil); err != nil {
		return err
	}
	if err := s.jobs.CloseJobsForMerchant(ctx, merchantID); err != nil {
		return err
	}
	return s.events.AppendEvent(ctx, merchantID, domain.EventApproved, "approved by admin")
}

func (s *Service) Reject(ctx context.Context, merchantID, reason string) error {
	m, err := s.merchants.Get(ctx, merchantID)
	if err != nil {
		return err
	}
	// A PSP-connected merchant cannot be retroactively rejected through the
	// onboarding API; that would need an offboarding flow with PSP teardown.
	if m.PSPConnected {
		return &ConflictError{Msg: "merchant already PSP-connected; cannot reject"}
	}
	if reason == "" {
		reason = "rejected by admin"
	}
	if err := s.merchants.SetKYCStatus(ctx, merchantID, domain.KYCRejected, &reason); err != nil {
		return err
	}
	if err := s.jobs.CloseJobsForMerchant(ctx, merchantID); err != nil {
		return err
	}
	return s.events.AppendEvent(ctx, merchantID, domain.EventRejected, reason)
}

func (s *Service) UploadDocuments(ctx context.Context, merchantID string, uploads []ports.UploadInput) ([]domain.Document, error) {
	if len(uploads) == 0 {
		return nil, &ValidationError{Field: "file", Msg: "at least one file is required"}
	}
	if _, err := s.merchants.Get(ctx, merchantID); err != nil {
		return nil, err
	}
	stored := make([]domain.Document, 0, len(uploads))
	for _, up := range uploads {
		sum := sha256.Sum256(up.Content)
		doc := domain.Document{
			ID:          "doc_" + uuid.NewString(),
			MerchantID:  merchantID,
			Filename:    up.Filename,
			ContentType: up.ContentType,
			SizeBytes:   int64(len(up.Content)),
			SHA256:      hex.EncodeToString(sum[:]),
			UploadedAt:  s.now(),
		}
		if err := s.docs.AddDocument(ctx, doc); err != nil {
			return nil, fmt.Errorf("store document %s: %w", up.Filename, err)
		}
		if err := s.events.AppendEvent(ctx, merchantID, domain.EventDocUploaded, up.Filename); err != nil {
			return nil, err
		}
		stored = append(stored, doc)
	}
	return stored, nil
}

func (s *Service) ListMerchants(ctx context.Context, f ports.MerchantListFilter) ([]domain.Merchant, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		f.Limit = 200
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.merchants.List(ctx, f)
}

func (s *Service) Events(ctx context.Context, merchantID string, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 100
	}
	if _, err := s.merchants.Get(ctx, merchantID); err != nil {
		return nil, err
	}
	return s.events.EventsByMerchant(ctx, merchantID, limit)
}

func validateRegister(in ports.RegisterInput) error {
	if strings.TrimSpace(in.BusinessName) == "" {
		return &ValidationError{Field: "business_name", Msg: "required"}
	}
	if in.Region == "" {
		return &ValidationError{Field: "region", Msg: "required"}
	}
	u, err := url.Parse(in.StoreURL)
	if err != nil || u.Hostname() == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &ValidationError{Field: "store_url", Msg: "must be an absolute http(s) URL"}
	}
	if _, err := mail.ParseAddress(in.ContactEmail); err != nil {
		return &ValidationError{Field: "contact_email", Msg: "invalid email address"}
	}
	return nil
}

// registrableDomain reduces a store URL to its eTLD+1, falling back to the
// bare hostname for things like internal test domains.
func registrableDomain(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return strings.ToLower(host)
	}
	return strings.ToLower(registrable)
}

// confidenceScore is a deliberately simple deterministic stub standing in for
// the upstream KYB scoring pipeline. It only exists so the auto-approval path
// is observable; it is not a risk model.
func confidenceScore(in ports.RegisterInput, registrable string) float64 {
	score := 0.55
	if strings.HasPrefix(in.StoreURL, "https://") {
		score += 0.15
	}
	switch in.Region {
	case "US", "GB", "EU", "AU", "CA":
		score += 0.20
	}
	if at := strings.LastIndex(in.ContactEmail, "@"); at >= 0 && registrable != "" {
		if strings.HasSuffix(strings.ToLower(in.ContactEmail[at+1:]), registrable) {
			score += 0.05
		}
	}
	if score > 0.99 {
		score = 0.99
	}
	return score
}
