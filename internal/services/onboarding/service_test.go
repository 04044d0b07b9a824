package onboarding

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pivota/internal/domain"
	"pivota/internal/ports"
)

// memStore is an in-memory stand-in for the Postgres adapter, implementing
// every repository port the service needs.
type memStore struct {
	merchants map[string]*domain.Merchant
	byIdemKey map[string]string
	docs      []domain.Document
	events    []domain.Event
	openJobs  map[string]string // merchantID -> jobID
}

func newMemStore() *memStore {
	return &memStore{
		merchants: map[string]*domain.Merchant{},
		byIdemKey: map[string]string{},
		openJobs:  map[string]string{},
	}
}

func (s *memStore) Insert(_ context.Context, p ports.RegisterMerchantParams) (*domain.Merchant, bool, error) {
	if p.IdempotencyKey != nil {
		if id, ok := s.byIdemKey[*p.IdempotencyKey]; ok {
			return s.merchants[id], false, nil
		}
		s.byIdemKey[*p.IdempotencyKey] = p.ID
	}
	m := &domain.Merchant{
		ID:                p.ID,
		BusinessName:      p.BusinessName,
		StoreURL:          p.StoreURL,
		RegistrableDomain: p.RegistrableDomain,
		Region:            p.Region,
		ContactEmail:      p.ContactEmail,
		ContactPhone:      p.ContactPhone,
		KYCStatus:         domain.KYCPending,
		ConfidenceScore:   p.ConfidenceScore,
		AutoApproved:      p.AutoApproved,
		FullKYBDeadline:   p.FullKYBDeadline,
		CreatedAt:         time.Now(),
	}
	s.merchants[m.ID] = m
	s.openJobs[m.ID] = "job_" + m.ID
	return m, true, nil
}

func (s *memStore) Get(_ context.Context, id string) (*domain.Merchant, error) {
	m, ok := s.merchants[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (s *memStore) SetKYCStatus(_ context.Context, id string, status domain.KYCStatus, reason *string) error {
	m, ok := s.merchants[id]
	if !ok {
		return ports.ErrNotFound
	}
	m.KYCStatus = status
	m.RejectReason = reason
	if status == domain.KYCApproved {
		now := time.Now()
		m.VerifiedAt = &now
	}
	return nil
}

func (s *memStore) ConnectPSP(_ context.Context, id string, psp domain.PSPType, hash string) error {
	m, ok := s.merchants[id]
	if !ok {
		return ports.ErrNotFound
	}
	m.PSPConnected = true
	m.PSPType = &psp
	m.APIKeyHash = &hash
	return nil
}

func (s *memStore) List(_ context.Context, f ports.MerchantListFilter) ([]domain.Merchant, error) {
	var out []domain.Merchant
	for _, m := range s.merchants {
		if f.KYCStatus != nil && m.KYCStatus != *f.KYCStatus {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (s *memStore) AddDocument(_ context.Context, doc domain.Document) error {
	s.docs = append(s.docs, doc)
	return nil
}

func (s *memStore) DocumentsByMerchant(_ context.Context, id string) ([]domain.Document, error) {
	var out []domain.Document
	for _, d := range s.docs {
		if d.MerchantID == id {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *memStore) AppendEvent(_ context.Context, merchantID, code, detail string) error {
	s.events = append(s.events, domain.Event{MerchantID: merchantID, Code: code, Detail: detail})
	return nil
}

func (s *memStore) EventsByMerchant(_ context.Context, merchantID string, limit int) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range s.events {
		if e.MerchantID == merchantID {
			out = append(out, e)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) ClaimNextDue(context.Context) (ports.ReviewJob, bool, error) {
	return ports.ReviewJob{}, false, nil
}
func (s *memStore) MarkCompleted(context.Context, string) error { return nil }

func (s *memStore) MarkFailed(context.Context, string, string) error { return nil }

func (s *memStore) StartJobForMerchant(_ context.Context, merchantID string) (string, error) {
	id, ok := s.openJobs[merchantID]
	if !ok {
		return "", ports.ErrNotFound
	}
	return id, nil
}

func (s *memStore) CloseJobsForMerchant(_ context.Context, merchantID string) error {
	delete(s.openJobs, merchantID)
	return nil
}

func (s *memStore) eventCodes(merchantID string) []string {
	var codes []string
	for _, e := range s.events {
		if e.MerchantID == merchantID {
			codes = append(codes, e.Code)
		}
	}
	return codes
}

func newTestService(store *memStore) *Service {
	return New(store, store, store, store, Config{})
}

func validInput() ports.RegisterInput {
	return ports.RegisterInput{
		BusinessName: "Acme Surfboards",
		StoreURL:     "https://shop.acme-surf.com",
		Region:       "US",
		ContactEmail: "owner@acme-surf.com",
	}
}

func TestRegisterCreatesMerchant(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	res, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	require.False(t, res.Deduplicated)

	m := res.Merchant
	assert.True(t, strings.HasPrefix(m.ID, "merch_"))
	assert.Equal(t, domain.KYCPending, m.KYCStatus)
	assert.Equal(t, "acme-surf.com", m.RegistrableDomain)
	// https + US region + matching email domain clears the default threshold.
	assert.GreaterOrEqual(t, m.ConfidenceScore, 0.75)
	assert.True(t, m.AutoApproved)
	assert.Equal(t, []string{domain.EventRegistered}, store.eventCodes(m.ID))
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(newMemStore())

	cases := []struct {
		name   string
		mutate func(*ports.RegisterInput)
		field  string
	}{
		{"missing name", func(in *ports.RegisterInput) { in.BusinessName = "  " }, "business_name"},
		{"missing region", func(in *ports.RegisterInput) { in.Region = "" }, "region"},
		{"relative url", func(in *ports.RegisterInput) { in.StoreURL = "acme.com/shop" }, "store_url"},
		{"ftp url", func(in *ports.RegisterInput) { in.StoreURL = "ftp://acme.com" }, "store_url"},
		{"bad email", func(in *ports.RegisterInput) { in.ContactEmail = "not-an-email" }, "contact_email"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Register(context.Background(), in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestRegisterIdempotencyKeyDedups(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	key := "11111111-2222-3333-4444-555555555555"
	in := validInput()
	in.IdempotencyKey = &key

	first, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	second, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, second.Deduplicated)
	assert.Equal(t, first.Merchant.ID, second.Merchant.ID)
	assert.Len(t, store.merchants, 1)
	// The replay must not double-log the registration.
	assert.Equal(t, []string{domain.EventRegistered}, store.eventCodes(first.Merchant.ID))
}

func TestRegisterLowScoreNotAutoApproved(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	in := validInput()
	in.StoreURL = "http://shop.example.xyz"
	in.Region = "ZZ"
	in.ContactEmail = "owner@gmail.com"

	res, err := svc.Register(context.Background(), in)
	require.NoError(t, err)
	assert.False(t, res.Merchant.AutoApproved)
	assert.Less(t, res.Merchant.ConfidenceScore, 0.75)
}

func TestSetupPSPRequiresApproval(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	res, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.SetupPSP(context.Background(), ports.PSPSetupInput{
		MerchantID: res.Merchant.ID,
		PSPType:    "stripe",
		SandboxKey: "sk_test_12345678",
	})
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Contains(t, cerr.Msg, "KYC not approved")
}

func TestSetupPSPIssuesKeyOnce(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	res, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)
	require.NoError(t, svc.Approve(context.Background(), res.Merchant.ID))

	in := ports.PSPSetupInput{
		MerchantID: res.Merchant.ID,
		PSPType:    "stripe",
		SandboxKey: "sk_test_12345678",
	}
	out, err := svc.SetupPSP(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.APIKey, "pk_live_"))
	assert.True(t, out.Validated)

	m, err := svc.Status(context.Background(), res.Merchant.ID)
	require.NoError(t, err)
	assert.True(t, m.PSPConnected)
	require.NotNil(t, m.APIKeyHash)
	// Only the hash is kept; the plaintext must never be stored.
	assert.NotContains(t, *m.APIKeyHash, "pk_live_")

	// Second attempt hits the exact soft-success conflict message.
	_, err = svc.SetupPSP(context.Background(), in)
	var cerr *ConflictError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, MsgPSPAlreadyConnected, cerr.Msg)
}

func TestSetupPSPValidation(t *testing.T) {
	svc := newTestService(newMemStore())

	_, err := svc.SetupPSP(context.Background(), ports.PSPSetupInput{
		MerchantID: "merch_x", PSPType: "paypal", SandboxKey: "sk_test_12345678",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "psp_type", verr.Field)

	_, err = svc.SetupPSP(context.Background(), ports.PSPSetupInput{
		MerchantID: "merch_x", PSPType: "stripe", SandboxKey: "short",
	})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "psp_sandbox_key", verr.Field)
}

func TestApproveClosesReviewJob(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	res, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Approve(context.Background(), res.Merchant.ID))
	_, ok := store.openJobs[res.Merchant.ID]
	assert.False(t, ok, "review job should be closed after an admin decision")

	err = svc.Approve(context.Background(), res.Merchant.ID)
	var cerr *ConflictError
	assert.ErrorAs(t, err, &cerr)
}

func TestRejectDefaultsReasonAndBlocksConnected(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	res, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, svc.Reject(context.Background(), res.Merchant.ID, ""))
	m, err := svc.Status(context.Background(), res.Merchant.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.KYCRejected, m.KYCStatus)
	require.NotNil(t, m.RejectReason)
	assert.Equal(t, "rejected by admin", *m.RejectReason)

	// A merchant that already processes payments cannot be rejected here.
	connected, err := svc.Register(context.Background(), ports.RegisterInput{
		BusinessName: "Other Shop",
		StoreURL:     "https://other.example.com",
		Region:       "US",
		ContactEmail: "ops@other.example.com",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Approve(context.Background(), connected.Merchant.ID))
	_, err = svc.SetupPSP(context.Background(), ports.PSPSetupInput{
		MerchantID: connected.Merchant.ID, PSPType: "adyen", SandboxKey: "sk_test_12345678",
	})
	require.NoError(t, err)

	err = svc.Reject(context.Background(), connected.Merchant.ID, "fraud")
	var cerr *ConflictError
	assert.ErrorAs(t, err, &cerr)
}

func TestUploadDocuments(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	res, err := svc.Register(context.Background(), validInput())
	require.NoError(t, err)

	docs, err := svc.UploadDocuments(context.Background(), res.Merchant.ID, []ports.UploadInput{
		{Filename: "license.pdf", ContentType: "application/pdf", Content: []byte("pdf-bytes")},
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.True(t, strings.HasPrefix(docs[0].ID, "doc_"))
	assert.Equal(t, int64(9), docs[0].SizeBytes)
	assert.Len(t, docs[0].SHA256, 64)
	assert.Contains(t, store.eventCodes(res.Merchant.ID), domain.EventDocUploaded)

	_, err = svc.UploadDocuments(context.Background(), res.Merchant.ID, nil)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.UploadDocuments(context.Background(), "merch_missing", []ports.UploadInput{
		{Filename: "x", Content: []byte("x")},
	})
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestListMerchantsClampsLimit(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	_, err := svc.ListMerchants(context.Background(), ports.MerchantListFilter{Limit: 10_000, Offset: -3})
	require.NoError(t, err)
	// The clamp happens before the repository sees the filter; exercise both
	// defaulting paths.
	_, err = svc.ListMerchants(context.Background(), ports.MerchantListFilter{})
	require.NoError(t, err)
}

func TestRegistrableDomain(t *testing.T) {
	assert.Equal(t, "acme-surf.com", registrableDomain("https://shop.acme-surf.com/checkout"))
	assert.Equal(t, "example.co.uk", registrableDomain("https://www.example.co.uk"))
	assert.Equal(t, "localhost", registrableDomain("http://localhost:3000"))
}
