package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pivota/internal/domain"
	"pivota/internal/ports"
	onboardingsvc "pivota/internal/services/onboarding"
)

// fakeOnboarding records inputs and plays back scripted results, so these
// tests exercise only the transport layer: routing, binding, status codes.
type fakeOnboarding struct {
	lastRegister ports.RegisterInput
	registerErr  error
	merchant     *domain.Merchant
	statusErr    error
	setupErr     error
	lastFilter   ports.MerchantListFilter
	lastUploads  []ports.UploadInput
}

func (f *fakeOnboarding) Register(_ context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	f.lastRegister = in
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &ports.RegisterResult{Merchant: f.merchant}, nil
}

func (f *fakeOnboarding) Status(context.Context, string) (*domain.Merchant, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.merchant, nil
}

func (f *fakeOnboarding) SetupPSP(context.Context, ports.PSPSetupInput) (*ports.PSPSetupResult, error) {
	if f.setupErr != nil {
		return nil, f.setupErr
	}
	return &ports.PSPSetupResult{APIKey: "pk_live_test", Validated: true}, nil
}

func (f *fakeOnboarding) Approve(context.Context, string) error { return nil }

func (f *fakeOnboarding) Reject(context.Context, string, string) error { return nil }

func (f *fakeOnboarding) UploadDocuments(_ context.Context, merchantID string, uploads []ports.UploadInput) ([]domain.Document, error) {
	f.lastUploads = uploads
	docs := make([]domain.Document, 0, len(uploads))
	for _, up := range uploads {
		docs = append(docs, domain.Document{
			ID:         "doc_1",
			MerchantID: merchantID,
			Filename:   up.Filename,
			SizeBytes:  int64(len(up.Content)),
			UploadedAt: time.Now(),
		})
	}
	return docs, nil
}

func (f *fakeOnboarding) ListMerchants(_ context.Context, filter ports.MerchantListFilter) ([]domain.Merchant, error) {
	f.lastFilter = filter
	return []domain.Merchant{*f.merchant}, nil
}

func (f *fakeOnboarding) Events(context.Context, string, int) ([]domain.Event, error) {
	return []domain.Event{{Code: domain.EventRegistered, CreatedAt: time.Now()}}, nil
}

func approvedMerchant() *domain.Merchant {
	return &domain.Merchant{
		ID:              "merch_1",
		BusinessName:    "Test Shop",
		Region:          "US",
		KYCStatus:       domain.KYCApproved,
		ConfidenceScore: 0.9,
		CreatedAt:       time.Now(),
	}
}

func newTestServer(t *testing.T, fake *fakeOnboarding) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(New(fake).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &fakeOnboarding{})
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRegisterBindsBodyAndIdempotencyKey(t *testing.T) {
	fake := &fakeOnboarding{merchant: approvedMerchant()}
	srv := newTestServer(t, fake)

	body := `{"business_name":"Test Shop","store_url":"https://test.example.com","region":"US","contact_email":"a@test.example.com"}`
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/merchant/onboarding/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", "key-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Test Shop", fake.lastRegister.BusinessName)
	require.NotNil(t, fake.lastRegister.IdempotencyKey)
	assert.Equal(t, "key-123", *fake.lastRegister.IdempotencyKey)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "merch_1", out["merchant_id"])
}

func TestRegisterValidationErrorIs400(t *testing.T) {
	fake := &fakeOnboarding{
		registerErr: &onboardingsvc.ValidationError{Field: "store_url", Msg: "must be an absolute http(s) URL"},
	}
	srv := newTestServer(t, fake)

	body := `{"business_name":"x","store_url":"nope","region":"US","contact_email":"a@b.c"}`
	resp, err := http.Post(srv.URL+"/merchant/onboarding/register", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "store_url", out["error"])
}

func TestStatusReportsDerivedStep(t *testing.T) {
	fake := &fakeOnboarding{merchant: approvedMerchant()}
	srv := newTestServer(t, fake)

	resp, err := http.Get(srv.URL + "/merchant/onboarding/status/merch_1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "psp", out["step"], "approved but unconnected merchant sits at the psp step")
	assert.Equal(t, "approved", out["kyc_status"])
}

func TestStatusNotFoundIs404(t *testing.T) {
	fake := &fakeOnboarding{statusErr: ports.ErrNotFound}
	srv := newTestServer(t, fake)

	resp, err := http.Get(srv.URL + "/merchant/onboarding/status/merch_missing")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSetupPspConflictIs409(t *testing.T) {
	fake := &fakeOnboarding{setupErr: &onboardingsvc.ConflictError{Msg: onboardingsvc.MsgPSPAlreadyConnected}}
	srv := newTestServer(t, fake)

	body := `{"merchant_id":"merch_1","psp_type":"stripe","psp_sandbox_key":"sk_test_12345678"}`
	resp, err := http.Post(srv.URL+"/merchant/onboarding/psp/setup", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	// Clients key their soft-success path off this exact message.
	assert.Equal(t, onboardingsvc.MsgPSPAlreadyConnected, out["error"])
}

func TestSetupPspSuccess(t *testing.T) {
	fake := &fakeOnboarding{merchant: approvedMerchant()}
	srv := newTestServer(t, fake)

	body := `{"merchant_id":"merch_1","psp_type":"stripe","psp_sandbox_key":"sk_test_12345678"}`
	resp, err := http.Post(srv.URL+"/merchant/onboarding/psp/setup", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "pk_live_test", out["api_key"])
	assert.Equal(t, true, out["validated"])
}

func TestUploadMultipart(t *testing.T) {
	fake := &fakeOnboarding{merchant: approvedMerchant()}
	srv := newTestServer(t, fake)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "license.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("pdf-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/merchant/onboarding/upload/merch_1", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, fake.lastUploads, 1)
	assert.Equal(t, "license.pdf", fake.lastUploads[0].Filename)
	assert.Equal(t, []byte("pdf-bytes"), fake.lastUploads[0].Content)
}

func TestListMerchantsBindsQueryParams(t *testing.T) {
	fake := &fakeOnboarding{merchant: approvedMerchant()}
	srv := newTestServer(t, fake)

	resp, err := http.Get(srv.URL + "/merchant/onboarding/merchants?status=approved&limit=5&offset=10")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, fake.lastFilter.KYCStatus)
	assert.Equal(t, domain.KYCApproved, *fake.lastFilter.KYCStatus)
	assert.Equal(t, 5, fake.lastFilter.Limit)
	assert.Equal(t, 10, fake.lastFilter.Offset)

	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "merch_1", out[0]["merchant_id"])
}

func TestEvents(t *testing.T) {
	fake := &fakeOnboarding{merchant: approvedMerchant()}
	srv := newTestServer(t, fake)

	resp, err := http.Get(srv.URL + "/merchant/onboarding/events/merch_1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, domain.EventRegistered, out[0]["code"])
}
