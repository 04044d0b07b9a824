// Package client is a thin SDK over the Pivota merchant onboarding REST API.
// It owns the client-side half of the flow: step projection, idempotent
// action dispatch, bounded status polling, and the local session cache.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"pivota/internal/domain"
)

const idempotencyHeader = "Idempotency-Key"

type Client struct {
	baseURL string
	httpc   *http.Client
	session *Session
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpc = hc }
}

// WithSession attaches a persistent session so merchant identity, the issued
// API key, and pending idempotency keys survive restarts.
func WithSession(s *Session) Option {
	return func(c *Client) { c.session = s }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Session returns the attached session, or nil.
func (c *Client) Session() *Session { return c.session }

// RegisterInput mirrors the register endpoint payload.
type RegisterInput struct {
	BusinessName string `json:"business_name"`
	StoreURL     string `json:"store_url"`
	Region       string `json:"region"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone,omitempty"`
}

// Registration is the server's answer to a register call.
type Registration struct {
	MerchantID      string    `json:"merchant_id"`
	AutoApproved    bool      `json:"auto_approved"`
	ConfidenceScore float64   `json:"confidence_score"`
	FullKYBDeadline time.Time `json:"full_kyb_deadline"`
	Deduplicated    bool      `json:"deduplicated,omitempty"`
}

// StatusRecord is the client-side projection of the onboarding record.
type StatusRecord struct {
	MerchantID   string     `json:"merchant_id"`
	BusinessName string     `json:"business_name"`
	KYCStatus    string     `json:"kyc_status"`
	PSPConnected bool       `json:"psp_connected"`
	PSPType      *string    `json:"psp_type,omitempty"`
	APIKeyIssued bool       `json:"api_key_issued"`
	ReportedStep string     `json:"step,omitempty"`
	RejectReason *string    `json:"reject_reason,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
}

// Step derives the onboarding step locally from the record fields. The server
// reports its own derivation in ReportedStep; both run the same function.
func (r *StatusRecord) Step() domain.Step {
	if r == nil {
		return domain.StepRegister
	}
	return domain.DeriveStep(&domain.StatusProjection{
		KYCStatus:    domain.KYCStatus(r.KYCStatus),
		PSPConnected: r.PSPConnected,
	})
}

// Register creates a merchant record. The idempotency key persists in the
// session until the call succeeds, so retries after a network failure cannot
// mint duplicate merchants.
func (c *Client) Register(ctx context.Context, in RegisterInput) (*Registration, error) {
	key, err := c.pendingKey("register")
	if err != nil {
		return nil, err
	}
	var out Registration
	if err := c.doJSON(ctx, http.MethodPost, "/merchant/onboarding/register", key, in, &out); err != nil {
		return nil, err
	}
	if c.session != nil {
		if err := c.session.SetMerchantID(out.MerchantID); err != nil {
			return nil, err
		}
		if err := c.session.ClearPendingKey("register"); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// Status fetches the current onboarding record.
func (c *Client) Status(ctx context.Context, merchantID string) (*StatusRecord, error) {
	var out StatusRecord
	path := "/merchant/onboarding/status/" + url.PathEscape(merchantID)
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh fetches the session merchant's record and updates the cached step.
// regressed is true when the server reports an earlier step than the one the
// session last observed; the assumed monotonic progression never regresses in
// normal operation, so callers should surface it instead of ignoring it.
func (c *Client) Refresh(ctx context.Context) (rec *StatusRecord, regressed bool, err error) {
	if c.session == nil || c.session.MerchantID() == "" {
		return nil, false, fmt.Errorf("no merchant in session; register first")
	}
	rec, err = c.Status(ctx, c.session.MerchantID())
	if err != nil {
		return nil, false, err
	}
	step := rec.Step()
	if last := c.session.LastStep(); last != "" {
		regressed = step.Before(domain.Step(last))
	}
	if err := c.session.SetLastStep(string(step)); err != nil {
		return nil, false, err
	}
	return rec, regressed, nil
}

// SetupPSPInput mirrors the PSP setup payload.
type SetupPSPInput struct {
	MerchantID    string `json:"merchant_id"`
	PSPType       string `json:"psp_type"`
	PSPSandboxKey string `json:"psp_sandbox_key"`
}

// PSPSetup is the outcome of a PSP setup call. AlreadyConnected marks the
// soft-success path: the server refused a duplicate setup, so no new key was
// issued and APIKey is whatever the session had cached (possibly empty).
type PSPSetup struct {
	APIKey           string
	Validated        bool
	AlreadyConnected bool
}

// SetupPSP connects the merchant to a PSP. The returned API key is shown
// exactly once by the server; it is cached in the session because there is no
// way to re-fetch it.
func (c *Client) SetupPSP(ctx context.Context, in SetupPSPInput) (*PSPSetup, error) {
	key, err := c.pendingKey("psp-setup")
	if err != nil {
		return nil, err
	}
	var out struct {
		APIKey    string `json:"api_key"`
		Validated bool   `json:"validated"`
	}
	err = c.doJSON(ctx, http.MethodPost, "/merchant/onboarding/psp/setup", key, in, &out)
	if IsAlreadyConnected(err) {
		res := &PSPSetup{AlreadyConnected: true}
		if c.session != nil {
			res.APIKey = c.session.APIKey()
			if err := c.session.ClearPendingKey("psp-setup"); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	if err != nil {
		return nil, err
	}
	if c.session != nil {
		if err := c.session.SetAPIKey(out.APIKey); err != nil {
			return nil, err
		}
		if err := c.session.ClearPendingKey("psp-setup"); err != nil {
			return nil, err
		}
	}
	return &PSPSetup{APIKey: out.APIKey, Validated: out.Validated}, nil
}

// Approve flips a merchant to approved. Admin surface.
func (c *Client) Approve(ctx context.Context, merchantID string) error {
	path := "/merchant/onboarding/approve/" + url.PathEscape(merchantID)
	return c.doJSON(ctx, http.MethodPost, path, "", nil, nil)
}

// Reject marks a merchant rejected with an optional reason. Admin surface.
func (c *Client) Reject(ctx context.Context, merchantID, reason string) error {
	path := "/merchant/onboarding/reject/" + url.PathEscape(merchantID)
	if reason != "" {
		path += "?reason=" + url.QueryEscape(reason)
	}
	return c.doJSON(ctx, http.MethodPost, path, "", nil, nil)
}

// DocumentMeta describes one stored KYC document.
type DocumentMeta struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	SHA256      string    `json:"sha256"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// UploadDocument sends one KYC document as multipart form data.
func (c *Client) UploadDocument(ctx context.Context, merchantID, filename string, content []byte) ([]DocumentMeta, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := fw.Write(content); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	path := "/merchant/onboarding/upload/" + url.PathEscape(merchantID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out []DocumentMeta
	if err := c.send(req, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MerchantSummary is one row of the admin merchant listing.
type MerchantSummary struct {
	MerchantID      string    `json:"merchant_id"`
	BusinessName    string    `json:"business_name"`
	Region          string    `json:"region"`
	KYCStatus       string    `json:"kyc_status"`
	PSPConnected    bool      `json:"psp_connected"`
	ConfidenceScore float64   `json:"confidence_score"`
	CreatedAt       time.Time `json:"created_at"`
}

// ListMerchants fetches the admin listing, optionally filtered by KYC status.
func (c *Client) ListMerchants(ctx context.Context, status string, limit, offset int) ([]MerchantSummary, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	path := "/merchant/onboarding/merchants"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var out []MerchantSummary
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OnboardingEvent is one system-log entry.
type OnboardingEvent struct {
	Code      string    `json:"code"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// Events fetches the merchant's system log, most recent first.
func (c *Client) Events(ctx context.Context, merchantID string, limit int) ([]OnboardingEvent, error) {
	path := "/merchant/onboarding/events/" + url.PathEscape(merchantID)
	if limit > 0 {
		path += "?limit=" + strconv.Itoa(limit)
	}
	var out []OnboardingEvent
	if err := c.doJSON(ctx, http.MethodGet, path, "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// pendingKey resolves the idempotency key for an action: session-persisted
// when a session is attached, fresh otherwise.
func (c *Client) pendingKey(action string) (string, error) {
	if c.session != nil {
		return c.session.PendingKey(action)
	}
	return uuid.NewString(), nil
}

func (c *Client) doJSON(ctx context.Context, method, path, idempotencyKey string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set(idempotencyHeader, idempotencyKey)
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if out == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var wire struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if json.Unmarshal(raw, &wire) == nil && wire.Error != "" {
		apiErr.Message = wire.Error
		apiErr.Detail = wire.Detail
	} else {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
