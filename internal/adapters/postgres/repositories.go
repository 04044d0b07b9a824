package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"pivota/internal/domain"
	"pivota/internal/ports"
)

const merchantColumns = `
    id, business_name, store_url, registrable_domain, region,
    contact_email, contact_phone, kyc_status, confidence_score, auto_approved,
    reject_reason, psp_connected, psp_type, api_key_hash,
    full_kyb_deadline, created_at, verified_at`

func scanMerchant(row pgx.Row) (*domain.Merchant, error) {
	var m domain.Merchant
	var kycStatus string
	var pspType *string
	err := row.Scan(
		&m.ID, &m.BusinessName, &m.StoreURL, &m.RegistrableDomain, &m.Region,
		&m.ContactEmail, &m.ContactPhone, &kycStatus, &m.ConfidenceScore, &m.AutoApproved,
		&m.RejectReason, &m.PSPConnected, &pspType, &m.APIKeyHash,
		&m.FullKYBDeadline, &m.CreatedAt, &m.VerifiedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ports.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	m.KYCStatus = domain.KYCStatus(kycStatus)
	if pspType != nil {
		t := domain.PSPType(*pspType)
		m.PSPType = &t
	}
	return &m, nil
}

// MerchantRepository

func (db *DB) Insert(ctx context.Context, p ports.RegisterMerchantParams) (m *domain.Merchant, created bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var id string
	// The partial unique index on idempotency_key turns a retried register
	// into a no-op; NULL keys never conflict.
	err = tx.QueryRow(ctx, `
        INSERT INTO merchants (
            id, business_name, store_url, registrable_domain, region,
            contact_email, contact_phone, confidence_score, auto_approved,
            full_kyb_deadline, idempotency_key
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (idempotency_key) WHERE idempotency_key IS NOT NULL DO NOTHING
        RETURNING id
    `, p.ID, p.BusinessName, p.StoreURL, p.RegistrableDomain, p.Region,
		p.ContactEmail, p.ContactPhone, p.ConfidenceScore, p.AutoApproved,
		p.FullKYBDeadline, p.IdempotencyKey).Scan(&id)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		// Duplicate retry; hand back the original record.
		if p.IdempotencyKey == nil {
			return nil, false, fmt.Errorf("merchant insert returned no row without idempotency key")
		}
		err = tx.QueryRow(ctx, `SELECT id FROM merchants WHERE idempotency_key = $1`, *p.IdempotencyKey).Scan(&id)
		if err != nil {
			return nil, false, err
		}
	case err != nil:
		return nil, false, err
	default:
		created = true
		if _, err = tx.Exec(ctx, `
            INSERT INTO kyb_review_jobs (merchant_id, due_at) VALUES ($1, $2)
        `, id, p.ReviewDueAt); err != nil {
			return nil, false, err
		}
	}

	m, err = scanMerchant(tx.QueryRow(ctx, `SELECT `+merchantColumns+` FROM merchants WHERE id = $1`, id))
	if err != nil {
		return nil, false, err
	}
	return m, created, nil
}

func (db *DB) Get(ctx context.Context, merchantID string) (*domain.Merchant, error) {
	return scanMerchant(db.Pool.QueryRow(ctx, `SELECT `+merchantColumns+` FROM merchants WHERE id = $1`, merchantID))
}

func (db *DB) SetKYCStatus(ctx context.Context, merchantID string, status domain.KYCStatus, reason *string) error {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE merchants
        SET kyc_status = $2,
            reject_reason = $3,
            verified_at = CASE WHEN $2 = 'approved' THEN now() ELSE verified_at END
        WHERE id = $1
    `, merchantID, string(status), reason)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (db *DB) ConnectPSP(ctx context.Context, merchantID string, psp domain.PSPType, apiKeyHash string) error {
	tag, err := db.Pool.Exec(ctx, `
        UPDATE merchants
        SET psp_connected = TRUE, psp_type = $2, api_key_hash = $3
        WHERE id = $1 AND psp_connected = FALSE
    `, merchantID, string(psp), apiKeyHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Either the merchant is gone or a concurrent setup won the race.
		if _, err := db.Get(ctx, merchantID); err != nil {
			return err
		}
		return fmt.Errorf("merchant %s already psp-connected", merchantID)
	}
	return nil
}

func (db *DB) List(ctx context.Context, f ports.MerchantListFilter) ([]domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants`
	args := []any{}
	if f.KYCStatus != nil {
		query += ` WHERE kyc_status = $1`
		args = append(args, string(*f.KYCStatus))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d OFFSET %d`, f.Limit, f.Offset)
	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Merchant
	for rows.Next() {
		m, err := scanMerchant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

// DocumentRepository

func (db *DB) AddDocument(ctx context.Context, doc domain.Document) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO merchant_documents (id, merchant_id, filename, content_type, size_bytes, sha256, uploaded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, doc.ID, doc.MerchantID, doc.Filename, doc.ContentType, doc.SizeBytes, doc.SHA256, doc.UploadedAt)
	return err
}

func (db *DB) DocumentsByMerchant(ctx context.Context, merchantID string) ([]domain.Document, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, merchant_id, filename, content_type, size_bytes, sha256, uploaded_at
        FROM merchant_documents WHERE merchant_id = $1 ORDER BY uploaded_at
    `, merchantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Document
	for rows.Next() {
		var d domain.Document
		if err := rows.Scan(&d.ID, &d.MerchantID, &d.Filename, &d.ContentType, &d.SizeBytes, &d.SHA256, &d.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// EventRepository

func (db *DB) AppendEvent(ctx context.Context, merchantID, code, detail string) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO onboarding_events (merchant_id, code, detail) VALUES ($1, $2, $3)
    `, merchantID, code, detail)
	return err
}

func (db *DB) EventsByMerchant(ctx context.Context, merchantID string, limit int) ([]domain.Event, error) {
	rows, err := db.Pool.Query(ctx, `
        SELECT id, merchant_id, code, detail, created_at
        FROM onboarding_events WHERE merchant_id = $1
        ORDER BY created_at DESC LIMIT $2
    `, merchantID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.MerchantID, &e.Code, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
