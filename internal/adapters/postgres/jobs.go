package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"pivota/internal/ports"
)

// ClaimNextDue selects the next due queued review job using SKIP LOCKED and
// marks it running.
func (db *DB) ClaimNextDue(ctx context.Context) (job ports.ReviewJob, found bool, err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return job, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `
        SELECT id, merchant_id FROM kyb_review_jobs
        WHERE status = 'queued' AND due_at <= now()
        ORDER BY due_at
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `).Scan(&job.ID, &job.MerchantID)
	if errors.Is(err, pgx.ErrNoRows) {
		return job, false, nil
	}
	if err != nil {
		return job, false, err
	}

	if _, err = tx.Exec(ctx, `
        UPDATE kyb_review_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, job.ID); err != nil {
		return job, false, err
	}
	return job, true, nil
}

func (db *DB) MarkCompleted(ctx context.Context, jobID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
        UPDATE kyb_review_jobs SET status='completed', finished_at=now() WHERE id=$1
    `, jobID)
	return err
}

func (db *DB) MarkFailed(ctx context.Context, jobID string, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Pool.Exec(ctx, `
        UPDATE kyb_review_jobs SET status='failed', finished_at=now(), failure_reason=$2 WHERE id=$1
    `, jobID, reason)
	return err
}

// StartJobForMerchant marks the queued job for a specific merchant as running
// regardless of its due time, and returns the job id.
func (db *DB) StartJobForMerchant(ctx context.Context, merchantID string) (string, error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	var jobID string
	err = tx.QueryRow(ctx, `
        SELECT id FROM kyb_review_jobs
        WHERE merchant_id = $1 AND status = 'queued'
        FOR UPDATE SKIP LOCKED
        LIMIT 1
    `, merchantID).Scan(&jobID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ports.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	if _, err = tx.Exec(ctx, `
        UPDATE kyb_review_jobs SET status='running', started_at=now(), attempts=attempts+1 WHERE id=$1
    `, jobID); err != nil {
		return "", err
	}
	return jobID, nil
}

// CloseJobsForMerchant completes any queued or running review jobs after an
// admin decision.
func (db *DB) CloseJobsForMerchant(ctx context.Context, merchantID string) error {
	_, err := db.Pool.Exec(ctx, `
        UPDATE kyb_review_jobs SET status='completed', finished_at=now()
        WHERE merchant_id = $1 AND status IN ('queued', 'running')
    `, merchantID)
	return err
}
