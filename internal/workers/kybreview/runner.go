package kybreview

import (
	"context"
	"fmt"
	"log"
	"time"

	"pivota/internal/domain"
	"pivota/internal/ports"
)

// Processor decides the outcome of one merchant's KYB review.
type Processor interface {
	Process(ctx context.Context, merchantID string) error
}

// Reviewer approves merchants whose registration scored above the unattended
// threshold and escalates the rest to an operator. The threshold decision was
// baked into the record at registration time, so re-scoring here is never
// needed.
type Reviewer struct {
	Merchants ports.MerchantRepository
	Events    ports.EventRepository
	Notifier  ports.Notifier
}

func (r Reviewer) Process(ctx context.Context, merchantID string) error {
	m, err := r.Merchants.Get(ctx, merchantID)
	if err != nil {
		return err
	}
	// An admin may have decided before the job came due.
	if m.KYCStatus != domain.KYCPending {
		return nil
	}
	if m.AutoApproved {
		if err := r.Merchants.SetKYCStatus(ctx, m.ID, domain.KYCApproved, nil); err != nil {
			return err
		}
		return r.Events.AppendEvent(ctx, m.ID, domain.EventAutoApproved,
			fmt.Sprintf("score=%.2f", m.ConfidenceScore))
	}
	if err := r.Events.AppendEvent(ctx, m.ID, domain.EventManualReview,
		fmt.Sprintf("score=%.2f below threshold", m.ConfidenceScore)); err != nil {
		return err
	}
	if r.Notifier != nil {
		msg := fmt.Sprintf("Merchant %s (%s) needs manual KYB review, score %.2f",
			m.ID, m.BusinessName, m.ConfidenceScore)
		if err := r.Notifier.Notify(ctx, msg); err != nil {
			// Escalation message loss is not fatal; the merchant stays
			// visible in the pending list.
			log.Printf("review notify error: %v", err)
		}
	}
	return nil
}

// Run starts worker goroutines that claim due review jobs and process them.
func Run(ctx context.Context, repo ports.ReviewJobRepository, processor Processor, concurrency int, pollInterval time.Duration) {
	if concurrency < 1 {
		return
	}
	jobsCh := make(chan ports.ReviewJob, concurrency)

	// dispatcher loop
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				close(jobsCh)
				return
			case <-ticker.C:
				for {
					job, found, err := repo.ClaimNextDue(ctx)
					if err != nil {
						log.Printf("review claim error: %v", err)
						break
					}
					if !found {
						break
					}
					jobsCh <- job
				}
			}
		}
	}()

	// workers
	for i := 0; i < concurrency; i++ {
		go func(idx int) {
			for job := range jobsCh {
				if err := processor.Process(ctx, job.MerchantID); err != nil {
					_ = repo.MarkFailed(ctx, job.ID, err.Error())
					log.Printf("review worker %d: job %s failed: %v", idx, job.ID, err)
					continue
				}
				if err := repo.MarkCompleted(ctx, job.ID); err != nil {
					log.Printf("review worker %d: complete err: %v", idx, err)
				}
			}
		}(i)
	}
}

// ProcessInline claims and processes the review job for a specific merchant
// synchronously, using the same processor logic as the background workers.
func ProcessInline(ctx context.Context, repo ports.ReviewJobRepository, processor Processor, merchantID string) error {
	jobID, err := repo.StartJobForMerchant(ctx, merchantID)
	if err != nil {
		return err
	}
	if err := processor.Process(ctx, merchantID); err != nil {
		_ = repo.MarkFailed(ctx, jobID, err.Error())
		return err
	}
	return repo.MarkCompleted(ctx, jobID)
}
