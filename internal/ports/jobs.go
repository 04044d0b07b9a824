package ports

import "context"

type ReviewJob struct {
	ID         string
	MerchantID string
}

// ReviewJobRepository supports claiming and resolving KYB review jobs.
type ReviewJobRepository interface {
	// ClaimNextDue locks the next queued job whose due time has passed and
	// marks it running.
	ClaimNextDue(ctx context.Context) (job ReviewJob, found bool, err error)
	MarkCompleted(ctx context.Context, jobID string) error
	MarkFailed(ctx context.Context, jobID string, reason string) error
	// StartJobForMerchant claims the queued job for a specific merchant,
	// ignoring its due time. Used for the synchronous review path.
	StartJobForMerchant(ctx context.Context, merchantID string) (jobID string, err error)
	// CloseJobsForMerchant completes any open review job after an admin
	// decision so workers do not re-review a decided merchant.
	CloseJobsForMerchant(ctx context.Context, merchantID string) error
}
