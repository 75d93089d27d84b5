package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"rackline/internal/domain/entity"
	"rackline/internal/domain/repository"
	"rackline/pkg/errors"
	"rackline/pkg/logger"
)

// QuoteUseCase manages quote submissions from the storefront's
// request-a-quote form, with the same offline-mirror contract as
// orders.
type QuoteUseCase struct {
	api            QuoteAPI
	submissionRepo repository.SubmissionRepository
}

func NewQuoteUseCase(api QuoteAPI, submissionRepo repository.SubmissionRepository) *QuoteUseCase {
	return &QuoteUseCase{
		api:            api,
		submissionRepo: submissionRepo,
	}
}

type CreateQuoteInput struct {
	Email   string
	Company string
	Items   []entity.OrderItem
	Message string
}

func newQuoteReference() string {
	return "RQ-" + strings.ToUpper(uuid.NewString()[:8])
}

// List returns all quote submissions, falling back to the local mirror
// with offline=true when the upstream is unreachable.
func (uc *QuoteUseCase) List(ctx context.Context) ([]entity.Submission, bool, error) {
	submissions, err := uc.api.FetchSubmissions(ctx)
	if err != nil {
		logger.Warn("quotes: upstream list failed, serving local mirror: %v", err)
		return uc.submissionRepo.GetAll(), true, nil
	}
	return submissions, false, nil
}

func (uc *QuoteUseCase) find(ctx context.Context, id string) (*entity.Submission, error) {
	submissions, err := uc.api.FetchSubmissions(ctx)
	if err != nil {
		submissions = uc.submissionRepo.GetAll()
	}
	for i := range submissions {
		if submissions[i].ID == id || submissions[i].Reference == id {
			return &submissions[i], nil
		}
	}
	return nil, errors.NotFound("Quote", nil)
}

// Create captures a quote request. Like orders, the items are snapshots
// and the submission is mirrored locally when the upstream is down.
func (uc *QuoteUseCase) Create(ctx context.Context, input CreateQuoteInput) (*entity.Submission, bool, error) {
	if input.Email == "" {
		return nil, false, errors.BadRequest("Email is required", nil)
	}
	if len(input.Items) == 0 {
		return nil, false, errors.BadRequest("Quote request must contain at least one item", nil)
	}

	now := time.Now()
	submission := entity.Submission{
		ID:        uuid.NewString(),
		Reference: newQuoteReference(),
		Email:     input.Email,
		Company:   input.Company,
		Items:     input.Items,
		Message:   input.Message,
		Status:    entity.QuoteReceived,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.api.CreateSubmission(ctx, &submission); err != nil {
		logger.Warn("quotes: upstream create failed, saving locally: %v", err)
		if storeErr := uc.submissionRepo.Add(&submission); storeErr != nil {
			return nil, false, storeErr
		}
		return &submission, true, nil
	}
	return &submission, false, nil
}

// UpdateStatus moves a quote through its transition graph with the same
// optimistic-write contract as order status updates.
func (uc *QuoteUseCase) UpdateStatus(ctx context.Context, id string, to entity.QuoteStatus) (*entity.Submission, error) {
	if !entity.ValidQuoteStatus(to) {
		return nil, errors.BadRequest("Unknown quote status: "+string(to), nil)
	}

	submission, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !entity.CanTransitionQuote(submission.Status, to) {
		return nil, errors.Conflict("Quote cannot move from " + string(submission.Status) + " to " + string(to))
	}
	if submission.Status == to {
		return submission, nil
	}

	submission.Status = to
	submission.UpdatedAt = time.Now()

	if err := uc.submissionRepo.Save(*submission); err != nil {
		return nil, err
	}
	if err := uc.api.UpdateSubmission(ctx, *submission); err != nil {
		return submission, errors.Upstream("Quote status saved locally but failed to sync", err)
	}
	return submission, nil
}
