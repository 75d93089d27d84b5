package usecase

import (
	"context"
	"sync"
	"time"

	"rackline/internal/domain/entity"
	"rackline/pkg/errors"
	"rackline/pkg/logger"
)

// TrackingUseCase maps an unauthenticated reference+email pair to an
// order or a quote submission. The caller is never told which of the
// two inputs was wrong, or whether the record exists at all.
type TrackingUseCase struct {
	api TrackingAPI
}

func NewTrackingUseCase(api TrackingAPI) *TrackingUseCase {
	return &TrackingUseCase{api: api}
}

type TrackResult struct {
	Type      string             `json:"type"` // "order" or "quote"
	Order     *entity.Order      `json:"order,omitempty"`
	Quote     *entity.Submission `json:"quote,omitempty"`
	Status    string             `json:"status"`
	Step      int                `json:"step"`
	Cancelled bool               `json:"cancelled"`
}

// Track tries the order endpoint first, then the quote endpoint, and
// returns the first positive match. Both missing yields one generic
// not-found error.
func (uc *TrackingUseCase) Track(ctx context.Context, reference, email string) (*TrackResult, error) {
	if reference == "" || email == "" {
		return nil, errors.BadRequest("Reference number and email are required", nil)
	}

	order, found, err := uc.api.TrackOrder(ctx, reference, email)
	if err != nil {
		logger.Warn("tracking: order lookup failed: %v", err)
	}
	if found {
		step := order.Status.TrackingStep()
		return &TrackResult{
			Type:      "order",
			Order:     order,
			Status:    string(order.Status),
			Step:      step,
			Cancelled: order.Status == entity.OrderCancelled,
		}, nil
	}

	quote, found, err := uc.api.TrackQuote(ctx, reference, email)
	if err != nil {
		logger.Warn("tracking: quote lookup failed: %v", err)
	}
	if found {
		step := quote.Status.TrackingStep()
		return &TrackResult{
			Type:      "quote",
			Quote:     quote,
			Status:    string(quote.Status),
			Step:      step,
			Cancelled: quote.Status == entity.QuoteDeclined,
		}, nil
	}

	return nil, errors.NotFound("No matching order or quote", nil)
}

// Watcher re-polls a tracked reference on a timer so status changes
// show up without user action. Poll errors are logged, never surfaced,
// but consecutive failures back the interval off up to a bound; the
// first success resets it. Stop cancels the timer and waits for the
// poll loop to exit.
type Watcher struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Watch starts polling and invokes onUpdate whenever the tracked status
// changes. The initial lookup result seeds the comparison, so onUpdate
// only fires on changes after the page is already showing a result.
func (uc *TrackingUseCase) Watch(ctx context.Context, reference, email string, interval time.Duration, onUpdate func(TrackResult)) *Watcher {
	ctx, cancel := context.WithCancel(ctx)
	w := &Watcher{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(w.done)

		const maxBackoffFactor = 8
		factor := 1
		lastStatus := ""

		timer := time.NewTimer(interval)
		defer timer.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-timer.C:
			}

			result, err := uc.Track(ctx, reference, email)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Warn("tracking: poll for %s failed: %v", reference, err)
				if factor < maxBackoffFactor {
					factor *= 2
				}
			} else {
				factor = 1
				if result.Status != lastStatus {
					if lastStatus != "" {
						onUpdate(*result)
					}
					lastStatus = result.Status
				}
			}

			timer.Reset(interval * time.Duration(factor))
		}
	}()

	return w
}

// Stop cancels the watcher and blocks until the poll loop has exited.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		w.cancel()
		<-w.done
	})
}
