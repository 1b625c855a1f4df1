package gemini

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"scribe/internal/config"
	"scribe/internal/model"
)

// Result is a successful generation: the raw upstream payload plus the
// model that produced it.
type Result struct {
	Response *GenerateContentResponse
	Model    string
}

// Dispatcher owns all upstream attempts for one logical generation
// request. It walks an ordered model queue, failing over to the next
// model on a transient status and restarting the whole queue a bounded
// number of times. All state is injected at construction; the dispatcher
// itself is immutable and safe for concurrent use.
type Dispatcher struct {
	client     *Client
	models     []string
	maxRetries int
	retryDelay time.Duration // after a transport error, same model
	cycleDelay time.Duration // before restarting the queue from the top
}

// NewDispatcher creates a dispatcher backed by a real API client.
func NewDispatcher(cfg *config.GeminiConfig) *Dispatcher {
	return &Dispatcher{
		client:     NewClient(cfg),
		models:     cfg.Models,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		cycleDelay: cfg.CycleDelay,
	}
}

// Generate obtains a completion for prompt, with optional caller-supplied
// history, starting from the preferred model.
func (d *Dispatcher) Generate(ctx context.Context, prompt string, history []model.Turn) (*Result, error) {
	return d.GenerateFrom(ctx, prompt, history, 0)
}

// GenerateFrom starts the fallback walk at startIndex; an out-of-range
// index clamps to the head of the queue.
//
// The loop state is the pair (modelIndex, retriesRemaining). Every branch
// either advances modelIndex or decreases retriesRemaining, so the total
// attempt count is bounded by len(models) * (maxRetries + 1).
func (d *Dispatcher) GenerateFrom(ctx context.Context, prompt string, history []model.Turn, startIndex int) (*Result, error) {
	contents := buildContents(history, prompt)

	modelIndex := startIndex
	if modelIndex < 0 || modelIndex >= len(d.models) {
		modelIndex = 0
	}
	retriesRemaining := d.maxRetries

	for attempt := 1; ; attempt++ {
		name := d.models[modelIndex]

		resp, err := d.client.GenerateContent(ctx, name, contents)
		if err == nil {
			log.Debug().
				Int("attempt", attempt).
				Str("model", name).
				Msg("generation succeeded")
			return &Result{Response: resp, Model: name}, nil
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) {
			if statusErr.Transient() {
				// Fail over to the next model immediately.
				if modelIndex+1 < len(d.models) {
					log.Warn().
						Int("attempt", attempt).
						Str("model", name).
						Int("status", statusErr.StatusCode).
						Str("next_model", d.models[modelIndex+1]).
						Msg("transient upstream error, switching model")
					modelIndex++
					continue
				}

				// Queue exhausted; wait and restart from the top.
				if retriesRemaining > 0 {
					log.Warn().
						Int("attempt", attempt).
						Str("model", name).
						Int("status", statusErr.StatusCode).
						Int("retries_remaining", retriesRemaining).
						Dur("delay", d.cycleDelay).
						Msg("model queue exhausted, retrying full cycle")
					if err := sleep(ctx, d.cycleDelay); err != nil {
						return nil, err
					}
					modelIndex = 0
					retriesRemaining--
					continue
				}
			}

			log.Error().
				Int("attempt", attempt).
				Str("model", name).
				Int("status", statusErr.StatusCode).
				Str("message", statusErr.Message).
				Msg("generation failed")
			return nil, statusErr
		}

		// Transport-level failure: the call itself did not complete.
		if retriesRemaining > 0 {
			log.Warn().
				Int("attempt", attempt).
				Str("model", name).
				Err(err).
				Int("retries_remaining", retriesRemaining).
				Dur("delay", d.retryDelay).
				Msg("transport error, retrying same model")
			if serr := sleep(ctx, d.retryDelay); serr != nil {
				return nil, serr
			}
			retriesRemaining--
			continue
		}

		log.Error().
			Int("attempt", attempt).
			Str("model", name).
			Err(err).
			Msg("generation failed after transport retries")
		return nil, err
	}
}

// buildContents maps caller history into the upstream payload, dropping
// empty turns, and appends the prompt as the final user turn.
func buildContents(history []model.Turn, prompt string) []Content {
	contents := make([]Content, 0, len(history)+1)
	for _, turn := range history {
		if turn.Content == "" {
			continue
		}
		role := RoleUser
		if turn.Role == "assistant" || turn.Role == RoleModel {
			role = RoleModel
		}
		contents = append(contents, Content{
			Role:  role,
			Parts: []Part{{Text: turn.Content}},
		})
	}
	return append(contents, Content{
		Role:  RoleUser,
		Parts: []Part{{Text: prompt}},
	})
}

// sleep blocks for d or until ctx is canceled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
