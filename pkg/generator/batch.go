package generator

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"fonegen/pkg/formatter"
)

// PhoneRecord is one generated number in both output representations.
type PhoneRecord struct {
	E164     string `json:"e164"`
	Nacional string `json:"nacional"`
	DDD      string `json:"ddd"`
	Numero   string `json:"numero"`
}

// Batch is the result of one generation run. Records are in generation
// order; with dedup enabled their E.164 values are pairwise distinct.
type Batch struct {
	ID        string
	StartedAt time.Time
	Requested int
	Attempts  int
	Records   []PhoneRecord
}

// Shortfall returns how many requested numbers the run failed to
// produce within the attempt budget. Zero means the batch is complete.
func (b *Batch) Shortfall() int {
	if len(b.Records) < b.Requested {
		return b.Requested - len(b.Records)
	}
	return 0
}

// localSource yields 9-digit mobile local numbers.
type localSource interface {
	Generate() (string, error)
}

// BatchGenerator orchestrates repeated local-number generation across a
// set of area codes.
type BatchGenerator struct {
	local localSource

	// Progress, when set, is called once per accepted record.
	Progress func()
}

func NewBatchGenerator() *BatchGenerator {
	return &BatchGenerator{local: NewLocalNumberGenerator()}
}

// Generate produces up to quantity records, cycling through areaCodes
// round-robin. The cycle index advances once per attempt, accepted or
// not, so "all DDDs" batches stay evenly spread even when duplicates
// are discarded. The loop stops at the attempt budget
// max(quantity*20, 200); a short batch is a valid result, reported
// through Batch.Shortfall. Cancelling ctx stops generation early and
// returns the partial batch alongside the context error.
func (bg *BatchGenerator) Generate(ctx context.Context, areaCodes []string, quantity int, dedup bool) (*Batch, error) {
	if len(areaCodes) == 0 {
		return nil, errors.New("no area codes in scope")
	}
	if quantity < 1 {
		return nil, errors.New("quantity must be positive")
	}

	batch := &Batch{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
		Requested: quantity,
		Records:   make([]PhoneRecord, 0, quantity),
	}

	var seen map[string]struct{}
	if dedup {
		seen = make(map[string]struct{}, quantity)
	}

	maxAttempts := quantity * 20
	if maxAttempts < 200 {
		maxAttempts = 200
	}

	for len(batch.Records) < quantity && batch.Attempts < maxAttempts {
		select {
		case <-ctx.Done():
			return batch, ctx.Err()
		default:
		}

		code := areaCodes[batch.Attempts%len(areaCodes)]
		batch.Attempts++

		local, err := bg.local.Generate()
		if err != nil {
			return batch, err
		}

		e164, nacional := formatter.Format(code, local)
		if dedup {
			if _, dup := seen[e164]; dup {
				continue
			}
			seen[e164] = struct{}{}
		}

		batch.Records = append(batch.Records, PhoneRecord{
			E164:     e164,
			Nacional: nacional,
			DDD:      code,
			Numero:   local,
		})
		if bg.Progress != nil {
			bg.Progress()
		}
	}

	return batch, nil
}
