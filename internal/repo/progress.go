package repo

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"exusiai.dev/roadmap-tracker/internal/model"
	"exusiai.dev/roadmap-tracker/internal/pkg/kvslot"
)

type Progress struct {
	slot kvslot.Slot
}

func NewProgress(slot kvslot.Slot) *Progress {
	return &Progress{slot: slot}
}

// GetProgress reads the persisted progress. An empty slot yields an empty
// progress and no error.
func (r *Progress) GetProgress(ctx context.Context) (model.Progress, error) {
	b, err := r.slot.Get(ctx)
	if errors.Is(err, kvslot.ErrEmpty) {
		return model.NewProgress(), nil
	} else if err != nil {
		return nil, err
	}

	p, err := model.DecodeProgress(b)
	if err != nil {
		return nil, errors.Wrap(err, "repo: progress: decode")
	}
	return p, nil
}

func (r *Progress) SaveProgress(ctx context.Context, p model.Progress) error {
	b, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "repo: progress: encode")
	}
	return r.slot.Put(ctx, b)
}

func (r *Progress) DeleteProgress(ctx context.Context) error {
	return r.slot.Delete(ctx)
}

func (r *Progress) Ping(ctx context.Context) error {
	return r.slot.Ping(ctx)
}
