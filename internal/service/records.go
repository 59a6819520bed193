package service

import (
	"context"
	"fmt"
	"time"

	"github.com/flightbag/flightbag/internal/logger"
	"github.com/flightbag/flightbag/internal/store"
	"github.com/flightbag/flightbag/internal/utils"
	"github.com/flightbag/flightbag/models"
)

type recordService struct {
	store  store.EntityStore
	ids    *utils.UUIDGenerator
	logger *logger.Logger
	now    func() time.Time
}

// NewRecordService constructs the UI-facing record service.
func NewRecordService(entityStore store.EntityStore, log *logger.Logger) RecordService {
	return &recordService{
		store:  entityStore,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
		now:    time.Now,
	}
}

func (r *recordService) Create(ctx context.Context, record models.Entity) error {
	if record.EntityID() != "" {
		return fmt.Errorf("create %s: record already has an id", record.Kind())
	}
	record.SetEntityID(r.ids.Generate())
	record.Touch(r.now().UTC())

	if err := r.store.SaveWithSync(ctx, record); err != nil {
		return fmt.Errorf("save created record locally: %w", err)
	}

	return nil
}

func (r *recordService) Save(ctx context.Context, record models.Entity) error {
	if record.EntityID() == "" {
		return fmt.Errorf("save %s: record has no id", record.Kind())
	}
	record.Touch(r.now().UTC())

	if err := r.store.SaveWithSync(ctx, record); err != nil {
		return fmt.Errorf("save record locally: %w", err)
	}

	return nil
}

func (r *recordService) UpdateFields(ctx context.Context, kind models.Kind, id string, fields map[string]any) (models.Entity, error) {
	// The updated time travels inside the merge, so the edit, its
	// timestamp and the dirty flag land in one durable write.
	merged := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["updated_at"] = r.now().UTC().Format(time.RFC3339Nano)

	record, err := r.store.Update(ctx, kind, id, merged)
	if err != nil {
		return nil, fmt.Errorf("merge record fields: %w", err)
	}

	return record, nil
}

func (r *recordService) Get(ctx context.Context, kind models.Kind, id string) (models.Entity, error) {
	record, err := r.store.Get(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("get local record: %w", err)
	}
	return record, nil
}

func (r *recordService) ListBy(ctx context.Context, kind models.Kind, field string, value any) ([]models.Entity, error) {
	records, err := r.store.QueryByIndex(ctx, kind, field, value)
	if err != nil {
		return nil, fmt.Errorf("query local records: %w", err)
	}
	return records, nil
}

func (r *recordService) Delete(ctx context.Context, kind models.Kind, id string) error {
	if err := r.store.Delete(ctx, kind, id); err != nil {
		return fmt.Errorf("delete local record: %w", err)
	}
	return nil
}
