package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
	sq "github.com/Masterminds/squirrel"

	"github.com/flightbag/flightbag/internal/logger"
	"github.com/flightbag/flightbag/models"
)

// entityRepository is the SQLite-backed [EntityStore]. Each entity kind lives
// in its own table shaped as: id primary key, the kind's secondary index
// columns, the sync envelope columns (needs_sync, synced_at) and the full
// domain payload as JSON. The envelope columns are the source of truth for
// sync state; the payload never contains envelope fields.
type entityRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewEntityRepository constructs the SQLite-backed entity store.
func NewEntityRepository(db *DB, log *logger.Logger) EntityStore {
	return &entityRepository{
		DB:     db,
		logger: log,
		now:    time.Now,
	}
}

func (r *entityRepository) Put(ctx context.Context, record models.Entity) error {
	spec, ok := tableSpecs[record.Kind()]
	if !ok {
		return fmt.Errorf("put: unknown entity kind %q", record.Kind())
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode payload (kind=%s id=%s): %w", record.Kind(), record.EntityID(), err)
	}

	env := record.Envelope()
	index := record.Index()

	cols := []string{"id"}
	vals := []any{record.EntityID()}
	for _, col := range spec.indexed {
		cols = append(cols, col)
		vals = append(vals, index[col])
	}
	cols = append(cols, "needs_sync", "synced_at", "payload")
	vals = append(vals, env.NeedsSync, env.SyncedAt, string(payload))

	query, args, err := sq.Replace(string(record.Kind())).
		Columns(cols...).
		Values(vals...).
		ToSql()
	if err != nil {
		return fmt.Errorf("build put statement: %w", err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "entityRepository.Put").
			Str("kind", string(record.Kind())).
			Str("id", record.EntityID()).
			Msg("failed to store record")
		return fmt.Errorf("store record (kind=%s id=%s): %w", record.Kind(), record.EntityID(), err)
	}

	return nil
}

func (r *entityRepository) Get(ctx context.Context, kind models.Kind, id string) (models.Entity, error) {
	payload, env, err := r.getRow(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return decodeRecord(kind, payload, env)
}

func (r *entityRepository) Update(ctx context.Context, kind models.Kind, id string, fields map[string]any) (models.Entity, error) {
	payload, env, err := r.getRow(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err = json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode stored payload (kind=%s id=%s): %w", kind, id, err)
	}
	if err = mergo.Merge(&doc, fields, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("merge fields (kind=%s id=%s): %w", kind, id, err)
	}
	doc["id"] = id

	merged, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode merged payload (kind=%s id=%s): %w", kind, id, err)
	}

	record, err := decodeRecord(kind, merged, env)
	if err != nil {
		return nil, err
	}
	// One durable write: the merged payload and the dirty flag go down
	// together, so a crash mid-update cannot strand the edit as clean.
	if err = r.SaveWithSync(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

func (r *entityRepository) Delete(ctx context.Context, kind models.Kind, id string) error {
	query, args, err := sq.Delete(string(kind)).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete statement: %w", err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "entityRepository.Delete").
			Str("kind", string(kind)).
			Str("id", id).
			Msg("failed to delete record")
		return fmt.Errorf("delete record (kind=%s id=%s): %w", kind, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected (kind=%s id=%s): %w", kind, id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete record (kind=%s id=%s): %w", kind, id, ErrNotFound)
	}

	return nil
}

func (r *entityRepository) QueryByIndex(ctx context.Context, kind models.Kind, field string, value any) ([]models.Entity, error) {
	spec, ok := tableSpecs[kind]
	if !ok {
		return nil, fmt.Errorf("query: unknown entity kind %q", kind)
	}
	if !spec.hasIndex(field) {
		return nil, fmt.Errorf("query %s by %q: %w", kind, field, ErrUnknownIndex)
	}

	return r.selectRecords(ctx, kind, sq.Eq{field: value})
}

func (r *entityRepository) SaveWithSync(ctx context.Context, record models.Entity) error {
	env := record.Envelope()
	env.NeedsSync = true
	env.SyncedAt = nil

	return r.Put(ctx, record)
}

func (r *entityRepository) MarkSynced(ctx context.Context, record models.Entity) error {
	kind, id := record.Kind(), record.EntityID()

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode pushed payload (kind=%s id=%s): %w", kind, id, err)
	}

	// The payload predicate makes the clear conditional: if a local save
	// landed after the push read this record, the stored payload no longer
	// matches and the record keeps its dirty flag for the next pass.
	query, args, err := sq.Update(string(kind)).
		Set("needs_sync", false).
		Set("synced_at", r.now().UTC()).
		Where(sq.Eq{"id": id, "payload": string(payload)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark-synced statement: %w", err)
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "entityRepository.MarkSynced").
			Str("kind", string(kind)).
			Str("id", id).
			Msg("failed to mark record synced")
		return fmt.Errorf("mark record synced (kind=%s id=%s): %w", kind, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark-synced rows affected (kind=%s id=%s): %w", kind, id, err)
	}
	if affected > 0 {
		return nil
	}

	if _, _, err = r.getRow(ctx, kind, id); err != nil {
		// Missing row: the wrapped error carries ErrNotFound.
		return err
	}

	r.logger.Debug().
		Str("kind", string(kind)).
		Str("id", id).
		Msg("record changed since push - leaving dirty")
	return nil
}

func (r *entityRepository) ListDirty(ctx context.Context, kind models.Kind) ([]models.Entity, error) {
	if _, ok := tableSpecs[kind]; !ok {
		return nil, fmt.Errorf("list dirty: unknown entity kind %q", kind)
	}

	return r.selectRecords(ctx, kind, sq.Eq{"needs_sync": true})
}

func (r *entityRepository) getRow(ctx context.Context, kind models.Kind, id string) ([]byte, models.SyncEnvelope, error) {
	if _, ok := tableSpecs[kind]; !ok {
		return nil, models.SyncEnvelope{}, fmt.Errorf("get: unknown entity kind %q", kind)
	}

	query, args, err := sq.Select("payload", "needs_sync", "synced_at").
		From(string(kind)).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, models.SyncEnvelope{}, fmt.Errorf("build get statement: %w", err)
	}

	var (
		payload  []byte
		dirty    bool
		syncedAt sql.NullTime
	)
	row := r.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&payload, &dirty, &syncedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.SyncEnvelope{}, fmt.Errorf("get record (kind=%s id=%s): %w", kind, id, ErrNotFound)
		}
		r.logger.Err(err).
			Str("func", "entityRepository.getRow").
			Str("kind", string(kind)).
			Str("id", id).
			Msg("failed to scan record row")
		return nil, models.SyncEnvelope{}, fmt.Errorf("scan record row (kind=%s id=%s): %w", kind, id, err)
	}

	return payload, envelopeFromRow(dirty, syncedAt), nil
}

func (r *entityRepository) selectRecords(ctx context.Context, kind models.Kind, pred any) ([]models.Entity, error) {
	query, args, err := sq.Select("payload", "needs_sync", "synced_at").
		From(string(kind)).
		Where(pred).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select statement: %w", err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "entityRepository.selectRecords").
			Str("kind", string(kind)).
			Msg("failed to query records")
		return nil, fmt.Errorf("query records (kind=%s): %w", kind, err)
	}
	defer rows.Close()

	var records []models.Entity
	for rows.Next() {
		var (
			payload  []byte
			dirty    bool
			syncedAt sql.NullTime
		)
		if err = rows.Scan(&payload, &dirty, &syncedAt); err != nil {
			return nil, fmt.Errorf("scan record row (kind=%s): %w", kind, err)
		}

		record, err := decodeRecord(kind, payload, envelopeFromRow(dirty, syncedAt))
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate record rows (kind=%s): %w", kind, err)
	}

	return records, nil
}

func decodeRecord(kind models.Kind, payload []byte, env models.SyncEnvelope) (models.Entity, error) {
	record, ok := models.New(kind)
	if !ok {
		return nil, fmt.Errorf("decode: unknown entity kind %q", kind)
	}
	if err := json.Unmarshal(payload, record); err != nil {
		return nil, fmt.Errorf("decode payload (kind=%s): %w", kind, err)
	}
	*record.Envelope() = env

	return record, nil
}

func envelopeFromRow(dirty bool, syncedAt sql.NullTime) models.SyncEnvelope {
	env := models.SyncEnvelope{NeedsSync: dirty}
	if syncedAt.Valid {
		t := syncedAt.Time
		env.SyncedAt = &t
	}
	return env
}
