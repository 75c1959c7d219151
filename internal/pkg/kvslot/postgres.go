package kvslot

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type slotRow struct {
	bun.BaseModel `bun:"table:kv_slots"`

	Key       string    `bun:",pk"`
	Value     []byte    `bun:",notnull"`
	UpdatedAt time.Time `bun:",notnull,default:current_timestamp"`
}

type Postgres struct {
	key string
	db  *bun.DB
}

// NewPostgres ensures the slot table exists on db.
func NewPostgres(ctx context.Context, db *bun.DB, key string) (*Postgres, error) {
	_, err := db.NewCreateTable().
		Model((*slotRow)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "kvslot: postgres: create table")
	}
	return &Postgres{key: key, db: db}, nil
}

func (p *Postgres) Get(ctx context.Context) ([]byte, error) {
	var row slotRow
	err := p.db.NewSelect().
		Model(&row).
		Where("key = ?", p.key).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEmpty
	} else if err != nil {
		return nil, errors.Wrap(err, "kvslot: postgres: get")
	}
	return row.Value, nil
}

func (p *Postgres) Put(ctx context.Context, value []byte) error {
	row := &slotRow{
		Key:       p.key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	_, err := p.db.NewInsert().
		Model(row).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	return errors.Wrap(err, "kvslot: postgres: put")
}

func (p *Postgres) Delete(ctx context.Context) error {
	_, err := p.db.NewDelete().
		Model((*slotRow)(nil)).
		Where("key = ?", p.key).
		Exec(ctx)
	return errors.Wrap(err, "kvslot: postgres: delete")
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
