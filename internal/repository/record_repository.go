package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/CodeZF375/crimsonbot/internal/database"
	"github.com/CodeZF375/crimsonbot/internal/domain"
)

// RecordRepository is the CRUD surface shared by every category table.
// Lookups return (nil, nil) when nothing matches.
type RecordRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	GetByKey(ctx context.Context, key string) (*T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id int64, rec T) (*T, error)
	// Delete returns the row as it was before removal.
	Delete(ctx context.Context, id int64) (*T, error)
}

type recordRepository[T any] struct {
	db    *database.DB
	table Table[T]

	listQuery   string
	byIDQuery   string
	byKeyQuery  string
	insertQuery string
	updateQuery string
	deleteQuery string
}

func NewRecordRepository[T any](db *database.DB, table Table[T]) RecordRepository[T] {
	d := db.Dialect
	name := d.Quote(table.Name)

	cols := make([]string, 0, len(table.Columns))
	sets := make([]string, 0, len(table.Columns))
	marks := make([]string, 0, len(table.Columns))
	for _, c := range table.Columns {
		cols = append(cols, d.Quote(c))
		sets = append(sets, d.Quote(c)+" = ?")
		marks = append(marks, "?")
	}
	returning := "id, " + strings.Join(cols, ", ") + ", created_at"

	return &recordRepository[T]{
		db:    db,
		table: table,
		listQuery: fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at DESC, id DESC`,
			returning, name),
		byIDQuery: d.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE id = ?`,
			returning, name)),
		byKeyQuery: d.Rebind(fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
			returning, name, d.Quote(table.KeyColumn))),
		insertQuery: d.Rebind(fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING %s`,
			name, strings.Join(cols, ", "), strings.Join(marks, ", "), returning)),
		updateQuery: d.Rebind(fmt.Sprintf(`UPDATE %s SET %s WHERE id = ? RETURNING %s`,
			name, strings.Join(sets, ", "), returning)),
		deleteQuery: d.Rebind(fmt.Sprintf(`DELETE FROM %s WHERE id = ? RETURNING %s`,
			name, returning)),
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *recordRepository[T]) scan(row rowScanner) (T, error) {
	var rec T
	meta := r.table.Meta(&rec)
	dest := make([]any, 0, len(r.table.Columns)+2)
	dest = append(dest, &meta.ID)
	dest = append(dest, r.table.Dest(&rec)...)
	dest = append(dest, database.Timestamp{Time: &meta.CreatedAt})
	err := row.Scan(dest...)
	return rec, err
}

func (r *recordRepository[T]) scanOne(row *sql.Row) (*T, error) {
	rec, err := r.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, r.wrap(err)
	}
	return &rec, nil
}

func (r *recordRepository[T]) wrap(err error) error {
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%s: %w", r.table.Name, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %w", r.table.Name, err)
}

func (r *recordRepository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.QueryContext(ctx, r.listQuery)
	if err != nil {
		return nil, r.wrap(err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		rec, err := r.scan(rows)
		if err != nil {
			return nil, r.wrap(err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrap(err)
	}
	return out, nil
}

func (r *recordRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, r.byIDQuery, id))
}

func (r *recordRepository[T]) GetByKey(ctx context.Context, key string) (*T, error) {
	if key == "" {
		return nil, errors.New("key is required")
	}
	return r.scanOne(r.db.QueryRowContext(ctx, r.byKeyQuery, key))
}

func (r *recordRepository[T]) Create(ctx context.Context, rec T) (T, error) {
	created, err := r.scan(r.db.QueryRowContext(ctx, r.insertQuery, r.table.Args(rec)...))
	if err != nil {
		var zero T
		return zero, r.wrap(err)
	}
	return created, nil
}

func (r *recordRepository[T]) Update(ctx context.Context, id int64, rec T) (*T, error) {
	args := append(r.table.Args(rec), id)
	return r.scanOne(r.db.QueryRowContext(ctx, r.updateQuery, args...))
}

func (r *recordRepository[T]) Delete(ctx context.Context, id int64) (*T, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, r.deleteQuery, id))
}
