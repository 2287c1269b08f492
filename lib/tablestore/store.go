// Package tablestore persists collected tables in sqlite so a collection
// run can be inspected or re-rendered later without hitting the remote
// API again.
package tablestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
	"turkdata/lib/table"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Schema creates the snapshot table, pass it to sql.DB.Exec (or
// testutil.SetupService) before constructing a Store.
const Schema = `
CREATE TABLE IF NOT EXISTS snapshot (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	columns TEXT NOT NULL,
	rows TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS snapshot_name ON snapshot (name);
`

type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

// cell is the typed on-disk form of one table cell. Exactly one field is
// set for a non-null cell; a null cell serializes to {}.
type cell struct {
	S *string  `json:"s,omitempty"`
	I *int64   `json:"i,omitempty"`
	F *float64 `json:"f,omitempty"`
	B *bool    `json:"b,omitempty"`
	T *string  `json:"t,omitempty"`
}

func encodeCell(ctx context.Context, value any) cell {
	switch v := value.(type) {
	case nil:
		return cell{}
	case string:
		return cell{S: &v}
	case int64:
		return cell{I: &v}
	case float64:
		return cell{F: &v}
	case bool:
		return cell{B: &v}
	case time.Time:
		formatted := v.Format(time.RFC3339Nano)
		return cell{T: &formatted}
	default:
		slog.WarnContext(ctx, "cannot encode table cell, storing null", "type", fmt.Sprintf("%T", value))
		return cell{}
	}
}

func decodeCell(ctx context.Context, c cell) any {
	switch {
	case c.S != nil:
		return *c.S
	case c.I != nil:
		return *c.I
	case c.F != nil:
		return *c.F
	case c.B != nil:
		return *c.B
	case c.T != nil:
		instant, err := time.Parse(time.RFC3339Nano, *c.T)
		if err != nil {
			slog.WarnContext(ctx, "failed to decode stored instant", "value", *c.T, "err", err)
			return nil
		}
		return instant
	default:
		return nil
	}
}

// Save stores a snapshot of t under the given name and returns the
// snapshot id.
func (s Store) Save(ctx context.Context, name string, t *table.Table) (string, error) {
	columns, err := json.Marshal(t.Columns())
	if err != nil {
		return "", err
	}

	rows := make([][]cell, t.NumRows())
	for i := range rows {
		encoded := make([]cell, 0, len(t.Columns()))
		for _, column := range t.Columns() {
			encoded = append(encoded, encodeCell(ctx, t.Get(i, column)))
		}
		rows[i] = encoded
	}
	cells, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO snapshot (id, name, created_at, columns, rows) VALUES (?, ?, ?, ?, ?)`,
		id, name, time.Now().Unix(), string(columns), string(cells),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Load rebuilds the table stored under the given snapshot id.
func (s Store) Load(ctx context.Context, id string) (*table.Table, error) {
	row := s.db.QueryRowContext(ctx, `SELECT columns, rows FROM snapshot WHERE id = ?`, id)

	var columnsJSON, rowsJSON string
	if err := row.Scan(&columnsJSON, &rowsJSON); err != nil {
		return nil, err
	}

	var columns []string
	if err := json.Unmarshal([]byte(columnsJSON), &columns); err != nil {
		return nil, err
	}
	var rows [][]cell
	if err := json.Unmarshal([]byte(rowsJSON), &rows); err != nil {
		return nil, err
	}

	result := table.New(len(rows), columns)
	for i, encoded := range rows {
		if len(encoded) != len(columns) {
			slog.WarnContext(ctx, "stored row width does not match columns, skipping", "row", i)
			continue
		}
		for j, c := range encoded {
			result.Set(i, columns[j], decodeCell(ctx, c))
		}
	}
	return result, nil
}

// Snapshot describes one stored table.
type Snapshot struct {
	Id        string
	Name      string
	CreatedAt time.Time
}

// List returns every stored snapshot, newest first.
func (s Store) List(ctx context.Context) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, created_at FROM snapshot ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var snapshot Snapshot
		var createdAt int64
		if err := rows.Scan(&snapshot.Id, &snapshot.Name, &createdAt); err != nil {
			return nil, err
		}
		snapshot.CreatedAt = time.Unix(createdAt, 0).UTC()
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}

// Delete removes a stored snapshot. Deleting an unknown id is not an
// error.
func (s Store) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM snapshot WHERE id = ?`, id)
	return err
}
