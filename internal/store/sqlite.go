package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/gearbox-works/scout-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite. Records are kept
// as JSON documents alongside the columns the list filters need.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS match_records (
	id           TEXT PRIMARY KEY,
	team_number  INTEGER NOT NULL,
	match_number INTEGER NOT NULL,
	record       TEXT NOT NULL,
	created_at   DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS pit_records (
	id          TEXT PRIMARY KEY,
	team_number INTEGER NOT NULL,
	record      TEXT NOT NULL,
	created_at  DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_match_records_team ON match_records(team_number);
CREATE INDEX IF NOT EXISTS idx_match_records_match ON match_records(match_number);
CREATE INDEX IF NOT EXISTS idx_pit_records_team ON pit_records(team_number);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) AddMatch(ctx context.Context, rec model.MatchRecord) (*model.MatchRecord, error) {
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	recJSON, err := json.Marshal(rec)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal match record")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO match_records (id, team_number, match_number, record, created_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.TeamNumber, rec.MatchNumber, string(recJSON), rec.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert match record")
	}
	return &rec, nil
}

func (s *SQLiteStore) GetMatch(ctx context.Context, id string) (*model.MatchRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT record FROM match_records WHERE id = ?`, id,
	)
	return scanMatch(row, id)
}

func (s *SQLiteStore) ListMatches(ctx context.Context, filter MatchFilter) ([]model.MatchRecord, error) {
	query := `SELECT record FROM match_records WHERE 1=1`
	var args []any

	if filter.TeamNumber > 0 {
		query += ` AND team_number = ?`
		args = append(args, filter.TeamNumber)
	}
	if filter.MatchNumber > 0 {
		query += ` AND match_number = ?`
		args = append(args, filter.MatchNumber)
	}
	query += ` ORDER BY created_at, match_number`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list match records")
	}
	defer rows.Close()

	var records []model.MatchRecord
	for rows.Next() {
		var recJSON string
		if err := rows.Scan(&recJSON); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan match record")
		}
		var rec model.MatchRecord
		if err := json.Unmarshal([]byte(recJSON), &rec); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal match record")
		}
		records = append(records, rec)
	}
	return records, eris.Wrap(rows.Err(), "sqlite: list match records iterate")
}

// ReplaceMatch swaps the full record stored under id, keeping the original
// id and creation timestamp.
func (s *SQLiteStore) ReplaceMatch(ctx context.Context, id string, rec model.MatchRecord) (*model.MatchRecord, error) {
	existing, err := s.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt

	recJSON, err := json.Marshal(rec)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal match record")
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE match_records SET team_number = ?, match_number = ?, record = ? WHERE id = ?`,
		rec.TeamNumber, rec.MatchNumber, string(recJSON), id,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: replace match record %s", id)
	}
	if err := checkRowsAffected(res, "match record", id); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SQLiteStore) DeleteMatch(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM match_records WHERE id = ?`, id,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: delete match record %s", id)
	}
	return checkRowsAffected(res, "match record", id)
}

func (s *SQLiteStore) ClearMatches(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM match_records`)
	return eris.Wrap(err, "sqlite: clear match records")
}

func (s *SQLiteStore) AddPit(ctx context.Context, rec model.PitRecord) (*model.PitRecord, error) {
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	recJSON, err := json.Marshal(rec)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal pit record")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO pit_records (id, team_number, record, created_at) VALUES (?, ?, ?, ?)`,
		rec.ID, rec.TeamNumber, string(recJSON), rec.CreatedAt,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert pit record")
	}
	return &rec, nil
}

func (s *SQLiteStore) GetPit(ctx context.Context, id string) (*model.PitRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT record FROM pit_records WHERE id = ?`, id,
	)

	var recJSON string
	err := row.Scan(&recJSON)
	if err == sql.ErrNoRows {
		return nil, eris.Wrapf(ErrNotFound, "sqlite: pit record %s", id)
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: get pit record")
	}

	var rec model.PitRecord
	if err := json.Unmarshal([]byte(recJSON), &rec); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal pit record")
	}
	return &rec, nil
}

func (s *SQLiteStore) ListPits(ctx context.Context, filter PitFilter) ([]model.PitRecord, error) {
	query := `SELECT record FROM pit_records WHERE 1=1`
	var args []any

	if filter.TeamNumber > 0 {
		query += ` AND team_number = ?`
		args = append(args, filter.TeamNumber)
	}
	query += ` ORDER BY created_at`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += ` OFFSET ?`
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list pit records")
	}
	defer rows.Close()

	var records []model.PitRecord
	for rows.Next() {
		var recJSON string
		if err := rows.Scan(&recJSON); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan pit record")
		}
		var rec model.PitRecord
		if err := json.Unmarshal([]byte(recJSON), &rec); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal pit record")
		}
		records = append(records, rec)
	}
	return records, eris.Wrap(rows.Err(), "sqlite: list pit records iterate")
}

func (s *SQLiteStore) ClearPits(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM pit_records`)
	return eris.Wrap(err, "sqlite: clear pit records")
}

// helpers

func checkRowsAffected(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "rows affected")
	}
	if n == 0 {
		return eris.Wrapf(ErrNotFound, "%s %s", entity, id)
	}
	return nil
}

func scanMatch(row *sql.Row, id string) (*model.MatchRecord, error) {
	var recJSON string
	err := row.Scan(&recJSON)
	if err == sql.ErrNoRows {
		return nil, eris.Wrapf(ErrNotFound, "sqlite: match record %s", id)
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: get match record")
	}

	var rec model.MatchRecord
	if err := json.Unmarshal([]byte(recJSON), &rec); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal match record")
	}
	return &rec, nil
}
