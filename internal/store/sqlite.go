package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/azuresoup/hh-skills-parser/internal/model"
)

// Ensure SQLiteStore implements model.PostingStore.
var _ model.PostingStore = (*SQLiteStore)(nil)

// SQLiteStore persists postings in a SQLite database. The external_id
// uniqueness constraint is the only schema-level invariant.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the postings table exists. Any failure here is fatal to the caller:
// nothing may run against an uninitialized store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Verify the connection is alive.
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}

	createTable := `CREATE TABLE IF NOT EXISTS postings (
		id          INTEGER PRIMARY KEY,
		external_id TEXT UNIQUE,
		title       TEXT,
		description TEXT,
		skills      TEXT,
		url         TEXT,
		employer    TEXT,
		salary_from INTEGER,
		salary_to   INTEGER,
		currency    TEXT,
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating postings table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Exists returns true if a posting with the given external id is stored.
func (s *SQLiteStore) Exists(externalID string) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM postings WHERE external_id = ?", externalID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, &model.StorageError{Op: "exists", Err: err}
	}
	return true, nil
}

// Insert stores a new posting. A posting whose external id is already
// present yields model.ErrDuplicate and leaves the stored row untouched;
// any other fault is returned as *model.StorageError.
func (s *SQLiteStore) Insert(p model.Posting) error {
	// A nil slice would serialize as "null"; store an empty list instead so
	// the skills filters only have to know about "" and "[]".
	if p.Skills == nil {
		p.Skills = []string{}
	}
	skills, err := json.Marshal(p.Skills)
	if err != nil {
		return &model.StorageError{Op: "insert", Err: err}
	}

	res, err := s.db.Exec(
		`INSERT OR IGNORE INTO postings
		(external_id, title, description, skills, url, employer, salary_from, salary_to, currency)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ExternalID, p.Title, p.Description, string(skills), p.URL, p.Employer,
		p.SalaryFrom, p.SalaryTo, p.Currency,
	)
	if err != nil {
		return &model.StorageError{Op: "insert", Err: err}
	}

	n, err := res.RowsAffected()
	if err != nil {
		return &model.StorageError{Op: "insert", Err: err}
	}
	if n == 0 {
		return fmt.Errorf("posting %s: %w", p.ExternalID, model.ErrDuplicate)
	}
	return nil
}

// SkillBlobs returns the serialized skill lists of all postings that have
// at least one skill.
func (s *SQLiteStore) SkillBlobs() ([]string, error) {
	return s.column("skills", `SELECT skills FROM postings
		WHERE skills IS NOT NULL AND skills != '' AND skills != '[]'`)
}

// Descriptions returns the non-empty descriptions of all postings.
func (s *SQLiteStore) Descriptions() ([]string, error) {
	return s.column("descriptions", `SELECT description FROM postings
		WHERE description IS NOT NULL AND description != ''`)
}

func (s *SQLiteStore) column(op, query string) ([]string, error) {
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, &model.StorageError{Op: op, Err: err}
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, &model.StorageError{Op: op, Err: err}
		}
		values = append(values, v)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StorageError{Op: op, Err: err}
	}
	return values, nil
}

// Counts returns the aggregate posting counts used in analysis reports.
func (s *SQLiteStore) Counts() (model.StoreCounts, error) {
	var c model.StoreCounts
	queries := []struct {
		query string
		dst   *int
	}{
		{"SELECT COUNT(*) FROM postings", &c.Total},
		{"SELECT COUNT(*) FROM postings WHERE skills IS NOT NULL AND skills != '' AND skills != '[]'", &c.WithSkills},
		{"SELECT COUNT(*) FROM postings WHERE description IS NOT NULL AND description != ''", &c.WithDescription},
	}
	for _, q := range queries {
		if err := s.db.QueryRow(q.query).Scan(q.dst); err != nil {
			return model.StoreCounts{}, &model.StorageError{Op: "counts", Err: err}
		}
	}
	return c, nil
}

// All returns every stored posting, newest first. Used by the browse view.
func (s *SQLiteStore) All() ([]model.Posting, error) {
	rows, err := s.db.Query(`SELECT external_id, title, description, skills, url,
		employer, salary_from, salary_to, currency, created_at
		FROM postings ORDER BY id DESC`)
	if err != nil {
		return nil, &model.StorageError{Op: "all", Err: err}
	}
	defer rows.Close()

	var postings []model.Posting
	for rows.Next() {
		var p model.Posting
		var skills string
		var salaryFrom, salaryTo sql.NullInt64
		var currency sql.NullString
		var createdAt string
		if err := rows.Scan(&p.ExternalID, &p.Title, &p.Description, &skills,
			&p.URL, &p.Employer, &salaryFrom, &salaryTo, &currency, &createdAt); err != nil {
			return nil, &model.StorageError{Op: "all", Err: err}
		}
		// A malformed blob leaves the skills empty rather than failing the read.
		_ = json.Unmarshal([]byte(skills), &p.Skills)
		if salaryFrom.Valid {
			v := int(salaryFrom.Int64)
			p.SalaryFrom = &v
		}
		if salaryTo.Valid {
			v := int(salaryTo.Int64)
			p.SalaryTo = &v
		}
		if currency.Valid {
			p.Currency = &currency.String
		}
		if t, err := time.Parse("2006-01-02 15:04:05", createdAt); err == nil {
			p.CreatedAt = t
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StorageError{Op: "all", Err: err}
	}
	return postings, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
