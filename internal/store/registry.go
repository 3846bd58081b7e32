// Package store provides a SQLite-backed registry of program parameter tables.
// Maintainers import each year's table once; calculators then pick the version
// in effect for the date they are estimating.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/snapcalc/internal/params"

	_ "modernc.org/sqlite" // register sqlite driver
)

const dateLayout = "2006-01-02"

// ErrNotFound is returned when a version is not in the registry.
var ErrNotFound = errors.New("parameter version not found")

// Registry stores effective-dated parameter tables.
type Registry struct {
	db *sql.DB
}

// VersionInfo describes one stored table without decoding it.
type VersionInfo struct {
	Version       string
	EffectiveFrom time.Time
	SourcePath    string
	ImportedAt    time.Time
}

// Open opens or creates the registry database at the given path.
func Open(dbPath string) (*Registry, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating registry dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening registry db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Registry{db: db}, nil
}

// Close closes the registry database.
func (r *Registry) Close() error {
	return r.db.Close()
}

// Save stores p, replacing any earlier import of the same version.
func (r *Registry) Save(p params.ProgramParameters, sourcePath string) error {
	if p.Version == "" {
		return errors.New("parameter table has no version")
	}
	if p.EffectiveFrom.IsZero() {
		return fmt.Errorf("parameter table %s has no effective_from date", p.Version)
	}
	if err := p.Validate(); err != nil {
		return err
	}

	doc, err := params.Encode(p)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = r.db.Exec(`INSERT OR REPLACE INTO parameter_versions
		(version, effective_from, document, source_path, imported_at)
		VALUES (?, ?, ?, ?, ?)`,
		p.Version, p.EffectiveFrom.UTC().Format(dateLayout), string(doc), sourcePath, now,
	)
	return err
}

// List returns every stored version ordered by effective date.
func (r *Registry) List() ([]VersionInfo, error) {
	rows, err := r.db.Query(`SELECT version, effective_from, source_path, imported_at
		FROM parameter_versions ORDER BY effective_from`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []VersionInfo
	for rows.Next() {
		var vi VersionInfo
		var effective, imported string
		var source sql.NullString
		if err := rows.Scan(&vi.Version, &effective, &source, &imported); err != nil {
			return nil, err
		}
		vi.EffectiveFrom, _ = time.Parse(dateLayout, effective)
		vi.ImportedAt, _ = time.Parse(time.RFC3339, imported)
		if source.Valid {
			vi.SourcePath = source.String
		}
		out = append(out, vi)
	}
	return out, rows.Err()
}

// History decodes every stored table into an effective-dated history.
func (r *Registry) History() (params.History, error) {
	rows, err := r.db.Query(`SELECT version, document FROM parameter_versions ORDER BY effective_from`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var h params.History
	for rows.Next() {
		var version, doc string
		if err := rows.Scan(&version, &doc); err != nil {
			return nil, err
		}
		p, err := params.Decode([]byte(doc))
		if err != nil {
			return nil, fmt.Errorf("stored version %s: %w", version, err)
		}
		h = append(h, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	h.Sort()
	return h, nil
}

// Get returns a stored table by version label.
func (r *Registry) Get(version string) (params.ProgramParameters, bool, error) {
	var doc string
	err := r.db.QueryRow("SELECT document FROM parameter_versions WHERE version = ?", version).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return params.ProgramParameters{}, false, nil
	}
	if err != nil {
		return params.ProgramParameters{}, false, err
	}
	p, err := params.Decode([]byte(doc))
	if err != nil {
		return params.ProgramParameters{}, false, fmt.Errorf("stored version %s: %w", version, err)
	}
	return p, true, nil
}

// Delete removes a stored version. It returns ErrNotFound when nothing matched.
func (r *Registry) Delete(version string) error {
	res, err := r.db.Exec("DELETE FROM parameter_versions WHERE version = ?", version)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// VersionCount returns the number of stored versions.
func (r *Registry) VersionCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM parameter_versions").Scan(&count)
	return count, err
}
