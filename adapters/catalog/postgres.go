package catalog

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"neurostat/internal/errors"
)

// Repository persists image catalogs in Postgres, for deployments where the
// first-level pipeline registers its outputs in a database rather than a
// flat file.
type Repository struct {
	db *sqlx.DB
}

// NewRepository opens a Postgres-backed catalog repository.
func NewRepository(databaseURL string) (*Repository, error) {
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to catalog database")
	}
	return &Repository{db: db}, nil
}

// NewRepositoryWithDB wraps an existing connection (used by tests).
func NewRepositoryWithDB(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Init creates the catalog table when absent.
func (r *Repository) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS image_catalog (
		subject     TEXT NOT NULL,
		task        TEXT NOT NULL,
		contrast    TEXT NOT NULL,
		acquisition TEXT NOT NULL,
		path        TEXT NOT NULL
	)`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return errors.Wrap(errors.DatabaseError(err.Error()), "cannot create catalog")
	}
	return nil
}

// Save inserts catalog records.
func (r *Repository) Save(ctx context.Context, cat *Catalog) error {
	query := `INSERT INTO image_catalog (
		subject, task, contrast, acquisition, path
	) VALUES ($1, $2, $3, $4, $5)`
	for _, rec := range cat.Records {
		_, err := r.db.ExecContext(ctx, query,
			rec.Subject, rec.Task, rec.Contrast, rec.Acquisition, rec.Path)
		if err != nil {
			return errors.Wrapf(err, "failed to save catalog record for subject %s", rec.Subject)
		}
	}
	return nil
}

// Load fetches the whole catalog in insertion order.
func (r *Repository) Load(ctx context.Context) (*Catalog, error) {
	query := `SELECT subject, task, contrast, acquisition, path FROM image_catalog`
	var records []Record
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}
	if len(records) == 0 {
		return nil, errors.CatalogError("catalog table is empty")
	}
	return &Catalog{Records: records}, nil
}

// LoadByAcquisition fetches only the records with one of the given
// acquisition labels.
func (r *Repository) LoadByAcquisition(ctx context.Context, labels ...string) (*Catalog, error) {
	query, args, err := sqlx.In(
		`SELECT subject, task, contrast, acquisition, path FROM image_catalog
		 WHERE acquisition IN (?)`, labels)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build catalog query")
	}
	query = r.db.Rebind(query)
	var records []Record
	if err := r.db.SelectContext(ctx, &records, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}
	if len(records) == 0 {
		return nil, errors.CatalogError(
			fmt.Sprintf("no catalog records for acquisitions %v", labels))
	}
	return &Catalog{Records: records}, nil
}
