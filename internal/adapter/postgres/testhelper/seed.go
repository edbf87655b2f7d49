package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ontomap-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current time at the precision PostgreSQL keeps.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedPrefix inserts a prefix with unique prefix and uri values.
func SeedPrefix(t *testing.T, pool *pgxpool.Pool) domain.Prefix {
	t.Helper()

	suffix := uniqueSuffix()
	p := domain.Prefix{
		ID:        uuid.New(),
		Prefix:    "ex" + suffix,
		URI:       "http://example.org/" + suffix + "#",
		CreatedAt: Now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO prefixes (id, prefix, uri, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.Prefix, p.URI, p.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPrefix: %v", err)
	}

	return p
}

// SeedSource inserts a CSV source whose file id is random.
func SeedSource(t *testing.T, pool *pgxpool.Pool) domain.Source {
	t.Helper()

	suffix := uniqueSuffix()
	s := domain.Source{
		ID:            uuid.New(),
		Name:          "people-" + suffix,
		Description:   "seeded source",
		FileName:      "people-" + suffix + ".csv",
		FileExtension: "csv",
		FileID:        uuid.NewString(),
		Hash:          "hash-" + suffix,
		Location:      "/tmp/" + suffix,
		CreatedAt:     Now(),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO sources (id, name, description, file_name, file_extension, file_id, hash, location, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Name, s.Description, s.FileName, s.FileExtension, s.FileID, s.Hash, s.Location, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSource: %v", err)
	}

	return s
}
