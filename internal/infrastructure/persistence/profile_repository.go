package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"style-sync/internal/database"
	"style-sync/internal/domain/profile"
)

// ProfileRepository keeps the last submitted profile document per user. It
// only serves as a safety net when the styling backend rejects a write.
type ProfileRepository struct {
	db      database.DB
	dialect database.Dialect

	upsertSQL string
	getSQL    string
}

// NewProfileRepository checks that the profile table is reachable through db.
func NewProfileRepository(ctx context.Context, db database.DB) (*ProfileRepository, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	d := db.Dialect()

	docParam := d.Placeholder(2)
	if d == database.DialectPostgres {
		docParam += "::jsonb"
	}

	r := &ProfileRepository{
		db:      db,
		dialect: d,
		upsertSQL: fmt.Sprintf(`
INSERT INTO profile_documents (user_id, document, scoring_version, updated_at)
VALUES (%s, %s, %s, %s)
ON CONFLICT (user_id) DO UPDATE SET
	document = excluded.document,
	scoring_version = excluded.scoring_version,
	updated_at = excluded.updated_at`,
			d.Placeholder(1), docParam, d.Placeholder(3), d.Placeholder(4),
		),
		getSQL: fmt.Sprintf(`SELECT document FROM profile_documents WHERE user_id = %s`, d.Placeholder(1)),
	}

	var n int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM profile_documents`).Scan(&n); err != nil {
		return nil, fmt.Errorf("profile_documents: %w", err)
	}
	return r, nil
}

func (r *ProfileRepository) Save(ctx context.Context, p profile.Profile) error {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return fmt.Errorf("save profile: empty user id")
	}
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	updated := p.UpdatedAt
	if updated.IsZero() {
		updated = time.Now()
	}
	var updatedArg any = updated.UTC()
	if r.dialect == database.DialectSQLite {
		updatedArg = updated.UTC().Format(time.RFC3339Nano)
	}

	if _, err := r.db.Exec(ctx, r.upsertSQL, id, string(doc), p.ScoringVersion, updatedArg); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (profile.Profile, error) {
	var doc []byte
	if err := r.db.QueryRow(ctx, r.getSQL, strings.TrimSpace(userID)).Scan(&doc); err != nil {
		if errors.Is(err, database.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}

	var p profile.Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		return profile.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}

var _ profile.Repository = (*ProfileRepository)(nil)
