package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	"github.com/mediatrackapp/mediatrack-server/internal/store"
)

// tagColumns selects tag fields plus the live usage count.
// Must match the scan order in scanTag.
const tagColumns = `t.id, t.name, t.color,
	(SELECT COUNT(*) FROM media_tags mt WHERE mt.tag_id = t.id)`

// scanTag scans a sql.Row (or sql.Rows via its Scan method) into a domain.Tag.
func scanTag(scanner interface{ Scan(dest ...any) error }) (*domain.Tag, error) {
	var t domain.Tag
	err := scanner.Scan(&t.ID, &t.Name, &t.Color, &t.UsageCount)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ListTags returns all tags with their usage counts, ordered by id.
func (s *Store) ListTags(ctx context.Context) ([]*domain.Tag, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+tagColumns+` FROM tags t ORDER BY t.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []*domain.Tag{}
	for rows.Next() {
		t, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

// GetTag retrieves a tag by id.
// Returns store.ErrNotFound if the tag does not exist.
func (s *Store) GetTag(ctx context.Context, id int64) (*domain.Tag, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+tagColumns+` FROM tags t WHERE t.id = ?`, id)

	t, err := scanTag(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// CreateTag inserts a new tag and returns its id.
// Returns store.ErrAlreadyExists on duplicate name.
func (s *Store) CreateTag(ctx context.Context, t *domain.Tag) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tags (name, color) VALUES (?, ?)`, t.Name, t.Color)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, store.ErrAlreadyExists
		}
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateTag applies the non-nil fields of patch.
// Returns store.ErrNotFound if the tag does not exist.
func (s *Store) UpdateTag(ctx context.Context, id int64, patch store.TagPatch) error {
	sets := []string{}
	args := []any{}

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *patch.Color)
	}

	if len(sets) == 0 {
		_, err := s.GetTag(ctx, id)
		return err
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		`UPDATE tags SET `+joinSets(sets)+` WHERE id = ?`, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrAlreadyExists
		}
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteTag deletes a tag; media_tags rows cascade away with it.
// Returns store.ErrNotFound if the tag does not exist.
func (s *Store) DeleteTag(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tags WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
