package sqlite

import (
	"context"
	"database/sql"
	"encoding/json/v2"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	"github.com/mediatrackapp/mediatrack-server/internal/store"
)

// mediaColumns is the ordered list of columns selected in media queries,
// with the category joined in for presentation fields.
// Must match the scan order in scanMediaItem.
const mediaColumns = `m.id, m.title, m.category_id, m.status, m.rating, m.notes,
	m.cover_image_url, m.date_started, m.date_finished, m.metadata,
	m.created_at, m.updated_at,
	c.name, c.color, c.icon`

const mediaFrom = ` FROM media_items m LEFT JOIN categories c ON c.id = m.category_id`

// scanMediaItem scans a sql.Row (or sql.Rows via its Scan method) into a
// domain.MediaItem. Tags are left empty; the caller attaches them.
func scanMediaItem(scanner interface{ Scan(dest ...any) error }) (*domain.MediaItem, error) {
	var m domain.MediaItem

	var (
		rating       sql.NullString
		notes        sql.NullString
		coverURL     sql.NullString
		dateStarted  sql.NullString
		dateFinished sql.NullString
		metadata     string
		createdAt    string
		updatedAt    string
		catName      sql.NullString
		catColor     sql.NullString
		catIcon      sql.NullString
	)

	err := scanner.Scan(
		&m.ID,
		&m.Title,
		&m.CategoryID,
		&m.Status,
		&rating,
		&notes,
		&coverURL,
		&dateStarted,
		&dateFinished,
		&metadata,
		&createdAt,
		&updatedAt,
		&catName,
		&catColor,
		&catIcon,
	)
	if err != nil {
		return nil, err
	}

	m.Rating = stringPtr(rating)
	m.Notes = stringPtr(notes)
	m.CoverImageURL = stringPtr(coverURL)
	m.DateStarted = stringPtr(dateStarted)
	m.DateFinished = stringPtr(dateFinished)

	m.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}
	m.UpdatedAt, err = parseTime(updatedAt)
	if err != nil {
		return nil, err
	}

	// Category fallbacks when the relation is somehow absent.
	m.CategoryName = catName.String
	m.CategoryColor = domain.DefaultCategoryColor
	if catColor.Valid {
		m.CategoryColor = catColor.String
	}
	m.CategoryIcon = domain.DefaultCategoryIcon
	if catIcon.Valid {
		m.CategoryIcon = catIcon.String
	}

	// Corrupt stored metadata degrades to an empty bag, never an error.
	m.Metadata = domain.Metadata{}
	if metadata != "" {
		var parsed domain.Metadata
		if err := json.Unmarshal([]byte(metadata), &parsed); err == nil && parsed != nil {
			m.Metadata = parsed
		}
	}

	m.Tags = []domain.TagRef{}
	return &m, nil
}

// buildMediaFilter translates list params into a WHERE clause and args.
func buildMediaFilter(params store.ListMediaParams) (string, []any) {
	where := []string{}
	args := []any{}

	if params.Query != "" {
		like := "%" + strings.ToLower(params.Query) + "%"
		where = append(where, `(LOWER(m.title) LIKE ? OR LOWER(COALESCE(m.notes, '')) LIKE ?)`)
		args = append(args, like, like)
	}
	if params.CategoryID != nil {
		where = append(where, `m.category_id = ?`)
		args = append(args, *params.CategoryID)
	}
	if params.Status != "" {
		where = append(where, `m.status = ?`)
		args = append(args, params.Status)
	}
	if params.Rating != nil {
		where = append(where, `m.rating = ?`)
		args = append(args, *params.Rating)
	}

	// Tag AND-filter: one existence subquery per requested tag.
	for _, tagID := range params.TagIDs {
		where = append(where, `EXISTS (SELECT 1 FROM media_tags mt WHERE mt.media_id = m.id AND mt.tag_id = ?)`)
		args = append(args, tagID)
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

// ListMedia returns one page of media items matching params, plus the total
// count over the same filter before pagination.
func (s *Store) ListMedia(ctx context.Context, params store.ListMediaParams) (*store.MediaPage, error) {
	params.Normalize()

	filter, args := buildMediaFilter(params)

	var total int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM media_items m`+filter, args...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("count media: %w", err)
	}

	dir := "DESC"
	if params.SortDir == "asc" {
		dir = "ASC"
	}
	orderBy := fmt.Sprintf(" ORDER BY m.%s %s NULLS LAST", params.SortBy, dir)

	query := `SELECT ` + mediaColumns + mediaFrom + filter + orderBy + ` LIMIT ? OFFSET ?`
	args = append(args, params.Limit, params.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query media: %w", err)
	}
	defer rows.Close()

	items := []*domain.MediaItem{}
	for rows.Next() {
		m, err := scanMediaItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachTags(ctx, items); err != nil {
		return nil, err
	}

	return &store.MediaPage{Items: items, Total: total}, nil
}

// GetMediaItem retrieves a media item by id with category and tags joined in.
// Returns store.ErrNotFound if the item does not exist.
func (s *Store) GetMediaItem(ctx context.Context, id int64) (*domain.MediaItem, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+mediaColumns+mediaFrom+` WHERE m.id = ?`, id)

	m, err := scanMediaItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.attachTags(ctx, []*domain.MediaItem{m}); err != nil {
		return nil, err
	}
	return m, nil
}

// attachTags loads the tag lists for a batch of items in one query.
func (s *Store) attachTags(ctx context.Context, items []*domain.MediaItem) error {
	if len(items) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.MediaItem, len(items))
	placeholders := make([]string, len(items))
	args := make([]any, len(items))
	for i, m := range items {
		byID[m.ID] = m
		placeholders[i] = "?"
		args[i] = m.ID
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT mt.media_id, t.id, t.name, t.color
		FROM media_tags mt
		JOIN tags t ON t.id = mt.tag_id
		WHERE mt.media_id IN (`+strings.Join(placeholders, ", ")+`)
		ORDER BY t.id ASC`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("query media tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var mediaID int64
		var ref domain.TagRef
		if err := rows.Scan(&mediaID, &ref.ID, &ref.Name, &ref.Color); err != nil {
			return err
		}
		if m, ok := byID[mediaID]; ok {
			m.Tags = append(m.Tags, ref)
		}
	}
	return rows.Err()
}

// CreateMediaItem inserts a new item and its tag set in one transaction,
// returning the new id. Unknown category or tag ids surface as
// store.ErrInvalidInput.
func (s *Store) CreateMediaItem(ctx context.Context, item *domain.MediaItem, tagIDs []int64) (int64, error) {
	metadata, err := marshalMetadata(item.Metadata)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := formatTime(time.Now().UTC())
	res, err := tx.ExecContext(ctx, `
		INSERT INTO media_items (title, category_id, status, rating, notes,
			cover_image_url, date_started, date_finished, metadata,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.Title,
		item.CategoryID,
		string(item.Status),
		nullableString(item.Rating),
		nullableString(item.Notes),
		nullableString(item.CoverImageURL),
		nullableString(item.DateStarted),
		nullableString(item.DateFinished),
		metadata,
		now,
		now,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return 0, store.ErrInvalidInput.WithMessage("category does not exist")
		}
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := replaceTags(ctx, tx, id, tagIDs); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// UpdateMediaItem applies a partial update. updated_at is refreshed on every
// call regardless of whether any field actually changed.
// Returns store.ErrNotFound if the item does not exist.
func (s *Store) UpdateMediaItem(ctx context.Context, id int64, patch store.MediaItemPatch) error {
	sets := []string{"updated_at = ?"}
	args := []any{formatTime(time.Now().UTC())}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *patch.CategoryID)
	}
	if patch.Status != nil {
		sets = append(sets, "status = ?")
		args = append(args, string(*patch.Status))
	}
	for _, opt := range []struct {
		column string
		value  store.OptString
	}{
		{"rating", patch.Rating},
		{"notes", patch.Notes},
		{"cover_image_url", patch.CoverImageURL},
		{"date_started", patch.DateStarted},
		{"date_finished", patch.DateFinished},
	} {
		if opt.value.Set {
			sets = append(sets, opt.column+" = ?")
			args = append(args, nullableString(opt.value.Value))
		}
	}
	if patch.Metadata != nil {
		metadata, err := marshalMetadata(*patch.Metadata)
		if err != nil {
			return err
		}
		sets = append(sets, "metadata = ?")
		args = append(args, metadata)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	args = append(args, id)
	res, err := tx.ExecContext(ctx,
		`UPDATE media_items SET `+joinSets(sets)+` WHERE id = ?`, args...)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrInvalidInput.WithMessage("category does not exist")
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

	if patch.TagIDs != nil {
		if err := replaceTags(ctx, tx, id, *patch.TagIDs); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DeleteMediaItem deletes a media item; its media_tags rows cascade away.
// Returns store.ErrNotFound if the item does not exist.
func (s *Store) DeleteMediaItem(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM media_items WHERE id = ?`, id)
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

// SetMediaTags replaces the full tag set of an item in one transaction.
// Returns store.ErrNotFound if the item does not exist.
func (s *Store) SetMediaTags(ctx context.Context, id int64, tagIDs []int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var one int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM media_items WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	if err != nil {
		return err
	}

	if err := replaceTags(ctx, tx, id, tagIDs); err != nil {
		return err
	}
	return tx.Commit()
}

// replaceTags deletes the existing media_tags rows for an item and inserts
// the new set. No incremental diff; the whole set is rewritten.
func replaceTags(ctx context.Context, tx *sql.Tx, mediaID int64, tagIDs []int64) error {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM media_tags WHERE media_id = ?`, mediaID); err != nil {
		return fmt.Errorf("delete media_tags: %w", err)
	}

	for _, tagID := range tagIDs {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO media_tags (media_id, tag_id) VALUES (?, ?)`,
			mediaID, tagID,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return store.ErrInvalidInput.WithMessage(fmt.Sprintf("tag %d does not exist", tagID))
			}
			return fmt.Errorf("insert media_tag: %w", err)
		}
	}
	return nil
}

// marshalMetadata serializes the metadata bag, treating nil as empty.
func marshalMetadata(m domain.Metadata) (string, error) {
	if m == nil {
		m = domain.Metadata{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}
	return string(data), nil
}
