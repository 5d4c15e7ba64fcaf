package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	"github.com/mediatrackapp/mediatrack-server/internal/store"
)

// categoryColumns selects category fields plus the live item count.
// Must match the scan order in scanCategory.
const categoryColumns = `c.id, c.name, c.icon, c.color, c.is_system, c.created_at,
	(SELECT COUNT(*) FROM media_items m WHERE m.category_id = c.id)`

// scanCategory scans a sql.Row (or sql.Rows via its Scan method) into a domain.Category.
func scanCategory(scanner interface{ Scan(dest ...any) error }) (*domain.Category, error) {
	var c domain.Category

	var (
		isSystem  int
		createdAt string
	)

	err := scanner.Scan(
		&c.ID,
		&c.Name,
		&c.Icon,
		&c.Color,
		&isSystem,
		&createdAt,
		&c.ItemCount,
	)
	if err != nil {
		return nil, err
	}

	c.IsSystem = isSystem != 0
	c.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// ListCategories returns all categories with their item counts, ordered by id.
func (s *Store) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+categoryColumns+` FROM categories c ORDER BY c.id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategory retrieves a category by id.
// Returns store.ErrNotFound if the category does not exist.
func (s *Store) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+categoryColumns+` FROM categories c WHERE c.id = ?`, id)

	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CreateCategory inserts a new category and returns its id.
// IsSystem is never honored on create; user categories are always deletable.
// Returns store.ErrAlreadyExists on duplicate name.
func (s *Store) CreateCategory(ctx context.Context, c *domain.Category) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (name, icon, color, is_system, created_at)
		VALUES (?, ?, ?, 0, ?)`,
		c.Name,
		c.Icon,
		c.Color,
		formatTime(time.Now().UTC()),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, store.ErrAlreadyExists
		}
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateCategory applies the non-nil fields of patch.
// Returns store.ErrNotFound if the category does not exist.
func (s *Store) UpdateCategory(ctx context.Context, id int64, patch store.CategoryPatch) error {
	sets := []string{}
	args := []any{}

	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Icon != nil {
		sets = append(sets, "icon = ?")
		args = append(args, *patch.Icon)
	}
	if patch.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *patch.Color)
	}

	if len(sets) == 0 {
		// Nothing to change; still report missing rows.
		return s.categoryExists(ctx, id)
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		`UPDATE categories SET `+joinSets(sets)+` WHERE id = ?`, args...)
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

// DeleteCategory deletes a category. The delete is refused with
// store.ErrSystemCategory for built-in categories and with
// store.ErrCategoryHasItems while any media item references it.
func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var isSystem int
	err = tx.QueryRowContext(ctx,
		`SELECT is_system FROM categories WHERE id = ?`, id).Scan(&isSystem)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	if err != nil {
		return err
	}
	if isSystem != 0 {
		return store.ErrSystemCategory
	}

	var itemCount int
	err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM media_items WHERE category_id = ?`, id).Scan(&itemCount)
	if err != nil {
		return err
	}
	if itemCount > 0 {
		return store.ErrCategoryHasItems
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

// categoryExists returns nil when the category exists, store.ErrNotFound otherwise.
func (s *Store) categoryExists(ctx context.Context, id int64) error {
	var one int
	err := s.db.QueryRowContext(ctx,
		`SELECT 1 FROM categories WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
