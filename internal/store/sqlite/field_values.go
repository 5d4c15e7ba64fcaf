package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/mediatrackapp/mediatrack-server/internal/domain"
	"github.com/mediatrackapp/mediatrack-server/internal/store"
)

// fieldValueColumns must match the scan order in scanFieldValue.
const fieldValueColumns = `id, field_type, category_id, value, sort_order`

// scanFieldValue scans a sql.Row (or sql.Rows via its Scan method) into a
// domain.FieldValue.
func scanFieldValue(scanner interface{ Scan(dest ...any) error }) (*domain.FieldValue, error) {
	var fv domain.FieldValue
	var categoryID sql.NullInt64

	err := scanner.Scan(
		&fv.ID,
		&fv.FieldType,
		&categoryID,
		&fv.Value,
		&fv.SortOrder,
	)
	if err != nil {
		return nil, err
	}

	fv.CategoryID = int64Ptr(categoryID)
	return &fv, nil
}

// ListFieldValues returns pick-list values matching the filter, ordered by
// field_type, sort_order, then value.
func (s *Store) ListFieldValues(ctx context.Context, filter store.FieldValueFilter) ([]*domain.FieldValue, error) {
	where := []string{}
	args := []any{}

	if filter.FieldType != "" {
		where = append(where, `field_type = ?`)
		args = append(args, filter.FieldType)
	}
	if filter.Scoped {
		if filter.CategoryID != nil {
			where = append(where, `category_id = ?`)
			args = append(args, *filter.CategoryID)
		} else {
			where = append(where, `category_id IS NULL`)
		}
	}

	query := `SELECT ` + fieldValueColumns + ` FROM field_values`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY field_type ASC, sort_order ASC, value ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := []*domain.FieldValue{}
	for rows.Next() {
		fv, err := scanFieldValue(rows)
		if err != nil {
			return nil, err
		}
		values = append(values, fv)
	}
	return values, rows.Err()
}

// GetFieldValue retrieves a pick-list value by id.
// Returns store.ErrNotFound if it does not exist.
func (s *Store) GetFieldValue(ctx context.Context, id int64) (*domain.FieldValue, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+fieldValueColumns+` FROM field_values WHERE id = ?`, id)

	fv, err := scanFieldValue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return fv, nil
}

// CreateFieldValue inserts a new pick-list value and returns its id.
// Returns store.ErrAlreadyExists when the (field_type, category_id, value)
// triple already exists, and store.ErrInvalidInput on an unknown category.
func (s *Store) CreateFieldValue(ctx context.Context, fv *domain.FieldValue) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO field_values (field_type, category_id, value, sort_order)
		VALUES (?, ?, ?, ?)`,
		fv.FieldType,
		nullableInt64(fv.CategoryID),
		fv.Value,
		fv.SortOrder,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, store.ErrAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return 0, store.ErrInvalidInput.WithMessage("category does not exist")
		}
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateFieldValue applies the non-nil fields of patch. field_type and
// category_id are fixed at creation and cannot be changed here.
// Returns store.ErrNotFound if the value does not exist.
func (s *Store) UpdateFieldValue(ctx context.Context, id int64, patch store.FieldValuePatch) error {
	sets := []string{}
	args := []any{}

	if patch.Value != nil {
		sets = append(sets, "value = ?")
		args = append(args, *patch.Value)
	}
	if patch.SortOrder != nil {
		sets = append(sets, "sort_order = ?")
		args = append(args, *patch.SortOrder)
	}

	if len(sets) == 0 {
		_, err := s.GetFieldValue(ctx, id)
		return err
	}

	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		`UPDATE field_values SET `+joinSets(sets)+` WHERE id = ?`, args...)
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

// DeleteFieldValue deletes a pick-list value. Media items keep whatever text
// they copied from it; only the pick-list entry goes away.
// Returns store.ErrNotFound if the value does not exist.
func (s *Store) DeleteFieldValue(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM field_values WHERE id = ?`, id)
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
