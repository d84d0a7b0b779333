package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/magabrotheeeer/magazine-subscriptions/internal/models"
)

// CreateMagazine вставляет новый журнал и возвращает его ID.
func (s *Storage) CreateMagazine(ctx context.Context, magazine models.Magazine) (int, error) {
	const op = "storage.CreateMagazine"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO magazines (title, description, base_price)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID int
	err := s.DB.QueryRowContext(ctx, query,
		magazine.Title, magazine.Description, magazine.BasePrice).Scan(&newID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadMagazine возвращает журнал по его ID.
func (s *Storage) ReadMagazine(ctx context.Context, id int) (*models.Magazine, error) {
	const op = "storage.ReadMagazine"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, base_price
			  FROM magazines WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, id)

	var result models.Magazine
	if err := row.Scan(&result.ID, &result.Title, &result.Description, &result.BasePrice); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// ListMagazines возвращает список журналов с пагинацией.
func (s *Storage) ListMagazines(ctx context.Context, limit, offset int) ([]*models.Magazine, error) {
	const op = "storage.ListMagazines"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, base_price
			  FROM magazines
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()
	var result []*models.Magazine
	for rows.Next() {
		var m models.Magazine
		if err = rows.Scan(&m.ID, &m.Title, &m.Description, &m.BasePrice); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateMagazine обновляет данные журнала по его ID.
func (s *Storage) UpdateMagazine(ctx context.Context, magazine models.Magazine, id int) (int, error) {
	const op = "storage.UpdateMagazine"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE magazines
			  SET title = $1, description = $2, base_price = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query,
		magazine.Title, magazine.Description, magazine.BasePrice, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return int(rowsAffected), nil
}

// RemoveMagazine жёстко удаляет журнал по ID.
// В отличие от подписки журнал удаляется из базы безвозвратно.
func (s *Storage) RemoveMagazine(ctx context.Context, id int) (int, error) {
	const op = "storage.RemoveMagazine"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM magazines WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return 0, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return int(rowsAffected), nil
}
