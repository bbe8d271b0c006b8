package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Jelenicat/abeauty/internal/domain"
	"github.com/Jelenicat/abeauty/pkg/dbmetrics"
	"github.com/Jelenicat/abeauty/pkg/psqlbuilder"
)

var clientColumns = []string{
	"phone",
	"name",
	"visit_count",
	"no_show_count",
	"created_at",
	"updated_at",
}

// Repository репозиторий клиентской картотеки.
// Ключ - нормализованный телефон (см. domain.NormalizePhone).
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// RecordVisit фиксирует бронирование: создает карточку при первом визите,
// далее увеличивает счетчик визитов и обновляет имя на последнее введенное
func (r *Repository) RecordVisit(ctx context.Context, phone, name string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns("phone", "name", "visit_count", "no_show_count").
		Values(phone, name, 1, 0).
		Suffix(`ON CONFLICT (phone) DO UPDATE SET
			name = EXCLUDED.name,
			visit_count = clients.visit_count + 1,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RecordVisit - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: RecordVisit - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// IncrementNoShow увеличивает счетчик неявок клиента.
// Карточка создается, если клиент попал в записи минуя обычный поток.
func (r *Repository) IncrementNoShow(ctx context.Context, phone, name string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("clients").
		Columns("phone", "name", "visit_count", "no_show_count").
		Values(phone, name, 0, 1).
		Suffix(`ON CONFLICT (phone) DO UPDATE SET
			no_show_count = clients.no_show_count + 1,
			updated_at = NOW()`).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementNoShow - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: IncrementNoShow - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByPhone получает карточку клиента по нормализованному телефону
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	client, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - scan client: %v", ErrScanRow, err)
	}

	return client, nil
}

// List получает картотеку, отсортированную по числу визитов
func (r *Repository) List(ctx context.Context) ([]*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		OrderBy("visit_count DESC", "name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan client: %v", ErrScanRow, err)
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return clients, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var client domain.Client
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&client.Phone,
		&client.Name,
		&client.VisitCount,
		&client.NoShowCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	client.CreatedAt = createdAt.Time
	client.UpdatedAt = updatedAt.Time

	return &client, nil
}
