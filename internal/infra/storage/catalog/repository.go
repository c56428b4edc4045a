package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/dbmetrics"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий каталога: профессионалы, клиенты, услуги и назначения.
// Сервис расписания только читает каталог, записи им владеет консоль
// администрирования.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetProfessional получает профессионала тенанта по ID
func (r *Repository) GetProfessional(ctx context.Context, tenantID, id uuid.UUID) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"active",
		"created_at",
	).
		From("professionals").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetProfessional - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Professional
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.TenantID,
		&p.Name,
		&p.Active,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrProfessionalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfessional - scan row: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time

	return &p, nil
}

// GetCustomer получает клиента тенанта по ID
func (r *Repository) GetCustomer(ctx context.Context, tenantID, id uuid.UUID) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"active",
		"created_at",
	).
		From("customers").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomer - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Customer
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.TenantID,
		&c.Name,
		&c.Active,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetCustomer - scan row: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time

	return &c, nil
}

// ListServicesByIDs получает активные услуги тенанта по списку ID.
// Результат - map по ID услуги; отсутствующие услуги просто не попадают
// в результат, проверку полноты делает вызывающий слой.
func (r *Repository) ListServicesByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"name",
		"duration_minutes",
		"price",
		"active",
		"created_at",
	).
		From("services").
		Where(squirrel.Eq{"tenant_id": tenantID, "id": ids, "active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServicesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make(map[uuid.UUID]*domain.Service, len(ids))
	for rows.Next() {
		var s domain.Service
		var createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.TenantID,
			&s.Name,
			&s.DurationMinutes,
			&s.Price,
			&s.Active,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListServicesByIDs - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		services[s.ID] = &s
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServicesByIDs - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// ListAssignments получает назначения услуг профессионалу.
// Результат - map по ID услуги.
func (r *Repository) ListAssignments(ctx context.Context, tenantID, professionalID uuid.UUID, serviceIDs []uuid.UUID) (map[uuid.UUID]*domain.ServiceAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"professional_id",
		"service_id",
		"custom_price",
		"custom_duration_minutes",
		"active",
		"created_at",
	).
		From("service_assignments").
		Where(squirrel.Eq{
			"tenant_id":       tenantID,
			"professional_id": professionalID,
			"service_id":      serviceIDs,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	assignments := make(map[uuid.UUID]*domain.ServiceAssignment, len(serviceIDs))
	for rows.Next() {
		var a domain.ServiceAssignment
		var createdAt sql.NullTime

		err := rows.Scan(
			&a.ID,
			&a.TenantID,
			&a.ProfessionalID,
			&a.ServiceID,
			&a.CustomPrice,
			&a.CustomDurationMinutes,
			&a.Active,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListAssignments - scan row: %v", ErrScanRow, err)
		}

		a.CreatedAt = createdAt.Time
		assignments[a.ServiceID] = &a
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAssignments - rows error: %v", ErrScanRow, err)
	}

	return assignments, nil
}
