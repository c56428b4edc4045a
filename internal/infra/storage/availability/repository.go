package availability

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/dbmetrics"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/psqlbuilder"
)

// Repository репозиторий недельной доступности и блокировок расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListForDay получает активные окна доступности профессионала на день недели
func (r *Repository) ListForDay(ctx context.Context, tenantID, professionalID uuid.UUID, day domain.DayOfWeek) ([]*domain.WeeklyAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"professional_id",
		"day_of_week",
		"start_time",
		"end_time",
		"active",
		"created_at",
	).
		From("weekly_availability").
		Where(squirrel.Eq{
			"tenant_id":       tenantID,
			"professional_id": professionalID,
			"day_of_week":     day,
			"active":          true,
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	availabilities := make([]*domain.WeeklyAvailability, 0)
	for rows.Next() {
		var a domain.WeeklyAvailability
		var createdAt sql.NullTime

		err := rows.Scan(
			&a.ID,
			&a.TenantID,
			&a.ProfessionalID,
			&a.DayOfWeek,
			&a.StartTime,
			&a.EndTime,
			&a.Active,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListForDay - scan row: %v", ErrScanRow, err)
		}

		a.CreatedAt = createdAt.Time
		availabilities = append(availabilities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListForDay - rows error: %v", ErrScanRow, err)
	}

	return availabilities, nil
}

// ListBlocksInRange получает блокировки расписания профессионала,
// пересекающиеся с интервалом [from, to)
func (r *Repository) ListBlocksInRange(ctx context.Context, tenantID, professionalID uuid.UUID, from, to time.Time) ([]*domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"tenant_id",
		"professional_id",
		"start_time",
		"end_time",
		"reason",
		"created_at",
	).
		From("schedule_blocks").
		Where(squirrel.Eq{
			"tenant_id":       tenantID,
			"professional_id": professionalID,
		}).
		Where(squirrel.Lt{"start_time": to}).
		Where(squirrel.Gt{"end_time": from}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocksInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlocksInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.ScheduleBlock, 0)
	for rows.Next() {
		var b domain.ScheduleBlock
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.TenantID,
			&b.ProfessionalID,
			&b.StartTime,
			&b.EndTime,
			&b.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBlocksInRange - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlocksInRange - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// CreateBlock сохраняет новую блокировку расписания
func (r *Repository) CreateBlock(ctx context.Context, block *domain.ScheduleBlock) (*domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if block.ID == uuid.Nil {
		block.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("schedule_blocks").
		Columns(
			"id",
			"tenant_id",
			"professional_id",
			"start_time",
			"end_time",
			"reason",
		).
		Values(
			block.ID,
			block.TenantID,
			block.ProfessionalID,
			block.StartTime,
			block.EndTime,
			block.Reason,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlock - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateBlock - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time

	return block, nil
}

// DeleteBlock удаляет блокировку расписания
func (r *Repository) DeleteBlock(ctx context.Context, tenantID, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_blocks").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBlock - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlock - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlock - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}
