package slotrule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mavisrv/MAVI-ScheduleService/internal/domain"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/dbmetrics"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/psqlbuilder"
	"github.com/mavisrv/MAVI-ScheduleService/pkg/types"
)

var slotRuleColumns = []string{
	"id",
	"tenant_id",
	"mode",
	"interval_minutes",
	"fixed_times",
	"buffer_between_services_minutes",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий правил генерации слотов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил слотов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByTenant получает активное правило тенанта.
// У тенанта одновременно активно не более одного правила.
func (r *Repository) GetActiveByTenant(ctx context.Context, tenantID uuid.UUID) (*domain.SlotRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotRuleColumns...).
		From("slot_rules").
		Where(squirrel.Eq{"tenant_id": tenantID, "active": true}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTenant - build select query: %v", ErrBuildQuery, err)
	}

	rule, err := scanSlotRule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByTenant - scan rule: %v", ErrScanRow, err)
	}

	return rule, nil
}

// Create сохраняет новое правило тенанта.
// Вызывается внутри транзакции вместе с DeactivateByTenant, чтобы
// инвариант "одно активное правило на тенанта" не нарушался.
func (r *Repository) Create(ctx context.Context, rule *domain.SlotRule) (*domain.SlotRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("slot_rules").
		Columns(
			"id",
			"tenant_id",
			"mode",
			"interval_minutes",
			"fixed_times",
			"buffer_between_services_minutes",
			"active",
		).
		Values(
			rule.ID,
			rule.TenantID,
			rule.Mode,
			rule.IntervalMinutes,
			pq.Array(fixedTimesToStrings(rule.FixedTimes)),
			rule.BufferBetweenServicesMinutes,
			rule.Active,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// DeactivateByTenant деактивирует все активные правила тенанта
func (r *Repository) DeactivateByTenant(ctx context.Context, tenantID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slot_rules").
		Set("active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"tenant_id": tenantID, "active": true}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeactivateByTenant - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeactivateByTenant - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlotRule(row rowScanner) (*domain.SlotRule, error) {
	var rule domain.SlotRule
	var fixedTimes pq.StringArray
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rule.ID,
		&rule.TenantID,
		&rule.Mode,
		&rule.IntervalMinutes,
		&fixedTimes,
		&rule.BufferBetweenServicesMinutes,
		&rule.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rule.FixedTimes = make([]types.TimeString, 0, len(fixedTimes))
	for _, ft := range fixedTimes {
		rule.FixedTimes = append(rule.FixedTimes, types.TimeString(ft))
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return &rule, nil
}

func fixedTimesToStrings(times []types.TimeString) []string {
	out := make([]string, 0, len(times))
	for _, t := range times {
		out = append(out, t.String())
	}
	return out
}
