package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/lib/pq"

	"github.com/casaalves/backoffice-api/infrastructure/database/postgres"
	"github.com/casaalves/backoffice-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	dashboardSnapshotsTable  = "dashboard_snapshots"
	dashboardSnapshotColumns = "id, period, month, year, payload, fetched_at"
)

type DashboardSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.DashboardSnapshot) error
	GetByPeriod(ctx context.Context, period string) (*domain.DashboardSnapshot, error)
	ListPeriods(ctx context.Context) ([]string, error)
	DeleteOlderThan(ctx context.Context, months int, now time.Time) (int64, error)
}

type dashboardSnapshotRepository struct {
	conn postgres.Queryer
}

func NewDashboardSnapshotRepository(conn postgres.Queryer) DashboardSnapshotRepository {
	return &dashboardSnapshotRepository{
		conn: conn,
	}
}

func (r *dashboardSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.DashboardSnapshot) error {
	payload, err := json.Marshal(snapshot.Dashboard)
	if err != nil {
		return fmt.Errorf("erro ao serializar dashboard para JSON: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert(dashboardSnapshotsTable).
		Columns("period", "month", "year", "payload", "fetched_at").
		Values(
			snapshot.Period,
			snapshot.Month,
			snapshot.Year,
			payload,
			snapshot.FetchedAt,
		).
		Suffix(`
			ON CONFLICT (period) DO UPDATE SET
				payload = EXCLUDED.payload,
				fetched_at = EXCLUDED.fetched_at,
				updated_at = NOW()
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, sqlQuery, args...).Scan(&snapshot.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// GetByPeriod retorna nil, nil quando o período não foi arquivado
func (r *dashboardSnapshotRepository) GetByPeriod(ctx context.Context, period string) (*domain.DashboardSnapshot, error) {
	query, args, err := squirrel.
		Select(dashboardSnapshotColumns).
		From(dashboardSnapshotsTable).
		Where(squirrel.Eq{"period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		snapshot domain.DashboardSnapshot
		payload  []byte
	)
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&snapshot.ID,
		&snapshot.Period,
		&snapshot.Month,
		&snapshot.Year,
		&payload,
		&snapshot.FetchedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot do dashboard: %w", err)
	}

	if err := json.Unmarshal(payload, &snapshot.Dashboard); err != nil {
		return nil, fmt.Errorf("erro ao desserializar snapshot do dashboard: %w", err)
	}

	return &snapshot, nil
}

// ListPeriods retorna os períodos arquivados do mais recente para o mais antigo
func (r *dashboardSnapshotRepository) ListPeriods(ctx context.Context) ([]string, error) {
	query, args, err := squirrel.
		Select("period").
		From(dashboardSnapshotsTable).
		OrderBy("period DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	periods := make([]string, 0)
	for rows.Next() {
		var period string
		if err := rows.Scan(&period); err != nil {
			return nil, fmt.Errorf("erro ao escanear período: %w", err)
		}
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return periods, nil
}

func (r *dashboardSnapshotRepository) DeleteOlderThan(ctx context.Context, months int, now time.Time) (int64, error) {
	cutoff := now.AddDate(0, -months, 0)
	cutoffPeriod := domain.FormatPeriod(cutoff.Year(), int(cutoff.Month()))

	sqlQuery, args, err := squirrel.Delete(dashboardSnapshotsTable).
		Where(squirrel.Lt{"period": cutoffPeriod}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return result.RowsAffected()
}
