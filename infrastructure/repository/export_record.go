package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/casaalves/backoffice-api/infrastructure/database/postgres"
	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/pkg/utils"
)

const (
	exportRecordsTable = "export_records"
	exportIDLength     = 10
)

type ExportRecordRepository interface {
	Create(ctx context.Context, record *domain.ExportRecord) error
	ListRecent(ctx context.Context, limit int) ([]*domain.ExportRecord, error)
}

type exportRecordRepository struct {
	conn postgres.Queryer
}

func NewExportRecordRepository(conn postgres.Queryer) ExportRecordRepository {
	return &exportRecordRepository{
		conn: conn,
	}
}

// Create gera o id e grava o registro; CreatedAt é definido pelo banco
func (r *exportRecordRepository) Create(ctx context.Context, record *domain.ExportRecord) error {
	id, err := utils.GenerateID(exportIDLength)
	if err != nil {
		return fmt.Errorf("erro ao gerar id da exportação: %w", err)
	}

	query, args, err := squirrel.
		Insert(exportRecordsTable).
		Columns("id", "resource", "filename", "user_id", "size_bytes").
		Values(id, record.Resource, record.Filename, record.UserID, record.SizeBytes).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if err := r.conn.QueryRow(ctx, query, args...).Scan(&record.CreatedAt); err != nil {
		return fmt.Errorf("erro ao registrar exportação: %w", err)
	}

	record.ID = id
	return nil
}

func (r *exportRecordRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ExportRecord, error) {
	if limit <= 0 {
		limit = domain.DefaultLimit
	}

	query, args, err := squirrel.
		Select("id, resource, filename, user_id, size_bytes, created_at").
		From(exportRecordsTable).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
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

	records := make([]*domain.ExportRecord, 0)
	for rows.Next() {
		var rec domain.ExportRecord
		if err := rows.Scan(&rec.ID, &rec.Resource, &rec.Filename, &rec.UserID, &rec.SizeBytes, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear exportação: %w", err)
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}
