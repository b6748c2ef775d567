package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casaalves/backoffice-api/internal/domain"
)

func TestExportRecordRepository_Create(t *testing.T) {
	conn, mock := newMockConnection(t)
	createdAt := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO export_records \(id,resource,filename,user_id,size_bytes\) VALUES \(\$1,\$2,\$3,\$4,\$5\) RETURNING created_at`).
		WithArgs(sqlmock.AnyArg(), "despesas", "despesas_2025-03-10.csv", 3, 128).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	record := &domain.ExportRecord{
		Resource:  "despesas",
		Filename:  "despesas_2025-03-10.csv",
		UserID:    3,
		SizeBytes: 128,
	}
	err := NewExportRecordRepository(conn).Create(context.Background(), record)

	require.NoError(t, err)
	assert.Len(t, record.ID, exportIDLength)
	assert.Equal(t, createdAt, record.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExportRecordRepository_ListRecent(t *testing.T) {
	conn, mock := newMockConnection(t)
	createdAt := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, resource, filename, user_id, size_bytes, created_at FROM export_records ORDER BY created_at DESC LIMIT 10`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "resource", "filename", "user_id", "size_bytes", "created_at"}).
			AddRow("abc123XYZ0", "logs", "logs_2025-03-10.csv", 1, 64, createdAt))

	records, err := NewExportRecordRepository(conn).ListRecent(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "logs_2025-03-10.csv", records[0].Filename)
	assert.Equal(t, 1, records[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
