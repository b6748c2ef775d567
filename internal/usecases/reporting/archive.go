package reporting

import (
	"context"
	"time"

	"github.com/casaalves/backoffice-api/internal/domain"
	"github.com/casaalves/backoffice-api/pkg/apiErrors"
)

// ArchivedView é um snapshot arquivado já transformado para os gráficos
type ArchivedView struct {
	Period    string               `json:"period"`
	FetchedAt time.Time            `json:"fetchedAt"`
	View      domain.DashboardView `json:"dashboard"`
}

// Archive consulta os snapshots guardados pelo job de arquivamento
type Archive struct {
	repo SnapshotReader
}

func NewArchive(repo SnapshotReader) *Archive {
	return &Archive{repo: repo}
}

func (a *Archive) Periods(ctx context.Context) ([]string, error) {
	periods, err := a.repo.ListPeriods(ctx)
	if err != nil {
		return nil, NewReportError(ErrArchiveRead, apiErrors.ErrDatabaseOperation, "", err.Error())
	}
	if periods == nil {
		periods = []string{}
	}
	return periods, nil
}

func (a *Archive) View(ctx context.Context, period string) (*ArchivedView, error) {
	if _, _, err := domain.ParsePeriod(period); err != nil {
		return nil, NewReportError(ErrInvalidPeriod, apiErrors.ErrInvalidFormat, period, "use o formato AAAA-MM")
	}

	snapshot, err := a.repo.GetByPeriod(ctx, period)
	if err != nil {
		return nil, NewReportError(ErrArchiveRead, apiErrors.ErrDatabaseOperation, period, err.Error())
	}
	if snapshot == nil {
		return nil, NewReportError(ErrSnapshotNotFound, apiErrors.ErrNotFound, period, "")
	}

	return &ArchivedView{
		Period:    snapshot.Period,
		FetchedAt: snapshot.FetchedAt,
		View:      BuildView(snapshot.Dashboard),
	}, nil
}
