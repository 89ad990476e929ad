package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
	"github.com/jhoicas/Inventario-analytics/internal/domain"
	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
	"github.com/jhoicas/Inventario-analytics/internal/domain/repository"
)

// MaxReportedIssues tope de incidencias devueltas en la respuesta de carga.
const MaxReportedIssues = 50

// DatasetUseCase reemplaza el dataset vigente: construye el snapshot completo
// fuera del store y lo publica con un único Replace. Si la carga falla el
// snapshot anterior sigue vigente.
type DatasetUseCase struct {
	loader  SnapshotLoader
	store   repository.SnapshotStore
	archive repository.SnapshotArchive // opcional
	log     zerolog.Logger

	// serializa cargas concurrentes (upload + cron); las lecturas no se bloquean.
	mu sync.Mutex
}

// NewDatasetUseCase construye el caso de uso. archive puede ser nil.
func NewDatasetUseCase(loader SnapshotLoader, store repository.SnapshotStore, archive repository.SnapshotArchive, log zerolog.Logger) *DatasetUseCase {
	return &DatasetUseCase{loader: loader, store: store, archive: archive, log: log}
}

// Load ingiere un archivo completo. Devuelve domain.ErrInvalidInput si el
// archivo no se puede leer o no contiene ninguna fila válida.
func (uc *DatasetUseCase) Load(ctx context.Context, name string, r io.Reader) (*dto.UploadResultDTO, error) {
	snap, err := uc.loader.Load(name, r)
	if err != nil {
		return nil, err
	}
	for _, issue := range snap.Diagnostics.Issues {
		uc.log.Debug().Int("row", issue.Row).Str("field", issue.Field).Str("reason", issue.Reason).Msg("fila con incidencias")
	}
	if len(snap.Records) == 0 {
		return nil, fmt.Errorf("%w: %s no contiene filas válidas (%d mal formadas)", domain.ErrInvalidInput, name, snap.Diagnostics.MalformedRows)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.store.Replace(snap)
	uc.log.Info().
		Str("snapshot_id", snap.ID).
		Str("source", snap.Source).
		Int("records", len(snap.Records)).
		Int("transactions", len(snap.Transactions)).
		Int("malformed_rows", snap.Diagnostics.MalformedRows).
		Int("missing_values", snap.Diagnostics.MissingValues).
		Msg("snapshot publicado")

	if uc.archive != nil {
		if err := uc.archive.Save(ctx, snap); err != nil {
			uc.log.Error().Err(err).Str("snapshot_id", snap.ID).Msg("no se pudo archivar el snapshot")
		}
	}
	return toUploadResult(snap), nil
}

// LoadFile lee path del disco y lo ingiere (carga inicial y recarga programada).
func (uc *DatasetUseCase) LoadFile(ctx context.Context, path string) (*dto.UploadResultDTO, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()
	return uc.Load(ctx, path, f)
}

// Restore publica el último snapshot archivado. Sin archivo o sin snapshots
// guardados no hace nada.
func (uc *DatasetUseCase) Restore(ctx context.Context) error {
	if uc.archive == nil {
		return nil
	}
	snap, err := uc.archive.LoadLatest(ctx)
	if errors.Is(err, domain.ErrDatasetUnavailable) {
		uc.log.Info().Msg("archivo de snapshots vacío")
		return nil
	}
	if err != nil {
		return fmt.Errorf("restaurar snapshot: %w", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, err := uc.store.Current(); err == nil {
		// ya hay un dataset más nuevo (p. ej. DATA_SOURCE_FILE)
		return nil
	}
	uc.store.Replace(snap)
	uc.log.Info().Str("snapshot_id", snap.ID).Int("records", len(snap.Records)).Msg("snapshot restaurado")
	return nil
}

func toUploadResult(s *entity.Snapshot) *dto.UploadResultDTO {
	issues := make([]string, 0, min(len(s.Diagnostics.Issues), MaxReportedIssues))
	for _, i := range s.Diagnostics.Issues {
		if len(issues) == MaxReportedIssues {
			break
		}
		issues = append(issues, i.Error())
	}
	return &dto.UploadResultDTO{
		SnapshotID:    s.ID,
		Source:        s.Source,
		Records:       len(s.Records),
		Transactions:  len(s.Transactions),
		MalformedRows: s.Diagnostics.MalformedRows,
		MissingValues: s.Diagnostics.MissingValues,
		Issues:        issues,
	}
}
