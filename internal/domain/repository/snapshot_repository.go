package repository

import (
	"context"

	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
)

// SnapshotStore mantiene el snapshot vigente. Replace lo sustituye completo
// de forma atómica: un lector ve el snapshot anterior o el nuevo, nunca una mezcla.
type SnapshotStore interface {
	// Current devuelve domain.ErrDatasetUnavailable si aún no se cargó ningún dataset.
	Current() (*entity.Snapshot, error)
	Replace(s *entity.Snapshot)
}

// SnapshotArchive persiste snapshots aceptados para restaurarlos al reiniciar.
type SnapshotArchive interface {
	Save(ctx context.Context, s *entity.Snapshot) error
	// LoadLatest devuelve domain.ErrDatasetUnavailable si el archivo está vacío.
	LoadLatest(ctx context.Context) (*entity.Snapshot, error)
}
