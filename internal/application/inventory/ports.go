package inventory

import (
	"io"

	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
)

// SnapshotLoader convierte un archivo de inventario en un snapshot nuevo.
// name sólo se usa para elegir el formato y como origen del snapshot.
type SnapshotLoader interface {
	Load(name string, r io.Reader) (*entity.Snapshot, error)
}
