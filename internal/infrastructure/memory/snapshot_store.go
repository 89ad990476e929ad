package memory

import (
	"sync/atomic"

	"github.com/jhoicas/Inventario-analytics/internal/domain"
	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
	"github.com/jhoicas/Inventario-analytics/internal/domain/repository"
)

var _ repository.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore guarda el snapshot vigente detrás de un puntero atómico.
type SnapshotStore struct {
	current atomic.Pointer[entity.Snapshot]
}

// NewSnapshotStore construye un store vacío.
func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{}
}

// Current devuelve el snapshot vigente.
func (s *SnapshotStore) Current() (*entity.Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, domain.ErrDatasetUnavailable
	}
	return snap, nil
}

// Replace publica un snapshot nuevo. nil se ignora.
func (s *SnapshotStore) Replace(snap *entity.Snapshot) {
	if snap == nil {
		return
	}
	s.current.Store(snap)
}
