package memory_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-analytics/internal/domain"
	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
	"github.com/jhoicas/Inventario-analytics/internal/infrastructure/memory"
)

func snapshotWith(n int) *entity.Snapshot {
	records := make([]entity.InventoryRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, entity.InventoryRecord{
			Site:            "P100",
			StorageLocation: "0001",
			Material:        string(rune('A' + i)),
			CurrentQuantity: decimal.NewFromInt(int64(i)),
		})
	}
	return entity.NewSnapshot("test", records, nil, entity.Diagnostics{})
}

func TestSnapshotStore_VacioDevuelveDatasetUnavailable(t *testing.T) {
	store := memory.NewSnapshotStore()
	_, err := store.Current()
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestSnapshotStore_Replace(t *testing.T) {
	store := memory.NewSnapshotStore()
	first := snapshotWith(1)
	store.Replace(first)

	got, err := store.Current()
	require.NoError(t, err)
	assert.Same(t, first, got)

	second := snapshotWith(3)
	store.Replace(second)
	store.Replace(nil)
	got, err = store.Current()
	require.NoError(t, err)
	assert.Same(t, second, got)
	assert.Len(t, first.Records, 1)
}

// Los lectores ven siempre un snapshot completo (1 o 5 filas), nunca uno parcial.
func TestSnapshotStore_LecturasConcurrentes(t *testing.T) {
	store := memory.NewSnapshotStore()
	small, big := snapshotWith(1), snapshotWith(5)
	store.Replace(small)

	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				if i%2 == 0 {
					store.Replace(big)
				} else {
					store.Replace(small)
				}
			}
		}()
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				s, err := store.Current()
				if !assert.NoError(t, err) {
					return
				}
				n := len(s.Records)
				assert.True(t, n == 1 || n == 5, "snapshot parcial con %d filas", n)
			}
		}()
	}
	wg.Wait()
}
