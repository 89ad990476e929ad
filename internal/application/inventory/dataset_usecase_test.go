package inventory_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-analytics/internal/application/inventory"
	"github.com/jhoicas/Inventario-analytics/internal/domain"
	"github.com/jhoicas/Inventario-analytics/internal/domain/entity"
	"github.com/jhoicas/Inventario-analytics/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-analytics/internal/infrastructure/spreadsheet"
)

type fakeArchive struct {
	saved   []*entity.Snapshot
	saveErr error
	latest  *entity.Snapshot
	loadErr error
}

func (a *fakeArchive) Save(_ context.Context, s *entity.Snapshot) error {
	if a.saveErr != nil {
		return a.saveErr
	}
	a.saved = append(a.saved, s)
	return nil
}

func (a *fakeArchive) LoadLatest(context.Context) (*entity.Snapshot, error) {
	if a.loadErr != nil {
		return nil, a.loadErr
	}
	if a.latest == nil {
		return nil, domain.ErrDatasetUnavailable
	}
	return a.latest, nil
}

type failingLoader struct{ err error }

func (l failingLoader) Load(string, io.Reader) (*entity.Snapshot, error) { return nil, l.err }

const ledgerCSV = "Plant,Storage Location,Material,Quantity,Value\n" +
	"SiteA,L1,Mat1,-50,-250\n" +
	"SiteB,L1,Mat1,200,1000\n" +
	"SiteB,L1,,5,5\n"

func TestDatasetUseCase_LoadPublicaYArchiva(t *testing.T) {
	store := memory.NewSnapshotStore()
	archive := &fakeArchive{}
	uc := inventory.NewDatasetUseCase(spreadsheet.Loader{}, store, archive, zerolog.Nop())

	res, err := uc.Load(context.Background(), "ledger.csv", strings.NewReader(ledgerCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Records)
	assert.Equal(t, 2, res.Transactions)
	assert.Equal(t, 1, res.MalformedRows)
	require.Len(t, res.Issues, 1)
	assert.Contains(t, res.Issues[0], "fila 4")

	current, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, res.SnapshotID, current.ID)
	require.Len(t, archive.saved, 1)
	assert.Same(t, current, archive.saved[0])
}

func TestDatasetUseCase_ArchivoFallaNoEsFatal(t *testing.T) {
	store := memory.NewSnapshotStore()
	archive := &fakeArchive{saveErr: errors.New("db caída")}
	uc := inventory.NewDatasetUseCase(spreadsheet.Loader{}, store, archive, zerolog.Nop())

	_, err := uc.Load(context.Background(), "ledger.csv", strings.NewReader(ledgerCSV))
	require.NoError(t, err)
	_, err = store.Current()
	assert.NoError(t, err)
}

func TestDatasetUseCase_SinFilasValidasConservaAnterior(t *testing.T) {
	store := memory.NewSnapshotStore()
	uc := inventory.NewDatasetUseCase(spreadsheet.Loader{}, store, nil, zerolog.Nop())

	first, err := uc.Load(context.Background(), "ok.csv", strings.NewReader(ledgerCSV))
	require.NoError(t, err)

	_, err = uc.Load(context.Background(), "bad.csv", strings.NewReader("Material,Quantity\n,1\nM1,abc\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	current, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, first.SnapshotID, current.ID)
}

func TestDatasetUseCase_ErrorDelLoader(t *testing.T) {
	store := memory.NewSnapshotStore()
	uc := inventory.NewDatasetUseCase(failingLoader{err: domain.ErrInvalidInput}, store, nil, zerolog.Nop())

	_, err := uc.Load(context.Background(), "x.xls", strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = store.Current()
	assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
}

func TestDatasetUseCase_TopeDeIncidencias(t *testing.T) {
	var b strings.Builder
	b.WriteString("Material,Quantity\nM1,1\n")
	for i := 0; i < 80; i++ {
		b.WriteString("M2,x\n")
	}
	uc := inventory.NewDatasetUseCase(spreadsheet.Loader{}, memory.NewSnapshotStore(), nil, zerolog.Nop())

	res, err := uc.Load(context.Background(), "many.csv", strings.NewReader(b.String()))
	require.NoError(t, err)
	assert.Equal(t, 80, res.MalformedRows)
	assert.Len(t, res.Issues, inventory.MaxReportedIssues)
}

func TestDatasetUseCase_LoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.csv")
	require.NoError(t, os.WriteFile(path, []byte(ledgerCSV), 0o600))

	store := memory.NewSnapshotStore()
	uc := inventory.NewDatasetUseCase(spreadsheet.Loader{}, store, nil, zerolog.Nop())
	res, err := uc.LoadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "source.csv", res.Source)

	_, err = uc.LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestDatasetUseCase_Restore(t *testing.T) {
	archived := entity.NewSnapshot("archived.xlsx", []entity.InventoryRecord{{
		Site: "P1", StorageLocation: "L1", Material: "M1", CurrentQuantity: decimal.NewFromInt(1),
	}}, nil, entity.Diagnostics{})

	t.Run("publica el último", func(t *testing.T) {
		store := memory.NewSnapshotStore()
		uc := inventory.NewDatasetUseCase(spreadsheet.Loader{}, store, &fakeArchive{latest: archived}, zerolog.Nop())
		require.NoError(t, uc.Restore(context.Background()))
		current, err := store.Current()
		require.NoError(t, err)
		assert.Same(t, archived, current)
	})

	t.Run("archivo vacío", func(t *testing.T) {
		store := memory.NewSnapshotStore()
		uc := inventory.NewDatasetUseCase(spreadsheet.Loader{}, store, &fakeArchive{}, zerolog.Nop())
		require.NoError(t, uc.Restore(context.Background()))
		_, err := store.Current()
		assert.ErrorIs(t, err, domain.ErrDatasetUnavailable)
	})

	t.Run("no pisa un dataset ya cargado", func(t *testing.T) {
		store := memory.NewSnapshotStore()
		uc := inventory.NewDatasetUseCase(spreadsheet.Loader{}, store, &fakeArchive{latest: archived}, zerolog.Nop())
		res, err := uc.Load(context.Background(), "new.csv", strings.NewReader(ledgerCSV))
		require.NoError(t, err)
		require.NoError(t, uc.Restore(context.Background()))
		current, _ := store.Current()
		assert.Equal(t, res.SnapshotID, current.ID)
	})

	t.Run("error de base", func(t *testing.T) {
		uc := inventory.NewDatasetUseCase(spreadsheet.Loader{}, memory.NewSnapshotStore(), &fakeArchive{loadErr: errors.New("timeout")}, zerolog.Nop())
		assert.Error(t, uc.Restore(context.Background()))
	})
}
