package scheduler

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Inventario-analytics/internal/application/dto"
)

const reloadTimeout = 2 * time.Minute

// FileLoader ingiere un archivo de inventario desde disco.
type FileLoader interface {
	LoadFile(ctx context.Context, path string) (*dto.UploadResultDTO, error)
}

// Reloader vuelve a cargar el archivo fuente según una expresión cron estándar
// (5 campos). Si el archivo no cambió desde la última carga no hace nada.
type Reloader struct {
	cron   *cron.Cron
	loader FileLoader
	path   string
	log    zerolog.Logger

	mu      sync.Mutex
	modTime time.Time
	size    int64
}

// NewReloader valida la expresión y programa la recarga. No arranca hasta Start.
func NewReloader(spec, path string, loader FileLoader, log zerolog.Logger) (*Reloader, error) {
	r := &Reloader{
		cron:   cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		loader: loader,
		path:   path,
		log:    log,
	}
	if _, err := r.cron.AddFunc(spec, r.tick); err != nil {
		return nil, fmt.Errorf("DATA_RELOAD_CRON %q: %w", spec, err)
	}
	return r, nil
}

// Start arranca el cron en segundo plano.
func (r *Reloader) Start() {
	r.log.Info().Str("path", r.path).Msg("recarga programada activa")
	r.cron.Start()
}

// Stop detiene el cron y espera la recarga en curso.
func (r *Reloader) Stop() {
	<-r.cron.Stop().Done()
}

// MarkLoaded registra el estado del archivo tras una carga hecha fuera del cron.
func (r *Reloader) MarkLoaded() {
	if fi, err := os.Stat(r.path); err == nil {
		r.mu.Lock()
		r.modTime, r.size = fi.ModTime(), fi.Size()
		r.mu.Unlock()
	}
}

func (r *Reloader) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()
	if _, err := r.Reload(ctx); err != nil {
		r.log.Error().Err(err).Str("path", r.path).Msg("recarga fallida")
	}
}

// Reload carga el archivo si cambió. Devuelve false si no hubo cambios.
func (r *Reloader) Reload(ctx context.Context) (bool, error) {
	fi, err := os.Stat(r.path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", r.path, err)
	}

	r.mu.Lock()
	unchanged := fi.ModTime().Equal(r.modTime) && fi.Size() == r.size
	r.mu.Unlock()
	if unchanged {
		r.log.Debug().Str("path", r.path).Msg("archivo sin cambios")
		return false, nil
	}

	res, err := r.loader.LoadFile(ctx, r.path)
	if err != nil {
		return false, err
	}

	r.mu.Lock()
	r.modTime, r.size = fi.ModTime(), fi.Size()
	r.mu.Unlock()
	r.log.Info().Str("snapshot_id", res.SnapshotID).Int("records", res.Records).Msg("dataset recargado")
	return true, nil
}
