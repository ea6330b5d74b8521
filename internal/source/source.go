package source

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

// Source frontera con el fetcher de artefactos: dado el nombre de una
// tabla devuelve sus bytes crudos. La descarga remota (Drive, etc.)
// queda fuera; aquí solo definimos el contrato y la implementación
// local de archivos.
type Source interface {
	Fetch(ctx context.Context, name string) (io.ReadCloser, error)
}

// FileSource lee las tablas del filesystem local.
type FileSource struct{}

func (FileSource) Fetch(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("no se pudo abrir %s: %w", name, err)
	}
	return f, nil
}

// WithRetry envuelve un Source con reintentos acotados: falla rápido,
// nada de reintentar para siempre.
func WithRetry(src Source, attempts int, backoff time.Duration) Source {
	if attempts < 1 {
		attempts = 1
	}
	return &retrySource{src: src, attempts: attempts, backoff: backoff}
}

type retrySource struct {
	src      Source
	attempts int
	backoff  time.Duration
}

func (r *retrySource) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	var lastErr error
	for i := 0; i < r.attempts; i++ {
		if i > 0 {
			log.Printf("[source] reintento %d/%d para %s", i+1, r.attempts, name)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(r.backoff):
			}
		}
		rc, err := r.src.Fetch(ctx, name)
		if err == nil {
			return rc, nil
		}
		lastErr = err
	}
	return nil, lastErr
}
