package store

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync/atomic"
	"time"

	"github.com/tuantrung97/spe-rec-system/internal/dataset"
	"github.com/tuantrung97/spe-rec-system/internal/source"

	"golang.org/x/sync/singleflight"
)

// Paths nombres (rutas) de las tres tablas ante el Source.
type Paths struct {
	Ratings         string
	Recommendations string
	Similarities    string
}

// Store dueño del dataset cargado. El snapshot servido es un puntero
// que se swapea atómicamente: las consultas nunca ven una carga a
// medias. Las cargas concurrentes se colapsan en una sola con
// singleflight, para no parsear dos veces lo mismo.
type Store struct {
	src   source.Source
	paths Paths
	opts  dataset.Options

	sf  singleflight.Group
	cur atomic.Pointer[dataset.Dataset]
	gen atomic.Int64
}

func New(src source.Source, paths Paths, opts dataset.Options) *Store {
	return &Store{src: src, paths: paths, opts: opts}
}

// Get snapshot actual; si todavía no hay, carga en el primer acceso.
func (s *Store) Get(ctx context.Context) (*dataset.Dataset, error) {
	if ds := s.cur.Load(); ds != nil {
		return ds, nil
	}
	return s.Reload(ctx)
}

// Reload invalida el cache y recarga las tablas. Varias llamadas
// simultáneas comparten la misma carga; el swap + bump de generación
// ocurre una sola vez por carga efectiva.
func (s *Store) Reload(ctx context.Context) (*dataset.Dataset, error) {
	v, err, shared := s.sf.Do("load", func() (any, error) {
		start := time.Now()
		ds, err := s.loadAll(ctx)
		if err != nil {
			return nil, err
		}
		s.cur.Store(ds)
		gen := s.gen.Add(1)
		log.Printf("[store] dataset cargado en %s (generación %d)", time.Since(start), gen)
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Printf("[store] recarga compartida con otra llamada en vuelo")
	}
	return v.(*dataset.Dataset), nil
}

// Generation sube en cada recarga; los caches externos la meten en sus
// keys para invalidarse solos sin borrar nada.
func (s *Store) Generation() int64 {
	return s.gen.Load()
}

func (s *Store) loadAll(ctx context.Context) (*dataset.Dataset, error) {
	ratings, err := s.fetch(ctx, s.paths.Ratings)
	if err != nil {
		return nil, err
	}
	defer ratings.Close()

	recs, err := s.fetch(ctx, s.paths.Recommendations)
	if err != nil {
		return nil, err
	}
	defer recs.Close()

	sims, err := s.fetch(ctx, s.paths.Similarities)
	if err != nil {
		return nil, err
	}
	defer sims.Close()

	return dataset.Load(ratings, recs, sims, s.opts)
}

func (s *Store) fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	rc, err := s.src.Fetch(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dataset.ErrDataUnavailable, err)
	}
	return rc, nil
}
