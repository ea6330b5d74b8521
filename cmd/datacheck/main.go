package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/tuantrung97/spe-rec-system/internal/config"
	"github.com/tuantrung97/spe-rec-system/internal/dataset"
	"github.com/tuantrung97/spe-rec-system/internal/source"
	"github.com/tuantrung97/spe-rec-system/internal/store"
)

// datacheck valida las tres tablas antes de desplegar: corre la misma
// carga que la API y reporta cuántas filas entraron y cuántas se
// saltaron. Sale con código != 0 si alguna tabla no carga.
func main() {
	cfg := config.Load()

	src := source.WithRetry(source.FileSource{}, cfg.LoadRetries, 2*time.Second)
	st := store.New(src, store.Paths{
		Ratings:         cfg.RatingsFile,
		Recommendations: cfg.UserRecsFile,
		Similarities:    cfg.SimsFile,
	}, dataset.Options{
		RatingsSep: cfg.RatingsSep,
		RecsSep:    cfg.UserRecsSep,
		SimsSep:    cfg.SimsSep,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ds, err := st.Get(ctx)
	if err != nil {
		log.Printf("[datacheck] carga falló: %v", err)
		os.Exit(1)
	}

	stats := ds.Stats()
	out, _ := json.MarshalIndent(stats, "", "  ")
	os.Stdout.Write(out)
	os.Stdout.Write([]byte("\n"))

	if stats.UsersWithRecs == 0 || stats.ProductsWithSims == 0 {
		log.Println("[datacheck] advertencia: hay tablas sin grupos útiles")
		os.Exit(2)
	}
}
