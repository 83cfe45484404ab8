// Command roguectl runs the dungeon-crawl turn engine behind an HTTP API,
// grounded on the teacher's cmd/server main: open the registry database,
// build (or load) one active run, and serve spec.md §6's ingress/egress
// surface over gorilla/mux, with Swaggo docs registered the same way
// cmd/server/api/routes.go does.
//
// @title           Roguelike Engine API
// @version         1.0
// @description     HTTP API over a single-player turn-based dungeon crawl.
// @BasePath        /api
package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	"rogue-engine/internal/engine"
	"rogue-engine/internal/id"
	"rogue-engine/internal/registry"
)

func main() {
	addr := flag.String("addr", "localhost:8080", "HTTP listen address")
	dbPath := flag.String("db", "roguedata.db", "path to the registry sqlite database")
	savePath := flag.String("save", "save.json", "path to the save file")
	seed := flag.Int64("seed", time.Now().UnixNano(), "world seed for a fresh game")
	flag.Parse()

	reg, err := registry.Open(*dbPath)
	if err != nil {
		log.Fatalf("❌ failed to open registry: %v", err)
	}
	defer reg.Close()

	gen := id.NewGenerator()
	srv := &Server{reg: reg, gen: gen, savePath: *savePath}

	if ctx, err := engine.LoadGame(*savePath, gen, reg); err == nil {
		log.Printf("📂 resumed save at %s (turn %d)", *savePath, ctx.Turn)
		srv.ctx = ctx
	} else {
		log.Printf("✨ starting a fresh run (no save found: %v)", err)
		ctx, err := engine.NewGame(gen, reg, *seed)
		if err != nil {
			log.Fatalf("❌ failed to start new game: %v", err)
		}
		srv.ctx = ctx
	}

	router := mux.NewRouter()
	RegisterRoutes(router, srv)
	router.PathPrefix("/api/docs/").Handler(httpSwagger.Handler(
		httpSwagger.URL("/api/docs/doc.json"),
	))

	log.Printf("🎮 roguectl listening on %s", *addr)
	if err := http.ListenAndServe(*addr, router); err != nil {
		log.Fatalf("❌ server stopped: %v", err)
	}
}
