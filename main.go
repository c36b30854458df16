package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/shadowwalkertech/noteboard/internal/auth"
	"github.com/shadowwalkertech/noteboard/internal/config"
	"github.com/shadowwalkertech/noteboard/internal/db"
	"github.com/shadowwalkertech/noteboard/internal/middleware"
	"github.com/shadowwalkertech/noteboard/internal/notes"
	"github.com/shadowwalkertech/noteboard/internal/web"
)

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, "Server is up!")
}

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := auth.Init(gdb); err != nil {
		log.Fatal(err)
	}
	if err := notes.Init(gdb); err != nil {
		log.Fatal(err)
	}

	creds := auth.NewGormCredentialStore(gdb)
	hasher := auth.NewBcryptHasher()
	sessions := auth.NewSessions(cfg.SessionKey)
	pages := web.NewRenderer()

	authHandler := auth.NewHandler(creds, hasher, sessions, pages)
	notesHandler := notes.NewHandler(notes.NewGormStore(gdb), creds, pages)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecurityHeaders)

	r.Get("/healthz", HealthHandler)
	authHandler.Mount(r)
	notesHandler.Mount(r, middleware.RequireSession(sessions))

	log.Printf("Server listening on port :%s...", cfg.Port)
	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
