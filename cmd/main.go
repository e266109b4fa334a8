package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/saeidalz13/battleship-earth/api"
	"github.com/saeidalz13/battleship-earth/db"
	"github.com/saeidalz13/battleship-earth/db/sqlc"
	mb "github.com/saeidalz13/battleship-earth/models/battleship"
)

func main() {
	if os.Getenv("STAGE") != api.StageProd {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("no .env loaded:", err)
		}
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = api.StageDev
	}

	opts := []api.Option{api.WithStage(stage)}

	if portEnv := os.Getenv("PORT"); portEnv != "" {
		port, err := strconv.Atoi(portEnv)
		if err != nil {
			panic(err)
		}
		opts = append(opts, api.WithPort(port))
	}

	if settingsPath := os.Getenv("SETTINGS_PATH"); settingsPath != "" {
		settings, err := mb.LoadSettings(settingsPath)
		if err != nil {
			panic(err)
		}
		opts = append(opts, api.WithSettings(settings))
	}

	// Analytics are optional; without a database the server still runs
	if psqlUrl := os.Getenv("DATABASE_URL"); psqlUrl != "" {
		migrationDir := os.Getenv("MIGRATION_DIR")
		if migrationDir == "" {
			migrationDir = db.DefaultMigrationDir
		}
		sqlDb := db.MustConnectToDb(psqlUrl, migrationDir)
		defer sqlDb.Close()
		opts = append(opts, api.WithDbManager(sqlc.NewDbManager(sqlc.New(sqlDb))))
	} else {
		log.Println("DATABASE_URL not set, analytics disabled")
	}

	server := api.NewServer(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go server.ManageSessionsCleanup(ctx)

	httpServer := &http.Server{
		Addr:    server.Addr(),
		Handler: server.Mux(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Println(err)
		}
	}()

	log.Printf("Listening on %s (stage: %s)\n", server.Addr(), server.Stage())
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalln(err)
	}
}
