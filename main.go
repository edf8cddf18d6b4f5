package main

import (
	"context"
	"log"
	"os"

	"hospital-registry-service/internal/adapters"
	"hospital-registry-service/internal/codec"
	"hospital-registry-service/internal/config"
	"hospital-registry-service/internal/console"
	"hospital-registry-service/internal/services"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("hospital-registry: %v", err)
	}
}

func run() error {
	logger := log.New(os.Stderr, "hospital-registry: ", log.LstdFlags)

	config.LoadEnvFile(logger)
	cfg := config.Load()

	store := adapters.NewFileStore(cfg.DataFile, codec.NewCodec(logger), logger)

	archive, err := adapters.NewBoltArchive(cfg.ArchiveFile, logger)
	if err != nil {
		// History is an extra; the registry still works without it.
		logger.Printf("snapshot archive unavailable: %v", err)
		archive = nil
	}
	if archive != nil {
		defer archive.Close()
	}

	svc := services.NewSessionService(store, archiverOrNil(archive), cfg, logger)

	ctx := context.Background()
	if err := svc.Start(ctx); err != nil {
		return err
	}

	menu := console.NewMenu(os.Stdin, os.Stdout, svc, logger)
	if err := menu.Run(ctx); err != nil {
		logger.Printf("session ended with error: %v", err)
	}

	return svc.Stop(ctx)
}

// archiverOrNil keeps the service's nil check working: a nil *BoltArchive
// wrapped in the Archiver interface would not compare equal to nil.
func archiverOrNil(archive *adapters.BoltArchive) adapters.Archiver {
	if archive == nil {
		return nil
	}
	return archive
}
