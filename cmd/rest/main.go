package main

import (
	"context"
	"log"

	"telehealth-be/internal/bootstrap"
	"telehealth-be/internal/config"
	"telehealth-be/internal/server"
	"telehealth-be/internal/tracer"
	"telehealth-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	go func() {
		log.Println("Background: Starting appointment mail worker...")
		if err := container.MailWorkerService.Consume(context.Background()); err != nil {
			log.Printf("Background mail worker error: %v", err)
		}
	}()

	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
