package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/natefinch/lumberjack"

	"nenserver/database"
	"nenserver/restapi"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	if logPath := os.Getenv("LOGPATH"); logPath != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
		})
	}

	uri := os.Getenv("MONGOCONNECTIONSTRING")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	dbName := os.Getenv("DBNAME")
	if dbName == "" {
		dbName = "nenserver"
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, uri)
	if err != nil {
		log.Fatalf("Could not connect to mongo: %v", err)
	}

	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			log.Printf("ERROR: could not disconnect mongo client: %v", err)
		}
	}()

	fmt.Println("Successfully connected and pinged.")

	store := database.NewStore(client.Database(dbName))
	api := restapi.NewAPI(store, os.Getenv("CORSORIGINS"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "10000"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: api.Router(),
	}

	go func() {
		log.Printf("Listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	s := <-sig
	fmt.Printf("Signal (%s) received, stopping\n", s)

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("ERROR: server shutdown: %v", err)
	}
}
