package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nanumteam/nanum/internal/cache"
	"github.com/nanumteam/nanum/internal/db"
	"github.com/nanumteam/nanum/internal/delivery"
	"github.com/nanumteam/nanum/internal/donation"
	"github.com/nanumteam/nanum/internal/kafka"
	"github.com/nanumteam/nanum/internal/logger"
	"github.com/nanumteam/nanum/internal/notify"
	"github.com/nanumteam/nanum/internal/repository/postgresql"
	"github.com/nanumteam/nanum/internal/server"
)

const notificationTopic = "donation_notifications"

func main() {
	zapLogger := logger.New()
	defer func() {
		_ = zapLogger.Sync()
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	database, err := db.NewDb(ctx)
	if err != nil {
		log.Fatalf("Database init error: %v", err)
	}
	db.InitAdmin(database)

	donationRepo := postgresql.NewDonationRepo(database)
	deliveryRepo := postgresql.NewDeliveryRepo(database)
	orgRepo := postgresql.NewOrganizationRepo(database)
	notificationRepo := postgresql.NewNotificationRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()
	userRepo := postgresql.NewUserRepo(database)

	orgCache := cache.NewOrgCache(orgRepo)
	if err := orgCache.LoadInitialData(ctx); err != nil {
		log.Fatalf("Failed to load organization cache: %v", err)
	}

	engine := donation.NewEngine(database, donationRepo, deliveryRepo, orgCache, userRepo, zapLogger)
	manager := delivery.NewManager(database, deliveryRepo, engine, zapLogger)

	var producer kafka.Producer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer = kafka.NewKafkaProducer(strings.Split(brokers, ","))
	} else {
		producer = kafka.NewConsoleProducer()
	}

	dispatcher := notify.NewDispatcher(database, notificationRepo, outboxRepo, notificationTopic, zapLogger)
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    50,
		MaxAttempts:  5,
	})

	srv := server.New(engine, manager, dispatcher, orgCache, userRepo, notificationRepo)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "9000"
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return srv.Run(groupCtx, port)
	})
	group.Go(func() error {
		publisher.Run(groupCtx)
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return srv.Shutdown(shutdownCtx)
	})

	log.Printf("Server started on port %s", port)
	if err := group.Wait(); err != nil {
		log.Fatalf("Service stopped with error: %v", err)
	}
	log.Println("Server gracefully stopped")
}
