package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/smontiel/thesis-workflow/internal/adapter"
	notifhandler "github.com/smontiel/thesis-workflow/internal/api/handlers/notification"
	projecthandler "github.com/smontiel/thesis-workflow/internal/api/handlers/project"
	reviewhandler "github.com/smontiel/thesis-workflow/internal/api/handlers/review"
	"github.com/smontiel/thesis-workflow/internal/api/router"
	"github.com/smontiel/thesis-workflow/internal/api/server"
	"github.com/smontiel/thesis-workflow/internal/config"
	"github.com/smontiel/thesis-workflow/internal/eventbus"
	"github.com/smontiel/thesis-workflow/internal/idempotency"
	"github.com/smontiel/thesis-workflow/internal/model"
	"github.com/smontiel/thesis-workflow/internal/notify"
	notifmsg "github.com/smontiel/thesis-workflow/internal/rabbitmq/handlers/notification"
	"github.com/smontiel/thesis-workflow/internal/rabbitmq/queue"
	notifrepo "github.com/smontiel/thesis-workflow/internal/repository/notification"
	projectrepo "github.com/smontiel/thesis-workflow/internal/repository/project"
	reviewrepo "github.com/smontiel/thesis-workflow/internal/repository/review"
	notifsvc "github.com/smontiel/thesis-workflow/internal/service/notification"
	projectsvc "github.com/smontiel/thesis-workflow/internal/service/project"
	reviewsvc "github.com/smontiel/thesis-workflow/internal/service/review"
	"github.com/smontiel/thesis-workflow/internal/worker"
	"github.com/smontiel/thesis-workflow/internal/workflow"
	"github.com/smontiel/thesis-workflow/pkg/email"
	"github.com/smontiel/thesis-workflow/pkg/sms"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	q, err := queue.New(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to declare notification queues")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))

	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	projects := projectrepo.NewRepository(db)
	reviews := reviewrepo.NewRepository(db)
	notifications := notifrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)

	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	smsClient := sms.NewClient(cfg.SMS.BaseURL, cfg.SMS.APIKey, cfg.SMS.From)

	notifiers := map[model.Channel]notify.Notifier{
		model.ChannelEmail: emailClient,
		model.ChannelSMS:   smsClient,
	}

	eventValidator := notify.NewValidator()
	sender := notify.NewSender(notifiers, eventValidator)
	publisher := notify.NewPublisher(q, notifications, eventValidator, cfg.Retry)

	bus := eventbus.New()
	statusClient := adapter.NewStatusClient(cfg.Downstream.BaseURL, cfg.Retry)
	adapter.New(publisher, statusClient).Register(bus)

	eventIDs := idempotency.New(rdb, "event_id", cfg.Redis.IDsTTL)
	completionIDs := idempotency.New(rdb, "completion_id", cfg.Redis.IDsTTL)

	versions := workflow.NewVersionStore(projects)
	projectService := projectsvc.NewService(projects, versions, eventIDs, completionIDs, bus, rdb)
	reviewService := reviewsvc.NewService(reviews, projectService, bus)
	notificationService := notifsvc.NewService(notifications, rdb)

	messageHandler := notifmsg.NewHandler(sender, q, notifications)
	consumer := worker.NewConsumer(q, messageHandler)

	go consumer.Run(ctx, cfg.Retry, cfg.Workers.Count)

	projectHandler := projecthandler.NewHandler(projectService, val, cfg)
	reviewHandler := reviewhandler.NewHandler(reviewService, val, cfg)
	notificationHandler := notifhandler.NewHandler(notificationService, cfg)

	r := router.New(projectHandler, reviewHandler, notificationHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, s := range db.Slaves {
		if err := s.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
