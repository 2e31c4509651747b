package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"diary"
	"diary/config"
	"diary/internal/application/usecase"
	"diary/internal/infrastructure/broker"
	"diary/internal/infrastructure/database"
	"diary/internal/infrastructure/minio"
	"diary/internal/infrastructure/token"
	"diary/internal/presentation/handler"
	"diary/internal/presentation/middleware"
	"diary/pkg/utils"
)

const (
	connectRetryInterval = 5 * time.Second
	shutdownTimeout      = 10 * time.Second
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running diary", "version", diary.StringVersion())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := utils.RetryForever(ctx, "mongodb", connectRetryInterval, func() (*database.Database, error) {
		return database.Connect(cfg.DBConfig)
	})
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("couldn't stop db instance", "err", err)
		}
	}()

	minIOClient, err := utils.RetryForever(ctx, "minio", connectRetryInterval, func() (*minio.Client, error) {
		return minio.New(cfg.MinIOClient)
	})
	if err != nil {
		ExitOnError(err)
	}

	brokerClient, err := utils.RetryForever(ctx, "redis", connectRetryInterval, func() (*broker.Client, error) {
		return broker.NewClient(cfg.BrokerConfig)
	})
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := brokerClient.Close(); err != nil {
			logger.Error("couldn't close broker client", "err", err)
		}
	}()

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	brokerReceiver := broker.NewReceiver(brokerClient, cfg.ReceiverConfig)

	dbWriter := database.NewDiaryWriter(db)
	dbRetriever := database.NewDiaryRetriever(db)
	dbLister := database.NewDiaryLister(db)
	dbUpdater := database.NewDiaryUpdater(db)
	dbRemover := database.NewDiaryRemover(db)

	minIOUploader := minio.NewUploader(minIOClient, cfg.MinIOUploader)
	minIORemover := minio.NewRemover(minIOClient, cfg.MinIORemover)
	minIOReader := minio.NewReader(minIOClient, cfg.MinIOReader)

	maxUpload := cfg.Diary.MaxUploadSize

	analysis := usecase.NewAnalysisApplier(dbUpdater)
	go func() {
		if err := analysis.Consume(ctx, brokerReceiver, cfg.ReceiverConfig.Consumer); err != nil {
			logger.Error("analysis consumer stopped", "err", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.Default.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Default.RateLimit))))

	handler.Register(e, handler.Handlers{
		Create: handler.NewCreateHandler(usecase.NewCreator(dbWriter, minIOUploader, minIORemover,
			brokerPublisher, maxUpload)),
		List: handler.NewListHandler(usecase.NewLister(dbLister)),
		Get:  handler.NewGetHandler(usecase.NewGetter(dbRetriever)),
		Update: handler.NewUpdateHandler(usecase.NewUpdater(dbRetriever, dbUpdater, minIOUploader, minIORemover,
			brokerPublisher, maxUpload)),
		Delete: handler.NewDeleteHandler(usecase.NewDeleter(dbRetriever, dbRemover, minIORemover)),
		Blob:   handler.NewBlobHandler(usecase.NewBlobGetter(minIOReader)),
	}, middleware.AuthMiddleware(token.NewVerifier(cfg.Token)))

	go func() {
		if err := e.Start(cfg.Default.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}
}
