package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	_ "github.com/fatec/pi-back/docs"
	"github.com/fatec/pi-back/internal/domain/ports"
	"github.com/fatec/pi-back/internal/domain/repositories"
	apihttp "github.com/fatec/pi-back/internal/handlers/http"
	"github.com/fatec/pi-back/internal/infrastructure/config"
	"github.com/fatec/pi-back/internal/infrastructure/i18n"
	"github.com/fatec/pi-back/internal/infrastructure/logging"
	"github.com/fatec/pi-back/internal/infrastructure/persistence/memory"
	"github.com/fatec/pi-back/internal/infrastructure/persistence/postgres"
	"github.com/fatec/pi-back/internal/infrastructure/security"
	"github.com/fatec/pi-back/internal/services"
)

// @title						pi-back API
// @version					1.0
// @description				API de acompanhamento de pacientes, cuidadores e prescrições.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "pi-back",
		Short: "Backend de acompanhamento de pacientes e medicações",
	}

	var skipMigrate bool
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Inicia o servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(!skipMigrate)
		},
	}
	serve.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "não executa AutoMigrate ao iniciar (postgres)")

	migrate := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica o schema no banco PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	}

	rootCmd.AddCommand(serve, migrate)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runServer(autoMigrate bool) error {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("starting pi-back",
		"env", cfg.Env,
		"storage", cfg.Storage.Driver,
	)

	repos, uow, err := openStorage(cfg, logger, autoMigrate)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		return err
	}

	tokens, err := security.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.AccessExpiry)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	// Inicializar i18n
	translator, err := i18n.NewDefaultService(cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		return err
	}
	logger.Info("i18n initialized",
		"default_language", translator.GetDefaultLanguage(),
		"supported_languages", translator.GetSupportedLanguages(),
	)

	svc := services.New(repos, hasher, tokens, uow, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := apihttp.NewRouter(apihttp.RouterConfig{
		Env:            cfg.Env,
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Swagger:        cfg.Server.Swagger,
	}, svc, translator, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", "error", err)
		return err
	case <-quit:
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited")
	return nil
}

func runMigrate() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Storage.Driver != config.StorageDriverPostgres {
		return fmt.Errorf("migrate requires STORAGE_DRIVER=%s", config.StorageDriverPostgres)
	}

	logger := logging.New(os.Stdout, cfg.Logging.Level, cfg.Logging.Format)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return err
	}

	return postgres.Migrate(db, logger)
}

// openStorage escolhe o driver configurado e devolve repositórios e unit of work
func openStorage(cfg *config.Config, logger ports.Logger, autoMigrate bool) (repositories.Set, ports.UnitOfWork, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.NewRepositories(), memory.NewUnitOfWork(), nil
	}

	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		return repositories.Set{}, nil, err
	}

	if autoMigrate {
		if err := postgres.Migrate(db, logger); err != nil {
			return repositories.Set{}, nil, err
		}
	}

	return postgres.NewRepositories(db), postgres.NewUnitOfWork(db), nil
}
