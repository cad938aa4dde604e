package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jfarias-dev/wisp-cobros/internal/application/auth"
	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/application/dto"
	"github.com/jfarias-dev/wisp-cobros/internal/application/messaging"
	"github.com/jfarias-dev/wisp-cobros/internal/application/usecase"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
	"github.com/jfarias-dev/wisp-cobros/internal/infrastructure/kvstore"
	"github.com/jfarias-dev/wisp-cobros/internal/infrastructure/memory"
	infrapdf "github.com/jfarias-dev/wisp-cobros/internal/infrastructure/pdf"
	infraqr "github.com/jfarias-dev/wisp-cobros/internal/infrastructure/qr"
	httpRouter "github.com/jfarias-dev/wisp-cobros/internal/interfaces/http"
	"github.com/jfarias-dev/wisp-cobros/pkg/config"
	"github.com/jfarias-dev/wisp-cobros/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var store repository.KeyValueStore
	switch cfg.Store.Driver {
	case "sqlite":
		store, err = kvstore.NewSQLiteStore(cfg.Store.Path)
	case "postgres":
		store, err = kvstore.NewPostgresStore(ctx, cfg.DB)
	default:
		store, err = kvstore.NewFileStore(cfg.Store.Path)
	}
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("abrir almacenamiento")
	}
	defer store.Close()

	clientRepo := memory.NewClientRepository(store, log)
	userRepo := memory.NewUserRepository(store, log)
	settingsRepo := memory.NewSettingsRepository(store, log)

	clientUC := billing.NewClientUseCase(clientRepo, settingsRepo)
	paymentUC := billing.NewPaymentUseCase(clientRepo)
	billingRunUC := billing.NewBillingRunUseCase(clientRepo, settingsRepo)
	equipmentUC := billing.NewEquipmentUseCase(clientRepo)
	deletionUC := billing.NewDeletionUseCase(clientRepo)
	csvUC := billing.NewCSVUseCase(clientRepo)
	messagingUC := messaging.NewUseCase(clientRepo, infraqr.NewEncoder())
	userUC := usecase.NewUserUseCase(userRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	// PDF: recibo de pago imprimible
	pdfGenerator := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)
	receiptPDFUC := billing.NewReceiptPDFUseCase(paymentUC, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Primer arranque sin usuarios: se siembra la cuenta administradora.
	seedAdmin(userUC, cfg.Admin, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "WISP Cobros API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ClientUC:     clientUC,
		PaymentUC:    paymentUC,
		ReceiptPDFUC: receiptPDFUC,
		BillingRunUC: billingRunUC,
		EquipmentUC:  equipmentUC,
		DeletionUC:   deletionUC,
		CSVUC:        csvUC,
		MessagingUC:  messagingUC,
		UserUC:       userUC,
		SettingsUC:   settingsUC,
		Users:        userRepo,
		JWTSecret:    cfg.JWT.Secret,
		PublicRPS:    cfg.Rate.PublicRPS,
		PublicBurst:  cfg.Rate.PublicBurst,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// seedAdmin crea la cuenta administradora inicial cuando el sistema arranca
// sin ningún usuario registrado.
func seedAdmin(userUC *usecase.UserUseCase, admin config.AdminConfig, log *logger.Logger) {
	hasUsers, err := userUC.HasAnyUser()
	if err != nil {
		log.Error().Err(err).Msg("verificar usuarios existentes")
		return
	}
	if hasUsers {
		return
	}
	if admin.Password == "" {
		log.Warn().Msg("sin usuarios registrados y ADMIN_PASSWORD vacío: no se siembra administrador")
		return
	}
	if _, err := userUC.RegisterAdmin(dto.RegisterAdminRequest{
		Username: admin.Username,
		Password: admin.Password,
		Name:     admin.Name,
	}); err != nil {
		log.Error().Err(err).Msg("sembrar administrador inicial")
		return
	}
	log.Info().Str("username", admin.Username).Msg("administrador inicial creado")
}
