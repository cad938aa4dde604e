package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jfarias-dev/wisp-cobros/internal/application/auth"
	"github.com/jfarias-dev/wisp-cobros/internal/application/billing"
	"github.com/jfarias-dev/wisp-cobros/internal/application/messaging"
	"github.com/jfarias-dev/wisp-cobros/internal/application/usecase"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/entity"
	"github.com/jfarias-dev/wisp-cobros/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ClientUC     *billing.ClientUseCase
	PaymentUC    *billing.PaymentUseCase
	ReceiptPDFUC *billing.ReceiptPDFUseCase
	BillingRunUC *billing.BillingRunUseCase
	EquipmentUC  *billing.EquipmentUseCase
	DeletionUC   *billing.DeletionUseCase
	CSVUC        *billing.CSVUseCase
	MessagingUC  *messaging.UseCase
	UserUC       *usecase.UserUseCase
	SettingsUC   *usecase.SettingsUseCase
	Users        repository.UserRepository
	JWTSecret    string
	PublicRPS    float64
	PublicBurst  int
}

// Router registra las rutas de la API. Las rutas estáticas bajo /clients
// se registran antes que /:id para que Fiber no las capture como id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Consulta pública por cédula (sin token, con rate limit por IP)
	publicHandler := NewPublicHandler(deps.ClientUC)
	public := api.Group("/public", RateLimitMiddleware(deps.PublicRPS, deps.PublicBurst))
	public.Get("/clients/:cedula", publicHandler.Query)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	perm := func(p string) fiber.Handler { return RequirePermission(deps.Users, p) }

	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.ReceiptPDFUC)
	deletionHandler := NewDeletionHandler(deps.DeletionUC)
	csvHandler := NewCSVHandler(deps.CSVUC)
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC)

	// Export / Import CSV y borrado masivo (estáticas, antes de /:id)
	clients.Get("/export", perm("canExportImport"), csvHandler.Export)
	clients.Post("/import", perm("canExportImport"), csvHandler.Import)
	clients.Post("/delete-all-request", perm("canDeleteClients"), deletionHandler.RequestAll)
	clients.Post("/delete-confirm/:token", perm("canDeleteClients"), deletionHandler.Confirm)

	// Clients CRUD
	clients.Get("/", perm("canViewClients"), clientHandler.List)
	clients.Post("/", perm("canAddClients"), clientHandler.Create)
	clients.Get("/:id", perm("canViewClients"), clientHandler.GetByID)
	clients.Put("/:id", perm("canEditClients"), clientHandler.Update)
	clients.Post("/:id/suspend", perm("canEditClients"), clientHandler.Suspend)
	clients.Post("/:id/reinstate", perm("canEditClients"), clientHandler.Reinstate)
	clients.Post("/:id/delete-request", perm("canDeleteClients"), deletionHandler.RequestOne)

	// Payments
	clients.Post("/:id/payments", perm("canMakePayments"), paymentHandler.Pay)
	clients.Post("/:id/abonos", perm("canMakePayments"), paymentHandler.Abono)
	clients.Delete("/:id/payments/:index", perm("canRemovePayments"), paymentHandler.RemovePayment)
	clients.Put("/:id/balance", perm("canUpdateBalance"), paymentHandler.OverrideBalance)
	clients.Get("/:id/payments/:index/receipt", perm("canViewClients"), paymentHandler.Receipt)
	clients.Get("/:id/payments/:index/receipt.pdf", perm("canViewClients"), paymentHandler.ReceiptPDF)

	// Equipos MAC/IP del cliente
	clients.Post("/:id/equipment", perm("canEditClients"), equipmentHandler.Assign)
	clients.Put("/:id/equipment", perm("canEditClients"), equipmentHandler.Modify)

	// Facturación mensual
	billingGroup := protected.Group("/billing")
	billingHandler := NewBillingHandler(deps.BillingRunUC)
	billingGroup.Post("/run", perm("canBillMonthly"), billingHandler.Run)
	billingGroup.Get("/stats", perm("canViewClients"), billingHandler.Stats)

	// Chequeos globales de equipos
	equipment := protected.Group("/equipment")
	equipment.Get("/availability", perm("canViewClients"), equipmentHandler.CheckAvailability)
	equipment.Get("/partition", perm("canViewClients"), equipmentHandler.Partition)

	// Recordatorios WhatsApp
	messages := protected.Group("/messages")
	messageHandler := NewMessageHandler(deps.MessagingUC)
	messages.Post("/whatsapp", perm("canViewClients"), messageHandler.BuildLinks)
	messages.Get("/whatsapp/qr", perm("canViewClients"), messageHandler.LinkQR)

	// Usuarios (perfil propio para todos; gestión solo administradores)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateProfile)
	admin := users.Group("/", RequireRole(entity.RoleAdmin))
	admin.Get("/", userHandler.List)
	admin.Post("/admins", userHandler.RegisterAdmin)
	admin.Post("/employees", userHandler.CreateEmployee)
	admin.Put("/employees/:username", userHandler.UpdateEmployee)
	admin.Delete("/employees/:username", userHandler.DeleteEmployee)

	// Ajustes (solo administradores)
	settings := protected.Group("/settings", RequireRole(entity.RoleAdmin))
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/fees", settingsHandler.GetFeeSchedule)
	settings.Put("/fees", settingsHandler.UpdateFeeSchedule)
	settings.Get("/calendar", settingsHandler.GetBillingCalendar)
	settings.Put("/calendar", settingsHandler.UpdateBillingCalendar)
	settings.Get("/backup-email", settingsHandler.GetBackupEmail)
	settings.Put("/backup-email", settingsHandler.UpdateBackupEmail)
}
