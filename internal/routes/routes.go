package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/KennethOlusegun/barberBoss-sub001/internal/audit"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/config"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/handlers"
	infraRepo "github.com/KennethOlusegun/barberBoss-sub001/internal/infra/repository"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/middleware"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/settings"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/timeblock"
	"github.com/KennethOlusegun/barberBoss-sub001/internal/timezone"
	ucAppointment "github.com/KennethOlusegun/barberBoss-sub001/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	loc := timezone.Location(cfg.Timezone)

	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	settingsCache := settings.NewCache(settings.NewRedisClient(cfg.RedisAddr))
	settingsSvc := settings.NewService(db, settingsCache)

	timeBlockSvc := timeblock.NewService(db, loc)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		settingsSvc,
		timeBlockSvc,
		auditDispatcher,
		loc,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		settingsSvc,
		timeBlockSvc,
		auditDispatcher,
		loc,
	)

	removeAppointmentUC := ucAppointment.NewRemoveAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	clientHistoryUC := ucAppointment.NewClientHistory(appointmentRepo)

	availableSlotsUC := ucAppointment.NewGetAvailableSlots(
		appointmentRepo,
		settingsSvc,
		timeBlockSvc,
		loc,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	settingsHandler := handlers.NewSettingsHandler(settingsSvc)
	timeBlockHandler := handlers.NewTimeBlockHandler(timeBlockSvc)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		removeAppointmentUC,
		listAppointmentsUC,
		getAppointmentUC,
		availableSlotsUC,
		clientHistoryUC,
		loc,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/services", serviceHandler.List)
		api.GET("/services/:id", serviceHandler.GetByID)
		api.GET("/appointments/available-slots/search", appointmentHandler.AvailableSlots)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", userHandler.GetMe)
			secured.GET("/users", userHandler.List)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/client-history", appointmentHandler.ClientHistory)
			secured.GET("/appointments/:id", appointmentHandler.GetByID)
			secured.PATCH("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// CATÁLOGO
			// ------------------------------
			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// CONFIGURAÇÕES
			// ------------------------------
			secured.GET("/settings", settingsHandler.Get)
			secured.PATCH("/settings", settingsHandler.Update)

			// ------------------------------
			// BLOQUEIOS DE AGENDA
			// ------------------------------
			secured.POST("/time-blocks", timeBlockHandler.Create)
			secured.GET("/time-blocks", timeBlockHandler.List)
			secured.GET("/time-blocks/:id", timeBlockHandler.GetByID)
			secured.PATCH("/time-blocks/:id", timeBlockHandler.Update)
			secured.DELETE("/time-blocks/:id", timeBlockHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
