package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/fatec/pi-back/internal/domain/ports"
	"github.com/fatec/pi-back/internal/handlers/dto"
	"github.com/fatec/pi-back/internal/handlers/middleware"
	"github.com/fatec/pi-back/internal/infrastructure/i18n"
	"github.com/fatec/pi-back/internal/services"
)

// RouterConfig reúne as opções de montagem do roteador
type RouterConfig struct {
	Env            string
	BaseURL        string
	AllowedOrigins string
	Swagger        bool
}

// NewRouter monta o engine do gin com middlewares e rotas
func NewRouter(cfg RouterConfig, svc *services.Services, translator *i18n.Service, logger ports.Logger) *gin.Engine {
	dto.RegisterValidations()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set(dto.BaseURLContextKey, cfg.BaseURL)
		c.Next()
	})
	router.Use(middleware.Language(translator))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Authenticate(svc.Auth, logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})
	if cfg.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authHandler := NewAuthHandler(svc.Auth)
	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/register", authHandler.Register)
	}

	protected := router.Group("")
	protected.Use(middleware.RequireAuthentication(Unauthorized))

	userHandler := NewUserHandler(svc.Users)
	users := protected.Group("/user")
	{
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.PATCH("/:id", userHandler.UpdateUser)
		users.PUT("/password/:id", userHandler.UpdatePassword)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	roleHandler := NewRoleHandler(svc.Roles)
	roles := protected.Group("/role")
	{
		roles.GET("", roleHandler.ListRoles)
		roles.GET("/:id", roleHandler.GetRole)
		roles.POST("", roleHandler.CreateRole)
		roles.PATCH("/:id", roleHandler.UpdateRole)
		roles.DELETE("/:id", roleHandler.DeleteRole)
	}

	patientHandler := NewPatientHandler(svc.Patients)
	patients := protected.Group("/patient")
	{
		patients.GET("", patientHandler.ListPatients)
		patients.GET("/:id", patientHandler.GetPatient)
		patients.POST("", patientHandler.CreatePatient)
		patients.PATCH("/:id", patientHandler.UpdatePatient)
		patients.DELETE("/:id", patientHandler.DeletePatient)
	}

	caregiverHandler := NewCaregiverHandler(svc.Caregivers)
	caregivers := protected.Group("/caregiver")
	{
		caregivers.GET("", caregiverHandler.ListCaregivers)
		caregivers.GET("/:id", caregiverHandler.GetCaregiver)
		caregivers.POST("", caregiverHandler.CreateCaregiver)
		caregivers.PATCH("/:id", caregiverHandler.UpdateCaregiver)
		caregivers.DELETE("/:id", caregiverHandler.DeleteCaregiver)
	}

	haveHandler := NewHaveHandler(svc.Haves)
	haves := protected.Group("/have")
	{
		haves.GET("", haveHandler.ListHaves)
		haves.GET("/:id", haveHandler.GetHave)
		haves.POST("", haveHandler.CreateHave)
		haves.PATCH("/:id", haveHandler.UpdateHave)
		haves.DELETE("/:id", haveHandler.DeleteHave)
	}

	medicationHandler := NewMedicationHandler(svc.Medications)
	medications := protected.Group("/medication")
	{
		medications.GET("", medicationHandler.ListMedications)
		medications.GET("/:id", medicationHandler.GetMedication)
		medications.POST("", medicationHandler.CreateMedication)
		medications.PATCH("/:id", medicationHandler.UpdateMedication)
		medications.DELETE("/:id", medicationHandler.DeleteMedication)
	}

	relationHandler := NewRelationMPHandler(svc.Relations)
	relations := protected.Group("/relation_mp")
	{
		relations.GET("", relationHandler.ListRelations)
		relations.GET("/:id", relationHandler.GetRelation)
		relations.POST("", relationHandler.CreateRelation)
		relations.PATCH("/:id", relationHandler.UpdateRelation)
		relations.DELETE("/:id", relationHandler.DeleteRelation)
	}

	historyHandler := NewHistoryHandler(svc.Histories)
	histories := protected.Group("/history")
	{
		histories.GET("", historyHandler.ListHistories)
		histories.GET("/:id", historyHandler.GetHistory)
		histories.POST("", historyHandler.CreateHistory)
		histories.PATCH("/:id", historyHandler.UpdateHistory)
		histories.DELETE("/:id", historyHandler.DeleteHistory)
	}

	return router
}
