package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/handlers"
	"github.com/mkulima/dairyfarm_backend/middlewares"
	"github.com/mkulima/dairyfarm_backend/models"
	"github.com/sirupsen/logrus"
)

const defaultPort = "8080"

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func main() {
	// .env is a developer convenience; deployed environments inject real env vars
	_ = godotenv.Load()

	port := os.Getenv("API_PORT")
	if port == "" {
		// Cloud Run standard env var.
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = defaultPort
	}

	logger := config.GetLogger()

	// Cloud Run sends SIGTERM on revision shutdown; handle it for graceful drain.
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	r := gin.New()
	r.Use(middlewares.CorrelationIdMiddleware())

	// Gate app endpoints on dependency readiness; the startup probe is exempt.
	r.Use(func(c *gin.Context) {
		if c.Request.URL.Path == "/healthz" {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		if config.GetDB() == nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Next()
	})
	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	corsConfig := cors.DefaultConfig()
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production") {
		if allowedOrigins == "" {
			corsConfig.AllowOrigins = []string{}
		} else {
			corsConfig.AllowOrigins = splitAndTrim(allowedOrigins)
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("token", "Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition")
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	r.Use(middlewares.AuthMiddleware())
	r.Use(customErrorLogger(logger))
	r.Use(gin.Recovery())

	registerRoutes(r)

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	// Connect dependencies after the port is open.
	config.ConnectDatabaseWithRetry()
	config.ConnectRedis()

	db := config.GetDB()
	sqlDB, _ := db.DB()
	defer func() {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}()

	// AutoMigrate runs DDL that can block tables; allow running it as a
	// separate job instead.
	if !strings.EqualFold(strings.TrimSpace(os.Getenv("SKIP_MIGRATIONS")), "true") {
		if err := models.MigrateTable(); err != nil {
			logger.WithFields(logrus.Fields{"field": "migrations"}).Panic(err.Error())
		}
	} else {
		logger.WithFields(logrus.Fields{"field": "migrations"}).Warn("SKIP_MIGRATIONS=true; skipping AutoMigrate on startup")
	}

	log.Println("Server started successfully on port " + port)

	select {
	case <-sigCtx.Done():
		// graceful shutdown below
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithFields(logrus.Fields{"field": "http"}).Error("server stopped unexpectedly: " + err.Error())
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithFields(logrus.Fields{"field": "http"}).Error("graceful shutdown failed: " + err.Error())
	}

	if rdb := config.GetRedisDB(); rdb != nil {
		_ = rdb.Close()
	}
}

func registerRoutes(engine *gin.Engine) {
	r := engine.Group("/api")

	r.POST("/auth/login", handlers.Login)

	// User administration is manager territory.
	admin := r.Group("/users", middlewares.RequireRole(models.UserRoleManager))
	{
		admin.POST("", handlers.RegisterUser)
		admin.GET("", handlers.ListUsers)
		admin.GET("/:id", handlers.GetUser)
		admin.PUT("/:id/role", handlers.UpdateUserRole)
		admin.DELETE("/:id", handlers.DeleteUser)
	}

	// Everyone on the farm can read; workers can record routine observations.
	read := r.Group("", middlewares.RequireRole(models.UserRoleWorker))
	{
		read.GET("/cows", handlers.ListCows)
		read.GET("/cows/:id", handlers.GetCow)
		read.GET("/cows/:id/lactations", handlers.ListCowLactations)
		read.GET("/weight-records", handlers.ListWeightRecords)
		read.GET("/weight-records/:id", handlers.GetWeightRecord)
		read.POST("/weight-records", handlers.CreateWeightRecord)
		read.GET("/culling-records", handlers.ListCullingRecords)
		read.GET("/culling-records/:id", handlers.GetCullingRecord)
		read.GET("/quarantine-records", handlers.ListQuarantineRecords)
		read.GET("/quarantine-records/:id", handlers.GetQuarantineRecord)
		read.GET("/pathogens", handlers.ListPathogens)
		read.GET("/pathogens/:id", handlers.GetPathogen)
		read.GET("/disease-categories", handlers.ListDiseaseCategories)
		read.GET("/disease-categories/:id", handlers.GetDiseaseCategory)
		read.GET("/symptoms", handlers.ListSymptoms)
		read.GET("/symptoms/:id", handlers.GetSymptom)
		read.GET("/diseases", handlers.ListDiseases)
		read.GET("/diseases/:id", handlers.GetDisease)
		read.GET("/recoveries", handlers.ListRecoveries)
		read.GET("/recoveries/:id", handlers.GetRecovery)
		read.GET("/treatments", handlers.ListTreatments)
		read.GET("/treatments/:id", handlers.GetTreatment)
		read.GET("/inseminators", handlers.ListInseminators)
		read.GET("/inseminators/:id", handlers.GetInseminator)
		read.GET("/heats", handlers.ListHeats)
		read.GET("/heats/:id", handlers.GetHeat)
		read.POST("/heats", handlers.CreateHeat)
		read.GET("/inseminations", handlers.ListInseminations)
		read.GET("/inseminations/:id", handlers.GetInsemination)
		read.GET("/pregnancies", handlers.ListPregnancies)
		read.GET("/pregnancies/:id", handlers.GetPregnancy)
		read.GET("/lactations/:id", handlers.GetLactation)
		read.GET("/inventory", handlers.GetCowInventory)
		read.GET("/inventory/history", handlers.ListCowInventoryHistory)
	}

	// Clinical and reproductive record keeping.
	lead := r.Group("", middlewares.RequireRole(models.UserRoleTeamLeader))
	{
		lead.POST("/quarantine-records", handlers.CreateQuarantineRecord)
		lead.PUT("/quarantine-records/:id", handlers.UpdateQuarantineRecord)
		lead.POST("/symptoms", handlers.CreateSymptom)
		lead.PUT("/symptoms/:id", handlers.UpdateSymptom)
		lead.POST("/treatments", handlers.CreateTreatment)
		lead.PUT("/treatments/:id", handlers.UpdateTreatment)
		lead.PUT("/weight-records/:id", handlers.UpdateWeightRecord)
		lead.POST("/inseminations", handlers.CreateInsemination)
		lead.PUT("/inseminations/:id", handlers.UpdateInsemination)
		lead.POST("/pregnancies", handlers.CreatePregnancy)
		lead.PUT("/pregnancies/:id", handlers.UpdatePregnancy)
	}

	// Herd composition and destructive operations.
	manage := r.Group("", middlewares.RequireRole(models.UserRoleAssistantManager))
	{
		manage.POST("/cows", handlers.CreateCow)
		manage.PUT("/cows/:id", handlers.UpdateCow)
		manage.DELETE("/cows/:id", handlers.DeleteCow)
		manage.POST("/culling-records", handlers.CreateCullingRecord)
		manage.DELETE("/culling-records/:id", handlers.DeleteCullingRecord)
		manage.DELETE("/weight-records/:id", handlers.DeleteWeightRecord)
		manage.DELETE("/quarantine-records/:id", handlers.DeleteQuarantineRecord)
		manage.POST("/pathogens", handlers.CreatePathogen)
		manage.DELETE("/pathogens/:id", handlers.DeletePathogen)
		manage.POST("/disease-categories", handlers.CreateDiseaseCategory)
		manage.DELETE("/disease-categories/:id", handlers.DeleteDiseaseCategory)
		manage.DELETE("/symptoms/:id", handlers.DeleteSymptom)
		manage.POST("/diseases", handlers.CreateDisease)
		manage.PUT("/diseases/:id", handlers.UpdateDisease)
		manage.DELETE("/diseases/:id", handlers.DeleteDisease)
		manage.DELETE("/treatments/:id", handlers.DeleteTreatment)
		manage.POST("/inseminators", handlers.CreateInseminator)
		manage.PUT("/inseminators/:id", handlers.UpdateInseminator)
		manage.DELETE("/inseminators/:id", handlers.DeleteInseminator)
		manage.DELETE("/heats/:id", handlers.DeleteHeat)
		manage.DELETE("/inseminations/:id", handlers.DeleteInsemination)
		manage.DELETE("/pregnancies/:id", handlers.DeletePregnancy)
		manage.GET("/inventory/history/export", handlers.ExportCowInventoryHistory)
	}
}

// customErrorLogger logs only requests that accumulated errors
func customErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			logger.Error(c.Errors.String())
		}
	}
}
