package services

import (
	"fmt"
	"log"

	"github.com/goldtek/quotetrack/internal/config"
	"github.com/goldtek/quotetrack/internal/utils"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Analyzer     string            `json:"analyzer"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(cfg *config.Config, db *gorm.DB) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check database connectivity
	sqlDB, err := db.DB()
	if err != nil {
		result.Status = "unhealthy"
		result.Database = "error"
		result.Details["database_error"] = err.Error()
		result.ErrorMessage = fmt.Sprintf("Database connection error: %v", err)
		log.Printf("Health check failed - database connection: %v", err)
	} else {
		if err := sqlDB.Ping(); err != nil {
			result.Status = "unhealthy"
			result.Database = "unreachable"
			result.Details["database_ping_error"] = err.Error()
			result.ErrorMessage = fmt.Sprintf("Database ping failed: %v", err)
			log.Printf("Health check failed - database ping: %v", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBDatabase
		}
	}

	// Check AI endpoint connectivity; a failure degrades refinement to the
	// local transform but does not make the service unhealthy.
	if cfg.OpenAIKey == "" {
		result.Analyzer = "local"
	} else if err := utils.PingAnalyzer(cfg.OpenAIURL); err != nil {
		result.Analyzer = "unreachable"
		result.Details["analyzer_error"] = err.Error()
		log.Printf("Health check warning - analyzer ping: %v", err)
	} else {
		result.Analyzer = "ok"
		result.Details["analyzer_url"] = cfg.OpenAIURL
	}

	if result.Status == "healthy" {
		log.Println("Health check passed - all systems operational")
	}

	return result
}
