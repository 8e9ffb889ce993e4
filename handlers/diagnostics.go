package handlers

import (
	"context"
	"net/http"
	"time"

	"frontdesk/config"
	"frontdesk/database"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// DiagnosticsHandler handles GET /test. It reports store connectivity and
// configuration as descriptive text and never errors to the caller.
func DiagnosticsHandler(c *gin.Context) {
	report := gin.H{
		"backend":           "running",
		"database":          "not available",
		"database_url":      "not set",
		"database_name":     "not set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}
	if config.DatabaseURLSet() {
		report["database_url"] = "set"
	}
	if config.DatabaseNameSet() {
		report["database_name"] = "set"
	}

	if database.MongoClient == nil {
		c.JSON(http.StatusOK, report)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := database.MongoClient.Ping(ctx, nil); err != nil {
		report["database"] = "error: " + truncate(err.Error(), 50)
		c.JSON(http.StatusOK, report)
		return
	}

	report["database"] = "connected"
	report["connection_status"] = "Connected"

	names, err := database.DB().ListCollectionNames(ctx, bson.M{})
	if err != nil {
		report["database"] = "connected but error: " + truncate(err.Error(), 50)
	} else {
		if len(names) > 10 {
			names = names[:10]
		}
		report["collections"] = names
		report["database"] = "connected and working"
	}

	c.JSON(http.StatusOK, report)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
