package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ccam-ts/pricing-api/controllers"
	"github.com/ccam-ts/pricing-api/database"
	"github.com/ccam-ts/pricing-api/export"
	"github.com/ccam-ts/pricing-api/middleware"
	"github.com/ccam-ts/pricing-api/repository"
	"github.com/ccam-ts/pricing-api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	ctx := context.Background()
	uri := os.Getenv("MONGODB_URI")
	databaseName := os.Getenv("DATABASE_NAME")
	if databaseName == "" {
		databaseName = "ccam"
	}

	db, err := database.Connect(ctx, uri, databaseName)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := db.Disconnect(context.Background()); err != nil {
			log.Printf("disconnect: %v", err)
		}
	}()
	log.Println("Connected to MongoDB")

	catalog := repository.NewMongoCatalog(db)
	quotations := repository.NewMongoQuotations(db)
	quotationService := services.NewQuotationService(catalog, quotations)
	exporter := export.NewExcelExporter()

	r := gin.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := map[string]bool{}
	for _, origin := range strings.Split(origins, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowedOrigins[origin] = true
		}
	}
	log.Printf("Allowed origins: %v", allowedOrigins)
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowedOrigins[origin]
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/categories", controllers.GetCategories(catalog))
	r.GET("/devices", controllers.GetDevices(catalog))

	r.POST("/quotations", controllers.CreateQuotation(quotationService))
	r.GET("/quotations/:id", controllers.GetQuotation(quotationService))
	r.PATCH("/quotations/:id/update", controllers.UpdateQuotationItem(quotationService))
	r.POST("/quotations/:id/export", controllers.ExportQuotation(quotationService, exporter))

	r.Run()
}
