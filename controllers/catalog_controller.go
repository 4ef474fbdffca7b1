package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ccam-ts/pricing-api/repository"
	"github.com/ccam-ts/pricing-api/utils"
)

// Read-only catalog listings backing the configuration form.

func GetCategories(catalog repository.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		categories, err := catalog.FindCategories(ctx)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": categories, "total": len(categories)})
	}
}

func GetDevices(catalog repository.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		page := utils.ParseIntDefault(c.Query("page"), 1)
		limit := utils.ParseIntDefault(c.Query("limit"), 20)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 20
		}
		if limit > 100 {
			limit = 100
		}

		devices, err := catalog.FindAllDevices(ctx)
		if err != nil {
			respondError(c, err)
			return
		}

		total := len(devices)
		start := (page - 1) * limit
		if start > total {
			start = total
		}
		end := start + limit
		if end > total {
			end = total
		}

		c.JSON(http.StatusOK, gin.H{
			"items": devices[start:end],
			"page":  page,
			"limit": limit,
			"total": total,
		})
	}
}
