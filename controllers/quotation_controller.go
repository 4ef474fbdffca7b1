package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ccam-ts/pricing-api/apperr"
	"github.com/ccam-ts/pricing-api/dto"
	"github.com/ccam-ts/pricing-api/export"
	"github.com/ccam-ts/pricing-api/models"
	"github.com/ccam-ts/pricing-api/services"
	"github.com/ccam-ts/pricing-api/utils"
)

func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
		return
	}
	log.Printf("unexpected error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func CreateQuotation(svc *services.QuotationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var req dto.CreateQuotationDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		categoryID, err := bson.ObjectIDFromHex(req.CategoryID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "categoryId không hợp lệ"})
			return
		}

		q := models.Quotation{
			SiteCount:      req.SiteCount,
			SiteLocation:   req.SiteLocation,
			DeploymentType: models.DeploymentType(req.DeploymentType),
			CategoryID:     categoryID,
			UserCount:      req.UserCount,
			PointCount:     req.PointCount,
			CameraCount:    req.CameraCount,
			ServiceKey:     req.ServiceKey,
		}
		for _, f := range req.SelectedFeatures {
			q.SelectedFeatures = append(q.SelectedFeatures, models.SelectedFeature{
				Feature:    f.Feature,
				PointCount: f.PointCount,
			})
		}

		out, err := svc.Create(ctx, q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}

func UpdateQuotationItem(svc *services.QuotationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		outputID, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id không hợp lệ"})
			return
		}

		var req dto.UpdateQuotationItemDTO
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		itemID, err := bson.ObjectIDFromHex(req.UpdatedItemID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "updatedItemId không hợp lệ"})
			return
		}

		out, err := svc.UpdateQuotationItem(ctx, outputID, req.Type, itemID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetQuotation(svc *services.QuotationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id không hợp lệ"})
			return
		}

		out, err := svc.GetOutput(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func ExportQuotation(svc *services.QuotationService, exporter *export.ExcelExporter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id, err := bson.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id không hợp lệ"})
			return
		}

		out, err := svc.GetOutput(ctx, id)
		if err != nil {
			respondError(c, err)
			return
		}

		data, err := exporter.Render(out)
		if err != nil {
			respondError(c, err)
			return
		}

		filename := fmt.Sprintf("%s.xlsx", utils.GenerateSlug(fmt.Sprintf("báo giá c-cam %s %s", out.DeploymentType, out.ID.Hex())))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	}
}
