package dto

type SelectedFeatureDTO struct {
	Feature    string `json:"feature" binding:"required"`
	PointCount int    `json:"pointCount"`
}

// CreateQuotationDTO binds the configuration form. Count fields stay optional
// at the binding level because which of them are required depends on the
// service mode; the pricing validation owns those rules.
type CreateQuotationDTO struct {
	SiteCount        int                  `json:"siteCount" binding:"required,min=1"`
	SiteLocation     string               `json:"siteLocation"`
	DeploymentType   string               `json:"deploymentType" binding:"required,oneof=Cloud OnPremise"`
	CategoryID       string               `json:"categoryId" binding:"required"`
	UserCount        *int                 `json:"userCount"`
	PointCount       int                  `json:"pointCount"`
	CameraCount      *int                 `json:"cameraCount"`
	SelectedFeatures []SelectedFeatureDTO `json:"selectedFeatures" binding:"dive"`
	ServiceKey       string               `json:"serviceKey"`
}

type UpdateQuotationItemDTO struct {
	Type          string `json:"type" binding:"required"`
	UpdatedItemID string `json:"updatedItemId" binding:"required"`
}
