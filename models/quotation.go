package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Quotation is the stored input record: the configuration the customer
// submitted, before any pricing is applied.
type Quotation struct {
	ID               bson.ObjectID     `bson:"_id,omitempty" json:"id"`
	SiteCount        int               `bson:"siteCount" json:"siteCount"`
	SiteLocation     string            `bson:"siteLocation,omitempty" json:"siteLocation,omitempty"`
	DeploymentType   DeploymentType    `bson:"deploymentType" json:"deploymentType"`
	CategoryID       bson.ObjectID     `bson:"categoryId" json:"categoryId"`
	UserCount        *int              `bson:"userCount,omitempty" json:"userCount,omitempty"`
	PointCount       int               `bson:"pointCount" json:"pointCount"`
	CameraCount      *int              `bson:"cameraCount,omitempty" json:"cameraCount,omitempty"`
	SelectedFeatures []SelectedFeature `bson:"selectedFeatures,omitempty" json:"selectedFeatures,omitempty"`
	ServiceKey       string            `bson:"serviceKey,omitempty" json:"serviceKey,omitempty"`
	CreatedAt        time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// IsSecurity reports whether the quotation prices the feature-driven security
// alert service rather than the standard per-point service.
func (q Quotation) IsSecurity() bool {
	return q.ServiceKey == ServiceKeySecurityAlert
}
