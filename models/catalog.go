package models

import "go.mongodb.org/mongo-driver/v2/bson"

type DeploymentType string

const (
	DeploymentCloud     DeploymentType = "Cloud"
	DeploymentOnPremise DeploymentType = "OnPremise"
)

// Device type values as they appear in the catalog. Screen and switch are the
// two single-slot swappable types; everything else is keyed by its own type.
const (
	DeviceTypeScreen = "Màn hình"
	DeviceTypeSwitch = "Switch PoE"
	DeviceTypeAIBox  = "AI Box"
)

// ServiceKeySecurityAlert selects the feature-driven pricing path.
const ServiceKeySecurityAlert = "securityAlert"

type Category struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Slug        string        `bson:"slug" json:"slug"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	IsActive    bool          `bson:"isActive" json:"isActive"`
}

// ItemDetail is the canonical catalog record that device and license entries
// reference. DevelopmentType classes the item by deployment environment.
type ItemDetail struct {
	ID              bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name            string         `bson:"name" json:"name"`
	Vendor          string         `bson:"vendor" json:"vendor"`
	Origin          string         `bson:"origin" json:"origin"`
	UnitPrice       float64        `bson:"unitPrice" json:"unitPrice"`
	VatRate         float64        `bson:"vatRate" json:"vatRate"`
	Description     string         `bson:"description,omitempty" json:"description,omitempty"`
	Note            string         `bson:"note,omitempty" json:"note,omitempty"`
	FileID          *bson.ObjectID `bson:"fileId,omitempty" json:"fileId,omitempty"`
	DevelopmentType DeploymentType `bson:"developmentType" json:"developmentType"`
}

// SelectedFeature pairs a feature name with a point count. It appears both on
// the quotation request and on license catalog entries (as the set of features
// the license supports).
type SelectedFeature struct {
	Feature    string `bson:"feature" json:"feature"`
	PointCount int    `bson:"pointCount,omitempty" json:"pointCount,omitempty"`
}

type Device struct {
	ID               bson.ObjectID     `bson:"_id,omitempty" json:"id"`
	DeviceType       string            `bson:"deviceType" json:"deviceType"`
	CategoryID       bson.ObjectID     `bson:"categoryId" json:"categoryId"`
	ItemDetailID     bson.ObjectID     `bson:"itemDetailId" json:"itemDetailId"`
	TotalAmount      float64           `bson:"totalAmount" json:"totalAmount"`
	SelectedFeatures []SelectedFeature `bson:"selectedFeatures,omitempty" json:"selectedFeatures,omitempty"`

	// Populated by the repository via $lookup.
	ItemDetail ItemDetail `bson:"itemDetail,omitempty" json:"itemDetail"`
	Category   Category   `bson:"category,omitempty" json:"category"`
}

type License struct {
	ID               bson.ObjectID     `bson:"_id,omitempty" json:"id"`
	CategoryID       bson.ObjectID     `bson:"categoryId" json:"categoryId"`
	ItemDetailID     bson.ObjectID     `bson:"itemDetailId" json:"itemDetailId"`
	UserLimit        int               `bson:"userLimit,omitempty" json:"userLimit,omitempty"`
	TotalAmount      float64           `bson:"totalAmount,omitempty" json:"totalAmount,omitempty"`
	SelectedFeatures []SelectedFeature `bson:"selectedFeatures,omitempty" json:"selectedFeatures,omitempty"`
	CostServerID     bson.ObjectID     `bson:"costServerId,omitempty" json:"costServerId,omitempty"`

	// Populated by the repository via $lookup.
	ItemDetail ItemDetail `bson:"itemDetail,omitempty" json:"itemDetail"`
	Category   Category   `bson:"category,omitempty" json:"category"`
}

// Supports reports whether the license covers the named feature.
func (l License) Supports(feature string) bool {
	for _, sf := range l.SelectedFeatures {
		if sf.Feature == feature {
			return true
		}
	}
	return false
}

type CostServer struct {
	ID          bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name        string         `bson:"name" json:"name"`
	UnitPrice   float64        `bson:"unitPrice" json:"unitPrice"`
	VatRate     float64        `bson:"vatRate" json:"vatRate"`
	TotalAmount float64        `bson:"totalAmount" json:"totalAmount"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Note        string         `bson:"note,omitempty" json:"note,omitempty"`
	FileID      *bson.ObjectID `bson:"fileId,omitempty" json:"fileId,omitempty"`
}
