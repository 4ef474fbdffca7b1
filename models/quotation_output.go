package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ManualMaterialCostNote is stored in place of a material-cost amount when the
// account manager has to price materials by hand (multi-site deployments).
const ManualMaterialCostNote = "AM tính chi phí"

// MaterialCost is either a concrete amount or the manual-pricing marker. It
// serializes as a plain number or as the marker string, matching the stored
// document shape.
type MaterialCost struct {
	Manual bool
	Amount float64
}

func ManualMaterialCost() MaterialCost {
	return MaterialCost{Manual: true}
}

func MaterialCostAmount(amount float64) MaterialCost {
	return MaterialCost{Amount: amount}
}

func (m MaterialCost) MarshalJSON() ([]byte, error) {
	if m.Manual {
		return json.Marshal(ManualMaterialCostNote)
	}
	return json.Marshal(m.Amount)
}

func (m *MaterialCost) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != ManualMaterialCostNote {
			return fmt.Errorf("unexpected material cost marker %q", s)
		}
		*m = MaterialCost{Manual: true}
		return nil
	}
	var amount float64
	if err := json.Unmarshal(data, &amount); err != nil {
		return err
	}
	*m = MaterialCost{Amount: amount}
	return nil
}

func (m MaterialCost) MarshalBSONValue() (byte, []byte, error) {
	if m.Manual {
		t, data, err := bson.MarshalValue(ManualMaterialCostNote)
		return byte(t), data, err
	}
	t, data, err := bson.MarshalValue(m.Amount)
	return byte(t), data, err
}

func (m *MaterialCost) UnmarshalBSONValue(typ byte, data []byte) error {
	raw := bson.RawValue{Type: bson.Type(typ), Value: data}
	switch raw.Type {
	case bson.TypeString:
		s := raw.StringValue()
		if s != ManualMaterialCostNote {
			return fmt.Errorf("unexpected material cost marker %q", s)
		}
		*m = MaterialCost{Manual: true}
	case bson.TypeDouble:
		*m = MaterialCost{Amount: raw.Double()}
	case bson.TypeInt32:
		*m = MaterialCost{Amount: float64(raw.Int32())}
	case bson.TypeInt64:
		*m = MaterialCost{Amount: float64(raw.Int64())}
	default:
		return fmt.Errorf("material cost: cannot decode bson type %v", raw.Type)
	}
	return nil
}

// QuotationItem is a priced line of the output quotation, flattened from a
// catalog device or license plus its computed quantity and amounts.
type QuotationItem struct {
	ItemDetailID     bson.ObjectID     `bson:"itemDetailId" json:"itemDetailId"`
	DeviceType       string            `bson:"deviceType,omitempty" json:"deviceType,omitempty"`
	Name             string            `bson:"name" json:"name"`
	Vendor           string            `bson:"vendor,omitempty" json:"vendor,omitempty"`
	Origin           string            `bson:"origin,omitempty" json:"origin,omitempty"`
	Category         string            `bson:"category,omitempty" json:"category,omitempty"`
	SelectedFeatures []SelectedFeature `bson:"selectedFeatures,omitempty" json:"selectedFeatures,omitempty"`
	Quantity         int               `bson:"quantity" json:"quantity"`
	UnitPrice        float64           `bson:"unitPrice" json:"unitPrice"`
	VatRate          float64           `bson:"vatRate" json:"vatRate"`
	PriceRate        *float64          `bson:"priceRate,omitempty" json:"priceRate,omitempty"`
	TotalAmount      float64           `bson:"totalAmount" json:"totalAmount"`
	Description      string            `bson:"description,omitempty" json:"description,omitempty"`
	Note             string            `bson:"note,omitempty" json:"note,omitempty"`
	FileID           *bson.ObjectID    `bson:"fileId,omitempty" json:"fileId,omitempty"`
}

// CostServerLine is a priced server-cost line of the output quotation.
type CostServerLine struct {
	Name        string         `bson:"name" json:"name"`
	Quantity    int            `bson:"quantity" json:"quantity"`
	UnitPrice   float64        `bson:"unitPrice" json:"unitPrice"`
	VatRate     float64        `bson:"vatRate" json:"vatRate"`
	PriceRate   *float64       `bson:"priceRate,omitempty" json:"priceRate,omitempty"`
	TotalAmount float64        `bson:"totalAmount" json:"totalAmount"`
	Description string         `bson:"description,omitempty" json:"description,omitempty"`
	Note        string         `bson:"note,omitempty" json:"note,omitempty"`
	FileID      *bson.ObjectID `bson:"fileId,omitempty" json:"fileId,omitempty"`
}

// Summary carries the aggregate amounts of a computed quotation.
type Summary struct {
	DeviceTotal          float64 `bson:"deviceTotal" json:"deviceTotal"`
	DeviceTotalNoVat     float64 `bson:"deviceTotalNoVat" json:"deviceTotalNoVat"`
	LicenseTotal         float64 `bson:"licenseTotal" json:"licenseTotal"`
	LicenseTotalNoVat    float64 `bson:"licenseTotalNoVat" json:"licenseTotalNoVat"`
	CostServerTotal      float64 `bson:"costServerTotal" json:"costServerTotal"`
	CostServerTotalNoVat float64 `bson:"costServerTotalNoVat" json:"costServerTotalNoVat"`
	DeploymentCost       float64 `bson:"deploymentCost" json:"deploymentCost"`
	TemporaryTotal       float64 `bson:"temporaryTotal" json:"temporaryTotal"`
	VatPrices            float64 `bson:"vatPrices" json:"vatPrices"`
	GrandTotal           float64 `bson:"grandTotal" json:"grandTotal"`
}

// OutputQuotation is the stored derived record: the priced quotation built from
// an input Quotation against the catalog.
type OutputQuotation struct {
	ID             bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	QuotationID    bson.ObjectID  `bson:"quotationId" json:"quotationId"`
	SiteCount      int            `bson:"siteCount" json:"siteCount"`
	SiteLocation   string         `bson:"siteLocation,omitempty" json:"siteLocation,omitempty"`
	DeploymentType DeploymentType `bson:"deploymentType" json:"deploymentType"`
	CategoryID     bson.ObjectID  `bson:"categoryId" json:"categoryId"`
	UserCount      *int           `bson:"userCount,omitempty" json:"userCount,omitempty"`
	PointCount     int            `bson:"pointCount" json:"pointCount"`
	CameraCount    *int           `bson:"cameraCount,omitempty" json:"cameraCount,omitempty"`
	ServiceKey     string         `bson:"serviceKey,omitempty" json:"serviceKey,omitempty"`

	SelectedFeatures []SelectedFeature `bson:"selectedFeatures,omitempty" json:"selectedFeatures,omitempty"`

	ScreenOptions []QuotationItem  `bson:"screenOptions" json:"screenOptions"`
	SwitchOptions []QuotationItem  `bson:"switchOptions" json:"switchOptions"`
	Devices       []QuotationItem  `bson:"devices" json:"devices"`
	Licenses      []QuotationItem  `bson:"licenses" json:"licenses"`
	CostServers   []CostServerLine `bson:"costServers" json:"costServers"`

	MaterialCosts            MaterialCost `bson:"materialCosts" json:"materialCosts"`
	SoftwareInstallationCost float64      `bson:"softwareInstallationCost" json:"softwareInstallationCost"`
	TrainingCost             float64      `bson:"trainingCost" json:"trainingCost"`
	DeploymentCost           float64      `bson:"deploymentCost" json:"deploymentCost"`

	Summary   Summary   `bson:"summary" json:"summary"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
