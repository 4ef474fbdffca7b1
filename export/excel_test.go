package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ccam-ts/pricing-api/models"
)

func floatPtr(v float64) *float64 { return &v }

func sampleOutput(deploymentType models.DeploymentType) *models.OutputQuotation {
	return &models.OutputQuotation{
		ID:             bson.NewObjectID(),
		QuotationID:    bson.NewObjectID(),
		SiteCount:      1,
		DeploymentType: deploymentType,
		PointCount:     5,
		Licenses: []models.QuotationItem{
			{Name: "License C-Cam", Quantity: 2, UnitPrice: 1_000_000, VatRate: 10, Vendor: "CMC TS", Origin: "Việt Nam"},
		},
		Devices: []models.QuotationItem{
			{Name: "Màn hình 24 inch", DeviceType: models.DeviceTypeScreen, Quantity: 5, UnitPrice: 40_000, VatRate: 10, PriceRate: floatPtr(20_000), TotalAmount: 50_000},
		},
		CostServers: []models.CostServerLine{
			{Name: "Server C-Cam", Quantity: 2, UnitPrice: 2_000_000, VatRate: 8, TotalAmount: 4_320_000},
			{Name: "Máy trạm (tùy chọn)"},
		},
		MaterialCosts:            models.MaterialCostAmount(5_000_000),
		SoftwareInstallationCost: 5_000_000,
		TrainingCost:             5_000_000,
		DeploymentCost:           15_000_000,
		Summary: models.Summary{
			DeploymentCost: 15_000_000,
			TemporaryTotal: 18_200_000,
			VatPrices:      210_000,
			GrandTotal:     18_410_000,
		},
	}
}

func TestExcelExporterRender(t *testing.T) {
	exporter := NewExcelExporter()

	data, err := exporter.Render(sampleOutput(models.DeploymentOnPremise))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected workbook bytes")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatal(err)
	}

	var sawLicenseSection, sawDeviceRow, sawMaintenance, sawGrandTotal bool
	for _, row := range rows {
		for _, cell := range row {
			switch cell {
			case "Chi Phí License Phần Mềm":
				sawLicenseSection = true
			case "Màn hình 24 inch":
				sawDeviceRow = true
			case "(Tùy chọn) Phí bảo trì và nâng cấp hằng năm (tính từ năm thứ 2)":
				sawMaintenance = true
			case "TỔNG GIÁ TRỊ ĐÃ BAO GỒM THUẾ":
				sawGrandTotal = true
			}
		}
	}
	if !sawLicenseSection || !sawDeviceRow || !sawGrandTotal {
		t.Fatalf("missing sections: license=%v device=%v grandTotal=%v", sawLicenseSection, sawDeviceRow, sawGrandTotal)
	}
	if !sawMaintenance {
		t.Fatal("expected the OnPremise maintenance row")
	}
}

func TestExcelExporterCloudMaintenanceRow(t *testing.T) {
	exporter := NewExcelExporter()

	data, err := exporter.Render(sampleOutput(models.DeploymentCloud))
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, row := range rows {
		for _, cell := range row {
			if cell == "(Miễn phí) Phí bảo trì và nâng cấp hàng năm" {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected the Cloud free-maintenance row")
	}
}

func TestExcelExporterManualMaterialCosts(t *testing.T) {
	out := sampleOutput(models.DeploymentCloud)
	out.SiteCount = 3
	out.MaterialCosts = models.ManualMaterialCost()

	data, err := NewExcelExporter().Render(out)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, row := range rows {
		for _, cell := range row {
			if cell == models.ManualMaterialCostNote {
				found = true
			}
		}
	}
	if !found {
		t.Fatal("expected the manual material cost marker in the workbook")
	}
}
