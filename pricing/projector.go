package pricing

import (
	"github.com/ccam-ts/pricing-api/models"
)

// The projector flattens catalog references into the response line shape.
// priceRate is the VAT amount in currency units, not a percentage; it is nil
// where the deployment mode does not expose it (license lines outside Cloud,
// cost-server lines outside OnPremise).

func priceRate(unitPrice, vatRate float64, quantity int) float64 {
	return num(unitPrice * vatRate * float64(quantity) / 100)
}

// DeviceLines maps selected devices to response lines with their computed
// quantities.
func DeviceLines(q models.Quotation, devices []models.Device) []models.QuotationItem {
	lines := make([]models.QuotationItem, 0, len(devices))
	for _, d := range devices {
		qty := DeviceQuantity(q, d.DeviceType)
		rate := priceRate(d.ItemDetail.UnitPrice, d.ItemDetail.VatRate, qty)
		lines = append(lines, models.QuotationItem{
			ItemDetailID:     d.ItemDetailID,
			DeviceType:       d.DeviceType,
			Name:             d.ItemDetail.Name,
			Vendor:           d.ItemDetail.Vendor,
			Origin:           d.ItemDetail.Origin,
			Category:         d.Category.Name,
			SelectedFeatures: d.SelectedFeatures,
			Quantity:         qty,
			UnitPrice:        num(d.ItemDetail.UnitPrice),
			VatRate:          num(d.ItemDetail.VatRate),
			PriceRate:        &rate,
			TotalAmount:      num(d.TotalAmount),
			Description:      d.ItemDetail.Description,
			Note:             d.ItemDetail.Note,
			FileID:           d.ItemDetail.FileID,
		})
	}
	return lines
}

// LicenseLines maps matched licenses to response lines. Quantity follows the
// matched feature's point count in security mode, with a fallback of 1.
func LicenseLines(q models.Quotation, licenses []models.License) []models.QuotationItem {
	lines := make([]models.QuotationItem, 0, len(licenses))
	for _, lic := range licenses {
		qty := LicenseQuantity(q, lic)
		var rate *float64
		if q.DeploymentType == models.DeploymentCloud {
			r := priceRate(lic.ItemDetail.UnitPrice, lic.ItemDetail.VatRate, qty)
			rate = &r
		}
		lines = append(lines, models.QuotationItem{
			ItemDetailID:     lic.ItemDetailID,
			Name:             lic.ItemDetail.Name,
			Vendor:           lic.ItemDetail.Vendor,
			Origin:           lic.ItemDetail.Origin,
			Category:         lic.Category.Name,
			SelectedFeatures: lic.SelectedFeatures,
			Quantity:         qty,
			UnitPrice:        num(lic.ItemDetail.UnitPrice),
			VatRate:          num(lic.ItemDetail.VatRate),
			PriceRate:        rate,
			TotalAmount:      num(lic.TotalAmount),
			Description:      lic.ItemDetail.Description,
			Note:             lic.ItemDetail.Note,
			FileID:           lic.ItemDetail.FileID,
		})
	}
	return lines
}

// CostServerLines maps the fetched servers to response lines. Quantity is 1 in
// security mode, otherwise the sum of the license line quantities.
func CostServerLines(q models.Quotation, servers []models.CostServer, licenseLines []models.QuotationItem) []models.CostServerLine {
	qty := 1
	if !q.IsSecurity() {
		qty = 0
		for _, l := range licenseLines {
			qty += l.Quantity
		}
	}
	lines := make([]models.CostServerLine, 0, len(servers))
	for _, cs := range servers {
		var rate *float64
		if q.DeploymentType == models.DeploymentOnPremise {
			r := priceRate(cs.UnitPrice, cs.VatRate, qty)
			rate = &r
		}
		lines = append(lines, models.CostServerLine{
			Name:        cs.Name,
			Quantity:    qty,
			UnitPrice:   num(cs.UnitPrice),
			VatRate:     num(cs.VatRate),
			PriceRate:   rate,
			TotalAmount: num(cs.TotalAmount) * float64(qty),
			Description: cs.Description,
			Note:        cs.Note,
			FileID:      cs.FileID,
		})
	}
	return lines
}
