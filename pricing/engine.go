// Package pricing holds the quotation computation. Everything here is a pure
// function of the configuration and a catalog snapshot; persistence belongs to
// the services layer.
package pricing

import (
	"math"

	"github.com/ccam-ts/pricing-api/apperr"
	"github.com/ccam-ts/pricing-api/models"
)

// Fixed policy amounts, in VND. Not catalog-driven.
const (
	materialCostFixed        = 5_000_000
	softwareInstallationCost = 5_000_000
	trainingCost             = 5_000_000
)

// num coerces a monetary input to a safe number. NaN and infinities become 0
// so downstream arithmetic never sees them.
func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Validate checks the configuration before any catalog work happens. Standard
// mode needs a user count, security mode needs a camera count and at least one
// selected feature with a positive point count. Point count is always required.
func Validate(q models.Quotation) error {
	if q.PointCount <= 0 {
		return apperr.Validation("Số điểm triển khai là bắt buộc")
	}
	if q.IsSecurity() {
		if q.CameraCount == nil || *q.CameraCount <= 0 {
			return apperr.Validation("Số lượng camera là bắt buộc với dịch vụ securityAlert")
		}
		hasFeature := false
		for _, f := range q.SelectedFeatures {
			if f.Feature != "" && f.PointCount > 0 {
				hasFeature = true
				break
			}
		}
		if !hasFeature {
			return apperr.Validation("Cần chọn ít nhất một tính năng với số điểm hợp lệ")
		}
		return nil
	}
	if q.UserCount == nil {
		return apperr.Validation("Số lượng user là bắt buộc (trừ dịch vụ securityAlert)")
	}
	return nil
}

// DeviceSelection is the outcome of partitioning the eligible device set.
// Screen and switch are single-slot swappable selections; Others holds one
// device per remaining deviceType.
type DeviceSelection struct {
	Screen        *models.Device
	Switch        *models.Device
	Others        []models.Device
	ScreenOptions []models.Device
	SwitchOptions []models.Device
}

// Devices returns the selected set in presentation order: screen, switch,
// then the rest in catalog order.
func (s DeviceSelection) Devices() []models.Device {
	out := make([]models.Device, 0, len(s.Others)+2)
	if s.Screen != nil {
		out = append(out, *s.Screen)
	}
	if s.Switch != nil {
		out = append(out, *s.Switch)
	}
	return append(out, s.Others...)
}

// SelectDevices partitions the eligible devices by deviceType. The first
// screen and first switch candidate win ("first eligible by catalog order");
// every other deviceType keeps exactly one entry, a later duplicate replacing
// the earlier one. The full screen/switch candidate sets are retained so a
// later swap can offer alternatives without re-querying.
func SelectDevices(all []models.Device) DeviceSelection {
	var sel DeviceSelection
	otherIdx := make(map[string]int)
	for _, d := range all {
		switch d.DeviceType {
		case models.DeviceTypeScreen:
			sel.ScreenOptions = append(sel.ScreenOptions, d)
			if sel.Screen == nil {
				screen := d
				sel.Screen = &screen
			}
		case models.DeviceTypeSwitch:
			sel.SwitchOptions = append(sel.SwitchOptions, d)
			if sel.Switch == nil {
				sw := d
				sel.Switch = &sw
			}
		default:
			if i, ok := otherIdx[d.DeviceType]; ok {
				sel.Others[i] = d
				continue
			}
			otherIdx[d.DeviceType] = len(sel.Others)
			sel.Others = append(sel.Others, d)
		}
	}
	return sel
}

// DeviceQuantity applies the per-mode quantity rule. In security mode AI Box
// units serve camera pairs, so quantity is ceil(cameraCount/2); other device
// types track the camera count. Standard mode uses the point count uniformly.
func DeviceQuantity(q models.Quotation, deviceType string) int {
	if q.IsSecurity() {
		cameras := 0
		if q.CameraCount != nil {
			cameras = *q.CameraCount
		}
		if deviceType == models.DeviceTypeAIBox {
			qty := cameras / 2
			if cameras%2 != 0 {
				qty++
			}
			return qty
		}
		return cameras
	}
	return q.PointCount
}

// MatchedFeature returns the first requested feature the license supports.
func MatchedFeature(q models.Quotation, lic models.License) (models.SelectedFeature, bool) {
	for _, f := range q.SelectedFeatures {
		if lic.Supports(f.Feature) {
			return f, true
		}
	}
	return models.SelectedFeature{}, false
}

// LicenseQuantity is the point count of the matched feature in security mode,
// with a defined fallback of 1 when no feature matches. Standard mode is one
// line per matched license tier.
func LicenseQuantity(q models.Quotation, lic models.License) int {
	if !q.IsSecurity() {
		return 1
	}
	if f, ok := MatchedFeature(q, lic); ok && f.PointCount > 0 {
		return f.PointCount
	}
	return 1
}

// PickCostServer applies the single-server-per-quotation assumption: the
// first server by catalog order prices the whole quotation.
func PickCostServer(servers []models.CostServer) *models.CostServer {
	if len(servers) == 0 {
		return nil
	}
	cs := servers[0]
	return &cs
}

// Totals is everything CalculateTotals derives for one quotation.
type Totals struct {
	MaterialCosts            models.MaterialCost
	SoftwareInstallationCost float64
	TrainingCost             float64
	Summary                  models.Summary
}

// CalculateTotals computes the summary amounts for the selected catalog items.
// A missing cost server degrades its components to zero instead of failing;
// validation has already guaranteed the configuration itself is complete.
func CalculateTotals(q models.Quotation, devices []models.Device, licenses []models.License, costServer *models.CostServer) Totals {
	var s models.Summary

	for _, d := range devices {
		qty := float64(DeviceQuantity(q, d.DeviceType))
		s.DeviceTotal += num(d.TotalAmount) * qty
		s.DeviceTotalNoVat += num(d.ItemDetail.UnitPrice) * qty
	}

	var serverUnit, serverVat float64
	if costServer != nil {
		serverUnit = num(costServer.UnitPrice)
		serverVat = num(costServer.VatRate)
	}

	if q.IsSecurity() {
		for _, f := range q.SelectedFeatures {
			for _, lic := range licenses {
				if !lic.Supports(f.Feature) {
					continue
				}
				unit := num(lic.ItemDetail.UnitPrice)
				vat := num(lic.ItemDetail.VatRate)
				points := float64(f.PointCount)
				s.LicenseTotal += (unit + serverUnit*(1+vat/100)) * points
				s.LicenseTotalNoVat += (unit + serverUnit) * points
			}
		}
	} else {
		for _, lic := range licenses {
			unit := num(lic.ItemDetail.UnitPrice)
			vat := num(lic.ItemDetail.VatRate)
			s.LicenseTotal += unit + serverUnit*(1+vat/100)
			s.LicenseTotalNoVat += unit + serverUnit
		}
	}

	if costServer != nil {
		s.CostServerTotal = math.Round(serverUnit * (1 + serverVat/100))
		s.CostServerTotalNoVat = math.Round(serverUnit)
	}

	t := Totals{
		SoftwareInstallationCost: softwareInstallationCost,
		TrainingCost:             trainingCost,
	}
	if q.SiteCount > 1 {
		t.MaterialCosts = models.ManualMaterialCost()
	} else {
		t.MaterialCosts = models.MaterialCostAmount(materialCostFixed)
	}

	s.DeploymentCost = t.SoftwareInstallationCost + t.TrainingCost
	if !t.MaterialCosts.Manual {
		s.DeploymentCost += t.MaterialCosts.Amount
	}
	s.TemporaryTotal = s.DeviceTotalNoVat + s.LicenseTotalNoVat + s.DeploymentCost
	s.VatPrices = (s.DeviceTotal - s.DeviceTotalNoVat) + (s.CostServerTotal - s.CostServerTotalNoVat)
	s.GrandTotal = s.TemporaryTotal + s.VatPrices

	t.Summary = s
	return t
}
