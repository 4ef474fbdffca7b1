// Package services orchestrates the quotation lifecycle: fetch the eligible
// catalog, run the pricing computation, persist the linked input and output
// records.
package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ccam-ts/pricing-api/apperr"
	"github.com/ccam-ts/pricing-api/models"
	"github.com/ccam-ts/pricing-api/pricing"
	"github.com/ccam-ts/pricing-api/repository"
)

// ItemTypeDevice is the only item type a quotation update can swap.
const ItemTypeDevice = "device"

type QuotationService struct {
	catalog    repository.Catalog
	quotations repository.Quotations
}

func NewQuotationService(catalog repository.Catalog, quotations repository.Quotations) *QuotationService {
	return &QuotationService{catalog: catalog, quotations: quotations}
}

// prepared is the catalog snapshot one pricing run works from.
type prepared struct {
	selection  pricing.DeviceSelection
	licenses   []models.License
	costServer *models.CostServer
	servers    []models.CostServer
}

func (s *QuotationService) prepare(ctx context.Context, q models.Quotation) (*prepared, error) {
	itemDetailIDs, err := s.catalog.FindItemDetailIDs(ctx, q.DeploymentType)
	if err != nil {
		return nil, err
	}

	allDevices, err := s.catalog.FindDevices(ctx, q.CategoryID, itemDetailIDs)
	if err != nil {
		return nil, err
	}
	selection := pricing.SelectDevices(allDevices)

	filter := repository.LicenseFilter{
		CategoryID:    q.CategoryID,
		ItemDetailIDs: itemDetailIDs,
	}
	if q.IsSecurity() {
		for _, f := range q.SelectedFeatures {
			filter.Features = append(filter.Features, f.Feature)
		}
	} else {
		filter.UserLimit = q.UserCount
	}
	licenses, err := s.catalog.FindLicenses(ctx, filter)
	if err != nil {
		return nil, err
	}

	serverIDs := make([]bson.ObjectID, 0, len(licenses))
	for _, lic := range licenses {
		if !lic.CostServerID.IsZero() {
			serverIDs = append(serverIDs, lic.CostServerID)
		}
	}
	servers, err := s.catalog.FindCostServers(ctx, serverIDs)
	if err != nil {
		return nil, err
	}

	return &prepared{
		selection:  selection,
		licenses:   licenses,
		costServer: pricing.PickCostServer(servers),
		servers:    servers,
	}, nil
}

// Create validates the configuration, prices it against the current catalog
// and persists the raw request plus the derived result as two linked records.
func (s *QuotationService) Create(ctx context.Context, q models.Quotation) (*models.OutputQuotation, error) {
	if err := pricing.Validate(q); err != nil {
		return nil, err
	}

	prep, err := s.prepare(ctx, q)
	if err != nil {
		return nil, err
	}

	devices := prep.selection.Devices()
	totals := pricing.CalculateTotals(q, devices, prep.licenses, prep.costServer)

	deviceLines := pricing.DeviceLines(q, devices)
	licenseLines := pricing.LicenseLines(q, prep.licenses)
	serverLines := pricing.CostServerLines(q, prep.servers, licenseLines)

	saved, err := s.quotations.Insert(ctx, q)
	if err != nil {
		return nil, err
	}

	out := models.OutputQuotation{
		QuotationID:    saved.ID,
		SiteCount:      saved.SiteCount,
		SiteLocation:   saved.SiteLocation,
		DeploymentType: saved.DeploymentType,
		CategoryID:     saved.CategoryID,
		UserCount:      saved.UserCount,
		PointCount:     saved.PointCount,
		CameraCount:    saved.CameraCount,
		ServiceKey:     saved.ServiceKey,

		SelectedFeatures: saved.SelectedFeatures,

		ScreenOptions: pricing.DeviceLines(q, prep.selection.ScreenOptions),
		SwitchOptions: pricing.DeviceLines(q, prep.selection.SwitchOptions),
		Devices:       deviceLines,
		Licenses:      licenseLines,
		CostServers:   serverLines,

		MaterialCosts:            totals.MaterialCosts,
		SoftwareInstallationCost: totals.SoftwareInstallationCost,
		TrainingCost:             totals.TrainingCost,
		DeploymentCost:           totals.Summary.DeploymentCost,
		Summary:                  totals.Summary,
	}

	created, err := s.quotations.InsertOutput(ctx, out)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateQuotationItem swaps one device on an existing output quotation and
// recomputes the totals over the updated device set. Only the devices and the
// summary are written back; licenses, cost servers and the option sets stay as
// first computed, so a device-only swap never reprices the license side. The
// write is a single $set with last-write-wins semantics, there is no
// concurrency token on the record.
func (s *QuotationService) UpdateQuotationItem(ctx context.Context, outputID bson.ObjectID, itemType string, newItemID bson.ObjectID) (*models.OutputQuotation, error) {
	if itemType != ItemTypeDevice {
		return nil, apperr.Validation("Chỉ hỗ trợ cập nhật thiết bị")
	}

	out, err := s.quotations.FindOutputByID(ctx, outputID)
	if err != nil {
		return nil, err
	}
	q, err := s.quotations.FindByID(ctx, out.QuotationID)
	if err != nil {
		return nil, err
	}

	// Catalog state may have changed, so the selection is rebuilt from
	// scratch and only the chosen slot is overridden.
	prep, err := s.prepare(ctx, *q)
	if err != nil {
		return nil, err
	}

	newDevice, err := s.catalog.FindDeviceByID(ctx, newItemID)
	if err != nil {
		return nil, err
	}

	sel := prep.selection
	switch newDevice.DeviceType {
	case models.DeviceTypeScreen:
		sel.Screen = newDevice
		sel.Switch, err = s.resolvePreviousSlot(ctx, out.Devices, models.DeviceTypeSwitch)
		if err != nil {
			return nil, err
		}
	case models.DeviceTypeSwitch:
		sel.Switch = newDevice
		sel.Screen, err = s.resolvePreviousSlot(ctx, out.Devices, models.DeviceTypeScreen)
		if err != nil {
			return nil, err
		}
	default:
		replaced := false
		for i, d := range sel.Others {
			if d.DeviceType == newDevice.DeviceType {
				sel.Others[i] = *newDevice
				replaced = true
				break
			}
		}
		if !replaced {
			sel.Others = append(sel.Others, *newDevice)
		}
	}

	devices := sel.Devices()
	totals := pricing.CalculateTotals(*q, devices, prep.licenses, prep.costServer)
	deviceLines := pricing.DeviceLines(*q, devices)

	return s.quotations.UpdateOutputDevices(ctx, outputID, deviceLines, totals.Summary)
}

// resolvePreviousSlot re-fetches the device previously occupying the screen or
// switch slot by its stable item detail reference from the stored output. The
// slot stays empty when the previous output never had one.
func (s *QuotationService) resolvePreviousSlot(ctx context.Context, previous []models.QuotationItem, deviceType string) (*models.Device, error) {
	for _, line := range previous {
		if line.DeviceType != deviceType {
			continue
		}
		devices, err := s.catalog.FindDevicesByItemDetail(ctx, line.ItemDetailID)
		if err != nil {
			return nil, err
		}
		if len(devices) == 0 {
			return nil, nil
		}
		return &devices[0], nil
	}
	return nil, nil
}

// GetOutput is the read path feeding both the HTTP response and the exporter.
func (s *QuotationService) GetOutput(ctx context.Context, id bson.ObjectID) (*models.OutputQuotation, error) {
	return s.quotations.FindOutputByID(ctx, id)
}
