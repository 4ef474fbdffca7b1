package services

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/mock/gomock"

	"github.com/ccam-ts/pricing-api/apperr"
	"github.com/ccam-ts/pricing-api/models"
	mock_repository "github.com/ccam-ts/pricing-api/repository/mocks"
)

func intPtr(v int) *int { return &v }

func standardQuotation(categoryID bson.ObjectID) models.Quotation {
	return models.Quotation{
		SiteCount:      1,
		DeploymentType: models.DeploymentCloud,
		CategoryID:     categoryID,
		UserCount:      intPtr(100),
		PointCount:     5,
	}
}

func catalogDevice(deviceType string) models.Device {
	return models.Device{
		ID:           bson.NewObjectID(),
		DeviceType:   deviceType,
		ItemDetailID: bson.NewObjectID(),
		TotalAmount:  50_000,
		ItemDetail:   models.ItemDetail{UnitPrice: 40_000, VatRate: 10, Name: deviceType},
	}
}

func TestQuotationService_Create(t *testing.T) {
	t.Run("validation failure touches no repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewQuotationService(mock_repository.NewMockCatalog(ctrl), mock_repository.NewMockQuotations(ctrl))

		_, err := svc.Create(context.Background(), models.Quotation{SiteCount: 1})
		if !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("persists input and output records", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_repository.NewMockCatalog(ctrl)
		quotations := mock_repository.NewMockQuotations(ctrl)
		svc := NewQuotationService(catalog, quotations)

		categoryID := bson.NewObjectID()
		q := standardQuotation(categoryID)
		itemDetailIDs := []bson.ObjectID{bson.NewObjectID()}
		screen := catalogDevice(models.DeviceTypeScreen)
		serverID := bson.NewObjectID()
		lic := models.License{
			ID:           bson.NewObjectID(),
			ItemDetailID: bson.NewObjectID(),
			CostServerID: serverID,
			ItemDetail:   models.ItemDetail{UnitPrice: 1_000_000, VatRate: 10},
		}
		server := models.CostServer{ID: serverID, UnitPrice: 2_000_000, VatRate: 8, TotalAmount: 2_160_000}

		catalog.EXPECT().FindItemDetailIDs(gomock.Any(), models.DeploymentCloud).Return(itemDetailIDs, nil)
		catalog.EXPECT().FindDevices(gomock.Any(), categoryID, itemDetailIDs).Return([]models.Device{screen}, nil)
		catalog.EXPECT().FindLicenses(gomock.Any(), gomock.Any()).Return([]models.License{lic}, nil)
		catalog.EXPECT().FindCostServers(gomock.Any(), []bson.ObjectID{serverID}).Return([]models.CostServer{server}, nil)

		savedID := bson.NewObjectID()
		quotations.EXPECT().Insert(gomock.Any(), gomock.AssignableToTypeOf(models.Quotation{})).DoAndReturn(
			func(_ context.Context, in models.Quotation) (models.Quotation, error) {
				in.ID = savedID
				return in, nil
			},
		)
		quotations.EXPECT().InsertOutput(gomock.Any(), gomock.AssignableToTypeOf(models.OutputQuotation{})).DoAndReturn(
			func(_ context.Context, out models.OutputQuotation) (models.OutputQuotation, error) {
				if out.QuotationID != savedID {
					t.Fatalf("output not linked to the saved quotation: %v", out.QuotationID)
				}
				if len(out.Devices) != 1 || out.Devices[0].Quantity != 5 {
					t.Fatalf("unexpected device lines: %+v", out.Devices)
				}
				if len(out.Licenses) != 1 || len(out.CostServers) != 1 {
					t.Fatalf("expected license and cost server lines: %+v", out)
				}
				if out.Summary.GrandTotal != out.Summary.TemporaryTotal+out.Summary.VatPrices {
					t.Fatal("grand total identity broken in persisted summary")
				}
				out.ID = bson.NewObjectID()
				return out, nil
			},
		)

		out, err := svc.Create(context.Background(), q)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.ID.IsZero() {
			t.Fatal("expected persisted output id")
		}
	})

	t.Run("catalog failure aborts before persistence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_repository.NewMockCatalog(ctrl)
		quotations := mock_repository.NewMockQuotations(ctrl)
		svc := NewQuotationService(catalog, quotations)

		catalog.EXPECT().FindItemDetailIDs(gomock.Any(), gomock.Any()).Return(nil, apperr.Internal("catalog down", nil))

		_, err := svc.Create(context.Background(), standardQuotation(bson.NewObjectID()))
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestQuotationService_UpdateQuotationItem(t *testing.T) {
	t.Run("rejects non-device item types", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewQuotationService(mock_repository.NewMockCatalog(ctrl), mock_repository.NewMockQuotations(ctrl))

		_, err := svc.UpdateQuotationItem(context.Background(), bson.NewObjectID(), "license", bson.NewObjectID())
		if !apperr.Is(err, apperr.KindValidation) {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("unknown output id propagates not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_repository.NewMockCatalog(ctrl)
		quotations := mock_repository.NewMockQuotations(ctrl)
		svc := NewQuotationService(catalog, quotations)

		outputID := bson.NewObjectID()
		quotations.EXPECT().FindOutputByID(gomock.Any(), outputID).Return(nil, apperr.NotFound("output quotation", outputID.Hex()))

		_, err := svc.UpdateQuotationItem(context.Background(), outputID, ItemTypeDevice, bson.NewObjectID())
		if !apperr.Is(err, apperr.KindNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("screen swap keeps the previous switch slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_repository.NewMockCatalog(ctrl)
		quotations := mock_repository.NewMockQuotations(ctrl)
		svc := NewQuotationService(catalog, quotations)

		categoryID := bson.NewObjectID()
		q := standardQuotation(categoryID)
		q.ID = bson.NewObjectID()

		oldScreen := catalogDevice(models.DeviceTypeScreen)
		oldSwitch := catalogDevice(models.DeviceTypeSwitch)
		newScreen := catalogDevice(models.DeviceTypeScreen)

		outputID := bson.NewObjectID()
		stored := models.OutputQuotation{
			ID:          outputID,
			QuotationID: q.ID,
			Devices: []models.QuotationItem{
				{DeviceType: models.DeviceTypeScreen, ItemDetailID: oldScreen.ItemDetailID, Quantity: 5},
				{DeviceType: models.DeviceTypeSwitch, ItemDetailID: oldSwitch.ItemDetailID, Quantity: 5},
			},
		}

		quotations.EXPECT().FindOutputByID(gomock.Any(), outputID).Return(&stored, nil)
		quotations.EXPECT().FindByID(gomock.Any(), q.ID).Return(&q, nil)

		itemDetailIDs := []bson.ObjectID{oldScreen.ItemDetailID, oldSwitch.ItemDetailID}
		catalog.EXPECT().FindItemDetailIDs(gomock.Any(), models.DeploymentCloud).Return(itemDetailIDs, nil)
		catalog.EXPECT().FindDevices(gomock.Any(), categoryID, itemDetailIDs).Return([]models.Device{oldScreen, oldSwitch}, nil)
		catalog.EXPECT().FindLicenses(gomock.Any(), gomock.Any()).Return([]models.License{}, nil)
		catalog.EXPECT().FindCostServers(gomock.Any(), gomock.Any()).Return([]models.CostServer{}, nil)

		catalog.EXPECT().FindDeviceByID(gomock.Any(), newScreen.ID).Return(&newScreen, nil)
		catalog.EXPECT().FindDevicesByItemDetail(gomock.Any(), oldSwitch.ItemDetailID).Return([]models.Device{oldSwitch}, nil)

		quotations.EXPECT().UpdateOutputDevices(gomock.Any(), outputID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ bson.ObjectID, devices []models.QuotationItem, summary models.Summary) (*models.OutputQuotation, error) {
				if len(devices) != 2 {
					t.Fatalf("expected two device lines, got %d", len(devices))
				}
				if devices[0].ItemDetailID != newScreen.ItemDetailID {
					t.Fatal("expected the replacement screen spliced in")
				}
				if devices[1].ItemDetailID != oldSwitch.ItemDetailID {
					t.Fatal("expected the previous switch slot preserved")
				}
				refreshed := stored
				refreshed.Devices = devices
				refreshed.Summary = summary
				return &refreshed, nil
			},
		)

		out, err := svc.UpdateQuotationItem(context.Background(), outputID, ItemTypeDevice, newScreen.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Devices[1].ItemDetailID != oldSwitch.ItemDetailID {
			t.Fatal("switch identity changed across a screen swap")
		}
	})

	t.Run("unknown replacement device stops before persistence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_repository.NewMockCatalog(ctrl)
		quotations := mock_repository.NewMockQuotations(ctrl)
		svc := NewQuotationService(catalog, quotations)

		categoryID := bson.NewObjectID()
		q := standardQuotation(categoryID)
		q.ID = bson.NewObjectID()
		outputID := bson.NewObjectID()
		stored := models.OutputQuotation{ID: outputID, QuotationID: q.ID}

		quotations.EXPECT().FindOutputByID(gomock.Any(), outputID).Return(&stored, nil)
		quotations.EXPECT().FindByID(gomock.Any(), q.ID).Return(&q, nil)
		catalog.EXPECT().FindItemDetailIDs(gomock.Any(), gomock.Any()).Return([]bson.ObjectID{}, nil)
		catalog.EXPECT().FindDevices(gomock.Any(), categoryID, gomock.Any()).Return([]models.Device{}, nil)
		catalog.EXPECT().FindLicenses(gomock.Any(), gomock.Any()).Return([]models.License{}, nil)
		catalog.EXPECT().FindCostServers(gomock.Any(), gomock.Any()).Return([]models.CostServer{}, nil)

		missingID := bson.NewObjectID()
		catalog.EXPECT().FindDeviceByID(gomock.Any(), missingID).Return(nil, apperr.NotFound("device", missingID.Hex()))

		_, err := svc.UpdateQuotationItem(context.Background(), outputID, ItemTypeDevice, missingID)
		if !apperr.Is(err, apperr.KindNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("other device type replaces the matching slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_repository.NewMockCatalog(ctrl)
		quotations := mock_repository.NewMockQuotations(ctrl)
		svc := NewQuotationService(catalog, quotations)

		categoryID := bson.NewObjectID()
		q := standardQuotation(categoryID)
		q.ID = bson.NewObjectID()

		oldBox := catalogDevice(models.DeviceTypeAIBox)
		newBox := catalogDevice(models.DeviceTypeAIBox)

		outputID := bson.NewObjectID()
		stored := models.OutputQuotation{
			ID:          outputID,
			QuotationID: q.ID,
			Devices: []models.QuotationItem{
				{DeviceType: models.DeviceTypeAIBox, ItemDetailID: oldBox.ItemDetailID, Quantity: 5},
			},
		}

		quotations.EXPECT().FindOutputByID(gomock.Any(), outputID).Return(&stored, nil)
		quotations.EXPECT().FindByID(gomock.Any(), q.ID).Return(&q, nil)
		catalog.EXPECT().FindItemDetailIDs(gomock.Any(), gomock.Any()).Return([]bson.ObjectID{oldBox.ItemDetailID}, nil)
		catalog.EXPECT().FindDevices(gomock.Any(), categoryID, gomock.Any()).Return([]models.Device{oldBox}, nil)
		catalog.EXPECT().FindLicenses(gomock.Any(), gomock.Any()).Return([]models.License{}, nil)
		catalog.EXPECT().FindCostServers(gomock.Any(), gomock.Any()).Return([]models.CostServer{}, nil)
		catalog.EXPECT().FindDeviceByID(gomock.Any(), newBox.ID).Return(&newBox, nil)

		quotations.EXPECT().UpdateOutputDevices(gomock.Any(), outputID, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ bson.ObjectID, devices []models.QuotationItem, summary models.Summary) (*models.OutputQuotation, error) {
				if len(devices) != 1 || devices[0].ItemDetailID != newBox.ItemDetailID {
					t.Fatalf("expected the AI Box slot replaced, got %+v", devices)
				}
				refreshed := stored
				refreshed.Devices = devices
				refreshed.Summary = summary
				return &refreshed, nil
			},
		)

		if _, err := svc.UpdateQuotationItem(context.Background(), outputID, ItemTypeDevice, newBox.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationService_GetOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	quotations := mock_repository.NewMockQuotations(ctrl)
	svc := NewQuotationService(mock_repository.NewMockCatalog(ctrl), quotations)

	id := bson.NewObjectID()
	stored := models.OutputQuotation{ID: id}
	quotations.EXPECT().FindOutputByID(gomock.Any(), id).Return(&stored, nil)

	out, err := svc.GetOutput(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != id {
		t.Fatalf("got %v, want %v", out.ID, id)
	}
}
