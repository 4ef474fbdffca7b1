// Package repository holds the MongoDB access layer. Catalog reads populate
// the referenced item detail and category the way the stored documents link
// them, via $lookup aggregation.
package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ccam-ts/pricing-api/apperr"
	"github.com/ccam-ts/pricing-api/database"
	"github.com/ccam-ts/pricing-api/models"
)

// LicenseFilter narrows the license catalog for one quotation. Exactly one of
// UserLimit or Features is set: the standard path matches the user-count tier,
// the security path matches any requested feature name.
type LicenseFilter struct {
	CategoryID    bson.ObjectID
	ItemDetailIDs []bson.ObjectID
	UserLimit     *int
	Features      []string
}

// Catalog is the read-only lookup boundary the pricing flow consumes.
type Catalog interface {
	FindItemDetailIDs(ctx context.Context, deploymentType models.DeploymentType) ([]bson.ObjectID, error)
	FindDevices(ctx context.Context, categoryID bson.ObjectID, itemDetailIDs []bson.ObjectID) ([]models.Device, error)
	FindDevicesByItemDetail(ctx context.Context, itemDetailID bson.ObjectID) ([]models.Device, error)
	FindDeviceByID(ctx context.Context, id bson.ObjectID) (*models.Device, error)
	FindLicenses(ctx context.Context, filter LicenseFilter) ([]models.License, error)
	FindCostServers(ctx context.Context, ids []bson.ObjectID) ([]models.CostServer, error)
	FindCategories(ctx context.Context) ([]models.Category, error)
	FindAllDevices(ctx context.Context) ([]models.Device, error)
}

type MongoCatalog struct {
	itemDetails *mongo.Collection
	devices     *mongo.Collection
	licenses    *mongo.Collection
	costServers *mongo.Collection
	categories  *mongo.Collection
}

func NewMongoCatalog(db *database.DB) *MongoCatalog {
	return &MongoCatalog{
		itemDetails: db.Collection("item_details"),
		devices:     db.Collection("devices"),
		licenses:    db.Collection("licenses"),
		costServers: db.Collection("cost_servers"),
		categories:  db.Collection("categories"),
	}
}

// populatePipeline joins the item detail and category references onto each
// document, keeping documents whose references are missing.
func populatePipeline(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "item_details",
			"localField":   "itemDetailId",
			"foreignField": "_id",
			"as":           "itemDetail",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$itemDetail", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "categories",
			"localField":   "categoryId",
			"foreignField": "_id",
			"as":           "category",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$category", "preserveNullAndEmptyArrays": true}}},
	}
}

func aggregateAll[T any](ctx context.Context, col *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", col.Name(), err)
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
		}
		out = append(out, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor %s: %w", col.Name(), err)
	}
	return out, nil
}

func findAll[T any](ctx context.Context, col *mongo.Collection, filter bson.M) ([]T, error) {
	cursor, err := col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	defer cursor.Close(ctx)

	out := make([]T, 0)
	for cursor.Next(ctx) {
		var doc T
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
		}
		out = append(out, doc)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor %s: %w", col.Name(), err)
	}
	return out, nil
}

// FindItemDetailIDs returns the ids of catalog items valid for the given
// deployment environment.
func (r *MongoCatalog) FindItemDetailIDs(ctx context.Context, deploymentType models.DeploymentType) ([]bson.ObjectID, error) {
	details, err := findAll[models.ItemDetail](ctx, r.itemDetails, bson.M{"developmentType": deploymentType})
	if err != nil {
		return nil, err
	}
	ids := make([]bson.ObjectID, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (r *MongoCatalog) FindDevices(ctx context.Context, categoryID bson.ObjectID, itemDetailIDs []bson.ObjectID) ([]models.Device, error) {
	match := bson.M{
		"categoryId":   categoryID,
		"itemDetailId": bson.M{"$in": itemDetailIDs},
	}
	return aggregateAll[models.Device](ctx, r.devices, populatePipeline(match))
}

// FindDevicesByItemDetail re-resolves devices by their stable item detail
// reference, used when splicing a swap without re-running the full selection.
func (r *MongoCatalog) FindDevicesByItemDetail(ctx context.Context, itemDetailID bson.ObjectID) ([]models.Device, error) {
	return aggregateAll[models.Device](ctx, r.devices, populatePipeline(bson.M{"itemDetailId": itemDetailID}))
}

func (r *MongoCatalog) FindDeviceByID(ctx context.Context, id bson.ObjectID) (*models.Device, error) {
	devices, err := aggregateAll[models.Device](ctx, r.devices, populatePipeline(bson.M{"_id": id}))
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, apperr.NotFound("device", id.Hex())
	}
	return &devices[0], nil
}

func (r *MongoCatalog) FindLicenses(ctx context.Context, filter LicenseFilter) ([]models.License, error) {
	match := bson.M{
		"categoryId":   filter.CategoryID,
		"itemDetailId": bson.M{"$in": filter.ItemDetailIDs},
	}
	if len(filter.Features) > 0 {
		match["selectedFeatures.feature"] = bson.M{"$in": filter.Features}
	} else if filter.UserLimit != nil {
		match["userLimit"] = *filter.UserLimit
	}
	return aggregateAll[models.License](ctx, r.licenses, populatePipeline(match))
}

func (r *MongoCatalog) FindCostServers(ctx context.Context, ids []bson.ObjectID) ([]models.CostServer, error) {
	if len(ids) == 0 {
		return []models.CostServer{}, nil
	}
	return findAll[models.CostServer](ctx, r.costServers, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoCatalog) FindCategories(ctx context.Context) ([]models.Category, error) {
	return findAll[models.Category](ctx, r.categories, bson.M{"isActive": true})
}

// FindAllDevices feeds the configuration form's device listing.
func (r *MongoCatalog) FindAllDevices(ctx context.Context) ([]models.Device, error) {
	return aggregateAll[models.Device](ctx, r.devices, populatePipeline(bson.M{}))
}
