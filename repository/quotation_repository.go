package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ccam-ts/pricing-api/apperr"
	"github.com/ccam-ts/pricing-api/database"
	"github.com/ccam-ts/pricing-api/models"
)

// Quotations persists the raw configuration and its derived pricing result as
// two linked records.
type Quotations interface {
	Insert(ctx context.Context, q models.Quotation) (models.Quotation, error)
	InsertOutput(ctx context.Context, out models.OutputQuotation) (models.OutputQuotation, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Quotation, error)
	FindOutputByID(ctx context.Context, id bson.ObjectID) (*models.OutputQuotation, error)
	UpdateOutputDevices(ctx context.Context, id bson.ObjectID, devices []models.QuotationItem, summary models.Summary) (*models.OutputQuotation, error)
}

type MongoQuotations struct {
	quotations *mongo.Collection
	outputs    *mongo.Collection
}

func NewMongoQuotations(db *database.DB) *MongoQuotations {
	return &MongoQuotations{
		quotations: db.Collection("quotations"),
		outputs:    db.Collection("output_quotations"),
	}
}

func (r *MongoQuotations) Insert(ctx context.Context, q models.Quotation) (models.Quotation, error) {
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now
	res, err := r.quotations.InsertOne(ctx, q)
	if err != nil {
		return models.Quotation{}, fmt.Errorf("insert quotation: %w", err)
	}
	q.ID = res.InsertedID.(bson.ObjectID)
	return q, nil
}

func (r *MongoQuotations) InsertOutput(ctx context.Context, out models.OutputQuotation) (models.OutputQuotation, error) {
	now := time.Now()
	out.CreatedAt = now
	out.UpdatedAt = now
	res, err := r.outputs.InsertOne(ctx, out)
	if err != nil {
		return models.OutputQuotation{}, fmt.Errorf("insert output quotation: %w", err)
	}
	out.ID = res.InsertedID.(bson.ObjectID)
	return out, nil
}

func (r *MongoQuotations) FindByID(ctx context.Context, id bson.ObjectID) (*models.Quotation, error) {
	var q models.Quotation
	if err := r.quotations.FindOne(ctx, bson.M{"_id": id}).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("quotation", id.Hex())
		}
		return nil, fmt.Errorf("find quotation: %w", err)
	}
	return &q, nil
}

func (r *MongoQuotations) FindOutputByID(ctx context.Context, id bson.ObjectID) (*models.OutputQuotation, error) {
	var out models.OutputQuotation
	if err := r.outputs.FindOne(ctx, bson.M{"_id": id}).Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("output quotation", id.Hex())
		}
		return nil, fmt.Errorf("find output quotation: %w", err)
	}
	return &out, nil
}

// UpdateOutputDevices overwrites only the device lines and the summary of the
// stored output in a single $set, then reloads the record. Everything else on
// the document is left untouched.
func (r *MongoQuotations) UpdateOutputDevices(ctx context.Context, id bson.ObjectID, devices []models.QuotationItem, summary models.Summary) (*models.OutputQuotation, error) {
	update := bson.M{"$set": bson.M{
		"devices":   devices,
		"summary":   summary,
		"updatedAt": time.Now(),
	}}
	res, err := r.outputs.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return nil, fmt.Errorf("update output quotation: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, apperr.NotFound("output quotation", id.Hex())
	}
	return r.FindOutputByID(ctx, id)
}
