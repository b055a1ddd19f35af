package providers

import (
	"context"
	"fmt"

	"clinicport-service/internal/app/contracts"
	"clinicport-service/internal/app/models"
	"clinicport-service/internal/app/services/core/availability"
	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProviderMongoRepository struct {
	Collection *mongo.Collection
}

func NewProviderMongoRepository(db *mongo.Client, dbName string) contracts.ProviderRepository {
	return &ProviderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviders),
	}
}

func (r *ProviderMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Provider, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	total, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return providers, total, nil
}

func (r *ProviderMongoRepository) FindProviderByID(ctx context.Context, providerID string) (*models.Provider, error) {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var provider models.Provider
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&provider)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &provider, nil
}

func (r *ProviderMongoRepository) UpdateWeeklySchedule(ctx context.Context, providerID string, schedule availability.WeeklySchedule) error {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"weeklySchedule": schedule}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ProviderMongoRepository) SetDateOverride(ctx context.Context, providerID, date string, override availability.DateOverride) error {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	field := fmt.Sprintf("dateOverrides.%s", date)
	update := bson.M{"$set": bson.M{field: override}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ProviderMongoRepository) UnsetDateOverride(ctx context.Context, providerID, date string) error {
	objectID, err := primitive.ObjectIDFromHex(providerID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	field := fmt.Sprintf("dateOverrides.%s", date)
	update := bson.M{"$unset": bson.M{field: ""}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
