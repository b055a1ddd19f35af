package feedback

import (
	"context"

	"clinicport-service/internal/app/contracts"
	"clinicport-service/internal/app/models"
	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FeedbackMongoRepository struct {
	Collection *mongo.Collection
}

func NewFeedbackMongoRepository(db *mongo.Client, dbName string) contracts.FeedbackRepository {
	return &FeedbackMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFeedback),
	}
}

func (r *FeedbackMongoRepository) InsertFeedback(ctx context.Context, feedback *models.Feedback) (string, error) {
	result, err := r.Collection.InsertOne(ctx, feedback)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *FeedbackMongoRepository) FindFeedbackByPatientID(ctx context.Context, patientID string) ([]models.Feedback, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var feedbacks []models.Feedback
	if err := cursor.All(ctx, &feedbacks); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return feedbacks, nil
}
