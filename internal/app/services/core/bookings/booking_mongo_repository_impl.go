package bookings

import (
	"context"
	"fmt"

	"clinicport-service/internal/app/contracts"
	"clinicport-service/internal/app/models"
	"clinicport-service/internal/pkg/constvars"
	"clinicport-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

// EnsureIndexes creates the unique partial index that makes a slot
// reservable by at most one active booking. The index is the real guard
// against double booking; application-level checks are only a pre-flight.
func (r *BookingMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{
			{Key: "providerId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "slotTime", Value: 1},
		},
		Options: options.Index().
			SetName("uniq_active_provider_date_slot").
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"active": true}),
	}
	_, err := r.Collection.Indexes().CreateOne(ctx, indexModel)
	return err
}

func (r *BookingMongoRepository) InsertBooking(ctx context.Context, booking *models.Booking) (string, error) {
	result, err := r.Collection.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrBookingSlotTaken(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BookingMongoRepository) FindBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var booking models.Booking
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) FindBookingsByPatientID(ctx context.Context, patientID string) ([]models.Booking, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "slotTime", Value: 1},
	})
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) FindActiveBookingsByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	filter := bson.M{
		"providerId": providerID,
		"date":       date,
		"active":     true,
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) FindActiveBookingsByProviderAndMonth(ctx context.Context, providerID, month string) ([]models.Booking, error) {
	filter := bson.M{
		"providerId": providerID,
		"date":       bson.M{"$regex": fmt.Sprintf("^%s", month)},
		"active":     true,
	}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) CancelBooking(ctx context.Context, booking *models.Booking) error {
	objectID, err := primitive.ObjectIDFromHex(booking.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"status":    constvars.BookingStatusCancelled,
		"active":    false,
		"updatedAt": booking.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
