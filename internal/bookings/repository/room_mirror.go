package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"hoteladmin/pkg/config"
	"hoteladmin/pkg/model"
)

const (
	RoomsCollectionName = "rooms"
)

// RoomMirrorRepository reads and flags the rooms collection shared with the
// room service. Rooms are never created here; the mirror only supports
// summary lookups and availability writes.
type RoomMirrorRepository interface {
	FindSummary(ctx context.Context, roomID primitive.ObjectID) (*model.RoomSummary, error)
	SetAvailability(ctx context.Context, roomID primitive.ObjectID, available bool) error
	FreeAll(ctx context.Context) (int64, error)
}

type mongoRoomMirrorRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoRoomMirrorRepository(cfg *config.Config) RoomMirrorRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoRoomMirrorRepository{
		cfg:        cfg,
		collection: db.Collection(RoomsCollectionName),
	}
}

func (r *mongoRoomMirrorRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.cfg.MongoOpTimeout)
}

// FindSummary returns nil (no error) when the room has been deleted from the
// inventory; callers report such bookings with a null room.
func (r *mongoRoomMirrorRepository) FindSummary(ctx context.Context, roomID primitive.ObjectID) (*model.RoomSummary, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var summary model.RoomSummary
	err := r.collection.FindOne(ctx, bson.M{"_id": roomID}).Decode(&summary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}

	return &summary, nil
}

func (r *mongoRoomMirrorRepository) SetAvailability(ctx context.Context, roomID primitive.ObjectID, available bool) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{"available": available}}
	if available {
		update = bson.M{"$set": bson.M{"available": true, "bookedBy": nil}}
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": roomID}, update)
	if err != nil {
		return fmt.Errorf("failed to update room availability: %w", err)
	}
	return nil
}

func (r *mongoRoomMirrorRepository) FreeAll(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result, err := r.collection.UpdateMany(ctx, bson.M{}, bson.M{
		"$set": bson.M{"available": true, "bookedBy": nil},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to reset rooms: %w", err)
	}
	return result.ModifiedCount, nil
}
