// File: database/repository/content/facility.go
package contentRepo

import (
	"context"
	"time"

	"pitchside/database"
	"pitchside/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FacilityRepository is the data access contract for facilities.
type FacilityRepository interface {
	Create(ctx context.Context, f *models.Facility) error
	GetByID(ctx context.Context, id string) (*models.Facility, error)
	Update(ctx context.Context, f *models.Facility) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Facility, error)
}

type mongoFacilityRepo struct {
	coll *mongo.Collection
}

// NewMongoFacilityRepo constructs a new MongoDB FacilityRepository.
func NewMongoFacilityRepo() FacilityRepository {
	return &mongoFacilityRepo{coll: database.DB().Collection("facilities")}
}

func (r *mongoFacilityRepo) Create(ctx context.Context, f *models.Facility) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if f.ID == "" {
		f.ID = uuid.New().String()
	}
	now := time.Now()
	f.CreatedAt = now
	f.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, f)
	return err
}

func (r *mongoFacilityRepo) GetByID(ctx context.Context, id string) (*models.Facility, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var f models.Facility
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&f)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *mongoFacilityRepo) Update(ctx context.Context, f *models.Facility) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	f.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": f.ID}, f)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoFacilityRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoFacilityRepo) List(ctx context.Context) ([]models.Facility, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	facilities := []models.Facility{}
	if err := cursor.All(ctx, &facilities); err != nil {
		return nil, err
	}
	return facilities, nil
}
