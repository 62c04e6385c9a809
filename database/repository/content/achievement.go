// File: database/repository/content/achievement.go
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

// AchievementRepository is the data access contract for achievements.
type AchievementRepository interface {
	Create(ctx context.Context, a *models.Achievement) error
	GetByID(ctx context.Context, id string) (*models.Achievement, error)
	Update(ctx context.Context, a *models.Achievement) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Achievement, error)
}

type mongoAchievementRepo struct {
	coll *mongo.Collection
}

// NewMongoAchievementRepo constructs a new MongoDB AchievementRepository.
func NewMongoAchievementRepo() AchievementRepository {
	return &mongoAchievementRepo{coll: database.DB().Collection("achievements")}
}

func (r *mongoAchievementRepo) Create(ctx context.Context, a *models.Achievement) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, a)
	return err
}

func (r *mongoAchievementRepo) GetByID(ctx context.Context, id string) (*models.Achievement, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var a models.Achievement
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *mongoAchievementRepo) Update(ctx context.Context, a *models.Achievement) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	a.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": a.ID}, a)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoAchievementRepo) Delete(ctx context.Context, id string) error {
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

func (r *mongoAchievementRepo) List(ctx context.Context) ([]models.Achievement, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "year", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	achievements := []models.Achievement{}
	if err := cursor.All(ctx, &achievements); err != nil {
		return nil, err
	}
	return achievements, nil
}
