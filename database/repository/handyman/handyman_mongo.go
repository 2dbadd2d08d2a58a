package handymanRepo

import (
	"context"
	"fmt"
	"time"

	"fixly/database"
	"fixly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoHandymanRepo implements HandymanRepository using MongoDB.
type MongoHandymanRepo struct {
	coll *mongo.Collection
}

// NewMongoHandymanRepo creates a new HandymanRepository backed by the
// "handymen" collection.
func NewMongoHandymanRepo() HandymanRepository {
	coll := database.Collection("handymen")
	return &MongoHandymanRepo{coll: coll}
}

func (r *MongoHandymanRepo) GetByID(id string) (*models.HandymanProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var profile models.HandymanProfile
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch handyman with id %s: %w", id, err)
	}
	return &profile, nil
}

func (r *MongoHandymanRepo) GetByUserID(userID string) (*models.HandymanProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var profile models.HandymanProfile
	filter := bson.M{"userId": userID}
	if err := r.coll.FindOne(ctx, filter).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch handyman for user %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *MongoHandymanRepo) GetAll() ([]models.HandymanProfile, error) {
	return r.find(bson.M{})
}

// Search narrows the candidate pool database-side. The in-memory engine
// re-applies every predicate, so this filter only has to be sound, not
// complete.
func (r *MongoHandymanRepo) Search(criteria SearchCriteria) ([]models.HandymanProfile, error) {
	filter := bson.M{}
	if criteria.Category != "" {
		filter["skills.category"] = bson.M{"$regex": criteria.Category, "$options": "i"}
	}
	if criteria.MinRating > 0 {
		filter["rating"] = bson.M{"$gte": criteria.MinRating}
	}
	if criteria.VerifiedOnly {
		filter["verification.status"] = models.VerificationVerified
	}
	return r.find(filter)
}

func (r *MongoHandymanRepo) find(filter bson.M) ([]models.HandymanProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve handymen: %w", err)
	}
	defer cursor.Close(ctx)
	var profiles []models.HandymanProfile
	for cursor.Next(ctx) {
		var p models.HandymanProfile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode handyman: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return profiles, nil
}

func (r *MongoHandymanRepo) Create(profile *models.HandymanProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create handyman: %w", err)
	}
	return nil
}

func (r *MongoHandymanRepo) Update(profile *models.HandymanProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": profile.ID}
	update := bson.M{"$set": profile}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update handyman with id %s: %w", profile.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("handyman with id %s not found", profile.ID)
	}
	return nil
}

func (r *MongoHandymanRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to patch handyman with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("handyman with id %s not found", id)
	}
	return nil
}

func (r *MongoHandymanRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete handyman with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("handyman with id %s not found", id)
	}
	return nil
}
