package taskRepo

import (
	"context"
	"fmt"
	"time"

	"fixly/database"
	"fixly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TaskRepository defines methods for task data access. Tasks are created and
// deleted only; there is no update path.
type TaskRepository interface {
	GetAll() ([]models.Task, error)
	GetByID(id string) (*models.Task, error)
	GetByUser(userID string) ([]models.Task, error)
	Create(task *models.Task) error
	Delete(id string) error
}

// MongoTaskRepo implements TaskRepository using MongoDB.
type MongoTaskRepo struct {
	coll *mongo.Collection
}

// NewMongoTaskRepo creates a new TaskRepository backed by the "tasks" collection.
func NewMongoTaskRepo() TaskRepository {
	return &MongoTaskRepo{coll: database.Collection("tasks")}
}

func (r *MongoTaskRepo) GetAll() ([]models.Task, error) {
	return r.find(bson.M{})
}

func (r *MongoTaskRepo) GetByUser(userID string) ([]models.Task, error) {
	return r.find(bson.M{"userId": userID})
}

func (r *MongoTaskRepo) find(filter bson.M) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Newest first.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tasks: %w", err)
	}
	defer cursor.Close(ctx)
	var tasks []models.Task
	for cursor.Next(ctx) {
		var t models.Task
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, cursor.Err()
}

func (r *MongoTaskRepo) GetByID(id string) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var task models.Task
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&task); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch task with id %s: %w", id, err)
	}
	return &task, nil
}

func (r *MongoTaskRepo) Create(task *models.Task) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, task); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

func (r *MongoTaskRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete task with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("task with id %s not found", id)
	}
	return nil
}
