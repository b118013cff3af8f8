package unitRepo

import (
	"context"
	"fmt"
	"time"

	"storely/database"
	"storely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUnitRepo implements UnitRepository using MongoDB.
type MongoUnitRepo struct {
	coll *mongo.Collection
}

// NewMongoUnitRepo creates a new instance of UnitRepository using MongoDB.
func NewMongoUnitRepo() UnitRepository {
	coll := database.DB().Collection("units")
	repo := &MongoUnitRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoUnitRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "host_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a storage unit by its unique ID.
func (r *MongoUnitRepo) GetByID(id string) (*models.StorageUnit, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var unit models.StorageUnit
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&unit); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch unit with id %s: %w", id, err)
	}
	return &unit, nil
}

// GetAll retrieves all storage units.
func (r *MongoUnitRepo) GetAll() ([]models.StorageUnit, error) {
	return r.find(bson.M{})
}

// GetByHost retrieves all storage units listed by a host.
func (r *MongoUnitRepo) GetByHost(hostID string) ([]models.StorageUnit, error) {
	return r.find(bson.M{"host_id": hostID})
}

func (r *MongoUnitRepo) find(filter bson.M) ([]models.StorageUnit, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve units: %w", err)
	}
	defer cursor.Close(ctx)

	var units []models.StorageUnit
	for cursor.Next(ctx) {
		var u models.StorageUnit
		if err := cursor.Decode(&u); err != nil {
			return nil, fmt.Errorf("failed to decode unit: %w", err)
		}
		units = append(units, u)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return units, nil
}

// Create inserts a new storage unit document.
func (r *MongoUnitRepo) Create(unit *models.StorageUnit) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	unit.CreatedAt = now
	unit.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, unit)
	if err != nil {
		return fmt.Errorf("failed to create unit: %w", err)
	}
	return nil
}

// Update modifies an existing storage unit document.
func (r *MongoUnitRepo) Update(unit *models.StorageUnit) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	unit.UpdatedAt = time.Now()
	filter := bson.M{"id": unit.ID}
	update := bson.M{"$set": unit}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update unit with id %s: %w", unit.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("unit with id %s not found", unit.ID)
	}
	return nil
}
