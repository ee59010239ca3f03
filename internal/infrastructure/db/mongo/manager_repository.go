package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskhub/todo-system/internal/core/domain"
)

const managerCollection = "managers"

type MongoManagerRepository struct {
	coll *mongo.Collection
}

func NewManagerRepository(db *mongo.Database) *MongoManagerRepository {
	return &MongoManagerRepository{coll: db.Collection(managerCollection)}
}

type mongoManager struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	TodoID    string             `bson:"todo_id"`
	UserID    string             `bson:"user_id"`
	CreatedAt int64              `bson:"created_at"`
}

func (mm mongoManager) toDomain() domain.Manager {
	return domain.Manager{
		ID:        mm.ID.Hex(),
		TodoID:    mm.TodoID,
		UserID:    mm.UserID,
		CreatedAt: unixToTime(mm.CreatedAt),
	}
}

func (r *MongoManagerRepository) Create(ctx context.Context, manager *domain.Manager) (*domain.Manager, error) {
	doc := mongoManager{
		TodoID:    manager.TodoID,
		UserID:    manager.UserID,
		CreatedAt: manager.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert manager: %w", err)
	}

	created := *manager
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoManagerRepository) FindByID(ctx context.Context, id string) (*domain.Manager, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrManagerNotFound
	}

	var mm mongoManager
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mm); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrManagerNotFound
		}
		return nil, fmt.Errorf("find manager: %w", err)
	}

	m := mm.toDomain()
	return &m, nil
}

func (r *MongoManagerRepository) ListByTodo(ctx context.Context, todoID string) ([]domain.Manager, error) {
	cur, err := r.coll.Find(ctx, bson.M{"todo_id": todoID})
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer cur.Close(ctx)

	var managers []domain.Manager
	for cur.Next(ctx) {
		var mm mongoManager
		if err := cur.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode manager: %w", err)
		}
		managers = append(managers, mm.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate managers: %w", err)
	}

	return managers, nil
}

func (r *MongoManagerRepository) ExistsByTodoAndUser(ctx context.Context, todoID, userID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"todo_id": todoID, "user_id": userID})
	if err != nil {
		return false, fmt.Errorf("count managers: %w", err)
	}
	return n > 0, nil
}

func (r *MongoManagerRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrManagerNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrManagerNotFound
	}
	return nil
}
