package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/taskhub/todo-system/internal/core/domain"
)

const todoCollection = "todos"

type MongoTodoRepository struct {
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) *MongoTodoRepository {
	return &MongoTodoRepository{coll: db.Collection(todoCollection)}
}

type mongoTodo struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Contents   string             `bson:"contents"`
	Weather    string             `bson:"weather"`
	OwnerID    string             `bson:"owner_id"`
	CreatedAt  int64              `bson:"created_at"`
	ModifiedAt int64              `bson:"modified_at"`
}

func (mt mongoTodo) toDomain() domain.Todo {
	return domain.Todo{
		ID:         mt.ID.Hex(),
		Title:      mt.Title,
		Contents:   mt.Contents,
		Weather:    mt.Weather,
		OwnerID:    mt.OwnerID,
		CreatedAt:  unixToTime(mt.CreatedAt),
		ModifiedAt: unixToTime(mt.ModifiedAt),
	}
}

func (r *MongoTodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	doc := mongoTodo{
		Title:      todo.Title,
		Contents:   todo.Contents,
		Weather:    todo.Weather,
		OwnerID:    todo.OwnerID,
		CreatedAt:  todo.CreatedAt.Unix(),
		ModifiedAt: todo.ModifiedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	created := *todo
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoTodoRepository) FindByID(ctx context.Context, id string) (*domain.Todo, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTodoNotFound
	}

	var mt mongoTodo
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}

	t := mt.toDomain()
	return &t, nil
}

func (r *MongoTodoRepository) List(ctx context.Context, page, size int) ([]domain.Todo, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count todos: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "modified_at", Value: -1}}).
		SetSkip(int64((page - 1) * size)).
		SetLimit(int64(size))

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list todos: %w", err)
	}
	defer cur.Close(ctx)

	var todos []domain.Todo
	for cur.Next(ctx) {
		var mt mongoTodo
		if err := cur.Decode(&mt); err != nil {
			return nil, 0, fmt.Errorf("decode todo: %w", err)
		}
		todos = append(todos, mt.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate todos: %w", err)
	}

	return todos, total, nil
}
