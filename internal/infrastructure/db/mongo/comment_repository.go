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

const commentCollection = "comments"

type MongoCommentRepository struct {
	coll *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{coll: db.Collection(commentCollection)}
}

type mongoComment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	TodoID    string             `bson:"todo_id"`
	AuthorID  string             `bson:"author_id"`
	Contents  string             `bson:"contents"`
	CreatedAt int64              `bson:"created_at"`
}

func (mc mongoComment) toDomain() domain.Comment {
	return domain.Comment{
		ID:        mc.ID.Hex(),
		TodoID:    mc.TodoID,
		AuthorID:  mc.AuthorID,
		Contents:  mc.Contents,
		CreatedAt: unixToTime(mc.CreatedAt),
	}
}

func (r *MongoCommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	doc := mongoComment{
		TodoID:    comment.TodoID,
		AuthorID:  comment.AuthorID,
		Contents:  comment.Contents,
		CreatedAt: comment.CreatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	created := *comment
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MongoCommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	var mc mongoComment
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}

	c := mc.toDomain()
	return &c, nil
}

func (r *MongoCommentRepository) ListByTodo(ctx context.Context, todoID string) ([]domain.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cur, err := r.coll.Find(ctx, bson.M{"todo_id": todoID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	var comments []domain.Comment
	for cur.Next(ctx) {
		var mc mongoComment
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, mc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}

	return comments, nil
}

func (r *MongoCommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
