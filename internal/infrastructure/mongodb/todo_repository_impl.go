package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

type todoDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Text        string             `bson:"text"`
	Completed   bool               `bson:"completed"`
	CompletedAt *int64             `bson:"completedAt"`
}

func (d todoDocument) toEntity() *entity.Todo {
	return &entity.Todo{
		ID:          d.ID.Hex(),
		Text:        d.Text,
		Completed:   d.Completed,
		CompletedAt: d.CompletedAt,
	}
}

type TodoRepository struct {
	coll *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{coll: db.Collection(todosCollection)}
}

func (r *TodoRepository) Create(ctx context.Context, t *entity.Todo) error {
	doc := todoDocument{
		ID:          primitive.NewObjectID(),
		Text:        t.Text,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return err
	}
	t.ID = doc.ID.Hex()
	return nil
}

func (r *TodoRepository) List(ctx context.Context) ([]entity.Todo, error) {
	cur, err := r.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []todoDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	todos := make([]entity.Todo, 0, len(docs))
	for _, d := range docs {
		todos = append(todos, *d.toEntity())
	}
	return todos, nil
}

func (r *TodoRepository) GetByID(ctx context.Context, id string) (*entity.Todo, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc todoDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapFindErr(err)
	}
	return doc.toEntity(), nil
}

func (r *TodoRepository) Update(ctx context.Context, id string, changes repository.TodoChanges) (*entity.Todo, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	set := bson.M{
		"completed":   changes.Completed,
		"completedAt": changes.CompletedAt,
	}
	if changes.Text != nil {
		set["text"] = *changes.Text
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc todoDocument
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		return nil, mapFindErr(err)
	}
	return doc.toEntity(), nil
}

func (r *TodoRepository) DeleteByID(ctx context.Context, id string) (*entity.Todo, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var doc todoDocument
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mapFindErr(err)
	}
	return doc.toEntity(), nil
}

func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}

var _ repository.TodoRepository = (*TodoRepository)(nil)
