package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

type tokenDocument struct {
	Access string `bson:"access"`
	Token  string `bson:"token"`
}

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Email    string             `bson:"email"`
	Password string             `bson:"password"`
	Tokens   []tokenDocument    `bson:"tokens"`
}

func (d userDocument) toEntity() *entity.User {
	u := &entity.User{
		ID:       d.ID.Hex(),
		Email:    d.Email,
		Password: d.Password,
		Tokens:   make([]entity.Token, 0, len(d.Tokens)),
	}
	for _, t := range d.Tokens {
		u.Tokens = append(u.Tokens, entity.Token{Access: t.Access, Token: t.Token})
	}
	return u
}

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

// Create inserts u and fills in its generated ID. Email uniqueness is enforced
// by the unique index created in migrations.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	doc := userDocument{
		ID:       primitive.NewObjectID(),
		Email:    u.Email,
		Password: u.Password,
		// never nil: $push fails on a null field
		Tokens: make([]tokenDocument, 0, len(u.Tokens)),
	}
	for _, t := range u.Tokens {
		doc.Tokens = append(doc.Tokens, tokenDocument{Access: t.Access, Token: t.Token})
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	u.ID = doc.ID.Hex()
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) GetByToken(ctx context.Context, id string, tok entity.Token) (*entity.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{
		"_id": oid,
		"tokens": bson.M{"$elemMatch": bson.M{
			"access": tok.Access,
			"token":  tok.Token,
		}},
	})
}

func (r *UserRepository) AddToken(ctx context.Context, id string, tok entity.Token) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$push": bson.M{"tokens": tokenDocument{Access: tok.Access, Token: tok.Token}},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) RemoveToken(ctx context.Context, id string, tok entity.Token) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{
		"$pull": bson.M{"tokens": bson.M{"access": tok.Access, "token": tok.Token}},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapFindErr(err)
	}
	return doc.toEntity(), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
