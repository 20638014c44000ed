package mongodb

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}
	return oid, nil
}
