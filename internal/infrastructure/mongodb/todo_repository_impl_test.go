package mongodb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/oksasatya/go-todo-api/internal/domain/entity"
	"github.com/oksasatya/go-todo-api/internal/domain/repository"
)

func todoDoc(id primitive.ObjectID, text string, completed bool, completedAt interface{}) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "text", Value: text},
		{Key: "completed", Value: completed},
		{Key: "completedAt", Value: completedAt},
	}
}

func TestTodoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()
	ns := "test." + todosCollection

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		todo := &entity.Todo{Text: "write tests"}
		require.NoError(mt, repo.Create(ctx, todo))
		_, err := primitive.ObjectIDFromHex(todo.ID)
		assert.NoError(mt, err)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "insert", evt.CommandName)
		doc := evt.Command.Lookup("documents", "0")
		assert.Equal(mt, "write tests", doc.Document().Lookup("text").StringValue())
		assert.Equal(mt, bson.TypeNull, doc.Document().Lookup("completedAt").Type)
	})

	mt.Run("create store failure", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 91, Name: "ShutdownInProgress", Message: "shutting down"}))

		assert.Error(mt, repo.Create(ctx, &entity.Todo{Text: "x"}))
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			todoDoc(first, "one", false, nil),
			todoDoc(second, "two", true, int64(1700000000000)),
		))

		todos, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, todos, 2)
		assert.Equal(mt, first.Hex(), todos[0].ID)
		assert.Nil(mt, todos[0].CompletedAt)
		require.NotNil(mt, todos[1].CompletedAt)
		assert.Equal(mt, int64(1700000000000), *todos[1].CompletedAt)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, int32(1), evt.Command.Lookup("sort", "_id").Int32())
	})

	mt.Run("list empty", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		todos, err := repo.List(ctx)
		require.NoError(mt, err)
		assert.NotNil(mt, todos)
		assert.Empty(mt, todos)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, todoDoc(id, "read", false, nil)))

		todo, err := repo.GetByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, &entity.Todo{ID: id.Hex(), Text: "read"}, todo)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("malformed id never reaches the store", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)

		_, err := repo.GetByID(ctx, "123")
		assert.ErrorIs(mt, err, repository.ErrInvalidID)
		_, err = repo.Update(ctx, "zz", repository.TodoChanges{})
		assert.ErrorIs(mt, err, repository.ErrInvalidID)
		_, err = repo.DeleteByID(ctx, "64b7f0c2a1b2c3d4e5f6071") // 23 chars
		assert.ErrorIs(mt, err, repository.ErrInvalidID)
		assert.Nil(mt, mt.GetStartedEvent())
	})

	mt.Run("update returns new document", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		id := primitive.NewObjectID()
		at := int64(1700000000123)
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: todoDoc(id, "ship", true, at)},
		})

		text := "ship"
		todo, err := repo.Update(ctx, id.Hex(), repository.TodoChanges{Text: &text, Completed: true, CompletedAt: &at})
		require.NoError(mt, err)
		assert.True(mt, todo.Completed)
		assert.Equal(mt, at, *todo.CompletedAt)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, "findAndModify", evt.CommandName)
		set := evt.Command.Lookup("update", "$set").Document()
		assert.Equal(mt, "ship", set.Lookup("text").StringValue())
		assert.True(mt, set.Lookup("completed").Boolean())
		assert.Equal(mt, "after", returnDocument(evt.Command))
	})

	mt.Run("update clears completedAt", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: todoDoc(id, "ship", false, nil)},
		})

		_, err := repo.Update(ctx, id.Hex(), repository.TodoChanges{})
		require.NoError(mt, err)

		set := mt.GetStartedEvent().Command.Lookup("update", "$set").Document()
		assert.False(mt, set.Lookup("completed").Boolean())
		assert.Equal(mt, bson.TypeNull, set.Lookup("completedAt").Type)
		_, err = set.LookupErr("text")
		assert.Error(mt, err)
	})

	mt.Run("update not found", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), repository.TodoChanges{})
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: todoDoc(id, "bin", false, nil)},
		})

		todo, err := repo.DeleteByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), todo.ID)
		assert.Equal(mt, "bin", todo.Text)
	})

	mt.Run("delete not found", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		_, err := repo.DeleteByID(ctx, primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}

// returnDocument reads the findAndModify "new" flag as the driver sends it.
func returnDocument(cmd bson.Raw) string {
	if v, err := cmd.LookupErr("new"); err == nil && v.Boolean() {
		return "after"
	}
	return "before"
}
