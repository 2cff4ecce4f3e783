package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/pkg/errors"
	mng "github.com/interviewdost/backend/pkg/mongotools"
)

type mongoTests struct {
	coll *mongo.Collection
}

func (m mongoTests) List(ctx context.Context) ([]models.Test, error) {
	c, err := m.coll.Find(
		ctx,
		mng.All(),
		options.Find().SetSort(bson.D{{Key: models.TestFieldTitle, Value: 1}}),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "list tests")
	}

	tests, err := mng.FilterFunc[models.Test](ctx, c, nil)
	return tests, errors.WrapFail(err, "parse tests")
}

func (m mongoTests) Get(ctx context.Context, id string) (*models.Test, error) {
	r := m.coll.FindOne(ctx, bson.M{"_id": id})
	err := r.Err()

	if mng.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find test by id")
	}

	var parsed models.Test
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode test")
	}

	return &parsed, nil
}
