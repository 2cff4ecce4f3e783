package mongotools

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/interviewdost/backend/pkg/errors"
)

func SetAll(fieldKVs ...bson.M) bson.M {
	s := make(bson.M, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			s[k] = v
		}
	}

	return bson.M{"$set": s}
}

func All() bson.M {
	return bson.M{}
}

// Field builds {field: *value}, or an empty document when value is nil,
// so optional fields can be passed straight into SetAll.
func Field[T any](field string, value *T) bson.M {
	if value == nil {
		return bson.M{}
	}
	return bson.M{field: *value}
}

func Eq(field string, value any) bson.M {
	return bson.M{field: value}
}

func ElemMatch(field string, cond bson.M) bson.M {
	return bson.M{field: bson.M{"$elemMatch": cond}}
}

// Between matches from <= field < to.
func Between(from, to time.Time) bson.M {
	return bson.M{"$gte": from, "$lt": to}
}

func Path(fields ...string) string {
	return strings.Join(fields, ".")
}

// Positional addresses the array element matched by the query, e.g. "slots.$.booked".
func Positional(array, field string) string {
	return Path(array, "$", field)
}

func IsNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func FilterFunc[T any](ctx context.Context, c *mongo.Cursor, filterFunc func(T) bool) ([]T, error) {
	defer c.Close(ctx)

	filtered := make([]T, 0)
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}

		if filterFunc == nil || filterFunc(item) {
			filtered = append(filtered, item)
		}
	}

	return filtered, c.Err()
}
