package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/pkg/errors"
	mng "github.com/interviewdost/backend/pkg/mongotools"
)

type mongoProfiles struct {
	coll *mongo.Collection
}

func (m mongoProfiles) Get(ctx context.Context, email string) (*models.Profile, error) {
	r := m.coll.FindOne(ctx, mng.Eq(models.ProfileFieldEmail, email))
	err := r.Err()

	if mng.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find profile by email")
	}

	var parsed models.Profile
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode profile")
	}

	return &parsed, nil
}

func (m mongoProfiles) Upsert(ctx context.Context, p models.Profile) (*models.Profile, error) {
	r := m.coll.FindOneAndUpdate(
		ctx,
		mng.Eq(models.ProfileFieldEmail, p.Email),
		profileUpdate(p, time.Now().UTC()),
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	)

	if r.Err() != nil {
		return nil, errors.WrapFail(r.Err(), "do upsert")
	}

	var parsed models.Profile
	err := r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "parse profile")
	}

	return &parsed, nil
}

// profileUpdate sets only the fields present in p, stored values of absent
// ones are kept.
func profileUpdate(p models.Profile, now time.Time) bson.M {
	var skills *[]string
	if p.Skills != nil {
		skills = &p.Skills
	}

	return mng.SetAll(
		mng.Field(models.ProfileFieldName, present(p.Name)),
		mng.Field(models.ProfileFieldPhone, present(p.Phone)),
		mng.Field(models.ProfileFieldExperience, present(p.Experience)),
		mng.Field(models.ProfileFieldTargetRole, present(p.TargetRole)),
		mng.Field(models.ProfileFieldSkills, skills),
		mng.Field(models.ProfileFieldUpdatedAt, &now),
	)
}

func present(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
