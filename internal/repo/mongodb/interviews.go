package mongodb

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/pkg/calendar"
	"github.com/interviewdost/backend/pkg/errors"
	mng "github.com/interviewdost/backend/pkg/mongotools"
)

type mongoInterviews struct {
	coll *mongo.Collection
}

func (m mongoInterviews) Create(
	ctx context.Context,
	studentEmail string,
	interviewerEmail string,
	day time.Time,
	clock string,
) (*models.Interview, error) {
	interview := models.Interview{
		ID:               uuid.NewString(),
		StudentEmail:     studentEmail,
		InterviewerEmail: interviewerEmail,
		Date:             calendar.Day(day),
		Time:             clock,
		Status:           models.InterviewStatusScheduled,
		CreatedAt:        time.Now().UTC(),
	}

	_, err := m.coll.InsertOne(ctx, interview)
	if err != nil {
		return nil, errors.WrapFail(err, "insert interview")
	}

	return &interview, nil
}

func (m mongoInterviews) FindByUser(ctx context.Context, email string) ([]models.Interview, error) {
	c, err := m.coll.Find(
		ctx,
		bson.M{"$or": bson.A{
			mng.Eq(models.InterviewFieldStudentEmail, email),
			mng.Eq(models.InterviewFieldInterviewerEmail, email),
		}},
		options.Find().SetSort(bson.D{{Key: models.InterviewFieldCreatedAt, Value: 1}}),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "find interviews")
	}

	parsed, err := mng.FilterFunc[models.Interview](ctx, c, nil)
	return parsed, errors.WrapFail(err, "parse interviews")
}
