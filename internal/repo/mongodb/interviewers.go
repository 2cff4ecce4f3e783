package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/pkg/calendar"
	"github.com/interviewdost/backend/pkg/errors"
	mng "github.com/interviewdost/backend/pkg/mongotools"
)

type mongoInterviewers struct {
	coll *mongo.Collection
}

func (m mongoInterviewers) FindAvailable(ctx context.Context, day time.Time, clock string) ([]models.Interviewer, error) {
	filter := availableAt(day, clock)

	c, err := m.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.WrapFail(err, "find interviewers with free slot")
	}

	found, err := mng.FilterFunc[models.Interviewer](ctx, c, nil)
	return found, errors.WrapFail(err, "parse interviewers")
}

func (m mongoInterviewers) BookSlot(
	ctx context.Context,
	email string,
	day time.Time,
	start string,
) (*models.Interviewer, error) {
	filter := bookableSlot(email, day, start)
	update := mng.SetAll(mng.Eq(mng.Positional(models.InterviewerFieldSlots, models.SlotFieldBooked), true))

	r := m.coll.FindOneAndUpdate(
		ctx,
		filter,
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	err := r.Err()
	if mng.IsNotFound(err) {
		return nil, models.ErrSlotNotFound
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find and book slot")
	}

	var parsed models.Interviewer
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode booked interviewer")
	}

	return &parsed, nil
}

func (m mongoInterviewers) Get(ctx context.Context, email string) (*models.Interviewer, error) {
	r := m.coll.FindOne(ctx, mng.Eq(models.InterviewerFieldEmail, email))
	err := r.Err()

	if mng.IsNotFound(err) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.WrapFail(err, "find interviewer by email")
	}

	var parsed models.Interviewer
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode interviewer")
	}

	return &parsed, nil
}

func (m mongoInterviewers) List(ctx context.Context) ([]models.Interviewer, error) {
	c, err := m.coll.Find(
		ctx,
		mng.All(),
		options.Find().SetSort(bson.D{{Key: models.InterviewerFieldName, Value: 1}}),
	)
	if err != nil {
		return nil, errors.WrapFail(err, "list interviewers")
	}

	all, err := mng.FilterFunc[models.Interviewer](ctx, c, nil)
	return all, errors.WrapFail(err, "parse interviewers")
}

func (m mongoInterviewers) Count(ctx context.Context) (int64, error) {
	n, err := m.coll.CountDocuments(ctx, mng.All())
	return n, errors.WrapFail(err, "count interviewers")
}

func (m mongoInterviewers) InsertMany(ctx context.Context, interviewers []models.Interviewer) error {
	if len(interviewers) == 0 {
		return nil
	}

	docs := make([]any, 0, len(interviewers))
	for _, i := range interviewers {
		docs = append(docs, i)
	}

	_, err := m.coll.InsertMany(ctx, docs)
	return errors.WrapFail(err, "insert interviewers")
}

func slotPath(field string) string {
	return mng.Path(models.InterviewerFieldSlots, field)
}

func availableAt(day time.Time, clock string) bson.M {
	from, to := calendar.DayRange(day)
	return mng.ElemMatch(models.InterviewerFieldSlots, bson.M{
		models.SlotFieldDate:      mng.Between(from, to),
		models.SlotFieldStartTime: bson.M{"$lte": clock},
		models.SlotFieldEndTime:   bson.M{"$gte": clock},
		models.SlotFieldBooked:    false,
	})
}

// bookableSlot must stay a single document filter: match and update happen
// in one FindOneAndUpdate, and "slots.$" points at the element matched here.
func bookableSlot(email string, day time.Time, start string) bson.M {
	from, to := calendar.DayRange(day)
	filter := mng.ElemMatch(models.InterviewerFieldSlots, bson.M{
		models.SlotFieldDate:      mng.Between(from, to),
		models.SlotFieldStartTime: start,
		models.SlotFieldBooked:    false,
	})
	filter[models.InterviewerFieldEmail] = email
	return filter
}
