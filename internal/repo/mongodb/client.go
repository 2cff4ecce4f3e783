package mongodb

import (
	"cmp"
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/interviewdost/backend/internal/repo/models"
	"github.com/interviewdost/backend/pkg/errors"
	"github.com/interviewdost/backend/pkg/logger"
)

func New(ctx context.Context, log logger.Logger, cfg Config) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}
	if cfg.Pool.MinSize > 0 {
		opts.SetMinPoolSize(cfg.Pool.MinSize)
	}
	if cfg.Pool.MaxSize > 0 {
		opts.SetMaxPoolSize(cfg.Pool.MaxSize)
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.WrapFail(err, "ping mongo db")
	}

	names := cfg.Collections
	db := client.Database(cmp.Or(cfg.Database, "interviewdost"))

	c := &Client{
		c:            client,
		log:          log.With("mongo"),
		interviewers: mongoInterviewers{db.Collection(cmp.Or(names.Interviewers, "interviewers"))},
		interviews:   mongoInterviews{db.Collection(cmp.Or(names.Interviews, "interviews"))},
		profiles:     mongoProfiles{db.Collection(cmp.Or(names.Profiles, "profiles"))},
		tests:        mongoTests{db.Collection(cmp.Or(names.Tests, "tests"))},
	}

	err = c.createIndexes(ctx)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return c, nil
}

type Client struct {
	c   *mongo.Client
	log logger.Logger

	interviewers mongoInterviewers
	interviews   mongoInterviews
	profiles     mongoProfiles
	tests        mongoTests
}

func (m *Client) Interviewers() models.InterviewersRepo {
	return m.interviewers
}

func (m *Client) Interviews() models.InterviewsRepo {
	return m.interviews
}

func (m *Client) Profiles() models.ProfilesRepo {
	return m.profiles
}

func (m *Client) Tests() models.TestsRepo {
	return m.tests
}

func (m *Client) Close(ctx context.Context) error {
	return errors.WrapFail(m.c.Disconnect(ctx), "close mongo db connection")
}

func (m *Client) createIndexes(ctx context.Context) error {
	indexes := []struct {
		coll   *mongo.Collection
		models []mongo.IndexModel
	}{
		{
			coll: m.interviewers.coll,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: models.InterviewerFieldEmail, Value: 1}},
					Options: options.Index().SetName("email").SetUnique(true),
				},
				{
					Keys:    bson.D{{Key: slotPath(models.SlotFieldDate), Value: 1}},
					Options: options.Index().SetName("slot_date"),
				},
			},
		},
		{
			coll: m.interviews.coll,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: models.InterviewFieldStudentEmail, Value: 1}},
					Options: options.Index().SetName("student"),
				},
				{
					Keys:    bson.D{{Key: models.InterviewFieldInterviewerEmail, Value: 1}},
					Options: options.Index().SetName("interviewer"),
				},
			},
		},
		{
			coll: m.profiles.coll,
			models: []mongo.IndexModel{
				{
					Keys:    bson.D{{Key: models.ProfileFieldEmail, Value: 1}},
					Options: options.Index().SetName("email").SetUnique(true),
				},
			},
		},
	}

	for _, idx := range indexes {
		_, err := idx.coll.Indexes().CreateMany(ctx, idx.models)
		if err != nil {
			return errors.WrapFailf(err, "create indexes on %s", idx.coll.Name())
		}
	}

	m.log.Debugf("indexes are ready")
	return nil
}
