package models

import "context"

type TestsRepo interface {
	List(ctx context.Context) ([]Test, error)
	// Get returns nil without error when there is no such test.
	Get(ctx context.Context, id string) (*Test, error)
}

// Test is a quiz served to students as is, answers included.
type Test struct {
	ID          string     `json:"id"          bson:"_id"`
	Title       string     `json:"title"       bson:"title"`
	Topic       string     `json:"topic"       bson:"topic"`
	Description string     `json:"description" bson:"description"`
	Minutes     int        `json:"minutes"     bson:"minutes"`
	Questions   []Question `json:"questions"   bson:"questions"`
}

type Question struct {
	Text    string   `json:"text"    bson:"text"`
	Options []string `json:"options" bson:"options"`
	Answer  int      `json:"answer"  bson:"answer"`
}

const TestFieldTitle = "title"
