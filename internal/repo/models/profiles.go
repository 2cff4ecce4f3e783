package models

import (
	"context"
	"time"
)

type ProfilesRepo interface {
	Get(ctx context.Context, email string) (*Profile, error)
	Upsert(ctx context.Context, profile Profile) (*Profile, error)
}

type Profile struct {
	Email      string    `json:"email"      bson:"email"`
	Name       string    `json:"name"       bson:"name"`
	Phone      string    `json:"phone"      bson:"phone"`
	Experience string    `json:"experience" bson:"experience"`
	TargetRole string    `json:"targetRole" bson:"targetRole"`
	Skills     []string  `json:"skills"     bson:"skills"`
	UpdatedAt  time.Time `json:"updatedAt"  bson:"updatedAt"`
}

const (
	ProfileFieldEmail      = "email"
	ProfileFieldName       = "name"
	ProfileFieldPhone      = "phone"
	ProfileFieldExperience = "experience"
	ProfileFieldTargetRole = "targetRole"
	ProfileFieldSkills     = "skills"
	ProfileFieldUpdatedAt  = "updatedAt"
)
