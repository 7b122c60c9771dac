package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/opencourses/course-api/internal/core/domain"
)

const coursesCollection = "courses"

type CourseRepository struct {
	coll *mongo.Collection
}

func NewCourseRepository(db *mongo.Database) *CourseRepository {
	return &CourseRepository{coll: db.Collection(coursesCollection)}
}

// mongoCourse is the stored document. The owner id is kept as an ObjectID so
// reads can $lookup the users collection directly.
type mongoCourse struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Description     string             `bson:"description"`
	EstimatedTime   string             `bson:"estimated_time,omitempty"`
	MaterialsNeeded string             `bson:"materials_needed,omitempty"`
	UserID          primitive.ObjectID `bson:"user_id"`
	CreatedAt       int64              `bson:"created_at"`
	UpdatedAt       int64              `bson:"updated_at"`
	Owner           []mongoUser        `bson:"owner,omitempty"`
}

// lookupOwner embeds the owning user into each course document.
var lookupOwner = bson.M{"$lookup": bson.M{
	"from":         usersCollection,
	"localField":   "user_id",
	"foreignField": "_id",
	"as":           "owner",
}}

func (r *CourseRepository) FindAll(ctx context.Context) ([]*domain.Course, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, []bson.M{lookupOwner})
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer cursor.Close(ctx)

	courses := make([]*domain.Course, 0)
	for cursor.Next(ctx) {
		var mc mongoCourse
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode course: %w", err)
		}
		courses = append(courses, mc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Aggregate(ctx, []bson.M{
		{"$match": bson.M{"_id": oid}},
		lookupOwner,
	})
	if err != nil {
		return nil, fmt.Errorf("find course: %w", err)
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, fmt.Errorf("find course: %w", err)
		}
		return nil, domain.ErrCourseNotFound
	}

	var mc mongoCourse
	if err := cursor.Decode(&mc); err != nil {
		return nil, fmt.Errorf("decode course: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CourseRepository) FindByPrimaryKey(ctx context.Context, id string) (*domain.Course, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoCourse
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return mc.toDomain(), nil
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (string, error) {
	if err := domain.ValidateCourse(course); err != nil {
		return "", err
	}

	ownerID, err := primitive.ObjectIDFromHex(course.UserID)
	if err != nil {
		return "", fmt.Errorf("invalid owner id %q: %w", course.UserID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoCourse{
		Title:           course.Title,
		Description:     course.Description,
		EstimatedTime:   course.EstimatedTime,
		MaterialsNeeded: course.MaterialsNeeded,
		UserID:          ownerID,
		CreatedAt:       course.CreatedAt.Unix(),
		UpdatedAt:       course.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert course: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// Update persists the mutable fields of an already-merged course. The id and
// owner are never part of the update document.
func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	if err := domain.ValidateCourse(course); err != nil {
		return err
	}

	oid, err := primitive.ObjectIDFromHex(course.ID)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":            course.Title,
		"description":      course.Description,
		"estimated_time":   course.EstimatedTime,
		"materials_needed": course.MaterialsNeeded,
		"updated_at":       course.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, course *domain.Course) error {
	oid, err := primitive.ObjectIDFromHex(course.ID)
	if err != nil {
		return domain.ErrCourseNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes backing owner lookups.
func (r *CourseRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}

func (mc mongoCourse) toDomain() *domain.Course {
	course := &domain.Course{
		ID:              mc.ID.Hex(),
		Title:           mc.Title,
		Description:     mc.Description,
		EstimatedTime:   mc.EstimatedTime,
		MaterialsNeeded: mc.MaterialsNeeded,
		UserID:          mc.UserID.Hex(),
		CreatedAt:       unixToTime(mc.CreatedAt),
		UpdatedAt:       unixToTime(mc.UpdatedAt),
	}
	if len(mc.Owner) > 0 {
		course.User = mc.Owner[0].toDomain()
	}
	return course
}
