package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/opencourses/course-api/internal/core/domain"
)

const (
	listKey     = "courses:list"
	courseKey   = "courses:id:"
	cacheTTL    = 5 * time.Minute
	scanPattern = courseKey + "*"
)

// CourseCache is a best-effort read cache for course responses. Every failure
// is logged and swallowed: the store stays authoritative, and a broken cache
// only costs an extra repository round-trip.
type CourseCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewCourseCache(client *redis.Client, log zerolog.Logger) *CourseCache {
	return &CourseCache{client: client, log: log}
}

func (c *CourseCache) GetList(ctx context.Context) ([]*domain.Course, bool) {
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("course cache read failed")
		}
		return nil, false
	}

	var courses []*domain.Course
	if err := json.Unmarshal(raw, &courses); err != nil {
		c.log.Warn().Err(err).Msg("course cache entry corrupt")
		return nil, false
	}
	return courses, true
}

func (c *CourseCache) SetList(ctx context.Context, courses []*domain.Course) {
	raw, err := json.Marshal(courses)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listKey, raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("course cache write failed")
	}
}

func (c *CourseCache) GetCourse(ctx context.Context, id string) (*domain.Course, bool) {
	raw, err := c.client.Get(ctx, courseKey+id).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("course cache read failed")
		}
		return nil, false
	}

	var course domain.Course
	if err := json.Unmarshal(raw, &course); err != nil {
		c.log.Warn().Err(err).Msg("course cache entry corrupt")
		return nil, false
	}
	return &course, true
}

func (c *CourseCache) SetCourse(ctx context.Context, course *domain.Course) {
	raw, err := json.Marshal(course)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, courseKey+course.ID, raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("course cache write failed")
	}
}

// Invalidate drops the list entry and every cached course. Called after every
// mutation so stale reads last at most one round-trip.
func (c *CourseCache) Invalidate(ctx context.Context) {
	keys := []string{listKey}

	iter := c.client.Scan(ctx, 0, scanPattern, 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Msg("course cache scan failed")
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("course cache invalidation failed")
	}
}
