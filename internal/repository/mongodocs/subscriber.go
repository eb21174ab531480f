package mongodocs

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/repository"
)

type subscriberRepo struct {
	coll *mongo.Collection
}

func (r *subscriberRepo) Create(ctx context.Context, sub *models.Subscriber) error {
	now := time.Now()
	doc := subscriberDoc{Email: sub.Email, IsActive: sub.IsActive, CreatedAt: now, UpdatedAt: now}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translate(err)
	}
	sub.ID = res.InsertedID.(primitive.ObjectID).Hex()
	sub.CreatedAt = now
	sub.UpdatedAt = now
	return nil
}

func (r *subscriberRepo) GetByID(ctx context.Context, id string) (*models.Subscriber, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *subscriberRepo) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *subscriberRepo) findOne(ctx context.Context, filter bson.M) (*models.Subscriber, error) {
	var doc subscriberDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	sub := doc.toModel()
	return &sub, nil
}

func (r *subscriberRepo) SetActive(ctx context.Context, id string, active bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"is_active":  active,
		"updated_at": time.Now(),
	}})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *subscriberRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return translate(err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *subscriberRepo) List(ctx context.Context, filter repository.SubscriberFilter) ([]models.Subscriber, error) {
	query := bson.M{}
	if q := strings.TrimSpace(filter.Search); q != "" {
		query = regexFilter("email", q)
	}
	switch filter.Status {
	case "active":
		query["is_active"] = true
	case "blocked":
		query["is_active"] = false
	}
	return r.find(ctx, query)
}

func (r *subscriberRepo) ListActive(ctx context.Context) ([]models.Subscriber, error) {
	return r.find(ctx, bson.M{"is_active": true})
}

func (r *subscriberRepo) find(ctx context.Context, filter bson.M) ([]models.Subscriber, error) {
	opts := options.Find().SetSort(newestFirst)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var docs []subscriberDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate(err)
	}
	subs := make([]models.Subscriber, 0, len(docs))
	for _, d := range docs {
		subs = append(subs, d.toModel())
	}
	return subs, nil
}

func (r *subscriberRepo) Stats(ctx context.Context) (repository.SubscriberStats, error) {
	var stats repository.SubscriberStats

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return stats, translate(err)
	}
	active, err := r.coll.CountDocuments(ctx, bson.M{"is_active": true})
	if err != nil {
		return stats, translate(err)
	}
	stats.Total = total
	stats.Active = active
	stats.Blocked = total - active
	return stats, nil
}
