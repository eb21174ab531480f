package mongodocs

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/repository"
)

type heroSlideRepo struct {
	coll *mongo.Collection
}

var slideOrder = bson.D{{Key: "sort_order", Value: 1}, {Key: "created_at", Value: -1}}

func (r *heroSlideRepo) ListAll(ctx context.Context) ([]models.HeroSlide, error) {
	return r.find(ctx, bson.M{})
}

func (r *heroSlideRepo) ListActive(ctx context.Context) ([]models.HeroSlide, error) {
	return r.find(ctx, bson.M{"is_active": true})
}

func (r *heroSlideRepo) find(ctx context.Context, filter bson.M) ([]models.HeroSlide, error) {
	opts := options.Find().SetSort(slideOrder)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var docs []heroSlideDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate(err)
	}
	slides := make([]models.HeroSlide, 0, len(docs))
	for _, d := range docs {
		slides = append(slides, d.toModel())
	}
	return slides, nil
}

func (r *heroSlideRepo) GetByID(ctx context.Context, id string) (*models.HeroSlide, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	var doc heroSlideDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	slide := doc.toModel()
	return &slide, nil
}

func (r *heroSlideRepo) Create(ctx context.Context, slide *models.HeroSlide) error {
	now := time.Now()
	doc := heroSlideDoc{
		Title:      slide.Title,
		Subtitle:   slide.Subtitle,
		ImageURL:   slide.ImageURL,
		ButtonText: slide.ButtonText,
		ButtonLink: slide.ButtonLink,
		IsActive:   slide.IsActive,
		SortOrder:  slide.SortOrder,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translate(err)
	}
	slide.ID = res.InsertedID.(primitive.ObjectID).Hex()
	slide.CreatedAt = now
	slide.UpdatedAt = now
	return nil
}

func (r *heroSlideRepo) Update(ctx context.Context, slide *models.HeroSlide) error {
	oid, err := primitive.ObjectIDFromHex(slide.ID)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"title":       slide.Title,
		"subtitle":    slide.Subtitle,
		"image_url":   slide.ImageURL,
		"button_text": slide.ButtonText,
		"button_link": slide.ButtonLink,
		"is_active":   slide.IsActive,
		"sort_order":  slide.SortOrder,
		"updated_at":  time.Now(),
	}})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *heroSlideRepo) Delete(ctx context.Context, id string) error {
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
