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

type categoryRepo struct {
	coll *mongo.Collection
}

func (r *categoryRepo) List(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var docs []categoryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate(err)
	}
	cats := make([]models.Category, 0, len(docs))
	for _, d := range docs {
		cats = append(cats, d.toModel())
	}
	return cats, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *categoryRepo) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *categoryRepo) findOne(ctx context.Context, filter bson.M) (*models.Category, error) {
	var doc categoryDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	cat := doc.toModel()
	return &cat, nil
}

func (r *categoryRepo) Create(ctx context.Context, cat *models.Category) error {
	now := time.Now()
	doc := categoryDoc{Name: cat.Name, Slug: cat.Slug, CreatedAt: now, UpdatedAt: now}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translate(err)
	}
	cat.ID = res.InsertedID.(primitive.ObjectID).Hex()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	return nil
}

func (r *categoryRepo) Update(ctx context.Context, cat *models.Category) error {
	oid, err := primitive.ObjectIDFromHex(cat.ID)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{
		"name":       cat.Name,
		"slug":       cat.Slug,
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

// Delete removes the category document only. Posts keep their dangling
// reference and render as Uncategorized.
func (r *categoryRepo) Delete(ctx context.Context, id string) error {
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
