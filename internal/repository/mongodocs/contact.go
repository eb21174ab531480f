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

type contactRepo struct {
	coll *mongo.Collection
}

func (r *contactRepo) Create(ctx context.Context, contact *models.Contact) error {
	now := time.Now()
	doc := contactDoc{
		Name:      contact.Name,
		Email:     contact.Email,
		Message:   contact.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translate(err)
	}
	contact.ID = res.InsertedID.(primitive.ObjectID).Hex()
	contact.CreatedAt = now
	contact.UpdatedAt = now
	return nil
}

func (r *contactRepo) List(ctx context.Context, search string) ([]models.Contact, error) {
	query := bson.M{}
	if q := strings.TrimSpace(search); q != "" {
		query["$or"] = []bson.M{
			regexFilter("name", q),
			regexFilter("email", q),
			regexFilter("message", q),
		}
	}

	opts := options.Find().SetSort(newestFirst)
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var docs []contactDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate(err)
	}
	contacts := make([]models.Contact, 0, len(docs))
	for _, d := range docs {
		contacts = append(contacts, d.toModel())
	}
	return contacts, nil
}

func (r *contactRepo) Delete(ctx context.Context, id string) error {
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

func (r *contactRepo) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	return count, translate(err)
}
