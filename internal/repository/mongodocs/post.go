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

type postRepo struct {
	coll       *mongo.Collection
	categories *mongo.Collection
}

var newestFirst = bson.D{{Key: "created_at", Value: -1}}

func (r *postRepo) Create(ctx context.Context, post *models.Post) error {
	doc, err := postDocFrom(post)
	if err != nil {
		return err
	}
	now := time.Now()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return translate(err)
	}
	post.ID = res.InsertedID.(primitive.ObjectID).Hex()
	post.CreatedAt = doc.CreatedAt
	post.UpdatedAt = doc.UpdatedAt
	return nil
}

func (r *postRepo) Update(ctx context.Context, post *models.Post) error {
	oid, err := primitive.ObjectIDFromHex(post.ID)
	if err != nil {
		return repository.ErrNotFound
	}
	doc, err := postDocFrom(post)
	if err != nil {
		return err
	}

	set := bson.M{
		"title":               doc.Title,
		"slug":                doc.Slug,
		"content":             doc.Content,
		"image_url":           doc.ImageURL,
		"category_id":         doc.CategoryID,
		"affiliate_image_url": doc.AffiliateImageURL,
		"affiliate_link_url":  doc.AffiliateLinkURL,
		"affiliate_enabled":   doc.AffiliateEnabled,
		"promo_image_url":     doc.PromoImageURL,
		"promo_video_url":     doc.PromoVideoURL,
		"promo_link_url":      doc.PromoLinkURL,
		"promo_enabled":       doc.PromoEnabled,
		"adsterra_enabled":    doc.AdsterraEnabled,
		"ad_top_code":         doc.AdTopCode,
		"ad_middle_code":      doc.AdMiddleCode,
		"ad_left_code":        doc.AdLeftCode,
		"ad_right_code":       doc.AdRightCode,
		"updated_at":          time.Now(),
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *postRepo) Delete(ctx context.Context, id string) error {
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

func (r *postRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *postRepo) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *postRepo) findOne(ctx context.Context, filter bson.M) (*models.Post, error) {
	var doc postDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	posts := []models.Post{doc.toModel()}
	if err := r.populateCategories(ctx, posts); err != nil {
		return nil, err
	}
	return &posts[0], nil
}

func (r *postRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *postRepo) List(ctx context.Context, filter repository.PostFilter, page repository.Page) ([]models.Post, int64, error) {
	query := bson.M{}
	var and []bson.M

	if q := strings.TrimSpace(filter.Search); q != "" {
		and = append(and, bson.M{"$or": []bson.M{
			regexFilter("title", q),
			regexFilter("content", q),
		}})
	}
	if q := strings.TrimSpace(filter.AdminSearch); q != "" {
		and = append(and, bson.M{"$or": []bson.M{
			regexFilter("title", q),
			regexFilter("slug", q),
		}})
	}
	if filter.CategoryID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.CategoryID)
		if err != nil {
			return []models.Post{}, 0, nil
		}
		and = append(and, bson.M{"category_id": oid})
	}
	if len(and) > 0 {
		query["$and"] = and
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, translate(err)
	}

	opts := options.Find().
		SetSort(newestFirst).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Size))
	posts, err := r.find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *postRepo) Latest(ctx context.Context, limit int) ([]models.Post, error) {
	opts := options.Find().SetSort(newestFirst).SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *postRepo) IncrementViews(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrNotFound
	}
	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"views_count": 1}})
	if err != nil {
		return translate(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *postRepo) TopByViews(ctx context.Context, limit int) ([]models.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "views_count", Value: -1}, {Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{}, opts)
}

func (r *postRepo) TotalViews(ctx context.Context) (int64, error) {
	cursor, err := r.coll.Aggregate(ctx, mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$views_count"}}}},
	})
	if err != nil {
		return 0, translate(err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, translate(err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}

func (r *postRepo) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	return count, translate(err)
}

func (r *postRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Post, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(err)
	}
	defer cursor.Close(ctx)

	var docs []postDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translate(err)
	}

	posts := make([]models.Post, 0, len(docs))
	for _, d := range docs {
		posts = append(posts, d.toModel())
	}
	if err := r.populateCategories(ctx, posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// populateCategories resolves the category references in one query.
// Dangling references stay nil and render as Uncategorized.
func (r *postRepo) populateCategories(ctx context.Context, posts []models.Post) error {
	ids := make([]primitive.ObjectID, 0, len(posts))
	seen := make(map[string]bool, len(posts))
	for _, p := range posts {
		if p.CategoryID == nil || seen[*p.CategoryID] {
			continue
		}
		oid, err := primitive.ObjectIDFromHex(*p.CategoryID)
		if err != nil {
			continue
		}
		seen[*p.CategoryID] = true
		ids = append(ids, oid)
	}
	if len(ids) == 0 {
		return nil
	}

	cursor, err := r.categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return translate(err)
	}
	defer cursor.Close(ctx)

	var docs []categoryDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return translate(err)
	}

	byID := make(map[string]models.Category, len(docs))
	for _, d := range docs {
		byID[d.ID.Hex()] = d.toModel()
	}
	for i := range posts {
		if posts[i].CategoryID == nil {
			continue
		}
		if cat, ok := byID[*posts[i].CategoryID]; ok {
			c := cat
			posts[i].Category = &c
		}
	}
	return nil
}
