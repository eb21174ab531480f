// Package mongodocs implements the repository interfaces on MongoDB.
// Documents carry ObjectID primary keys; the hex form is what crosses
// the repository boundary, so callers treat IDs as opaque strings on
// both backends.
package mongodocs

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/firstpost/journal/internal/repository"
)

// Store is the MongoDB-backed repository.Store.
type Store struct {
	client *mongo.Client
	db     *mongo.Database

	posts       *postRepo
	categories  *categoryRepo
	subscribers *subscriberRepo
	contacts    *contactRepo
	heroSlides  *heroSlideRepo
	users       *userRepo
}

// Open connects to the given URI, pings the deployment and ensures the
// unique indexes both backends guarantee.
func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(dbName)
	s := &Store{client: client, db: db}
	s.posts = &postRepo{coll: db.Collection("posts"), categories: db.Collection("categories")}
	s.categories = &categoryRepo{coll: db.Collection("categories")}
	s.subscribers = &subscriberRepo{coll: db.Collection("subscribers")}
	s.contacts = &contactRepo{coll: db.Collection("contacts")}
	s.heroSlides = &heroSlideRepo{coll: db.Collection("hero_slides")}
	s.users = &userRepo{coll: db.Collection("users")}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	for coll, key := range map[*mongo.Collection]string{
		s.db.Collection("posts"):       "slug",
		s.db.Collection("categories"):  "slug",
		s.db.Collection("subscribers"): "email",
		s.db.Collection("users"):       "username",
	} {
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: unique,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) Posts() repository.PostRepository             { return s.posts }
func (s *Store) Categories() repository.CategoryRepository    { return s.categories }
func (s *Store) Subscribers() repository.SubscriberRepository { return s.subscribers }
func (s *Store) Contacts() repository.ContactRepository       { return s.contacts }
func (s *Store) HeroSlides() repository.HeroSlideRepository   { return s.heroSlides }
func (s *Store) Users() repository.UserRepository             { return s.users }

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// translate maps driver errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case err == mongo.ErrNoDocuments:
		return repository.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return repository.ErrDuplicate
	default:
		return err
	}
}

// regexFilter builds a case-insensitive substring match.
func regexFilter(field, q string) bson.M {
	return bson.M{field: bson.M{"$regex": q, "$options": "i"}}
}
