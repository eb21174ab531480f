package subscriber

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/firstpost/journal/internal/models"
	"github.com/firstpost/journal/internal/repository"
)

type fakeRepo struct {
	seq  int
	subs []*models.Subscriber
}

func (r *fakeRepo) Create(ctx context.Context, sub *models.Subscriber) error {
	for _, s := range r.subs {
		if s.Email == sub.Email {
			return repository.ErrDuplicate
		}
	}
	r.seq++
	sub.ID = fmt.Sprintf("sub-%d", r.seq)
	clone := *sub
	r.subs = append(r.subs, &clone)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id string) (*models.Subscriber, error) {
	for _, s := range r.subs {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeRepo) GetByEmail(ctx context.Context, email string) (*models.Subscriber, error) {
	for _, s := range r.subs {
		if s.Email == email {
			clone := *s
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeRepo) SetActive(ctx context.Context, id string, active bool) error {
	for _, s := range r.subs {
		if s.ID == id {
			s.IsActive = active
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeRepo) Delete(ctx context.Context, id string) error {
	for i, s := range r.subs {
		if s.ID == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeRepo) List(ctx context.Context, filter repository.SubscriberFilter) ([]models.Subscriber, error) {
	var out []models.Subscriber
	for _, s := range r.subs {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeRepo) ListActive(ctx context.Context) ([]models.Subscriber, error) {
	var out []models.Subscriber
	for _, s := range r.subs {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) Stats(ctx context.Context) (repository.SubscriberStats, error) {
	var stats repository.SubscriberStats
	for _, s := range r.subs {
		stats.Total++
		if s.IsActive {
			stats.Active++
		} else {
			stats.Blocked++
		}
	}
	return stats, nil
}

func TestSubscribeNormalizesEmail(t *testing.T) {
	svc := NewService(&fakeRepo{})

	sub, err := svc.Subscribe(context.Background(), "  Reader@Example.COM ")
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if sub.Email != "reader@example.com" {
		t.Errorf("Email = %q, want normalized lowercase", sub.Email)
	}
	if !sub.IsActive {
		t.Error("new subscriber should be active")
	}
}

func TestSubscribeReactivatesInsteadOfDuplicating(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	first, err := svc.Subscribe(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("first Subscribe: %v", err)
	}
	if err := repo.SetActive(ctx, first.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}

	again, err := svc.Subscribe(ctx, "READER@example.com")
	if err != nil {
		t.Fatalf("resubscribe: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("resubscribe created a new record: %q vs %q", again.ID, first.ID)
	}
	if !again.IsActive {
		t.Error("resubscribe should reactivate the record")
	}
	if len(repo.subs) != 1 {
		t.Errorf("subscriber rows = %d, want 1", len(repo.subs))
	}
}

func TestSubscribeActiveExistingIsIdempotent(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Subscribe(ctx, "reader@example.com"); err != nil {
		t.Fatalf("Subscribe: %v", err)
	}
	if _, err := svc.Subscribe(ctx, "reader@example.com"); err != nil {
		t.Fatalf("repeat Subscribe: %v", err)
	}
	if len(repo.subs) != 1 {
		t.Errorf("subscriber rows = %d, want 1", len(repo.subs))
	}
}

func TestSubscribeRejectsEmptyEmail(t *testing.T) {
	svc := NewService(&fakeRepo{})
	if _, err := svc.Subscribe(context.Background(), "   "); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("err = %v, want ErrInvalidEmail", err)
	}
}

func TestToggleFlipsActive(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	sub, err := svc.Subscribe(ctx, "reader@example.com")
	if err != nil {
		t.Fatalf("Subscribe: %v", err)
	}

	toggled, err := svc.Toggle(ctx, sub.ID)
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if toggled.IsActive {
		t.Error("first toggle should deactivate")
	}

	stats, _ := svc.Stats(ctx)
	if stats.Total != 1 || stats.Active != 0 || stats.Blocked != 1 {
		t.Errorf("Stats = %+v", stats)
	}
}
