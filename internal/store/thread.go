package store

import (
	"context"

	"gamedevforum/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ListThreads returns up to limit threads of a category, skipping the first
// skip. A non-empty filter bypasses pagination and yields the single matching
// thread, or an empty slice if it does not exist under this category.
func (s *Store) ListThreads(ctx context.Context, categoryID string, limit, skip int64, filter string) ([]models.Thread, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	found, err := s.categoryExists(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Kind: "category", ID: categoryID}
	}

	if filter != "" {
		var thread models.Thread
		found, err := s.findOneInto(ctx, s.threads(), "find thread", bson.M{
			"thread_id":   filter,
			"category_id": categoryID,
		}, &thread)
		if err != nil {
			return nil, err
		}
		if !found {
			return []models.Thread{}, nil
		}
		return []models.Thread{thread}, nil
	}

	opts := options.Find().SetProjection(noRowID).SetLimit(limit).SetSkip(skip)
	cur, err := s.threads().Find(ctx, bson.M{"category_id": categoryID}, opts)
	if err != nil {
		return nil, &StorageError{Op: "list threads", Err: err}
	}
	threads := []models.Thread{}
	if err := cur.All(ctx, &threads); err != nil {
		return nil, &StorageError{Op: "decode threads", Err: err}
	}
	return threads, nil
}

// CreateThread inserts a thread under an existing category and appends its id
// to the category's thread list.
func (s *Store) CreateThread(ctx context.Context, title, categoryID string) (string, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if title == "" {
		return "", &InvalidInputError{Reason: "thread title is empty"}
	}
	found, err := s.categoryExists(ctx, categoryID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &NotFoundError{Kind: "category", ID: categoryID}
	}

	id, err := s.insertWithRetry(ctx, s.threads(), "insert thread", func(id string) any {
		return models.Thread{
			ThreadID:   id,
			Title:      title,
			CategoryID: categoryID,
			Posts:      []string{},
		}
	})
	if err != nil {
		return "", err
	}

	_, err = s.categories().UpdateOne(ctx,
		bson.M{"category_id": categoryID},
		bson.M{"$push": bson.M{"threads": id}},
	)
	if err != nil {
		return "", &StorageError{Op: "append thread to category", Err: err}
	}
	return id, nil
}

// UpdateThread partially overwrites a thread. Only the title is mutable.
func (s *Store) UpdateThread(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	set, err := filterUpdate(fields, threadFields)
	if err != nil {
		return err
	}
	res, err := s.threads().UpdateOne(ctx, bson.M{"thread_id": id}, bson.M{"$set": set})
	if err != nil {
		return &StorageError{Op: "update thread", Err: err}
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Kind: "thread", ID: id}
	}
	return nil
}

// DeleteThread deletes every post in the thread, pulls the thread from its
// category's list, then removes the thread record itself.
func (s *Store) DeleteThread(ctx context.Context, id string) error {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	var thread models.Thread
	found, err := s.findOneInto(opCtx, s.threads(), "find thread", bson.M{"thread_id": id}, &thread)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Kind: "thread", ID: id}
	}

	for _, postID := range thread.Posts {
		if err := s.DeletePost(ctx, postID); err != nil {
			return err
		}
	}

	_, err = s.categories().UpdateOne(opCtx,
		bson.M{"category_id": thread.CategoryID},
		bson.M{"$pull": bson.M{"threads": id}},
	)
	if err != nil {
		return &StorageError{Op: "remove thread from category", Err: err}
	}
	if _, err := s.threads().DeleteOne(opCtx, bson.M{"thread_id": id}); err != nil {
		return &StorageError{Op: "delete thread", Err: err}
	}
	return nil
}

// GetThread returns the thread by id, or (nil, nil) when absent.
func (s *Store) GetThread(ctx context.Context, id string) (*models.Thread, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var thread models.Thread
	found, err := s.findOneInto(ctx, s.threads(), "find thread", bson.M{"thread_id": id}, &thread)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &thread, nil
}

func (s *Store) categoryExists(ctx context.Context, id string) (bool, error) {
	var cat models.Category
	return s.findOneInto(ctx, s.categories(), "find category", bson.M{"category_id": id}, &cat)
}
