package store

import (
	"context"
	"time"

	"gamedevforum/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ListPosts returns up to limit posts of a thread, skipping the first skip.
// A non-empty filter bypasses pagination and yields the single matching post,
// or an empty slice if no such post exists under this thread.
func (s *Store) ListPosts(ctx context.Context, threadID string, limit, skip int64, filter string) ([]models.Post, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	found, err := s.threadExists(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Kind: "thread", ID: threadID}
	}

	if filter != "" {
		var post models.Post
		found, err := s.findOneInto(ctx, s.posts(), "find post", bson.M{
			"post_id":   filter,
			"thread_id": threadID,
		}, &post)
		if err != nil {
			return nil, err
		}
		if !found {
			return []models.Post{}, nil
		}
		return []models.Post{post}, nil
	}

	opts := options.Find().SetProjection(noRowID).SetLimit(limit).SetSkip(skip)
	cur, err := s.posts().Find(ctx, bson.M{"thread_id": threadID}, opts)
	if err != nil {
		return nil, &StorageError{Op: "list posts", Err: err}
	}
	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, &StorageError{Op: "decode posts", Err: err}
	}
	return posts, nil
}

// CreatePost inserts a post under an existing thread and appends its id to
// the thread's post list. AuthorID may be empty (authorless post). The last
// edit date starts out equal to the creation date.
func (s *Store) CreatePost(ctx context.Context, authorID, content string, creationDate time.Time, threadID string) (string, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if content == "" {
		return "", &InvalidInputError{Reason: "post content is empty"}
	}
	found, err := s.threadExists(ctx, threadID)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &NotFoundError{Kind: "thread", ID: threadID}
	}
	if creationDate.IsZero() {
		creationDate = time.Now().UTC()
	}

	id, err := s.insertWithRetry(ctx, s.posts(), "insert post", func(id string) any {
		return models.Post{
			PostID:       id,
			AuthorID:     authorID,
			Content:      content,
			ThreadID:     threadID,
			CreationDate: creationDate,
			LastEditDate: creationDate,
		}
	})
	if err != nil {
		return "", err
	}

	_, err = s.threads().UpdateOne(ctx,
		bson.M{"thread_id": threadID},
		bson.M{"$push": bson.M{"posts": id}},
	)
	if err != nil {
		return "", &StorageError{Op: "append post to thread", Err: err}
	}
	return id, nil
}

// UpdatePost partially overwrites a post. Mutable fields: content and
// last_edit_date.
func (s *Store) UpdatePost(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	set, err := filterUpdate(fields, postFields)
	if err != nil {
		return err
	}
	res, err := s.posts().UpdateOne(ctx, bson.M{"post_id": id}, bson.M{"$set": set})
	if err != nil {
		return &StorageError{Op: "update post", Err: err}
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Kind: "post", ID: id}
	}
	return nil
}

// DeletePost pulls the post's id from its thread list first, then deletes the
// record. Removing the reference before the record keeps the window in which
// a list entry points at a deleted post as small as possible.
func (s *Store) DeletePost(ctx context.Context, id string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var post models.Post
	found, err := s.findOneInto(ctx, s.posts(), "find post", bson.M{"post_id": id}, &post)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Kind: "post", ID: id}
	}

	_, err = s.threads().UpdateOne(ctx,
		bson.M{"thread_id": post.ThreadID},
		bson.M{"$pull": bson.M{"posts": id}},
	)
	if err != nil {
		return &StorageError{Op: "remove post from thread", Err: err}
	}
	if _, err := s.posts().DeleteOne(ctx, bson.M{"post_id": id}); err != nil {
		return &StorageError{Op: "delete post", Err: err}
	}
	return nil
}

func (s *Store) threadExists(ctx context.Context, id string) (bool, error) {
	var thread models.Thread
	return s.findOneInto(ctx, s.threads(), "find thread", bson.M{"thread_id": id}, &thread)
}
