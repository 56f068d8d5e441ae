package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const defaultTimeout = 5 * time.Second

// Store is the content hierarchy controller. It maintains the
// section → category → thread → post collections and the user collection,
// keeping the parent child-lists and the child parent-references consistent.
//
// The store is safe for concurrent use, but multi-document operations
// (create's insert+append, cascading deletes) are sequential writes with no
// cross-document transaction. A crash or a concurrent mutation of the same
// branch can leave the lists and references briefly out of sync.
type Store struct {
	db      *mongo.Database
	timeout time.Duration
}

func New(db *mongo.Database, timeout time.Duration) *Store {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Store{db: db, timeout: timeout}
}

func (s *Store) sections() *mongo.Collection   { return s.db.Collection("sections") }
func (s *Store) categories() *mongo.Collection { return s.db.Collection("categories") }
func (s *Store) threads() *mongo.Collection    { return s.db.Collection("threads") }
func (s *Store) posts() *mongo.Collection      { return s.db.Collection("posts") }
func (s *Store) users() *mongo.Collection      { return s.db.Collection("users") }

// opCtx bounds every store call so a wedged connection fails the request
// instead of hanging it.
func (s *Store) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// noRowID excludes Mongo's internal _id from everything handed back to
// callers; clients only ever see the logical identifiers.
var noRowID = bson.M{"_id": 0}

// insertWithRetry inserts doc, regenerating the logical id via genID and
// re-marshalling via build on a duplicate-key collision. The random id space
// makes collisions vanishingly rare; three attempts is plenty.
func (s *Store) insertWithRetry(ctx context.Context, coll *mongo.Collection, op string, build func(id string) any) (string, error) {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		id := NewID()
		if _, err := coll.InsertOne(ctx, build(id)); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				lastErr = err
				continue
			}
			return "", &StorageError{Op: op, Err: err}
		}
		return id, nil
	}
	return "", &StorageError{Op: op, Err: lastErr}
}

// findOneInto decodes a single document matching filter into out, excluding
// the row id. Returns (false, nil) when no document matches.
func (s *Store) findOneInto(ctx context.Context, coll *mongo.Collection, op string, filter bson.M, out any) (bool, error) {
	err := coll.FindOne(ctx, filter, options.FindOne().SetProjection(noRowID)).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, &StorageError{Op: op, Err: err}
	}
	return true, nil
}
