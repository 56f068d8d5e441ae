package store

import (
	"context"
	"errors"

	"gamedevforum/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// CreateUser inserts a user. The password arrives already hashed and is
// treated as an opaque string. Usernames are unique; the unique index is the
// backstop for the race between the existence check and the insert.
func (s *Store) CreateUser(ctx context.Context, username, passwordHash, email string) (string, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	switch "" {
	case username:
		return "", &InvalidInputError{Reason: "username is empty"}
	case passwordHash:
		return "", &InvalidInputError{Reason: "password hash is empty"}
	case email:
		return "", &InvalidInputError{Reason: "email is empty"}
	}

	existing, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", &UsernameTakenError{Username: username}
	}

	id, err := s.insertWithRetry(ctx, s.users(), "insert user", func(id string) any {
		return models.User{
			UserID:       id,
			Username:     username,
			PasswordHash: passwordHash,
			Email:        email,
		}
	})
	if err != nil {
		var storageErr *StorageError
		if errors.As(err, &storageErr) && mongo.IsDuplicateKeyError(storageErr.Err) {
			return "", &UsernameTakenError{Username: username}
		}
		return "", err
	}
	return id, nil
}

// GetUserByUsername returns the user or (nil, nil) when absent. Login lookups
// treat a missing user as a normal outcome, not an error.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var user models.User
	found, err := s.findOneInto(ctx, s.users(), "find user by username", bson.M{"username": username}, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// GetUser returns the user by id, or (nil, nil) when absent.
func (s *Store) GetUser(ctx context.Context, id string) (*models.User, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var user models.User
	found, err := s.findOneInto(ctx, s.users(), "find user", bson.M{"user_id": id}, &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// UpdateUser partially overwrites a user. Mutable fields: username,
// password_hash, email.
func (s *Store) UpdateUser(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	set, err := filterUpdate(fields, userFields)
	if err != nil {
		return err
	}
	res, err := s.users().UpdateOne(ctx, bson.M{"user_id": id}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if username, ok := set["username"].(string); ok {
				return &UsernameTakenError{Username: username}
			}
		}
		return &StorageError{Op: "update user", Err: err}
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Kind: "user", ID: id}
	}
	return nil
}

// DeleteUser clears the author reference on every post the user wrote (posts
// outlive their author), then removes the user record.
func (s *Store) DeleteUser(ctx context.Context, id string) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var user models.User
	found, err := s.findOneInto(ctx, s.users(), "find user", bson.M{"user_id": id}, &user)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Kind: "user", ID: id}
	}

	_, err = s.posts().UpdateMany(ctx,
		bson.M{"author_id": id},
		bson.M{"$set": bson.M{"author_id": ""}},
	)
	if err != nil {
		return &StorageError{Op: "clear post authors", Err: err}
	}
	if _, err := s.users().DeleteOne(ctx, bson.M{"user_id": id}); err != nil {
		return &StorageError{Op: "delete user", Err: err}
	}
	return nil
}
