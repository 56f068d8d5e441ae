package store

import (
	"context"

	"gamedevforum/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ListCategories returns up to limit categories of the named section,
// skipping the first skip, in the store's natural order. When filter names a
// category id, pagination is ignored and the result is that single category
// if it belongs to the section, or an empty slice — a missing child under a
// valid parent is not an error, only a missing parent is.
func (s *Store) ListCategories(ctx context.Context, sectionTitle string, limit, skip int64, filter string) ([]models.Category, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	section, err := s.findSectionByTitle(ctx, sectionTitle)
	if err != nil {
		return nil, err
	}

	if filter != "" {
		var cat models.Category
		found, err := s.findOneInto(ctx, s.categories(), "find category", bson.M{
			"category_id": filter,
			"section_id":  section.SectionID,
		}, &cat)
		if err != nil {
			return nil, err
		}
		if !found {
			return []models.Category{}, nil
		}
		return []models.Category{cat}, nil
	}

	opts := options.Find().SetProjection(noRowID).SetLimit(limit).SetSkip(skip)
	cur, err := s.categories().Find(ctx, bson.M{"section_id": section.SectionID}, opts)
	if err != nil {
		return nil, &StorageError{Op: "list categories", Err: err}
	}
	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, &StorageError{Op: "decode categories", Err: err}
	}
	return categories, nil
}

// CreateCategory inserts a new category under the named section and appends
// its id to the section's category list. The insert and the append are two
// separate writes; a crash in between leaves an orphaned category that no
// list references (never a dangling list entry).
func (s *Store) CreateCategory(ctx context.Context, title, sectionTitle string) (string, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	if title == "" {
		return "", &InvalidInputError{Reason: "category title is empty"}
	}
	section, err := s.findSectionByTitle(ctx, sectionTitle)
	if err != nil {
		return "", err
	}

	id, err := s.insertWithRetry(ctx, s.categories(), "insert category", func(id string) any {
		return models.Category{
			CategoryID: id,
			Title:      title,
			SectionID:  section.SectionID,
			Threads:    []string{},
		}
	})
	if err != nil {
		return "", err
	}

	_, err = s.sections().UpdateOne(ctx,
		bson.M{"section_id": section.SectionID},
		bson.M{"$push": bson.M{"categories": id}},
	)
	if err != nil {
		return "", &StorageError{Op: "append category to section", Err: err}
	}
	return id, nil
}

// UpdateCategory partially overwrites a category. Only the title is mutable.
func (s *Store) UpdateCategory(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	set, err := filterUpdate(fields, categoryFields)
	if err != nil {
		return err
	}
	res, err := s.categories().UpdateOne(ctx, bson.M{"category_id": id}, bson.M{"$set": set})
	if err != nil {
		return &StorageError{Op: "update category", Err: err}
	}
	if res.MatchedCount == 0 {
		return &NotFoundError{Kind: "category", ID: id}
	}
	return nil
}

// DeleteCategory cascades depth-first: every thread (and through it, every
// post) goes first, then the category's reference is pulled from its section,
// and the category record is removed last. A missing descendant aborts the
// cascade where it stands.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	opCtx, cancel := s.opCtx(ctx)
	defer cancel()

	var cat models.Category
	found, err := s.findOneInto(opCtx, s.categories(), "find category", bson.M{"category_id": id}, &cat)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{Kind: "category", ID: id}
	}

	for _, threadID := range cat.Threads {
		if err := s.DeleteThread(ctx, threadID); err != nil {
			return err
		}
	}

	_, err = s.sections().UpdateOne(opCtx,
		bson.M{"section_id": cat.SectionID},
		bson.M{"$pull": bson.M{"categories": id}},
	)
	if err != nil {
		return &StorageError{Op: "remove category from section", Err: err}
	}
	if _, err := s.categories().DeleteOne(opCtx, bson.M{"category_id": id}); err != nil {
		return &StorageError{Op: "delete category", Err: err}
	}
	return nil
}

// GetCategory returns the category by id, or (nil, nil) when absent.
func (s *Store) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	ctx, cancel := s.opCtx(ctx)
	defer cancel()

	var cat models.Category
	found, err := s.findOneInto(ctx, s.categories(), "find category", bson.M{"category_id": id}, &cat)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &cat, nil
}

func (s *Store) findSectionByTitle(ctx context.Context, title string) (*models.Section, error) {
	var section models.Section
	found, err := s.findOneInto(ctx, s.sections(), "find section", bson.M{"title": title}, &section)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &NotFoundError{Kind: "section", ID: title}
	}
	return &section, nil
}
