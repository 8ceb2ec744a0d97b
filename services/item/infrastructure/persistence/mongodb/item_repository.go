// Package mongodb implements the item repository against a MongoDB
// collection. Documents are keyed by the stringified item UUID in `_id`;
// queries are full-collection scans matched in-process.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ghuser/inventory/pkg/database"
	itemdomain "github.com/ghuser/inventory/services/item/domain"
	"github.com/ghuser/inventory/services/item/domain/models"
)

// CollectionItems is the MongoDB collection holding item documents.
const CollectionItems = "items"

// ItemRepository implements repositories.ItemRepository against MongoDB.
// Operations never retry; connectivity and protocol failures are wrapped
// with context but propagate to the caller unconverted.
type ItemRepository struct {
	coll *mongo.Collection
}

// NewItemRepository returns an ItemRepository backed by the items collection
// of the given database.
func NewItemRepository(db *database.Database) *ItemRepository {
	return &ItemRepository{coll: db.Collection(CollectionItems)}
}

// Create persists a new Item. A duplicate `_id` maps to ErrItemAlreadyExists
// (only reachable with client-supplied identifiers); an insert the store does
// not acknowledge maps to ErrDBOperationFailed naming the id.
func (r *ItemRepository) Create(ctx context.Context, item *models.Item) error {
	res, err := r.coll.InsertOne(ctx, newItemDocument(item))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: id=%s", itemdomain.ErrItemAlreadyExists, item.ID)
		}
		return fmt.Errorf("insert item: %w", err)
	}
	if res == nil || res.InsertedID == nil {
		return fmt.Errorf("%w: create failed for id=%s in %s", itemdomain.ErrDBOperationFailed, item.ID, CollectionItems)
	}
	return nil
}

// ReadAll returns every stored item in cursor order. An empty collection
// yields an empty slice.
func (r *ItemRepository) ReadAll(ctx context.Context) ([]*models.Item, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	defer cursor.Close(ctx)

	items := []*models.Item{}
	for cursor.Next(ctx) {
		var doc itemDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		item, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// Read returns the item with the given id, or ErrItemNotFound when no
// document has that `_id`.
func (r *ItemRepository) Read(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	var doc itemDocument
	err := r.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: id=%s", itemdomain.ErrItemNotFound, id)
		}
		return nil, fmt.Errorf("find item: %w", err)
	}
	return doc.toModel()
}

// Query scans the whole collection and returns items matching args in scan
// order. Non-indexed; callers reject empty filters before calling.
func (r *ItemRepository) Query(ctx context.Context, args models.QueryArguments) ([]*models.Item, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find items: %w", err)
	}
	defer cursor.Close(ctx)

	matches := []*models.Item{}
	for cursor.Next(ctx) {
		var doc itemDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		item, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		if args.Matches(item) {
			matches = append(matches, item)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return matches, nil
}

// Update overwrites the stored document with the complete re-serialized
// record, keyed by `_id`. Reports whether an existing document was matched.
// Field merging is the caller's job; the repository never merges partials.
func (r *ItemRepository) Update(ctx context.Context, item *models.Item) (bool, error) {
	doc := newItemDocument(item)
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": doc.ID},
		bson.M{"$set": bson.M{
			"name":     doc.Name,
			"count":    doc.Count,
			"price":    doc.Price,
			"category": doc.Category,
		}},
	)
	if err != nil {
		return false, fmt.Errorf("update item: %w", err)
	}
	return res.MatchedCount > 0, nil
}

// Delete removes the document with the given `_id` and returns the deleted
// count. Deleting an absent id is a no-op returning zero, not an error.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id.String()})
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	return res.DeletedCount, nil
}
