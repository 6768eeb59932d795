package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/abogapp/case-admin/internal/core/domain"
)

// ParametricRepository persists one reference table. Each kind maps to its
// own collection, so name uniqueness is naturally scoped per kind.
type ParametricRepository struct {
	col *mongo.Collection
}

func NewParametricRepository(db *mongo.Database, kind domain.Kind) *ParametricRepository {
	return &ParametricRepository{col: db.Collection(kind.Collection())}
}

type parametricDoc struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	NameKey     string    `bson:"name_normalized"`
	Description string    `bson:"description,omitempty"`
	Active      bool      `bson:"active"`
	CreatedAt   time.Time `bson:"created_at"`
	City        string    `bson:"city,omitempty"`
}

func (r *ParametricRepository) List(ctx context.Context) ([]*domain.Parametric, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []*domain.Parametric
	for cur.Next(ctx) {
		var doc parametricDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, doc.toDomain())
	}
	return items, cur.Err()
}

func (r *ParametricRepository) FindByID(ctx context.Context, id string) (*domain.Parametric, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc parametricDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ParametricRepository) NameTaken(ctx context.Context, normalized, excludeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"name_normalized": normalized}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ParametricRepository) Create(ctx context.Context, p *domain.Parametric) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, fromDomainParametric(p)); err != nil {
		// The unique index rejects the second writer of a concurrent
		// same-name creation that passed the service pre-check.
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrNameTaken
		}
		return err
	}
	return nil
}

func (r *ParametricRepository) Update(ctx context.Context, p *domain.Parametric) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": p.ID}, fromDomainParametric(p))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrNameTaken
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ParametricRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureIndexes creates the unique normalized-name index for the collection.
func (r *ParametricRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name_normalized", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (d *parametricDoc) toDomain() *domain.Parametric {
	return &domain.Parametric{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt.UTC(),
		City:        d.City,
	}
}

func fromDomainParametric(p *domain.Parametric) parametricDoc {
	return parametricDoc{
		ID:          p.ID,
		Name:        p.Name,
		NameKey:     domain.NormalizeName(p.Name),
		Description: p.Description,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		City:        p.City,
	}
}
