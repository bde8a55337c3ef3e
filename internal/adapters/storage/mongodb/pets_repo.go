package mongodb

import (
	"context"
	"errors"
	"time"

	"petify-api/internal/domain/pets"
	"petify-api/internal/platform/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type petRepo struct {
	col *mongo.Collection
}

func NewPetRepo(db *mongo.Database) pets.Repository {
	return &petRepo{col: db.Collection(colPets)}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.col.InsertOne(ctx, toPetDoc(p))
	return err
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	var d petDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return pets.Pet{}, pets.ErrNotFound
	}
	if err != nil {
		return pets.Pet{}, err
	}
	return d.domain(), nil
}

func (r *petRepo) List(ctx context.Context, f pets.ListFilter, page pagination.Request) ([]pets.Pet, int, error) {
	page = page.Normalize()

	filter := bson.M{}
	if f.OwnerEmail != "" {
		filter["ownerEmail"] = f.OwnerEmail
	}
	if f.AvailableOnly {
		// documentos viejos pueden no tener el campo
		filter["adopted"] = bson.M{"$ne": true}
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cur, err := r.col.Find(ctx, filter, pageOptions(page))
	if err != nil {
		return nil, 0, err
	}
	var docs []petDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	out := make([]pets.Pet, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.domain())
	}
	return out, int(total), nil
}

func (r *petRepo) Update(ctx context.Context, p pets.Pet) error {
	return r.set(ctx, p.ID, bson.M{
		"ownerName":        p.OwnerName,
		"name":             p.Name,
		"species":          p.Species,
		"age":              p.Age,
		"location":         p.Location,
		"image":            p.Image,
		"shortDescription": p.ShortDescription,
		"longDescription":  p.LongDescription,
		"updatedAt":        p.UpdatedAt,
	})
}

func (r *petRepo) SetAdopted(ctx context.Context, id string, adopted bool, at time.Time) error {
	return r.set(ctx, id, bson.M{"adopted": adopted, "updatedAt": at})
}

// MarkAdoptedIfAvailable filtra por adopted != true en el mismo UpdateOne,
// así no depende de que haya transacciones habilitadas.
func (r *petRepo) MarkAdoptedIfAvailable(ctx context.Context, id string, at time.Time) error {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "adopted": bson.M{"$ne": true}},
		bson.M{"$set": bson.M{"adopted": true, "updatedAt": at}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if n == 0 {
		return pets.ErrNotFound
	}
	return pets.ErrAlreadyAdopted
}

func (r *petRepo) set(ctx context.Context, id string, fields bson.M) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return pets.ErrNotFound
	}
	return nil
}
