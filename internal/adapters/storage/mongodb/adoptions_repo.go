package mongodb

import (
	"context"
	"errors"
	"time"

	"petify-api/internal/domain/adoptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type adoptionRepo struct {
	col *mongo.Collection
}

func NewAdoptionRepo(db *mongo.Database) adoptions.Repository {
	return &adoptionRepo{col: db.Collection(colAdoptions)}
}

// Create: el índice único (petId, requesterEmail) resuelve la carrera entre solicitudes.
func (r *adoptionRepo) Create(ctx context.Context, a adoptions.AdoptionRequest) error {
	_, err := r.col.InsertOne(ctx, toAdoptionDoc(a))
	if mongo.IsDuplicateKeyError(err) {
		return adoptions.ErrDuplicate
	}
	return err
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.AdoptionRequest, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *adoptionRepo) FindByPetAndRequester(ctx context.Context, petID, requesterEmail string) (adoptions.AdoptionRequest, error) {
	return r.findOne(ctx, bson.M{"petId": petID, "requesterEmail": requesterEmail})
}

func (r *adoptionRepo) findOne(ctx context.Context, filter bson.M) (adoptions.AdoptionRequest, error) {
	var d adoptionDoc
	err := r.col.FindOne(ctx, filter).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return adoptions.AdoptionRequest{}, adoptions.ErrNotFound
	}
	if err != nil {
		return adoptions.AdoptionRequest{}, err
	}
	return d.domain(), nil
}

func (r *adoptionRepo) List(ctx context.Context, f adoptions.ListFilter) ([]adoptions.AdoptionRequest, error) {
	filter := bson.M{}
	if f.RequesterEmail != "" {
		filter["requesterEmail"] = f.RequesterEmail
	}
	if f.PetOwnerEmail != "" {
		filter["petOwnerEmail"] = f.PetOwnerEmail
	}

	sort := newestFirst
	if f.OldestFirst {
		sort = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}
	}

	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	var docs []adoptionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]adoptions.AdoptionRequest, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.domain())
	}
	return out, nil
}

func (r *adoptionRepo) UpdateStatus(ctx context.Context, id string, status adoptions.Status, at time.Time) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":    string(status),
		"updatedAt": at,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return adoptions.ErrNotFound
	}
	return nil
}
