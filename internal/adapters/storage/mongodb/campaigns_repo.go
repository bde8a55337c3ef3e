package mongodb

import (
	"context"
	"errors"
	"time"

	"petify-api/internal/domain/campaigns"
	"petify-api/internal/platform/money"
	"petify-api/internal/platform/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type campaignRepo struct {
	col *mongo.Collection
}

func NewCampaignRepo(db *mongo.Database) campaigns.Repository {
	return &campaignRepo{col: db.Collection(colCampaigns)}
}

func (r *campaignRepo) Create(ctx context.Context, c campaigns.Campaign) error {
	_, err := r.col.InsertOne(ctx, toCampaignDoc(c))
	return err
}

func (r *campaignRepo) GetByID(ctx context.Context, id string) (campaigns.Campaign, error) {
	var d campaignDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}
	if err != nil {
		return campaigns.Campaign{}, err
	}
	return d.domain(), nil
}

func (r *campaignRepo) List(ctx context.Context, f campaigns.ListFilter, page pagination.Request) ([]campaigns.Campaign, int, error) {
	page = page.Normalize()

	filter := bson.M{}
	if f.OwnerEmail != "" {
		filter["ownerEmail"] = f.OwnerEmail
	}
	if f.ActiveOnly {
		filter["status"] = string(campaigns.StatusActive)
	}

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	cur, err := r.col.Find(ctx, filter, pageOptions(page))
	if err != nil {
		return nil, 0, err
	}
	var docs []campaignDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	out := make([]campaigns.Campaign, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.domain())
	}
	return out, int(total), nil
}

func (r *campaignRepo) Update(ctx context.Context, c campaigns.Campaign) error {
	filter := bson.M{
		"_id":            c.ID,
		"totalDonations": bson.M{"$lte": int64(c.MaxAmount)},
	}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"petName":          c.PetName,
		"image":            c.Image,
		"maxAmount":        int64(c.MaxAmount),
		"lastDate":         c.LastDate,
		"shortDescription": c.ShortDescription,
		"longDescription":  c.LongDescription,
		"status":           string(c.Status),
		"updatedAt":        c.UpdatedAt,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return r.notAppliedOrMissing(ctx, c.ID)
	}
	return nil
}

func (r *campaignRepo) SetStatus(ctx context.Context, id string, status campaigns.Status, at time.Time) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":    string(status),
		"updatedAt": at,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return campaigns.ErrNotFound
	}
	return nil
}

func (r *campaignRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return campaigns.ErrNotFound
	}
	return nil
}

// Increment: un solo FindOneAndUpdate con la condición del tope en $expr,
// así dos donaciones concurrentes no pueden pasarse de maxAmount. Todo en centavos int64.
func (r *campaignRepo) Increment(ctx context.Context, id string, amount money.Cents, requireActive bool, at time.Time) (campaigns.Campaign, error) {
	filter := bson.M{
		"_id": id,
		"$expr": bson.M{"$lte": bson.A{
			bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$totalDonations", int64(0)}}, int64(amount)}},
			"$maxAmount",
		}},
	}
	if requireActive {
		filter["status"] = string(campaigns.StatusActive)
	}
	update := bson.M{
		"$inc": bson.M{"totalDonations": int64(amount)},
		"$set": bson.M{"updatedAt": at},
	}

	var d campaignDoc
	err := r.col.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return campaigns.Campaign{}, r.notAppliedOrMissing(ctx, id)
	}
	if err != nil {
		return campaigns.Campaign{}, err
	}
	return d.domain(), nil
}

// Decrement usa un update pipeline para aplicar el piso en 0 de forma atómica.
func (r *campaignRepo) Decrement(ctx context.Context, id string, amount money.Cents, at time.Time) (campaigns.Campaign, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"totalDonations": bson.M{"$max": bson.A{
				int64(0),
				bson.M{"$subtract": bson.A{bson.M{"$ifNull": bson.A{"$totalDonations", int64(0)}}, int64(amount)}},
			}},
			"updatedAt": at,
		}}},
	}

	var d campaignDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, pipeline,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return campaigns.Campaign{}, campaigns.ErrNotFound
	}
	if err != nil {
		return campaigns.Campaign{}, err
	}
	return d.domain(), nil
}

func (r *campaignRepo) notAppliedOrMissing(ctx context.Context, id string) error {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return err
	}
	if n == 0 {
		return campaigns.ErrNotFound
	}
	return campaigns.ErrNotApplied
}
