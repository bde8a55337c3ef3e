package mongodb

import (
	"context"
	"errors"

	"petify-api/internal/domain/payments"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type paymentRepo struct {
	col *mongo.Collection
}

func NewPaymentRepo(db *mongo.Database) payments.Repository {
	return &paymentRepo{col: db.Collection(colPayments)}
}

func (r *paymentRepo) Create(ctx context.Context, p payments.Payment) error {
	_, err := r.col.InsertOne(ctx, toPaymentDoc(p))
	if mongo.IsDuplicateKeyError(err) {
		return payments.ErrDuplicate
	}
	return err
}

func (r *paymentRepo) GetByID(ctx context.Context, id string) (payments.Payment, error) {
	var d paymentDoc
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return payments.Payment{}, payments.ErrNotFound
	}
	if err != nil {
		return payments.Payment{}, err
	}
	return d.domain(), nil
}

func (r *paymentRepo) List(ctx context.Context, f payments.ListFilter) ([]payments.Payment, error) {
	filter := bson.M{}
	if f.CampaignID != "" {
		filter["campaignId"] = f.CampaignID
	}
	if f.PayerEmail != "" {
		filter["email"] = f.PayerEmail
	}

	sort := bson.D{{Key: "paidAt", Value: -1}, {Key: "_id", Value: 1}}
	cur, err := r.col.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	var docs []paymentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]payments.Payment, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.domain())
	}
	return out, nil
}

func (r *paymentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return payments.ErrNotFound
	}
	return nil
}
