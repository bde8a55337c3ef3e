package mongodb

import (
	"context"
	"errors"
	"regexp"

	"petify-api/internal/domain/users"
	"petify-api/internal/platform/pagination"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userRepo struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) users.Repository {
	return &userRepo{col: db.Collection(colUsers)}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.col.InsertOne(ctx, toUserDoc(u))
	if mongo.IsDuplicateKeyError(err) {
		return users.ErrDuplicate
	}
	return err
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepo) findOne(ctx context.Context, filter bson.M) (users.User, error) {
	var d userDoc
	err := r.col.FindOne(ctx, filter).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return users.User{}, users.ErrNotFound
	}
	if err != nil {
		return users.User{}, err
	}
	return d.domain(), nil
}

func (r *userRepo) List(ctx context.Context, page pagination.Request) ([]users.User, int, error) {
	page = page.Normalize()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	out, err := r.find(ctx, bson.M{}, pageOptions(page))
	return out, int(total), err
}

func (r *userRepo) SearchByEmail(ctx context.Context, q string) ([]users.User, error) {
	filter := bson.M{"email": primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}}
	return r.find(ctx, filter, options.Find().SetSort(newestFirst))
}

func (r *userRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]users.User, error) {
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]users.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.domain())
	}
	return out, nil
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.col.UpdateByID(ctx, u.ID, bson.M{"$set": bson.M{
		"name":     u.Name,
		"photoUrl": u.PhotoURL,
		"role":     string(u.Role),
		"isBanned": u.IsBanned,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return users.ErrNotFound
	}
	return nil
}
