package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petify-api/internal/platform/logger"
	"petify-api/internal/ports/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Colecciones (mismos nombres que la base original petifyDB).
const (
	colUsers     = "users"
	colPets      = "pets"
	colAdoptions = "adoptions"
	colCampaigns = "donations"
	colPayments  = "payments"
)

type Options struct {
	URI      string
	Database string
	// Transactions requiere replica set; sin él las secuencias corren sin transacción.
	Transactions bool
	Timeout      time.Duration
}

// Connect abre el cliente, hace ping y asegura los índices.
func Connect(ctx context.Context, opts Options, log logger.Logger) (*mongo.Client, *mongo.Database, error) {
	if opts.URI == "" {
		return nil, nil, errors.New("mongodb uri is required")
	}
	if opts.Database == "" {
		opts.Database = "petifyDB"
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(cctx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("MongoDB connect error: %w", err)
	}
	if err := client.Ping(cctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("MongoDB ping error: %w", err)
	}

	db := client.Database(opts.Database)
	if err := EnsureIndexes(cctx, db); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	log.Info("mongodb connected", map[string]any{
		"database":     opts.Database,
		"transactions": opts.Transactions,
	})
	return client, db, nil
}

// EnsureIndexes crea los índices únicos de los que dependen las invariantes
// (email, petId+requesterEmail, transactionId) y los de listados.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		colUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		colPets: {
			{Keys: bson.D{{Key: "ownerEmail", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "adopted", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		colAdoptions: {
			{Keys: bson.D{{Key: "petId", Value: 1}, {Key: "requesterEmail", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "petOwnerEmail", Value: 1}}},
		},
		colCampaigns: {
			{Keys: bson.D{{Key: "ownerEmail", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		colPayments: {
			{Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "campaignId", Value: 1}, {Key: "paidAt", Value: -1}}},
			{Keys: bson.D{{Key: "email", Value: 1}, {Key: "paidAt", Value: -1}}},
		},
	}
	for col, models := range specs {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", col, err)
		}
	}
	return nil
}

// NewStores cablea los repos sobre db. Close desconecta el cliente.
func NewStores(client *mongo.Client, db *mongo.Database, transactions bool) *storage.Stores {
	return &storage.Stores{
		Users:     NewUserRepo(db),
		Pets:      NewPetRepo(db),
		Adoptions: NewAdoptionRepo(db),
		Campaigns: NewCampaignRepo(db),
		Payments:  NewPaymentRepo(db),
		Tx:        NewTransactor(client, transactions),
		Close: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return client.Disconnect(ctx)
		},
	}
}
