package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DashboardDbName   = "adriaticride"
	RentalSnapshotCol = "rental_snapshots"
)

// RentalSnapshot is a cached copy of the rentals list kept for dashboard
// display when the hosted store is unreachable. It is never consulted for
// availability decisions; those always run against a fresh query.
type RentalSnapshot struct {
	ID       string      `bson:"_id"`
	Rentals  []CarRental `bson:"rentals"`
	CachedAt time.Time   `bson:"cached_at"`
}

const rentalSnapshotID = "rentals"

// DashboardCache stores and serves the display snapshot.
type DashboardCache interface {
	SaveRentalSnapshot(ctx context.Context, rentals []CarRental) error
	RentalSnapshot(ctx context.Context) (*RentalSnapshot, error)
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	client := mdb.mongodbClient.Database(dbName).Collection(colName)
	return client, nil
}

func (mdb *MongodbRepo) SaveRentalSnapshot(ctx context.Context, rentals []CarRental) error {
	col, err := mdb.GetCollection(ctx, DashboardDbName, RentalSnapshotCol)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	snapshot := RentalSnapshot{
		ID:       rentalSnapshotID,
		Rentals:  rentals,
		CachedAt: time.Now(),
	}

	opts := options.Replace().SetUpsert(true)
	_, err = col.ReplaceOne(ctx, bson.M{"_id": rentalSnapshotID}, snapshot, opts)
	if err != nil {
		return fmt.Errorf("error saving rental snapshot: %v", err)
	}

	return nil
}

func (mdb *MongodbRepo) RentalSnapshot(ctx context.Context) (*RentalSnapshot, error) {
	col, err := mdb.GetCollection(ctx, DashboardDbName, RentalSnapshotCol)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var snapshot RentalSnapshot
	err = col.FindOne(ctx, bson.M{"_id": rentalSnapshotID}).Decode(&snapshot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading rental snapshot: %v", err)
	}

	return &snapshot, nil
}
