package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carelink/portal-api/internal/core/domain"
)

const (
	doctorsCollection   = "doctors"
	patientsCollection  = "patients"
	hospitalsCollection = "hospitals"
)

// AccountDirectory serves the credential document from role-partitioned
// collections, for deployments where the fixture has been loaded into the
// database instead of being served as a static file.
type AccountDirectory struct {
	db *mongo.Database
}

func NewAccountDirectory(db *mongo.Database) *AccountDirectory {
	return &AccountDirectory{db: db}
}

// Fetch assembles the full role-partitioned document. Any read failure maps
// to ErrStoreUnavailable so callers see the same outcome as a fixture fetch
// failure.
func (d *AccountDirectory) Fetch(ctx context.Context) (*domain.CredentialDocument, error) {
	doctors, err := d.readAll(ctx, doctorsCollection)
	if err != nil {
		return nil, err
	}
	patients, err := d.readAll(ctx, patientsCollection)
	if err != nil {
		return nil, err
	}
	hospitals, err := d.readAll(ctx, hospitalsCollection)
	if err != nil {
		return nil, err
	}

	return &domain.CredentialDocument{
		Doctors:   doctors,
		Patients:  patients,
		Hospitals: hospitals,
	}, nil
}

func (d *AccountDirectory) readAll(ctx context.Context, collection string) ([]domain.Account, error) {
	cur, err := d.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", domain.ErrStoreUnavailable, collection, err)
	}
	defer cur.Close(ctx)

	var accounts []domain.Account
	if err := cur.All(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", domain.ErrStoreUnavailable, collection, err)
	}
	return accounts, nil
}
