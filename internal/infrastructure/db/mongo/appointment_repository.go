package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carelink/portal-api/internal/core/domain"
	"github.com/carelink/portal-api/internal/core/ports"
)

const appointmentsCollection = "appointments"

type AppointmentRepository struct {
	coll *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *AppointmentRepository {
	return &AppointmentRepository{coll: db.Collection(appointmentsCollection)}
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) error {
	if _, err := r.coll.InsertOne(ctx, a); err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var appt domain.Appointment
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return &appt, nil
}

// List returns a page of appointments ordered by start time ascending, plus
// the total count of matching rows.
func (r *AppointmentRepository) List(ctx context.Context, filter ports.ListAppointmentsFilter) ([]*domain.Appointment, int64, error) {
	query := bson.M{}
	if filter.DoctorID != "" {
		query["doctor_id"] = filter.DoctorID
	}
	if filter.PatientID != "" {
		query["patient_id"] = filter.PatientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if dateRange := dateRangeQuery(filter.DateFrom, filter.DateTo); dateRange != nil {
		query["start_time"] = dateRange
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "start_time", Value: 1}}).
		SetSkip(int64((filter.Page - 1) * filter.Limit)).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}
	defer cur.Close(ctx)

	var items []*domain.Appointment
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode appointments: %w", err)
	}
	return items, total, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status domain.AppointmentStatus, ts time.Time) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": ts}},
	)
	if err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func dateRangeQuery(from, to time.Time) bson.M {
	rangeQuery := bson.M{}
	if !from.IsZero() {
		rangeQuery["$gte"] = from
	}
	if !to.IsZero() {
		rangeQuery["$lte"] = to
	}
	if len(rangeQuery) == 0 {
		return nil
	}
	return rangeQuery
}
