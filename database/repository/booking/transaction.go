// File: database/repository/booking/transaction.go
package bookingRepo

import (
	"context"
	"time"

	"pitchside/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfFree runs the conflict re-check and the insert in a single
// Mongo transaction, closing the check-then-act window between the
// service-level conflict check and the write. Sessions require a
// replica set (a single-node one suffices); the partial unique index on
// (coach_id, date, start_time) additionally rejects same-start double
// inserts, and either loss path surfaces as ErrSlotTaken.
func (r *mongoBookingRepo) CreateIfFree(ctx context.Context, b *models.Booking) error {
	if b.ID == "" {
		b.ID = newBookingID()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	b.Occupies = b.Status.Occupies()

	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		n, err := r.coll.CountDocuments(sc, overlapFilter(b.CoachID, b.Date, b.StartTime, b.EndTime, ""))
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrSlotTaken
		}
		if _, err := r.coll.InsertOne(sc, b); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	}

	return mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	})
}
