package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"storely/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateIfAvailable inserts the booking only if no overlapping non-cancelled
// booking exists for the same unit. The overlap count and the insert run in
// one session transaction, which closes the check-then-insert race between
// concurrent creations.
func (r *MongoBookingRepo) CreateIfAvailable(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, overlapFilter(booking.UnitID, booking.StartDate, booking.EndDate, ""))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrOverlap
		}
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	return r.runTxn(ctx, sess, txnFn)
}

// UpdateDatesIfAvailable commits the booking's new date range and price only
// if the range does not overlap any other non-cancelled booking for the unit.
func (r *MongoBookingRepo) UpdateDatesIfAvailable(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	booking.UpdatedAt = time.Now()

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, overlapFilter(booking.UnitID, booking.StartDate, booking.EndDate, booking.ID))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if count > 0 {
			return ErrOverlap
		}
		res, err := r.coll.UpdateOne(sc, bson.M{"id": booking.ID}, bson.M{"$set": booking})
		if err != nil {
			return fmt.Errorf("update booking failed: %w", err)
		}
		if res.MatchedCount == 0 {
			return fmt.Errorf("booking with id %s not found", booking.ID)
		}
		return nil
	}

	return r.runTxn(ctx, sess, txnFn)
}

// runTxn executes txnFn within a transaction on the given session.
func (r *MongoBookingRepo) runTxn(ctx context.Context, sess mongo.Session, txnFn func(mongo.SessionContext) error) error {
	var txnErr error
	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			txnErr = err
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if txnErr == ErrOverlap {
			return ErrOverlap
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}
