// File: database/repository/schedule/queries.go
package scheduleRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medisched/models"
)

// GetByDoctorIDAndDateRange returns all slots with from <= date < to,
// sorted by date then start. Dates are "YYYY-MM-DD" strings, so
// lexicographic order is chronological order.
func (r *mongoScheduleRepo) GetByDoctorIDAndDateRange(ctx context.Context, doctorID, from, to string) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"doctorId": doctorID,
		"date":     bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}
