// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"medisched/models"
)

// ReplaceByDate swaps the entire slot set for (doctorID, date). Slots
// without an ID get a backend-assigned UUID. An empty slice clears the
// date entirely (the schedule ceases to exist once its last slot is gone).
//
// The delete and insert are separate Mongo operations: if the insert
// fails after the delete succeeded, the date is left empty until the
// caller retries the same full payload. Callers always hold the complete
// slot set, so the retry restores the intended state.
func (r *mongoScheduleRepo) ReplaceByDate(ctx context.Context, doctorID, date string, slots []models.TimeSlot) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID, "date": date}
	if _, err := r.coll.DeleteMany(ctx, filter); err != nil {
		return nil, err
	}

	if len(slots) == 0 {
		return nil, nil
	}

	docs := make([]interface{}, len(slots))
	for i := range slots {
		if slots[i].ID == "" {
			slots[i].ID = uuid.New().String()
		}
		slots[i].DoctorID = doctorID
		slots[i].Date = date
		docs[i] = slots[i]
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *mongoScheduleRepo) GetByDoctorIDAndDate(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"doctorId": doctorID, "date": date}
	cursor, err := r.coll.Find(ctx, filter)
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

func (r *mongoScheduleRepo) DeleteByID(ctx context.Context, doctorID, slotID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": slotID, "doctorId": doctorID, "date": date}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
