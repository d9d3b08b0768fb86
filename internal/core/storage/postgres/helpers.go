package postgres

import (
	"database/sql"
	"fmt"

	v1 "github.com/reelshop-lab/reelshop/internal/api/v1"
)

type scanner interface {
	Scan(dest ...interface{}) error
}

// nullableBucket maps an unassigned bucket to SQL NULL.
func nullableBucket(bucketID int) sql.NullInt32 {
	if bucketID < 0 {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(bucketID), Valid: true}
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// scanVideoRow scans a videos row. A NULL bucket_id (classification failed
// or label never mapped) becomes v1.UnassignedBucket.
func scanVideoRow(row scanner) (*v1.Video, error) {
	var (
		video                             v1.Video
		bucketID                          sql.NullInt32
		bucketName, label, caption, state sql.NullString
		durationMS                        sql.NullInt64
	)

	err := row.Scan(
		&video.ID,
		&bucketID,
		&bucketName,
		&label,
		&caption,
		&durationMS,
		&state,
		&video.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan video row: %w", err)
	}

	video.BucketID = v1.UnassignedBucket
	if bucketID.Valid {
		video.BucketID = int(bucketID.Int32)
	}
	video.BucketName = bucketName.String
	video.Label = label.String
	video.Caption = caption.String
	video.DurationMS = durationMS.Int64
	video.Status = state.String

	return &video, nil
}

func scanProductRow(row scanner) (*v1.Product, error) {
	var (
		product     v1.Product
		description sql.NullString
	)

	err := row.Scan(
		&product.ID,
		&product.BucketID,
		&product.Title,
		&description,
		&product.Category,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan product row: %w", err)
	}
	product.Description = description.String

	return &product, nil
}

func scanWatchEventRow(row scanner) (v1.WatchEvent, error) {
	var evt v1.WatchEvent
	if err := row.Scan(&evt.VideoID, &evt.WatchTimeMS, &evt.RecordedAt, &evt.Seq); err != nil {
		return v1.WatchEvent{}, fmt.Errorf("failed to scan watch event row: %w", err)
	}
	return evt, nil
}
