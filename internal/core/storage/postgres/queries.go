package postgres

// SQL queries for catalog and watch-event storage.

const (
	// queryAppendWatchEvent appends one watch event. No uniqueness constraint:
	// every call produces a new row. RETURNING seq gives the location handle.
	queryAppendWatchEvent = `
		INSERT INTO watch_events (video_id, watch_time_ms, recorded_at)
		VALUES ($1, $2, $3)
		RETURNING seq
	`

	// queryReadWatchEvents returns the full append-only log in insertion order.
	queryReadWatchEvents = `
		SELECT video_id, watch_time_ms, recorded_at, seq
		FROM watch_events
		ORDER BY seq ASC
	`

	// querySaveVideo inserts a video. ON CONFLICT DO NOTHING returns no rows
	// (sql.ErrNoRows) for an existing video_id.
	querySaveVideo = `
		INSERT INTO videos (
			video_id, bucket_id, bucket_name, label, caption,
			duration_ms, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (video_id) DO NOTHING
		RETURNING video_id
	`

	queryReadVideos = `
		SELECT
			video_id, bucket_id, bucket_name, label, caption,
			duration_ms, status, created_at
		FROM videos
		ORDER BY created_at ASC, video_id ASC
	`

	queryGetVideo = `
		SELECT
			video_id, bucket_id, bucket_name, label, caption,
			duration_ms, status, created_at
		FROM videos
		WHERE video_id = $1
	`

	querySaveProduct = `
		INSERT INTO products (
			product_id, bucket_id, title, description, category, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (product_id) DO NOTHING
		RETURNING product_id
	`

	queryReadProducts = `
		SELECT product_id, bucket_id, title, description, category, created_at
		FROM products
		ORDER BY created_at ASC, product_id ASC
	`

	queryGetProduct = `
		SELECT product_id, bucket_id, title, description, category, created_at
		FROM products
		WHERE product_id = $1
	`
)
