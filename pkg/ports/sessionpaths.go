package ports

// SessionPaths resolves the per-session folder layout for recorded
// artifacts. Each recording session owns three destination categories;
// a recorder resolves exactly one of them at construction time.
type SessionPaths interface {
	// SynchronizedVideos returns the folder for synchronized camera videos.
	SynchronizedVideos(sessionID string) string

	// CalibrationVideos returns the folder for calibration videos.
	CalibrationVideos(sessionID string) string

	// AnnotatedVideos returns the folder for mediapipe-annotated videos.
	AnnotatedVideos(sessionID string) string
}
