// Package sessionpaths resolves the on-disk folder layout for recording
// sessions under a base data directory.
package sessionpaths

import (
	"path/filepath"

	"github.com/user/camrec/pkg/ports"
)

// Folder names within a session directory.
const (
	SynchronizedFolder = "synchronized_videos"
	CalibrationFolder  = "calibration_videos"
	AnnotatedFolder    = "mediapipe_annotated_videos"
)

// Paths implements ports.SessionPaths over a base data directory:
// <base>/<session id>/<category folder>.
type Paths struct {
	baseDir string
}

// New creates a Paths rooted at baseDir.
func New(baseDir string) *Paths {
	return &Paths{baseDir: baseDir}
}

// SessionDir returns the root folder for a session.
func (p *Paths) SessionDir(sessionID string) string {
	return filepath.Join(p.baseDir, sessionID)
}

// SynchronizedVideos returns the folder for synchronized camera videos.
func (p *Paths) SynchronizedVideos(sessionID string) string {
	return filepath.Join(p.SessionDir(sessionID), SynchronizedFolder)
}

// CalibrationVideos returns the folder for calibration videos.
func (p *Paths) CalibrationVideos(sessionID string) string {
	return filepath.Join(p.SessionDir(sessionID), CalibrationFolder)
}

// AnnotatedVideos returns the folder for mediapipe-annotated videos.
func (p *Paths) AnnotatedVideos(sessionID string) string {
	return filepath.Join(p.SessionDir(sessionID), AnnotatedFolder)
}

// Ensure Paths implements ports.SessionPaths
var _ ports.SessionPaths = (*Paths)(nil)
