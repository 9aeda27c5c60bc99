package entities

import "errors"

// Domain errors
var (
	ErrMeetingNotFound    = errors.New("meeting not found")
	ErrTranscriptNotFound = errors.New("transcript not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrScoreNotFound      = errors.New("score not found")
	ErrJobNotFound        = errors.New("analysis job not found")
	ErrEmptyTranscript    = errors.New("transcript text is empty")
	ErrInvalidRequest     = errors.New("invalid request")
)
