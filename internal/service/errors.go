package service

import "errors"

var (
	// ErrUnknownKind means a pattern references an item kind no adapter
	// is registered for.
	ErrUnknownKind = errors.New("unknown item kind")

	// ErrExamTimeRequired rejects exam templates without an explicit
	// sitting time; there is no sensible default to fall back to.
	ErrExamTimeRequired = errors.New("exam template requires a time of day")

	// ErrTitleRequired rejects templates with no title.
	ErrTitleRequired = errors.New("template title is required")
)
