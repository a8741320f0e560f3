package captions

import "errors"

var (
	// ErrNoPhrases reports a compile request with nothing to caption.
	ErrNoPhrases = errors.New("no caption phrases")
	// ErrNoWords reports that every phrase resolved to an empty word list.
	ErrNoWords = errors.New("no caption words")
	// ErrUnknownZone reports a position zone missing from the zone table.
	ErrUnknownZone = errors.New("unknown caption zone")
	// ErrUnknownPreset reports a style preset name with no definition.
	ErrUnknownPreset = errors.New("unknown style preset")
)
