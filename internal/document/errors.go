package document

import "errors"

var (
	ErrEmptyPath   = errors.New("path is empty")
	ErrNotFound    = errors.New("file does not exist")
	ErrNotRegular  = errors.New("path is not a regular file")
	ErrUnreadable  = errors.New("file is not readable")
	ErrEmptyFile   = errors.New("file is empty")
	ErrTooLarge    = errors.New("file is too large")
	ErrUndecodable = errors.New("no supported text encoding matched")
	ErrBlank       = errors.New("file contains only whitespace")
	ErrNoContent   = errors.New("no content left after preprocessing")
	ErrNotWritable = errors.New("result path is not writable")
)
