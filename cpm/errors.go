package cpm

import "github.com/pkg/errors"

// Kind classifies the error conditions the filesystem layer surfaces.
type Kind int

const (
	// KindBadGeometry means the buffer is smaller than the geometry's
	// declared region.
	KindBadGeometry Kind = iota
	// KindDirectoryFull means no free directory slot was available
	// while adding a file.
	KindDirectoryFull
	// KindNoFreeBlocks means the block allocator (append or first-fit)
	// could not satisfy a block request.
	KindNoFreeBlocks
	// KindNotFound means an extract target does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindBadGeometry:
		return "bad geometry"
	case KindDirectoryFull:
		return "directory full"
	case KindNoFreeBlocks:
		return "no free blocks"
	case KindNotFound:
		return "not found"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by cpm.FS operations. It carries a
// Kind so callers can branch on failure category without string
// matching, while still composing with errors.Wrap for context.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Msg
}

// Is reports whether target is an *Error with the same Kind, enabling
// errors.Is(err, cpm.ErrDirectoryFull)-style checks even through
// pkg/errors wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func newError(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Sentinels usable with errors.Is for the common Kind values.
var (
	ErrBadGeometry    = &Error{Kind: KindBadGeometry}
	ErrDirectoryFull  = &Error{Kind: KindDirectoryFull}
	ErrNoFreeBlocks   = &Error{Kind: KindNoFreeBlocks}
	ErrNotFound       = &Error{Kind: KindNotFound}
)

// wrapf mirrors the teacher's errors.Wrapf usage for attaching context
// to a lower-level failure without losing the original cause.
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
