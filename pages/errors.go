package pages

import (
	"errors"
	"fmt"
)

var (
	ErrTreeUnavailable = errors.New("pages: page tree unavailable")
	ErrNodeNotFound    = errors.New("pages: node not found")
)

// NodeNotFoundError reports a resolution miss for a request path. A miss is a
// normal outcome translated into a not-found view, never a thrown fault.
type NodeNotFoundError struct {
	Path string
}

func (e *NodeNotFoundError) Error() string {
	if e == nil || e.Path == "" {
		return ErrNodeNotFound.Error()
	}
	return fmt.Sprintf("%s: path=%s", ErrNodeNotFound.Error(), e.Path)
}

func (e *NodeNotFoundError) Unwrap() error {
	return ErrNodeNotFound
}

// IsNotFound reports whether err represents a resolution miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNodeNotFound)
}
