//go:build !unix

package terminal

import "github.com/pkg/errors"

func newANSISurface() (Surface, error) {
	return nil, errors.New("ansi backend requires a unix terminal")
}
