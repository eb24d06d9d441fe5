package rlepos

import "github.com/pkg/errors"

var errOutOfValues = errors.New("rlepos: provider has no more values")
