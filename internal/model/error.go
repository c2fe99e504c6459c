package model

import "errors"

var (
	ErrValidation      = errors.New("validation error")                         // 422
	ErrBatchNotFound   = errors.New("batch not found")                          // 404
	ErrCentraNotFound  = errors.New("centra not found")                         // 404
	ErrPackageNotFound = errors.New("package not found")                        // 404
	ErrCentraInUse     = errors.New("centra is referenced by existing batches") // 409
)
