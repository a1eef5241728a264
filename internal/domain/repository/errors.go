package repository

import "errors"

// Store-boundary errors. The repositories enforce these invariants
// themselves so every caller is protected, not only the input layer.
var (
	ErrDuplicateDoctorName = errors.New("doctor name already exists")
	ErrDoctorReferenced    = errors.New("doctor is referenced by material requests")
	ErrUnknownDoctor       = errors.New("doctor does not exist")
	ErrUnknownMaterial     = errors.New("material does not exist")
	ErrQuantityOutOfRange  = errors.New("quantity must be between 1 and 1000")
)
