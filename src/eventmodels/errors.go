package eventmodels

import "errors"

// ErrUnavailable marks row-scoped missing data: the symbol is dropped from
// the output set and the batch continues.
var ErrUnavailable = errors.New("data unavailable")

// ErrNoMatchingContract is returned when no contract satisfies the selection
// constraints. Treated the same as ErrUnavailable by the pipeline.
var ErrNoMatchingContract = errors.New("no matching contract")
