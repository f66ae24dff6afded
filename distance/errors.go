package distance

import "errors"

// ErrDomain indicates a mathematically undefined result, e.g. a
// non-positive luminosity distance fed into the distance-modulus
// logarithm. Wrapped errors carry the offending value; match with
// errors.Is.
var ErrDomain = errors.New("distance: result outside mathematical domain")
