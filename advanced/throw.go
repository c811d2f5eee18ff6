package advanced

import "github.com/pkg/errors"

// Input validation happens inside the construction, below several layers of
// looping. Threading error returns up through the geometry would add noise
// to all of it, so internal code panics and the public API recovers to
// convert to an error.

type TetrahedralizeError error

// Panic with a TetrahedralizeError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleTetrahedralizePanicRecover(r interface{}) error {
	if r != nil {
		if tetrahedralizeError, ok := r.(TetrahedralizeError); ok {
			return tetrahedralizeError
		}
		panic(r)
	}
	return nil
}
