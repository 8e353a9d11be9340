// Package lib provide small helper functions and types that are not
// particularly tied up with multisets. They are meant to be small,
// self-contained and shall not depend on anything other than the
// standard library.
package lib
