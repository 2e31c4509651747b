package token

// Verifier checks a bearer credential issued by the auth service and returns
// the user id it was issued to.
type Verifier interface {
	Verify(raw string) (string, error)
}
