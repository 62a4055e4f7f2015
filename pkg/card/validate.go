package card

import "errors"

// Structural validation errors. These are raised at the boundaries where
// untrusted data enters the model (import, load-by-id, fragment decode);
// renderers assume a config that already passed Validate.
var (
	ErrMissingIntro = errors.New("card: config is missing intro")
	ErrNoSections   = errors.New("card: config needs at least one section")
	ErrLastSection  = errors.New("card: cannot delete the last remaining section")
)

// Validate checks the load-bearing structural invariant: sections is a
// non-empty sequence. Intro presence is enforced at the import boundary,
// where the document envelope still distinguishes a missing block from a
// cleared one; in the model every intro field is an optional string, so an
// all-empty intro is valid. Field contents are not validated;
// presentation-only garbage degrades at render time instead.
func (c Config) Validate() error {
	if len(c.Sections) == 0 {
		return ErrNoSections
	}
	return nil
}
