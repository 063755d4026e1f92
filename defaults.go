package hashid

var (
	// DefaultCodec backs ID formatting and parsing. It starts unsalted with
	// no minimum length; set it once at startup, before formatting or
	// parsing any IDs, or hashes will not round-trip.
	DefaultCodec = New("")

	// DefaultFormat selects the representation used by ID.String and Parse.
	DefaultFormat = FormatHash
)

// SetSalt replaces DefaultCodec with a codec built from the salt alone
// (default alphabet, no minimum length). Call once at startup.
func SetSalt(salt string) {
	DefaultCodec = New(salt)
}

// SetCodec installs a fully configured codec as DefaultCodec.
// Call once at startup.
func SetCodec(c *Codec) {
	if c == nil {
		panic("hashid: SetCodec called with nil codec")
	}
	DefaultCodec = c
}
