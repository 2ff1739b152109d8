package cmdline

// ParseResult is the outcome of Parser.Parse
type ParseResult struct {
	Succeeded bool
	// Message is a human-readable description of Err, empty on success
	Message string
	// Err is the first error encountered, nil on success
	Err error
	// Ignored contains the tokens stripped before parsing because of WithIgnoreUnknown(true)
	Ignored []string
}

func newParseResult(err error, ignored []string) ParseResult {
	if err != nil {
		return ParseResult{
			Message: err.Error(),
			Err:     err,
			Ignored: ignored,
		}
	}
	return ParseResult{
		Succeeded: true,
		Ignored:   ignored,
	}
}
