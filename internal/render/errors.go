package render

import "errors"

// ErrUnknownLanguage is returned for codes outside en, hi and kn.
var ErrUnknownLanguage = errors.New("unknown language")
