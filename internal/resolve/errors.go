package resolve

import "errors"

// ErrContentUnavailable means every configured page failed to fetch. This
// is the one retrieval failure surfaced distinctly (HTTP 502) so operators
// can tell broken scraping apart from "no relevant answer".
var ErrContentUnavailable = errors.New("site content unavailable")
