package domain

import "errors"

// ErrFactUnavailable is returned when a collaborator cannot produce one of the onboarding facts.
var ErrFactUnavailable = errors.New("onboarding fact unavailable")

// ErrPageBuild is returned when a PageBuilder fails for a valid page kind.
var ErrPageBuild = errors.New("page build failed")

// ErrUnknownPageKind is returned when a page kind is outside the enumeration.
var ErrUnknownPageKind = errors.New("unknown page kind")
