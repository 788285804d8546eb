package i18n

import "errors"

var (
	ErrEmptyLocale      = errors.New("i18n: locale cannot be empty")
	ErrEmptyNamespace   = errors.New("i18n: namespace cannot be empty")
	ErrEmptyKey         = errors.New("i18n: key cannot be empty")
	ErrInvalidDirectory = errors.New("i18n: invalid directory")
	ErrInvalidFallback  = errors.New("i18n: invalid fallback level")
	ErrInvalidFile      = errors.New("i18n: invalid catalog file")
	ErrNilLoader        = errors.New("i18n: loader cannot be nil")
	ErrNilFormatter     = errors.New("i18n: formatter cannot be nil")
	ErrNilObserver      = errors.New("i18n: observer cannot be nil")
)
