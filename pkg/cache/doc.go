// Package cache provides a small generic LRU cache.
//
// It keeps compiled regular expressions so that user supplied patterns are
// not recompiled on every check:
//
//	regexps := cache.NewLRU[string, *regexp.Regexp](256)
//	re, err := regexps.GetOrCreate(expr, regexp.Compile)
package cache
