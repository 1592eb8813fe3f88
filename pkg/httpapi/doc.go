// Package httpapi exposes the checks of package inputcheck over HTTP with
// JSON bodies.
//
// NewRouter builds a chi router with request ids, environment and language
// detection, request logging and panic recovery. Handlers are typed with
// Wrap: the body is decoded by BindJSON into the request struct and the
// handler returns a Response.
//
// # Responses
//
// Every JSON body is an Envelope. Successful calls set "data":
//
//	{"data": {"valid": false, "message": "must be a binary number"}}
//
// Invalid input is not an HTTP error; the message is localized from the
// Accept-Language header or the "lang" query parameter when a translator is
// configured. Failures set "error":
//
//	{"error": {"code": "unknown_base", "message": "unknown numeric base: \"7\""}}
//
// Malformed JSON is 400, a wrong content type is 415, an oversized body is
// 413 and a core contract violation (empty input, unknown base, casing mode
// or pattern, broken regex) is 422. POST /v1/validate reports all failed
// fields at once as a 422 with code "validation_failed" and per-field
// details.
//
// # Usage
//
//	api := httpapi.NewRouter(
//	    httpapi.WithTranslator(tr),
//	    httpapi.WithLogger(log),
//	    httpapi.WithEnvironment(environment.Production),
//	)
//	err := httpserver.New(httpserver.WithAddr(":8080")).Run(ctx, api)
package httpapi
