// Command inputcheck reads lines from stdin until one passes the selected
// check, then prints it to stdout. Rejection messages and logs go to stderr.
//
// Usage:
//
//	inputcheck [flags]
//
// Examples:
//
//	# A whole number between 1 and 10
//	inputcheck -mode int -low 1 -high 10
//
//	# Six hexadecimal digits, three attempts
//	inputcheck -mode number -base hex -length 6 -attempts 3
//
//	# A capitalized Russian word with Russian messages
//	inputcheck -mode text -casing Rus -lang ru
//
//	# An email address
//	inputcheck -mode pattern -pattern email
//
// Environment:
//
//	INPUTCHECK_ENV           development, staging or production
//	INPUTCHECK_LOCALE        default message language (en)
//	INPUTCHECK_LOG_LEVEL     log level (warn)
//	INPUTCHECK_MAX_ATTEMPTS  default attempt limit, 0 for none
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
