/**
 * Copyright (c) 2026, The Eventual Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package future

import (
	"errors"
	"fmt"
)

// Failures settle futures in one of two classes: ordinary errors are eligible for recovery
// (Recover) and retry (Insist), while fatal errors always propagate unchanged and are never
// absorbed by any combinator. The class is an explicit tag applied at the point the error is
// produced, not a property of the error value's type.

// fatalError tags an error as fatal.
type fatalError struct {
	err error
}

// Error implements error.
func (e *fatalError) Error() string {
	return "fatal: " + e.err.Error()
}

// Unwrap exposes the tagged error to errors.Is and errors.As.
func (e *fatalError) Unwrap() error {
	return e.err
}

// Fatal tags err as fatal. Combinators propagate a fatal error unchanged: Recover does not replace
// it with the fallback and Insist does not spend further attempts on it. Tagging a nil error
// returns nil, and tagging an already-fatal error returns it as is.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	if IsFatal(err) {
		return err
	}
	return &fatalError{err: err}
}

// IsFatal reports whether err or any error it wraps carries the fatal tag.
func IsFatal(err error) bool {
	var fatal *fatalError
	return errors.As(err, &fatal)
}

// AttemptsExhaustedError is the terminal failure produced by Insist when the attempt budget runs
// out without a success. It is a synthesized error rather than the last attempt's own error so
// that callers can tell retry exhaustion apart from a single failure; the last attempt's error is
// still reachable through Unwrap (it is nil when the budget was zero and no attempt was ever
// made).
type AttemptsExhaustedError struct {
	// Attempts is the attempt budget that was consumed.
	Attempts int

	// LastErr is the error the final attempt settled with, if any attempt was made.
	LastErr error
}

// Error implements error.
func (e *AttemptsExhaustedError) Error() string {
	if e.LastErr == nil {
		return fmt.Sprintf("insist: attempts exhausted after %d attempts", e.Attempts)
	}
	return fmt.Sprintf("insist: attempts exhausted after %d attempts, last error: %s",
		e.Attempts, e.LastErr.Error())
}

// Unwrap returns the final attempt's error.
func (e *AttemptsExhaustedError) Unwrap() error {
	return e.LastErr
}

// IsAttemptsExhausted reports whether err indicates that Insist ran out of attempts.
func IsAttemptsExhausted(err error) bool {
	var exhausted *AttemptsExhaustedError
	return errors.As(err, &exhausted)
}
