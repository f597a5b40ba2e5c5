// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable source of the current time.
//
// Code that stamps output with a time (the generation record's
// generated_at field) takes a Clock instead of calling time.Now, so
// tests can pin the value:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	err := run(ctx, params, c, &stdout, logger)
//	c.Advance(time.Hour)
//
// Production code passes Real().
package clock
