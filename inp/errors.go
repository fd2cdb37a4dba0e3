// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"errors"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ConfigurationError reports an invalid, missing or out-of-range parameter
type ConfigurationError struct {
	Field string      // parameter name; e.g. "hole_diameter"
	Value interface{} // offending value (may be nil)
	Msg   string      // what is wrong
	Path  string      // input file, if any
	Err   error       // underlying error, if any
}

// Error implements the error interface
func (o *ConfigurationError) Error() string {
	l := "configuration error"
	if o.Path != "" {
		l += io.Sf(" (file %q)", o.Path)
	}
	if o.Field != "" {
		l += io.Sf(": %s = %v", o.Field, o.Value)
	}
	if o.Msg != "" {
		l += ": " + o.Msg
	}
	if o.Err != nil {
		l += io.Sf(": %v", o.Err)
	}
	return l
}

// Unwrap returns the underlying error
func (o *ConfigurationError) Unwrap() error { return o.Err }

// InputFormatError reports a mesh file that lacks the expected content
type InputFormatError struct {
	Path string // mesh file
	Line int    // line number (1-based); 0 if unknown
	Msg  string // what is wrong
}

// Error implements the error interface
func (o *InputFormatError) Error() string {
	if o.Line > 0 {
		return io.Sf("input format error: %s:%d: %s", o.Path, o.Line, o.Msg)
	}
	return io.Sf("input format error: %s: %s", o.Path, o.Msg)
}

// IsConfigurationError tells whether err is (or wraps) a ConfigurationError
func IsConfigurationError(err error) bool {
	var e *ConfigurationError
	return errors.As(err, &e)
}

// IsInputFormatError tells whether err is (or wraps) an InputFormatError
func IsInputFormatError(err error) bool {
	var e *InputFormatError
	return errors.As(err, &e)
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func cfgerr(field string, value interface{}, msg string, prm ...interface{}) *ConfigurationError {
	return &ConfigurationError{Field: field, Value: value, Msg: io.Sf(msg, prm...)}
}

// readFile reads a whole file. io.ReadFile panics on failure; the panic is returned as an error
func readFile(fnpath string) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, err = nil, chk.Err("%v", r)
		}
	}()
	b = io.ReadFile(fnpath)
	return
}
