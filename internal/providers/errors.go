// Package providers defines the error taxonomy shared by everything that
// talks to an external collaborator (DaySmart, iCal feeds, Discord).
package providers

import (
	"errors"
	"fmt"
)

// ConfigError marks an invalid request payload (missing required field or an
// unknown mode). It is the only error class that aborts a whole invocation.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid request: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid request: %s", e.Message)
}

// FetchError captures a transport-level failure reaching an upstream source.
type FetchError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s fetch failed (status=%d): %v", e.Source, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s fetch failed: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError captures a malformed upstream document (backend JSON or a
// structurally invalid calendar).
type ParseError struct {
	Source string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s parse failed: %v", e.Source, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DeliveryError captures a failed Discord webhook post.
type DeliveryError struct {
	StatusCode int
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("discord delivery failed (status=%d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("discord delivery failed: %v", e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// AsConfigError attempts to unwrap an error into a ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var cfgErr *ConfigError
	if errors.As(err, &cfgErr) {
		return cfgErr, true
	}
	return nil, false
}

// AsFetchError attempts to unwrap an error into a FetchError.
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// AsParseError attempts to unwrap an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}

// AsDeliveryError attempts to unwrap an error into a DeliveryError.
func AsDeliveryError(err error) (*DeliveryError, bool) {
	var delErr *DeliveryError
	if errors.As(err, &delErr) {
		return delErr, true
	}
	return nil, false
}
