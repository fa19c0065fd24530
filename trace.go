package ttt

import (
	"github.com/npillmayer/schuko/tracing"
)

// T traces with key 'ttt', returning whatever tracing.Select("ttt")
// yields; library code never depends on a particular backend.
func T() tracing.Trace {
	return tracing.Select("ttt")
}
