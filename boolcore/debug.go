package boolcore

import (
	"fmt"
	"io"
	"os"
)

// BooleanDebug enables phase-by-phase trace logging of the pipeline
// (Collect -> Sort -> Split -> Dedup -> Classify -> Excise -> Restitch),
// matching the teacher's VattiDebug toggle in port/vatti_debug.go.
var BooleanDebug = false

// DebugOutput is where debug output goes when BooleanDebug is enabled.
var DebugOutput io.Writer = os.Stdout

func debugLog(format string, args ...interface{}) {
	if BooleanDebug {
		fmt.Fprintf(DebugOutput, "[boolcore] "+format+"\n", args...)
	}
}

func debugLogPhase(phase string) {
	if BooleanDebug {
		fmt.Fprintf(DebugOutput, "--- phase: %s ---\n", phase)
	}
}
