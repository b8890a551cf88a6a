package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type uiMode string

const (
	uiAuto  uiMode = "auto"
	uiLive  uiMode = "live"
	uiPlain uiMode = "plain"
)

// uiModeDecision is how take talks to the learner.
type uiModeDecision struct {
	useLive bool
	noColor bool
	warning string
}

// Test seams for terminal and environment detection.
var (
	isTerminal = defaultIsTerminal
	lookupEnv  = os.LookupEnv
)

func parseUIMode(value string) (uiMode, error) {
	switch mode := uiMode(strings.ToLower(strings.TrimSpace(value))); mode {
	case "":
		return uiAuto, nil
	case uiAuto, uiLive, uiPlain:
		return mode, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", value)
	}
}

// resolveUIMode picks the live UI only when stdout is a terminal. Colors are
// off when asked for or when NO_COLOR is set.
func resolveUIMode(value string, noColor bool, stdout io.Writer) (uiModeDecision, error) {
	mode, err := parseUIMode(value)
	if err != nil {
		return uiModeDecision{}, err
	}
	decision := uiModeDecision{noColor: noColor || colorDisabledByEnv()}
	tty := isTerminal(stdout)
	switch mode {
	case uiAuto:
		decision.useLive = tty
	case uiLive:
		decision.useLive = tty
		if !tty {
			decision.warning = "--ui live needs a terminal; using plain prompts."
		}
	}
	return decision, nil
}

func colorDisabledByEnv() bool {
	value, ok := lookupEnv("NO_COLOR")
	return ok && value != ""
}

func defaultIsTerminal(w io.Writer) bool {
	fder, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fder.Fd()))
}
