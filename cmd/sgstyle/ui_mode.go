package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode — трёхпозиционный флаг интерактивного прогресса (--ui).
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	norm := uiMode(strings.ToLower(strings.TrimSpace(value)))
	switch norm {
	case "":
		return uiModeAuto, nil
	case uiModeAuto, uiModeOn, uiModeOff:
		return norm, nil
	}
	return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

// enableTUI решает, рисовать ли интерактивный прогресс. Кроме режима
// учитывается вывод: прогресс уместен только при человекочитаемом
// тексте и без --quiet; в auto дополнительно требуется терминал.
func enableTUI(mode uiMode, format string, quiet bool) bool {
	if format != "text" || quiet {
		return false
	}
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	return isTerminal(os.Stdout)
}
