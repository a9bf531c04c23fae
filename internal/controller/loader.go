package controller

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/lox/drawnumber/internal/game"
)

// Recognised configuration keys
const (
	KeyMinimum  = "minimum"
	KeyMaximum  = "maximum"
	KeyAttempts = "attempts"
)

// Messages broadcast to views while loading the configuration
const (
	MsgFileError      = "Error with file, default values are set instead"
	MsgInvalidValue   = "Invalid argument in config file, default value is set instead"
	MsgInconsistent   = "Inconsistent configuration, default values are set instead"
	msgDuplicateValue = "Duplicate %q in config file, first value is kept"
)

// ParseConfiguration reads "key value" lines from r into a fresh Builder and
// returns the built Configuration. Lines that do not split into exactly two
// whitespace-separated tokens are skipped, as are unknown keys and lines
// starting with '#'. A colon may separate key and value ("minimum: 1").
//
// Malformed integers and duplicate keys produce warnings and leave the field
// untouched. A read error is returned as-is; the caller decides the fallback.
func ParseConfiguration(r io.Reader) (game.Configuration, []string, error) {
	b := game.NewBuilder()
	setters := map[string]func(int) error{
		KeyMinimum:  b.SetMin,
		KeyMaximum:  b.SetMax,
		KeyAttempts: b.SetAttempts,
	}

	var warnings []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := splitPair(line)
		if !ok {
			continue
		}
		set, known := setters[key]
		if !known {
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			warnings = append(warnings, MsgInvalidValue)
			continue
		}
		if err := set(n); err != nil {
			if errors.Is(err, game.ErrFieldAlreadySet) {
				warnings = append(warnings, fmt.Sprintf(msgDuplicateValue, key))
				continue
			}
			return game.Configuration{}, warnings, err
		}
	}
	if err := scanner.Err(); err != nil {
		return game.Configuration{}, warnings, fmt.Errorf("failed to read configuration: %w", err)
	}

	cfg, err := b.Build()
	return cfg, warnings, err
}

// ParseConfigurationFile opens path and parses it with ParseConfiguration.
func ParseConfigurationFile(path string) (game.Configuration, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return game.Configuration{}, nil, fmt.Errorf("failed to open configuration: %w", err)
	}
	defer f.Close()
	return ParseConfiguration(f)
}

// splitPair splits "key value" or "key: value" into its two tokens.
func splitPair(line string) (string, string, bool) {
	if len(strings.Fields(line)) != 2 {
		return "", "", false
	}
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ':' || unicode.IsSpace(r)
	})
	if len(tokens) < 2 {
		return "", "", false
	}
	return tokens[0], tokens[1], true
}

// WriteConfiguration writes cfg in the format ParseConfiguration reads.
func WriteConfiguration(w io.Writer, cfg game.Configuration) error {
	_, err := fmt.Fprintf(w, "%s: %d\n%s: %d\n%s: %d\n",
		KeyMinimum, cfg.Min(),
		KeyMaximum, cfg.Max(),
		KeyAttempts, cfg.Attempts())
	return err
}
