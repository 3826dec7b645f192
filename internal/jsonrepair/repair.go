// Package jsonrepair normalizes text that is supposed to contain one JSON
// object but arrives decorated by a generative model: markdown code fences,
// single quotes, bare keys, trailing commas, commentary around the braces.
//
// Three passes are attempted in order, each more aggressive than the last;
// the first pass whose output parses wins. When every pass fails the caller
// gets ErrUnparseable rather than a silently empty object, so consumers must
// decide explicitly whether to fail hard or substitute a default.
package jsonrepair

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnparseable is returned when no repair pass produces valid JSON.
var ErrUnparseable = errors.New("no parseable JSON object in model output")

var (
	fencedBlockRe = regexp.MustCompile("(?s)```[a-zA-Z]*\\n?(.*?)```")
	bareKeyRe     = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_\-]*)\s*:`)
	singleQuoteRe = regexp.MustCompile(`'([^']*)'`)
	trailCommaRe  = regexp.MustCompile(`,\s*([}\]])`)
	newlineRunRe  = regexp.MustCompile(`\s*[\r\n]\s*`)
	multiSlashRe  = regexp.MustCompile(`\\{2,}`)
	bareScalarRe  = regexp.MustCompile(`:\s*([A-Za-z][A-Za-z0-9 _./\-]*?)\s*([,}\]])`)
	fragmentRe    = regexp.MustCompile(`\{[^{}]*\}`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	nonASCIIRe    = regexp.MustCompile("[^\x09\x0a\x0d\x20-\x7e]")
)

// Repair returns the cleaned JSON object text for raw, or ErrUnparseable.
func Repair(raw string) (string, error) {
	candidate, ok := minimalClean(raw)
	if !ok {
		// No brace-delimited content at all: nothing the later passes could
		// recover either, fail immediately.
		return "", fmt.Errorf("%w: no object braces found", ErrUnparseable)
	}

	if isObject(candidate) {
		return candidate, nil
	}

	if aggressive := aggressiveClean(candidate); isObject(aggressive) {
		return aggressive, nil
	}

	if fragment, ok := extractLargestFragment(raw); ok && isObject(fragment) {
		return fragment, nil
	}

	return "", fmt.Errorf("%w: all repair passes failed", ErrUnparseable)
}

// Unmarshal repairs raw and decodes the result into v.
func Unmarshal(raw string, v interface{}) error {
	cleaned, err := Repair(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("decode repaired JSON: %w", err)
	}
	return nil
}

// minimalClean is pass 1: strip code fences, trim, and cut the substring
// between the first '{' and the last '}' (greedy). Embedded fenced code
// blocks are JSON-string-encoded so raw newlines and quotes inside them do
// not break the surrounding string value.
func minimalClean(raw string) (string, bool) {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	s = s[start : end+1]

	// Inner fenced blocks (e.g. code samples inside a recommendation string)
	// get their contents escaped in place.
	s = fencedBlockRe.ReplaceAllStringFunc(s, func(m string) string {
		inner := fencedBlockRe.FindStringSubmatch(m)[1]
		encoded, err := json.Marshal(inner)
		if err != nil {
			return m
		}
		// Drop the surrounding quotes: the block already sits inside a
		// JSON string value.
		return strings.Trim(string(encoded), `"`)
	})

	return s, true
}

// aggressiveClean is pass 2: everything pass 1 did, plus quoting bare keys,
// rewriting single-quoted strings, removing trailing commas, collapsing
// escaped-backslash artifacts and newline runs, quoting bare scalar values,
// and stripping non-ASCII characters. The non-ASCII strip is deliberately
// lossy; this path handles structured scoring text, not display text.
func aggressiveClean(candidate string) string {
	s := nonASCIIRe.ReplaceAllString(candidate, "")
	s = newlineRunRe.ReplaceAllString(s, " ")
	s = multiSlashRe.ReplaceAllString(s, `\`)
	s = singleQuoteRe.ReplaceAllString(s, `"$1"`)
	s = bareKeyRe.ReplaceAllString(s, `$1"$2":`)
	s = bareScalarRe.ReplaceAllStringFunc(s, quoteBareScalar)
	s = trailCommaRe.ReplaceAllString(s, "$1")
	return s
}

// quoteBareScalar wraps an unquoted scalar value in double quotes unless it
// is a JSON literal.
func quoteBareScalar(m string) string {
	parts := bareScalarRe.FindStringSubmatch(m)
	value, tail := parts[1], parts[2]
	switch strings.TrimSpace(value) {
	case "true", "false", "null":
		return m
	}
	return `: "` + strings.TrimSpace(value) + `"` + tail
}

// extractLargestFragment is pass 3: scan for non-nested {...} fragments and
// keep only the longest. When the response concatenates several objects the
// others are dropped; that loss is accepted because this utility's contract
// is a single object.
func extractLargestFragment(raw string) (string, bool) {
	fragments := fragmentRe.FindAllString(raw, -1)
	if len(fragments) == 0 {
		return "", false
	}

	longest := fragments[0]
	for _, f := range fragments[1:] {
		if len(f) > len(longest) {
			longest = f
		}
	}

	return whitespaceRe.ReplaceAllString(longest, " "), true
}

// isObject reports whether s parses as a JSON object.
func isObject(s string) bool {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") {
		return false
	}
	var obj map[string]interface{}
	return json.Unmarshal([]byte(trimmed), &obj) == nil
}
