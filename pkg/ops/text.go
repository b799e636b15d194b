package ops

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/quernlab/quern/pkg/domain"
	"github.com/quernlab/quern/pkg/vessel"
)

// ToUpperCase upper-cases the vessel text. No arguments.
func ToUpperCase(ctx context.Context, v *vessel.Vessel, args []any) error {
	text, err := v.Text()
	if err != nil {
		return err
	}
	v.Set(strings.ToUpper(text), vessel.TypeText)
	return nil
}

// ToLowerCase lower-cases the vessel text. No arguments.
func ToLowerCase(ctx context.Context, v *vessel.Vessel, args []any) error {
	text, err := v.Text()
	if err != nil {
		return err
	}
	v.Set(strings.ToLower(text), vessel.TypeText)
	return nil
}

// Reverse reverses the vessel text rune-wise. No arguments.
func Reverse(ctx context.Context, v *vessel.Vessel, args []any) error {
	text, err := v.Text()
	if err != nil {
		return err
	}
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	v.Set(string(runes), vessel.TypeText)
	return nil
}

// Head keeps the first n lines of the vessel text. Args: [n int].
func Head(ctx context.Context, v *vessel.Vessel, args []any) error {
	n := argInt(args, 0, 10)
	text, err := v.Text()
	if err != nil {
		return err
	}
	lines := strings.Split(text, "\n")
	if n < len(lines) {
		lines = lines[:n]
	}
	v.Set(strings.Join(lines, "\n"), vessel.TypeText)
	return nil
}

// Append appends a suffix to the vessel text. Args: [suffix string].
func Append(ctx context.Context, v *vessel.Vessel, args []any) error {
	text, err := v.Text()
	if err != nil {
		return err
	}
	v.Set(text+argString(args, 0), vessel.TypeText)
	return nil
}

// FindReplace replaces occurrences of a pattern in the vessel text.
// Args: [pattern *ToggleText{Mode: "regex"|"simple"}, replacement string,
// caseInsensitive bool].
func FindReplace(ctx context.Context, v *vessel.Vessel, args []any) error {
	pattern, ok := argValue(args, 0).(*domain.ToggleText)
	if !ok || pattern.Text == "" {
		return nil
	}
	replacement := argString(args, 1)
	insensitive := argBool(args, 2)

	text, err := v.Text()
	if err != nil {
		return err
	}

	expr := pattern.Text
	if pattern.Mode != "regex" {
		expr = regexp.QuoteMeta(expr)
	}
	if insensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return fmt.Errorf("invalid search pattern: %w", err)
	}

	v.Set(re.ReplaceAllString(text, replacement), vessel.TypeText)
	return nil
}
