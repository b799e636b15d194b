package runtime

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/quernlab/quern/pkg/domain"
)

// registerToken matches a register reference with its preceding escape run:
// any number of backslashes, then $R and a one- or two-digit register number.
var registerToken = regexp.MustCompile(`(\\*)\$R(\d{1,2})`)

// opRegister captures regexp groups from the vessel text as new registers and
// rewrites references to them in all enabled downstream operations.
// Ingredients: [pattern string, caseInsensitive bool, multiline bool].
func (e *Engine) opRegister(ctx context.Context, st *State, op *domain.Operation) error {
	pattern := argString(op, 0)

	var flags strings.Builder
	if argBool(op, 1) {
		flags.WriteString("i")
	}
	if argBool(op, 2) {
		flags.WriteString("m")
	}
	if flags.Len() > 0 {
		pattern = "(?" + flags.String() + ")" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid extraction pattern: %w", err)
	}

	text, err := st.Vessel.Text()
	if err != nil {
		return err
	}

	match := re.FindStringSubmatch(text)
	if match == nil || len(match) < 2 {
		// No match, or a pattern without capture groups: nothing to capture.
		return nil
	}
	captured := match[1:]

	before := st.Shared.NumRegisters
	e.logger.Debug("registers captured",
		"run_id", st.Shared.RunID, "cursor", st.Cursor, "start", before, "count", len(captured))
	if e.metrics != nil {
		e.metrics.RegistersCaptured.Add(float64(len(captured)))
	}

	if e.publish != nil {
		e.publish(st.Shared.ForkOffset+st.Cursor, before, captured)
	}
	if e.hooks.OnRegisterCapture != nil {
		e.hooks.OnRegisterCapture(ctx, &domain.RegisterEvent{
			EventBase: eventBase(domain.EventRegisterCapture, st),
			Start:     before,
			Values:    captured,
		})
	}

	// Rewrite references in every enabled operation after this one. The
	// mutation is permanent for the rest of the run: downstream operations
	// see resolved values once written.
	for _, next := range st.Ops[st.Cursor+1:] {
		if next.Disabled {
			continue
		}
		for i := range next.Ingredients {
			switch v := next.Ingredients[i].Value.(type) {
			case string:
				next.Ingredients[i].Value = substituteRegisters(v, before, captured)
			case *domain.ToggleText:
				v.Text = substituteRegisters(v.Text, before, captured)
			}
		}
	}

	st.Shared.Registers = append(st.Shared.Registers, captured...)
	st.Shared.NumRegisters = before + len(captured)
	return nil
}

// substituteRegisters rewrites $R tokens referring to the just-captured
// window [numRegisters, numRegisters+len(captured)). Tokens outside the
// window are left verbatim; they were either resolved by an earlier capture
// or refer to registers that do not exist yet. An odd run of preceding
// backslashes escapes the token: one backslash is stripped and the literal
// text survives.
func substituteRegisters(s string, numRegisters int, captured []string) string {
	return registerToken.ReplaceAllStringFunc(s, func(tok string) string {
		sub := registerToken.FindStringSubmatch(tok)
		slashes := sub[1]
		num, _ := strconv.Atoi(sub[2])

		index := num + 1
		if index <= numRegisters || index > numRegisters+len(captured) {
			return tok
		}
		if len(slashes)%2 != 0 {
			return tok[1:]
		}
		return slashes + captured[num-numRegisters]
	})
}
