package ops

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/quernlab/quern/pkg/vessel"
)

// Base64Encode encodes the vessel bytes as standard base64. No arguments.
func Base64Encode(ctx context.Context, v *vessel.Vessel, args []any) error {
	raw, err := v.Get(vessel.TypeBytes)
	if err != nil {
		return err
	}
	v.Set(base64.StdEncoding.EncodeToString(raw.([]byte)), vessel.TypeText)
	return nil
}

// Base64Decode decodes standard base64 from the vessel text. No arguments.
func Base64Decode(ctx context.Context, v *vessel.Vessel, args []any) error {
	text, err := v.Text()
	if err != nil {
		return err
	}
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return fmt.Errorf("invalid base64 input: %w", err)
	}
	v.Set(raw, vessel.TypeBytes)
	return nil
}
