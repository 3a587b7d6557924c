package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/smartcontractkit/interchain-governance/internal/utils/safecast"
)

// Duration is a timelock delay. It encodes as a time.Duration string ("72h") and also decodes
// from a plain number of seconds, the unit delays are enforced in.
type Duration struct {
	time.Duration
}

// NewDuration wraps a time.Duration with a Duration.
func NewDuration(d time.Duration) Duration {
	return Duration{Duration: d}
}

// ParseDuration parses either a time.Duration string or a whole number of seconds.
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)

	if seconds, err := strconv.ParseUint(s, 10, 32); err == nil {
		return NewDuration(time.Duration(seconds) * time.Second), nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return Duration{}, err
	}

	return NewDuration(d), nil
}

// Seconds returns the delay in whole seconds, truncating any fraction.
func (d Duration) Seconds() (uint64, error) {
	return safecast.Int64ToUint64(int64(d.Duration / time.Second))
}

func (d Duration) String() string {
	return d.Duration.String()
}

// MarshalJSON implements the json.Marshaler interface.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var raw json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// not a string, accept a bare number of seconds
		s = string(raw)
	}

	parsed, err := ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %s: %w", raw, err)
	}
	*d = parsed

	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration node kind: %d", node.Kind)
	}

	parsed, err := ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = parsed

	return nil
}
