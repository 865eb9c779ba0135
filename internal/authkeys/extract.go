package authkeys

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/crypto/ssh"
)

// DefaultKeyTypes lists the key-type prefixes accepted when none are
// configured.
var DefaultKeyTypes = []string{"ssh-ed25519", "ssh-rsa", "ssh-dss", "ssh-ecdsa"}

// ErrNoKeyTypes is returned when an extractor is built without prefixes.
var ErrNoKeyTypes = errors.New("at least one key type is required")

// PublicKeyLine is one matched key line.
type PublicKeyLine struct {
	Type     string
	Material string
	Comment  string

	raw string
}

// String returns the line exactly as it appeared in the input.
func (k PublicKeyLine) String() string {
	return k.raw
}

// Extractor finds key lines in text.
type Extractor struct {
	pattern *regexp.Regexp
	strict  bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithStrict makes the extractor drop matches whose key material does not
// parse as an authorized key.
func WithStrict() Option {
	return func(e *Extractor) {
		e.strict = true
	}
}

// NewExtractor compiles a matcher for the given key-type prefixes.
func NewExtractor(keyTypes []string, opts ...Option) (*Extractor, error) {
	var alternatives []string
	for _, kt := range keyTypes {
		kt = strings.TrimSpace(kt)
		if kt == "" {
			continue
		}
		alternatives = append(alternatives, regexp.QuoteMeta(kt))
	}
	if len(alternatives) == 0 {
		return nil, ErrNoKeyTypes
	}

	expr := fmt.Sprintf(`(%s)[ \t]+(\S+)[ \t]+(\S+@\S+)`, strings.Join(alternatives, "|"))
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile key pattern: %w", err)
	}

	e := &Extractor{pattern: pattern}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Extract returns the key lines found in text.
func (e *Extractor) Extract(text string) []PublicKeyLine {
	seen := make(map[string]struct{})
	var keys []PublicKeyLine

	for _, m := range e.pattern.FindAllStringSubmatch(text, -1) {
		raw := m[0]
		if _, dup := seen[raw]; dup {
			continue
		}
		if e.strict && !parses(raw) {
			continue
		}
		seen[raw] = struct{}{}
		keys = append(keys, PublicKeyLine{
			Type:     m[1],
			Material: m[2],
			Comment:  m[3],
			raw:      raw,
		})
	}
	return keys
}

func parses(line string) bool {
	_, _, _, _, err := ssh.ParseAuthorizedKey([]byte(line))
	return err == nil
}
