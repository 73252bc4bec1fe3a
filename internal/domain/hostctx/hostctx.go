// Where: internal/domain/hostctx/hostctx.go
// What: Environment descriptor derived from a hostname.
// Why: Keep the derivation pure and total so rendering never fails on odd input.
package hostctx

import (
	"strings"

	"github.com/poruru-code/hostenv/internal/domain/value"
	"github.com/poruru-code/hostenv/internal/meta"
)

const shortIDLength = 3

// HostnameContext is the descriptor appended to the registry.
type HostnameContext struct {
	Hostname string `json:"hostname" yaml:"hostname"`
	IsBrev   bool   `json:"isBrev" yaml:"isBrev"`
	BrevID   string `json:"brevId" yaml:"brevId"`
}

// Derive builds the descriptor for hostname. The hostname is used verbatim.
func Derive(hostname string) HostnameContext {
	return HostnameContext{
		Hostname: hostname,
		IsBrev:   IsBrevEnvironment(hostname),
		BrevID:   ShortID(hostname),
	}
}

// IsBrevEnvironment reports whether hostname ends with the literal brev suffix.
// The comparison is case-sensitive and does not require a label boundary.
func IsBrevEnvironment(hostname string) bool {
	return strings.HasSuffix(hostname, meta.BrevSuffix)
}

// FirstLabel returns the leftmost dot-delimited label, or the whole string
// when there are no dots.
func FirstLabel(hostname string) string {
	return value.At(strings.Split(hostname, "."), 0).OrZero()
}

// ShortID returns up to three characters of the second hyphen-delimited
// segment of the first label, or "" when that segment does not exist.
func ShortID(hostname string) string {
	segment := value.At(strings.Split(FirstLabel(hostname), "-"), 1)
	return value.Then(segment, truncate).OrZero()
}

func truncate(segment string) string {
	runes := []rune(segment)
	if len(runes) <= shortIDLength {
		return segment
	}
	return string(runes[:shortIDLength])
}

// Fields returns the object shape stored in the registry data sequence.
func (c HostnameContext) Fields() map[string]any {
	return map[string]any{
		"hostname": c.Hostname,
		"isBrev":   c.IsBrev,
		"brevId":   c.BrevID,
	}
}

// FromFields decodes a registry entry. ok is false when the entry does not
// carry a hostname field.
func FromFields(fields map[string]any) (HostnameContext, bool) {
	raw, ok := fields["hostname"]
	if !ok {
		return HostnameContext{}, false
	}
	hostname, ok := raw.(string)
	if !ok {
		return HostnameContext{}, false
	}
	return HostnameContext{
		Hostname: hostname,
		IsBrev:   value.AsBool(fields["isBrev"]),
		BrevID:   value.AsString(fields["brevId"]),
	}, true
}
