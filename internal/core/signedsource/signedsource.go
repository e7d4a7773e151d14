// Package signedsource signs generated files so that manual edits can be detected.
//
// A signable document carries exactly one "// @generated SignedSource<<hhhhhhhhhhhhhhhh>>"
// line in its leading comment block. Slot-shaped text after that block is plain content.
// The signature is the xxhash64 of the whole document with the slot's digits zeroed,
// written back into the slot as 16 lowercase hex digits. Zeroing before hashing makes
// the placeholder and every signature the same width, so signing is a pure function of
// the rest of the content and re-signing is idempotent.
package signedsource

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

const (
	digits     = 16
	zeroDigits = "0000000000000000"
)

var (
	// ErrNoSigningToken is returned when Sign finds neither a placeholder nor a signature.
	ErrNoSigningToken = zerr.New("document has no signing token")

	// ErrMultipleSigningTokens is returned when a document has more than one signature slot.
	ErrMultipleSigningTokens = zerr.New("document has more than one signing token")

	// ErrNotSigned is returned when Verify is asked to check a document without a signature.
	ErrNotSigned = zerr.New("document is not signed")
)

var slotPattern = regexp.MustCompile(`^//\s*@generated SignedSource<<([0-9a-f]{16})>>`)

// Token returns the placeholder a template embeds where the signature will go.
func Token() string {
	return "@generated SignedSource<<" + zeroDigits + ">>"
}

// Sign computes the signature of content and embeds it into the signature slot.
func Sign(content string) (string, error) {
	start, end, err := locate(content)
	if err != nil {
		return "", err
	}
	if start < 0 {
		return "", ErrNoSigningToken
	}

	sum := hash(content, start, end)
	return content[:start] + sum + content[end:], nil
}

// Verify reports whether the embedded signature matches the content.
func Verify(content string) (bool, error) {
	start, end, err := locate(content)
	if err != nil {
		return false, err
	}
	if start < 0 || content[start:end] == zeroDigits {
		return false, ErrNotSigned
	}

	return content[start:end] == hash(content, start, end), nil
}

// IsSigned reports whether content carries a computed signature rather than the placeholder.
func IsSigned(content string) bool {
	start, end, err := locate(content)
	return err == nil && start >= 0 && content[start:end] != zeroDigits
}

// Signature extracts the embedded signature digits.
func Signature(content string) (string, bool) {
	if !IsSigned(content) {
		return "", false
	}
	start, end, _ := locate(content)
	return content[start:end], true
}

// locate returns the byte range of the slot digits, or -1, -1 if there is no slot.
// Only the leading comment block is searched.
func locate(content string) (int, int, error) {
	start, end := -1, -1
	offset := 0
	for line := range strings.Lines(content) {
		if !strings.HasPrefix(line, "//") {
			break
		}
		if m := slotPattern.FindStringSubmatchIndex(line); m != nil {
			if start >= 0 {
				return -1, -1, ErrMultipleSigningTokens
			}
			start, end = offset+m[2], offset+m[3]
		}
		offset += len(line)
	}
	return start, end, nil
}

func hash(content string, start, end int) string {
	var b strings.Builder
	b.Grow(len(content))
	b.WriteString(content[:start])
	b.WriteString(zeroDigits)
	b.WriteString(content[end:])

	return fmt.Sprintf("%0*x", digits, xxhash.Sum64String(b.String()))
}
