package cap

import (
	"fmt"
	"strings"
)

// Maximum character counts for broadcast content. Content that fits in the
// GSM 7-bit repertoire packs more characters per broadcast page; anything
// outside it forces UCS-2 encoding and a much lower limit.
const (
	MaxContentCountGSM  = 1395
	MaxContentCountUCS2 = 615
)

// gsm0338Basic is the GSM 03.38 default alphabet.
const gsm0338Basic = "@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?" +
	"¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑÜ§¿abcdefghijklmnopqrstuvwxyzäöñüà"

// gsm0338Extension is the GSM 03.38 extension table (reached via escape).
const gsm0338Extension = "\f^{}\\[~]|€"

var gsm7Repertoire = func() map[rune]struct{} {
	set := make(map[rune]struct{}, len(gsm0338Basic)+len(gsm0338Extension))
	for _, r := range gsm0338Basic {
		set[r] = struct{}{}
	}
	for _, r := range gsm0338Extension {
		set[r] = struct{}{}
	}
	return set
}()

// NonGSMCharacters returns the distinct characters of s that fall outside the
// GSM 7-bit repertoire, in order of first appearance.
func NonGSMCharacters(s string) []rune {
	seen := make(map[rune]struct{})
	var outside []rune
	for _, r := range s {
		if _, ok := gsm7Repertoire[r]; ok {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		outside = append(outside, r)
	}
	return outside
}

// ContentTooLongError reports alert content exceeding the applicable limit.
type ContentTooLongError struct {
	MaxContentCount int
	NonGSM          bool
}

func (e *ContentTooLongError) Error() string {
	msg := fmt.Sprintf("description must be %s characters or fewer", formatCount(e.MaxContentCount))
	if e.NonGSM {
		msg += " (because it could not be GSM7 encoded)"
	}
	return msg
}

// MaxContentCount returns the character limit that applies to the given content.
func MaxContentCount(content string) (limit int, nonGSM bool) {
	if len(NonGSMCharacters(content)) > 0 {
		return MaxContentCountUCS2, true
	}
	return MaxContentCountGSM, false
}

// CheckContent validates rendered alert content against the encoding-dependent
// character limit. Returns a *ContentTooLongError naming the exact limit.
func CheckContent(content string) error {
	trimmed := strings.TrimSpace(content)
	limit, nonGSM := MaxContentCount(trimmed)

	count := 0
	for range trimmed {
		count++
	}

	if count > limit {
		return &ContentTooLongError{MaxContentCount: limit, NonGSM: nonGSM}
	}
	return nil
}

// formatCount renders a count with thousands separators ("1395" -> "1,395").
func formatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
