package expr

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var (
	// 8'hFF, 'h1F, 'sd10, 4'b1010
	sizedLiteral = regexp.MustCompile(`^([0-9]+)?'[sS]?([hHbBoOdD])([0-9a-fA-F_]+)`)
	// 0x1F, 0b101, 0o17
	prefixedLiteral = regexp.MustCompile(`^0([xXbBoO])([0-9a-fA-F_]+)`)
	// 1_024, 4K, 1.5
	decimalLiteral = regexp.MustCompile(`^([0-9][0-9_]*)(\.[0-9]+)?([kKmMgGtT])?`)
)

var radix = map[byte]int{
	'h': 16, 'H': 16, 'x': 16, 'X': 16,
	'b': 2, 'B': 2,
	'o': 8, 'O': 8,
	'd': 10, 'D': 10,
}

var multiplier = map[byte]uint{
	'k': 10, 'K': 10,
	'm': 20, 'M': 20,
	'g': 30, 'G': 30,
	't': 40, 'T': 40,
}

func isIdentChar(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// rewriteLiterals converts every hardware-style literal in text into a plain
// decimal so the result is valid HCL. Identifiers and quoted strings are
// copied untouched and a '$' in front of an identifier ($clog2) is dropped.
// Minus signs are spaced out because HCL accepts dashes inside identifiers
// and would otherwise read WIDTH-1 as a single name.
func rewriteLiterals(text string) (string, error) {
	var out strings.Builder
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '"':
			end := strings.IndexByte(text[i+1:], '"')
			if end < 0 {
				return "", fmt.Errorf("unterminated string in %q", text)
			}
			out.WriteString(text[i : i+end+2])
			i += end + 2

		case c == '$' && i+1 < len(text) && isIdentStart(text[i+1]):
			i++

		case isIdentStart(c):
			j := i + 1
			for j < len(text) && isIdentChar(text[j]) {
				j++
			}
			out.WriteString(text[i:j])
			i = j

		case c == '\'' || (c >= '0' && c <= '9'):
			lit, n, err := parseLiteral(text[i:])
			if err != nil {
				return "", err
			}
			out.WriteString(lit)
			i += n

		case c == '-':
			out.WriteString(" - ")
			i++

		default:
			out.WriteByte(c)
			i++
		}
	}
	return out.String(), nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// parseLiteral consumes one numeric literal at the start of s and returns
// its decimal text and the number of bytes consumed.
func parseLiteral(s string) (string, int, error) {
	if m := sizedLiteral.FindStringSubmatch(s); m != nil {
		v, err := parseDigits(m[3], radix[m[2][0]])
		if err != nil {
			return "", 0, err
		}
		if m[1] != "" {
			var width big.Int
			if _, ok := width.SetString(m[1], 10); ok && width.Sign() > 0 && width.IsInt64() {
				mask := new(big.Int).Lsh(big.NewInt(1), uint(width.Int64()))
				mask.Sub(mask, big.NewInt(1))
				v.And(v, mask)
			}
		}
		return v.String(), len(m[0]), nil
	}

	if m := prefixedLiteral.FindStringSubmatch(s); m != nil {
		v, err := parseDigits(m[2], radix[m[1][0]])
		if err != nil {
			return "", 0, err
		}
		return v.String(), len(m[0]), nil
	}

	m := decimalLiteral.FindStringSubmatch(s)
	if m == nil {
		return "", 0, fmt.Errorf("invalid literal at %q", s)
	}
	consumed := len(m[0])
	if m[3] != "" && consumed < len(s) && isIdentChar(s[consumed]) {
		// 4Kb is not a literal followed by an identifier.
		return "", 0, fmt.Errorf("invalid literal at %q", s)
	}

	digits := strings.ReplaceAll(m[1], "_", "")
	if m[2] != "" {
		if m[3] != "" {
			f, _, err := big.ParseFloat(digits+m[2], 10, 128, big.ToZero)
			if err != nil {
				return "", 0, fmt.Errorf("invalid literal %q: %w", m[0], err)
			}
			f.SetMantExp(f, int(multiplier[m[3][0]]))
			return f.Text('f', -1), consumed, nil
		}
		return digits + m[2], consumed, nil
	}

	v, err := parseDigits(digits, 10)
	if err != nil {
		return "", 0, err
	}
	if m[3] != "" {
		v.Lsh(v, multiplier[m[3][0]])
	}
	return v.String(), consumed, nil
}

func parseDigits(digits string, base int) (*big.Int, error) {
	clean := strings.ReplaceAll(digits, "_", "")
	v, ok := new(big.Int).SetString(clean, base)
	if !ok {
		return nil, fmt.Errorf("invalid base-%d digits %q", base, digits)
	}
	return v, nil
}
