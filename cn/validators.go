package cn

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Validator reports whether the remainder of a class (the part after a known
// prefix) belongs to a class group.
type Validator func(value string) bool

var (
	arbitraryValueRegex = regexp.MustCompile(`(?i)^\[(?:([a-z-]+):)?(.+)\]$`)
	fractionRegex       = regexp.MustCompile(`^\d+/\d+$`)
	numberRegex         = regexp.MustCompile(`^-?(\d+(\.\d+)?|\.\d+)$`)
	tshirtUnitRegex     = regexp.MustCompile(`^(\d+(\.\d+)?)?(xs|sm|md|lg|xl)$`)
	lengthUnitRegex     = regexp.MustCompile(`\d+(%|px|r?em|[sdl]?v([hwib]|min|max)|pt|pc|in|cm|mm|cap|ch|ex|r?lh|cq(w|h|i|b|min|max))|\b(calc|min|max|clamp)\(.+\)|^0$`)
	colorFunctionRegex  = regexp.MustCompile(`^(rgba?|hsla?|hwb|(ok)?(lab|lch))\(.+\)$`)
	shadowRegex         = regexp.MustCompile(`^(inset_)?-?((\d+)?\.?(\d+)[a-z]+|0)_-?((\d+)?\.?(\d+)[a-z]+|0)`)
	imageRegex          = regexp.MustCompile(`^(url|image|image-set|cross-fade|element|(repeating-)?(linear|radial|conic)-gradient)\(.+\)$`)
)

var stringLengths = map[string]bool{"px": true, "full": true, "screen": true}

// IsLength matches plain numbers, fractions and the keyword lengths px, full and screen.
func IsLength(value string) bool {
	return IsNumber(value) || stringLengths[value] || fractionRegex.MatchString(value)
}

// IsArbitraryLength matches bracketed lengths such as [3px] or [length:var(--x)].
func IsArbitraryLength(value string) bool {
	return arbitraryValue(value, []string{"length"}, isLengthOnly)
}

// IsNumber matches plain decimals such as 4, 0.5 or .5. Exponents, hex
// and words like inf are not class values.
func IsNumber(value string) bool { return numberRegex.MatchString(value) }

// IsArbitraryNumber matches bracketed numbers such as [1.5] or [number:var(--n)].
func IsArbitraryNumber(value string) bool {
	return arbitraryValue(value, []string{"number"}, IsNumber)
}

// IsInteger matches whole numbers.
func IsInteger(value string) bool {
	if !IsNumber(value) {
		return false
	}
	f, _ := strconv.ParseFloat(value, 64)
	return f == math.Trunc(f) && !math.IsInf(f, 0)
}

// IsPercent matches numbers with a trailing percent sign.
func IsPercent(value string) bool {
	return strings.HasSuffix(value, "%") && IsNumber(strings.TrimSuffix(value, "%"))
}

// IsArbitraryValue matches any bracketed value.
func IsArbitraryValue(value string) bool {
	return arbitraryValueRegex.MatchString(value)
}

// IsTshirtSize matches xs, sm, md, lg, xl with an optional numeric multiplier (2xl, 1.5xl).
func IsTshirtSize(value string) bool {
	return tshirtUnitRegex.MatchString(value)
}

// IsArbitrarySize matches bracketed values labelled as a size.
func IsArbitrarySize(value string) bool {
	return arbitraryValue(value, []string{"length", "size", "percentage"}, isNever)
}

// IsArbitraryPosition matches bracketed values labelled as a position.
func IsArbitraryPosition(value string) bool {
	return arbitraryValue(value, []string{"position"}, isNever)
}

// IsArbitraryImage matches bracketed url() and gradient values.
func IsArbitraryImage(value string) bool {
	return arbitraryValue(value, []string{"image", "url"}, isImage)
}

// IsArbitraryShadow matches bracketed box-shadow values such as [0_35px_60px_-15px_rgba(0,0,0,0.3)].
func IsArbitraryShadow(value string) bool {
	return arbitraryValue(value, nil, isShadow)
}

// IsAny matches everything. Used for color scales.
func IsAny(string) bool { return true }

func isNever(string) bool { return false }

func isLengthOnly(value string) bool {
	return lengthUnitRegex.MatchString(value) && !colorFunctionRegex.MatchString(value)
}

func isShadow(value string) bool { return shadowRegex.MatchString(value) }

func isImage(value string) bool { return imageRegex.MatchString(value) }

// arbitraryValue matches a bracketed value. An explicit type label must be one
// of labels; without a label the content is checked by test.
func arbitraryValue(value string, labels []string, test Validator) bool {
	m := arbitraryValueRegex.FindStringSubmatch(value)
	if m == nil {
		return false
	}
	if m[1] != "" {
		for _, l := range labels {
			if m[1] == l {
				return true
			}
		}
		return false
	}
	return test(m[2])
}

// validatorsByName lists the validators an Extension may refer to.
var validatorsByName = map[string]Validator{
	"any":                IsAny,
	"length":             IsLength,
	"number":             IsNumber,
	"integer":            IsInteger,
	"percent":            IsPercent,
	"tshirt":             IsTshirtSize,
	"arbitrary":          IsArbitraryValue,
	"arbitrary-length":   IsArbitraryLength,
	"arbitrary-number":   IsArbitraryNumber,
	"arbitrary-size":     IsArbitrarySize,
	"arbitrary-position": IsArbitraryPosition,
	"arbitrary-image":    IsArbitraryImage,
	"arbitrary-shadow":   IsArbitraryShadow,
}
