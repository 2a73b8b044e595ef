package cn

import "fmt"

// scale is a reusable list of rule values: strings, string slices, validators
// or nested scales.
type scale []any

func group(id string, rules ...Rule) Group { return Group{ID: id, Rules: rules} }

func on(prefix string, values ...any) Rule {
	r := Rule{Prefix: prefix}
	r.add(values)
	return r
}

func lit(values ...any) Rule { return on("", values...) }

func (r *Rule) add(values []any) {
	for _, v := range values {
		switch v := v.(type) {
		case string:
			r.Values = append(r.Values, v)
		case []string:
			r.Values = append(r.Values, v...)
		case Validator:
			r.Validators = append(r.Validators, v)
		case func(string) bool:
			r.Validators = append(r.Validators, v)
		case scale:
			r.add(v)
		case Rule:
			r.Rules = append(r.Rules, v)
		default:
			panic(fmt.Sprintf("cn: unsupported rule value %T", v))
		}
	}
}

var (
	colors         = scale{IsAny}
	spacing        = scale{IsLength, IsArbitraryLength}
	spacingArb     = scale{IsArbitraryValue, spacing}
	spacingAutoArb = scale{"auto", IsArbitraryValue, spacing}
	inset          = spacingAutoArb
	borderWidth    = scale{"", IsLength, IsArbitraryLength}
	borderRadius   = scale{"none", "", "full", IsTshirtSize, IsArbitraryValue}
	blur           = scale{"none", "", IsTshirtSize, IsArbitraryValue}
	opacity        = scale{IsNumber, IsArbitraryValue}
	numberArb      = scale{IsNumber, IsArbitraryValue}
	zeroAndEmpty   = scale{"", "0", IsArbitraryValue}
	overscroll     = []string{"auto", "contain", "none"}
	overflow       = []string{"auto", "hidden", "clip", "visible", "scroll"}
	lineStyles     = []string{"solid", "dashed", "dotted", "double", "none"}
	align          = []string{"start", "end", "center", "between", "around", "evenly", "stretch"}
	breaks         = []string{"auto", "avoid", "all", "avoid-page", "page", "left", "right", "column"}
	positions      = []string{"bottom", "center", "left", "left-bottom", "left-top", "right", "right-bottom", "right-top", "top"}
	blendModes     = []string{
		"normal", "multiply", "screen", "overlay", "darken", "lighten", "color-dodge", "color-burn",
		"hard-light", "soft-light", "difference", "exclusion", "hue", "saturation", "color", "luminosity",
	}
	gridColRow = scale{"auto", on("span", "full", IsInteger, IsArbitraryValue), IsArbitraryValue}
)

// defaultGroups is the Tailwind CSS v3 class table.
func defaultGroups() []Group {
	return []Group{
		// Layout
		group("aspect", on("aspect", "auto", "square", "video", IsArbitraryValue)),
		group("container", lit("container")),
		group("columns", on("columns", IsTshirtSize, IsInteger, IsArbitraryValue)),
		group("break-after", on("break-after", breaks)),
		group("break-before", on("break-before", breaks)),
		group("break-inside", on("break-inside", "auto", "avoid", "avoid-page", "avoid-column")),
		group("box-decoration", on("box-decoration", "slice", "clone")),
		group("box", on("box", "border", "content")),
		group("display", lit(
			"block", "inline-block", "inline", "flex", "inline-flex", "table", "inline-table",
			"table-caption", "table-cell", "table-column", "table-column-group", "table-footer-group",
			"table-header-group", "table-row-group", "table-row", "flow-root", "grid", "inline-grid",
			"contents", "list-item", "hidden",
		)),
		group("float", on("float", "right", "left", "none", "start", "end")),
		group("clear", on("clear", "left", "right", "both", "none", "start", "end")),
		group("isolation", lit("isolate", "isolation-auto")),
		group("object-fit", on("object", "contain", "cover", "fill", "none", "scale-down")),
		group("object-position", on("object", positions, IsArbitraryValue)),
		group("overflow", on("overflow", overflow)),
		group("overflow-x", on("overflow-x", overflow)),
		group("overflow-y", on("overflow-y", overflow)),
		group("overscroll", on("overscroll", overscroll)),
		group("overscroll-x", on("overscroll-x", overscroll)),
		group("overscroll-y", on("overscroll-y", overscroll)),
		group("position", lit("static", "fixed", "absolute", "relative", "sticky")),
		group("inset", on("inset", inset)),
		group("inset-x", on("inset-x", inset)),
		group("inset-y", on("inset-y", inset)),
		group("start", on("start", inset)),
		group("end", on("end", inset)),
		group("top", on("top", inset)),
		group("right", on("right", inset)),
		group("bottom", on("bottom", inset)),
		group("left", on("left", inset)),
		group("visibility", lit("visible", "invisible", "collapse")),
		group("z", on("z", "auto", IsInteger, IsArbitraryValue)),

		// Flexbox and grid
		group("basis", on("basis", spacingAutoArb)),
		group("flex-direction", on("flex", "row", "row-reverse", "col", "col-reverse")),
		group("flex-wrap", on("flex", "wrap", "wrap-reverse", "nowrap")),
		group("flex", on("flex", "1", "auto", "initial", "none", IsArbitraryValue)),
		group("grow", on("grow", zeroAndEmpty)),
		group("shrink", on("shrink", zeroAndEmpty)),
		group("order", on("order", "first", "last", "none", IsInteger, IsArbitraryValue)),
		group("grid-cols", on("grid-cols", "none", IsInteger, IsArbitraryValue)),
		group("col-start-end", on("col", gridColRow)),
		group("col-start", on("col-start", "auto", IsNumber, IsArbitraryValue)),
		group("col-end", on("col-end", "auto", IsNumber, IsArbitraryValue)),
		group("grid-rows", on("grid-rows", "none", IsInteger, IsArbitraryValue)),
		group("row-start-end", on("row", gridColRow)),
		group("row-start", on("row-start", "auto", IsNumber, IsArbitraryValue)),
		group("row-end", on("row-end", "auto", IsNumber, IsArbitraryValue)),
		group("grid-flow", on("grid-flow", "row", "col", "dense", "row-dense", "col-dense")),
		group("auto-cols", on("auto-cols", "auto", "min", "max", "fr", IsArbitraryValue)),
		group("auto-rows", on("auto-rows", "auto", "min", "max", "fr", IsArbitraryValue)),
		group("gap", on("gap", spacingArb)),
		group("gap-x", on("gap-x", spacingArb)),
		group("gap-y", on("gap-y", spacingArb)),
		group("justify-content", on("justify", "normal", align)),
		group("justify-items", on("justify-items", "start", "end", "center", "stretch")),
		group("justify-self", on("justify-self", "auto", "start", "end", "center", "stretch")),
		group("align-content", on("content", "normal", "baseline", align)),
		group("align-items", on("items", "start", "end", "center", "baseline", "stretch")),
		group("align-self", on("self", "auto", "start", "end", "center", "stretch", "baseline")),
		group("place-content", on("place-content", "baseline", align)),
		group("place-items", on("place-items", "start", "end", "center", "baseline", "stretch")),
		group("place-self", on("place-self", "auto", "start", "end", "center", "stretch")),

		// Spacing
		group("p", on("p", spacingArb)),
		group("px", on("px", spacingArb)),
		group("py", on("py", spacingArb)),
		group("ps", on("ps", spacingArb)),
		group("pe", on("pe", spacingArb)),
		group("pt", on("pt", spacingArb)),
		group("pr", on("pr", spacingArb)),
		group("pb", on("pb", spacingArb)),
		group("pl", on("pl", spacingArb)),
		group("m", on("m", spacingAutoArb)),
		group("mx", on("mx", spacingAutoArb)),
		group("my", on("my", spacingAutoArb)),
		group("ms", on("ms", spacingAutoArb)),
		group("me", on("me", spacingAutoArb)),
		group("mt", on("mt", spacingAutoArb)),
		group("mr", on("mr", spacingAutoArb)),
		group("mb", on("mb", spacingAutoArb)),
		group("ml", on("ml", spacingAutoArb)),
		group("space-x", on("space-x", spacingArb)),
		group("space-x-reverse", lit("space-x-reverse")),
		group("space-y", on("space-y", spacingArb)),
		group("space-y-reverse", lit("space-y-reverse")),

		// Sizing
		group("w", on("w", "auto", "min", "max", "fit", "svw", "lvw", "dvw", IsArbitraryValue, spacing)),
		group("min-w", on("min-w", "min", "max", "fit", IsArbitraryValue, IsLength)),
		group("max-w", on("max-w", "0", "none", "full", "min", "max", "fit", "prose", on("screen", IsTshirtSize), IsTshirtSize, IsArbitraryValue)),
		group("h", on("h", "auto", "min", "max", "fit", "svh", "lvh", "dvh", IsArbitraryValue, spacing)),
		group("min-h", on("min-h", "min", "max", "fit", "svh", "lvh", "dvh", IsArbitraryValue, IsLength)),
		group("max-h", on("max-h", "min", "max", "fit", "svh", "lvh", "dvh", IsArbitraryValue, spacing)),
		group("size", on("size", "auto", "min", "max", "fit", IsArbitraryValue, spacing)),

		// Typography
		group("font-size", on("text", "base", IsTshirtSize, IsArbitraryLength)),
		group("font-smoothing", lit("antialiased", "subpixel-antialiased")),
		group("font-style", lit("italic", "not-italic")),
		group("font-weight", on("font", "thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black", IsArbitraryNumber)),
		group("font-family", on("font", IsAny)),
		group("fvn-normal", lit("normal-nums")),
		group("fvn-ordinal", lit("ordinal")),
		group("fvn-slashed-zero", lit("slashed-zero")),
		group("fvn-figure", lit("lining-nums", "oldstyle-nums")),
		group("fvn-spacing", lit("proportional-nums", "tabular-nums")),
		group("fvn-fraction", lit("diagonal-fractions", "stacked-fractions")),
		group("tracking", on("tracking", "tighter", "tight", "normal", "wide", "wider", "widest", IsArbitraryValue)),
		group("line-clamp", on("line-clamp", "none", IsNumber, IsArbitraryNumber)),
		group("leading", on("leading", "none", "tight", "snug", "normal", "relaxed", "loose", IsLength, IsArbitraryValue)),
		group("list-image", on("list-image", "none", IsArbitraryValue)),
		group("list-style-type", on("list", "none", "disc", "decimal", IsArbitraryValue)),
		group("list-style-position", on("list", "inside", "outside")),
		group("placeholder-color", on("placeholder", colors)),
		group("placeholder-opacity", on("placeholder-opacity", opacity)),
		group("text-alignment", on("text", "left", "center", "right", "justify", "start", "end")),
		group("text-color", on("text", colors)),
		group("text-opacity", on("text-opacity", opacity)),
		group("text-decoration", lit("underline", "overline", "line-through", "no-underline")),
		group("text-decoration-style", on("decoration", lineStyles, "wavy")),
		group("text-decoration-thickness", on("decoration", "auto", "from-font", IsLength, IsArbitraryLength)),
		group("underline-offset", on("underline-offset", "auto", IsLength, IsArbitraryValue)),
		group("text-decoration-color", on("decoration", colors)),
		group("text-transform", lit("uppercase", "lowercase", "capitalize", "normal-case")),
		group("text-overflow", lit("truncate", "text-ellipsis", "text-clip")),
		group("text-wrap", on("text", "wrap", "nowrap", "balance", "pretty")),
		group("indent", on("indent", spacingArb)),
		group("vertical-align", on("align", "baseline", "top", "middle", "bottom", "text-top", "text-bottom", "sub", "super", IsArbitraryValue)),
		group("whitespace", on("whitespace", "normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces")),
		group("break", on("break", "normal", "words", "all", "keep")),
		group("hyphens", on("hyphens", "none", "manual", "auto")),
		group("content", on("content", "none", IsArbitraryValue)),

		// Backgrounds
		group("bg-attachment", on("bg", "fixed", "local", "scroll")),
		group("bg-clip", on("bg-clip", "border", "padding", "content", "text")),
		group("bg-opacity", on("bg-opacity", opacity)),
		group("bg-origin", on("bg-origin", "border", "padding", "content")),
		group("bg-position", on("bg", positions, IsArbitraryPosition)),
		group("bg-repeat", on("bg", "no-repeat", on("repeat", "", "x", "y", "round", "space"))),
		group("bg-size", on("bg", "auto", "cover", "contain", IsArbitrarySize)),
		group("bg-image", on("bg", "none", on("gradient-to", "t", "tr", "r", "br", "b", "bl", "l", "tl"), IsArbitraryImage)),
		group("bg-color", on("bg", colors)),
		group("gradient-from-pos", on("from", IsPercent, IsArbitraryLength)),
		group("gradient-via-pos", on("via", IsPercent, IsArbitraryLength)),
		group("gradient-to-pos", on("to", IsPercent, IsArbitraryLength)),
		group("gradient-from", on("from", colors)),
		group("gradient-via", on("via", colors)),
		group("gradient-to", on("to", colors)),

		// Borders
		group("rounded", on("rounded", borderRadius)),
		group("rounded-s", on("rounded-s", borderRadius)),
		group("rounded-e", on("rounded-e", borderRadius)),
		group("rounded-t", on("rounded-t", borderRadius)),
		group("rounded-r", on("rounded-r", borderRadius)),
		group("rounded-b", on("rounded-b", borderRadius)),
		group("rounded-l", on("rounded-l", borderRadius)),
		group("rounded-ss", on("rounded-ss", borderRadius)),
		group("rounded-se", on("rounded-se", borderRadius)),
		group("rounded-ee", on("rounded-ee", borderRadius)),
		group("rounded-es", on("rounded-es", borderRadius)),
		group("rounded-tl", on("rounded-tl", borderRadius)),
		group("rounded-tr", on("rounded-tr", borderRadius)),
		group("rounded-br", on("rounded-br", borderRadius)),
		group("rounded-bl", on("rounded-bl", borderRadius)),
		group("border-w", on("border", borderWidth)),
		group("border-w-x", on("border-x", borderWidth)),
		group("border-w-y", on("border-y", borderWidth)),
		group("border-w-s", on("border-s", borderWidth)),
		group("border-w-e", on("border-e", borderWidth)),
		group("border-w-t", on("border-t", borderWidth)),
		group("border-w-r", on("border-r", borderWidth)),
		group("border-w-b", on("border-b", borderWidth)),
		group("border-w-l", on("border-l", borderWidth)),
		group("border-opacity", on("border-opacity", opacity)),
		group("border-style", on("border", lineStyles, "hidden")),
		group("divide-x", on("divide-x", borderWidth)),
		group("divide-x-reverse", lit("divide-x-reverse")),
		group("divide-y", on("divide-y", borderWidth)),
		group("divide-y-reverse", lit("divide-y-reverse")),
		group("divide-opacity", on("divide-opacity", opacity)),
		group("divide-style", on("divide", lineStyles)),
		group("border-color", on("border", colors)),
		group("border-color-x", on("border-x", colors)),
		group("border-color-y", on("border-y", colors)),
		group("border-color-s", on("border-s", colors)),
		group("border-color-e", on("border-e", colors)),
		group("border-color-t", on("border-t", colors)),
		group("border-color-r", on("border-r", colors)),
		group("border-color-b", on("border-b", colors)),
		group("border-color-l", on("border-l", colors)),
		group("divide-color", on("divide", colors)),
		group("outline-style", on("outline", "", lineStyles)),
		group("outline-offset", on("outline-offset", IsLength, IsArbitraryValue)),
		group("outline-w", on("outline", IsLength, IsArbitraryLength)),
		group("outline-color", on("outline", colors)),
		group("ring-w", on("ring", borderWidth)),
		group("ring-w-inset", lit("ring-inset")),
		group("ring-color", on("ring", colors)),
		group("ring-opacity", on("ring-opacity", opacity)),
		group("ring-offset-w", on("ring-offset", IsLength, IsArbitraryLength)),
		group("ring-offset-color", on("ring-offset", colors)),

		// Effects
		group("shadow", on("shadow", "", "inner", "none", IsTshirtSize, IsArbitraryShadow)),
		group("shadow-color", on("shadow", IsAny)),
		group("opacity", on("opacity", opacity)),
		group("mix-blend", on("mix-blend", blendModes, "plus-lighter", "plus-darker")),
		group("bg-blend", on("bg-blend", blendModes)),

		// Filters
		group("filter", on("filter", "", "none")),
		group("blur", on("blur", blur)),
		group("brightness", on("brightness", numberArb)),
		group("contrast", on("contrast", numberArb)),
		group("drop-shadow", on("drop-shadow", "", "none", IsTshirtSize, IsArbitraryValue)),
		group("grayscale", on("grayscale", zeroAndEmpty)),
		group("hue-rotate", on("hue-rotate", numberArb)),
		group("invert", on("invert", zeroAndEmpty)),
		group("saturate", on("saturate", numberArb)),
		group("sepia", on("sepia", zeroAndEmpty)),
		group("backdrop-filter", on("backdrop-filter", "", "none")),
		group("backdrop-blur", on("backdrop-blur", blur)),
		group("backdrop-brightness", on("backdrop-brightness", numberArb)),
		group("backdrop-contrast", on("backdrop-contrast", numberArb)),
		group("backdrop-grayscale", on("backdrop-grayscale", zeroAndEmpty)),
		group("backdrop-hue-rotate", on("backdrop-hue-rotate", numberArb)),
		group("backdrop-invert", on("backdrop-invert", zeroAndEmpty)),
		group("backdrop-opacity", on("backdrop-opacity", opacity)),
		group("backdrop-saturate", on("backdrop-saturate", numberArb)),
		group("backdrop-sepia", on("backdrop-sepia", zeroAndEmpty)),

		// Tables
		group("border-collapse", on("border", "collapse", "separate")),
		group("border-spacing", on("border-spacing", spacingArb)),
		group("border-spacing-x", on("border-spacing-x", spacingArb)),
		group("border-spacing-y", on("border-spacing-y", spacingArb)),
		group("table-layout", on("table", "auto", "fixed")),
		group("caption", on("caption", "top", "bottom")),

		// Transitions and animation
		group("transition", on("transition", "none", "all", "", "colors", "opacity", "shadow", "transform", IsArbitraryValue)),
		group("duration", on("duration", numberArb)),
		group("ease", on("ease", "linear", "in", "out", "in-out", IsArbitraryValue)),
		group("delay", on("delay", numberArb)),
		group("animate", on("animate", "none", "spin", "ping", "pulse", "bounce", IsArbitraryValue)),

		// Transforms
		group("transform", on("transform", "", "gpu", "none")),
		group("scale", on("scale", numberArb)),
		group("scale-x", on("scale-x", numberArb)),
		group("scale-y", on("scale-y", numberArb)),
		group("rotate", on("rotate", IsInteger, IsArbitraryValue)),
		group("translate-x", on("translate-x", spacingArb)),
		group("translate-y", on("translate-y", spacingArb)),
		group("skew-x", on("skew-x", numberArb)),
		group("skew-y", on("skew-y", numberArb)),
		group("transform-origin", on("origin", "center", "top", "top-right", "right", "bottom-right", "bottom", "bottom-left", "left", "top-left", IsArbitraryValue)),

		// Interactivity
		group("accent", on("accent", "auto", colors)),
		group("appearance", on("appearance", "none", "auto")),
		group("cursor", on("cursor", "auto", "default", "pointer", "wait", "text", "move", "help", "not-allowed", "none", "context-menu", "progress", "cell", "crosshair", "vertical-text", "alias", "copy", "no-drop", "grab", "grabbing", "all-scroll", "col-resize", "row-resize", "n-resize", "e-resize", "s-resize", "w-resize", "ne-resize", "nw-resize", "se-resize", "sw-resize", "ew-resize", "ns-resize", "nesw-resize", "nwse-resize", "zoom-in", "zoom-out", IsArbitraryValue)),
		group("caret-color", on("caret", colors)),
		group("pointer-events", on("pointer-events", "none", "auto")),
		group("resize", on("resize", "none", "y", "x", "")),
		group("scroll-behavior", on("scroll", "auto", "smooth")),
		group("scroll-m", on("scroll-m", spacingArb)),
		group("scroll-mx", on("scroll-mx", spacingArb)),
		group("scroll-my", on("scroll-my", spacingArb)),
		group("scroll-ms", on("scroll-ms", spacingArb)),
		group("scroll-me", on("scroll-me", spacingArb)),
		group("scroll-mt", on("scroll-mt", spacingArb)),
		group("scroll-mr", on("scroll-mr", spacingArb)),
		group("scroll-mb", on("scroll-mb", spacingArb)),
		group("scroll-ml", on("scroll-ml", spacingArb)),
		group("scroll-p", on("scroll-p", spacingArb)),
		group("scroll-px", on("scroll-px", spacingArb)),
		group("scroll-py", on("scroll-py", spacingArb)),
		group("scroll-ps", on("scroll-ps", spacingArb)),
		group("scroll-pe", on("scroll-pe", spacingArb)),
		group("scroll-pt", on("scroll-pt", spacingArb)),
		group("scroll-pr", on("scroll-pr", spacingArb)),
		group("scroll-pb", on("scroll-pb", spacingArb)),
		group("scroll-pl", on("scroll-pl", spacingArb)),
		group("snap-align", on("snap", "start", "end", "center", "align-none")),
		group("snap-stop", on("snap", "normal", "always")),
		group("snap-type", on("snap", "none", "x", "y", "both")),
		group("snap-strictness", on("snap", "mandatory", "proximity")),
		group("touch", on("touch", "auto", "none", "manipulation")),
		group("touch-x", on("touch-pan", "x", "left", "right")),
		group("touch-y", on("touch-pan", "y", "up", "down")),
		group("touch-pz", lit("touch-pinch-zoom")),
		group("select", on("select", "none", "text", "all", "auto")),
		group("will-change", on("will-change", "auto", "scroll", "contents", "transform", IsArbitraryValue)),

		// SVG
		group("fill", on("fill", colors, "none")),
		group("stroke-w", on("stroke", IsLength, IsArbitraryLength, IsArbitraryNumber)),
		group("stroke", on("stroke", colors, "none")),

		// Accessibility
		group("sr", lit("sr-only", "not-sr-only")),
		group("forced-color-adjust", on("forced-color-adjust", "auto", "none")),
	}
}

func defaultConflicts() map[string][]string {
	return map[string][]string{
		"overflow":         {"overflow-x", "overflow-y"},
		"overscroll":       {"overscroll-x", "overscroll-y"},
		"inset":            {"inset-x", "inset-y", "start", "end", "top", "right", "bottom", "left"},
		"inset-x":          {"right", "left"},
		"inset-y":          {"top", "bottom"},
		"flex":             {"basis", "grow", "shrink"},
		"gap":              {"gap-x", "gap-y"},
		"p":                {"px", "py", "ps", "pe", "pt", "pr", "pb", "pl"},
		"px":               {"pr", "pl"},
		"py":               {"pt", "pb"},
		"m":                {"mx", "my", "ms", "me", "mt", "mr", "mb", "ml"},
		"mx":               {"mr", "ml"},
		"my":               {"mt", "mb"},
		"size":             {"w", "h"},
		"font-size":        {"leading"},
		"fvn-normal":       {"fvn-ordinal", "fvn-slashed-zero", "fvn-figure", "fvn-spacing", "fvn-fraction"},
		"fvn-ordinal":      {"fvn-normal"},
		"fvn-slashed-zero": {"fvn-normal"},
		"fvn-figure":       {"fvn-normal"},
		"fvn-spacing":      {"fvn-normal"},
		"fvn-fraction":     {"fvn-normal"},
		"line-clamp":       {"display", "overflow"},
		"rounded": {
			"rounded-s", "rounded-e", "rounded-t", "rounded-r", "rounded-b", "rounded-l",
			"rounded-ss", "rounded-se", "rounded-ee", "rounded-es",
			"rounded-tl", "rounded-tr", "rounded-br", "rounded-bl",
		},
		"rounded-s":        {"rounded-ss", "rounded-es"},
		"rounded-e":        {"rounded-se", "rounded-ee"},
		"rounded-t":        {"rounded-tl", "rounded-tr"},
		"rounded-r":        {"rounded-tr", "rounded-br"},
		"rounded-b":        {"rounded-br", "rounded-bl"},
		"rounded-l":        {"rounded-tl", "rounded-bl"},
		"border-spacing":   {"border-spacing-x", "border-spacing-y"},
		"border-w":         {"border-w-s", "border-w-e", "border-w-t", "border-w-r", "border-w-b", "border-w-l"},
		"border-w-x":       {"border-w-r", "border-w-l"},
		"border-w-y":       {"border-w-t", "border-w-b"},
		"border-color":     {"border-color-s", "border-color-e", "border-color-t", "border-color-r", "border-color-b", "border-color-l"},
		"border-color-x":   {"border-color-r", "border-color-l"},
		"border-color-y":   {"border-color-t", "border-color-b"},
		"scroll-m":         {"scroll-mx", "scroll-my", "scroll-ms", "scroll-me", "scroll-mt", "scroll-mr", "scroll-mb", "scroll-ml"},
		"scroll-mx":        {"scroll-mr", "scroll-ml"},
		"scroll-my":        {"scroll-mt", "scroll-mb"},
		"scroll-p":         {"scroll-px", "scroll-py", "scroll-ps", "scroll-pe", "scroll-pt", "scroll-pr", "scroll-pb", "scroll-pl"},
		"scroll-px":        {"scroll-pr", "scroll-pl"},
		"scroll-py":        {"scroll-pt", "scroll-pb"},
		"touch":            {"touch-x", "touch-y", "touch-pz"},
		"touch-x":          {"touch"},
		"touch-y":          {"touch"},
		"touch-pz":         {"touch"},
	}
}

// DefaultConfig returns the built-in Tailwind CSS v3 classification.
func DefaultConfig() Config {
	return Config{
		Separator:        ":",
		Groups:           defaultGroups(),
		Conflicts:        defaultConflicts(),
		PostfixConflicts: map[string][]string{"font-size": {"leading"}},
	}
}
