package ui

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/cn/cn"
)

// 1. Define Typed Enums
type ButtonVariant string

const (
	ButtonVariantDefault     ButtonVariant = "default"
	ButtonVariantPrimary     ButtonVariant = "primary"
	ButtonVariantDestructive ButtonVariant = "destructive"
	ButtonVariantOutline     ButtonVariant = "outline"
	ButtonVariantSecondary   ButtonVariant = "secondary"
	ButtonVariantGhost       ButtonVariant = "ghost"
	ButtonVariantLink        ButtonVariant = "link"
)

type ButtonSize string

const (
	ButtonSizeDefault ButtonSize = "default"
	ButtonSizeSm      ButtonSize = "sm"
	ButtonSizeLg      ButtonSize = "lg"
	ButtonSizeIcon    ButtonSize = "icon"
)

// 2. Define Component Config
type ButtonConfig struct {
	BaseConfig // Embeds Classes, Attrs
	Variant    ButtonVariant
	Size       ButtonSize
	Disabled   bool
}

// Implement ConfigProvider interface
func (c *ButtonConfig) GetBase() *BaseConfig { return &c.BaseConfig }

// 3. Define Option Type Alias (for better DX)
type ButtonOption = Option[*ButtonConfig]

// 4. Define Component-Specific Options
func Variant(v ButtonVariant) ButtonOption {
	return func(c *ButtonConfig) { c.Variant = v }
}

func Size(s ButtonSize) ButtonOption {
	return func(c *ButtonConfig) { c.Size = s }
}

func Disabled(b bool) ButtonOption {
	return func(c *ButtonConfig) { c.Disabled = b }
}

// 5. Implementation
func Button(opts ...ButtonOption) templ.Attributes {
	c := apply(&ButtonConfig{
		Variant: ButtonVariantDefault,
		Size:    ButtonSizeDefault,
	}, opts)

	// Base classes + Variant classes + User overrides
	attrs := c.attributes(
		"inline-flex items-center justify-center whitespace-nowrap rounded-md text-sm font-medium ring-offset-background transition-colors focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:pointer-events-none disabled:opacity-50",
		buttonVariants[c.Variant],
		buttonSizes[c.Size],
	)
	if _, ok := attrs["type"]; !ok {
		attrs["type"] = "button"
	}
	if c.Disabled {
		attrs["disabled"] = true
	}
	return attrs
}

var buttonVariants = map[ButtonVariant]cn.ClassValue{
	ButtonVariantDefault:     "bg-primary text-primary-foreground hover:bg-primary/90",
	ButtonVariantPrimary:     "bg-primary text-primary-foreground hover:bg-primary/90",
	ButtonVariantDestructive: "bg-destructive text-destructive-foreground hover:bg-destructive/90",
	ButtonVariantOutline:     "border border-input bg-background hover:bg-accent hover:text-accent-foreground",
	ButtonVariantSecondary:   "bg-secondary text-secondary-foreground hover:bg-secondary/80",
	ButtonVariantGhost:       "hover:bg-accent hover:text-accent-foreground",
	ButtonVariantLink:        "text-primary underline-offset-4 hover:underline",
}

var buttonSizes = map[ButtonSize]cn.ClassValue{
	ButtonSizeDefault: "h-10 px-4 py-2",
	ButtonSizeSm:      "h-9 rounded-md px-3",
	ButtonSizeLg:      "h-11 rounded-md px-8",
	ButtonSizeIcon:    "h-10 w-10",
}
