package ui

import "github.com/a-h/templ"

type InputConfig struct {
	BaseConfig
	Type        string
	Placeholder string
	Value       string
	Invalid     bool
}

func (c *InputConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type InputOption = Option[*InputConfig]

func InputType(t string) InputOption {
	return func(c *InputConfig) { c.Type = t }
}

func InputPlaceholder(s string) InputOption {
	return func(c *InputConfig) { c.Placeholder = s }
}

func InputValue(s string) InputOption {
	return func(c *InputConfig) { c.Value = s }
}

// InputInvalid marks the field as failing validation.
func InputInvalid(b bool) InputOption {
	return func(c *InputConfig) { c.Invalid = b }
}

func Input(opts ...InputOption) templ.Attributes {
	c := apply(&InputConfig{
		Type: "text", // Default
	}, opts)

	attrs := c.attributes(
		"flex h-10 w-full rounded-md border border-input bg-background px-3 py-2 text-base ring-offset-background file:border-0 file:bg-transparent file:text-sm file:font-medium file:text-foreground placeholder:text-muted-foreground focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-ring focus-visible:ring-offset-2 disabled:cursor-not-allowed disabled:opacity-50 md:text-sm",
		templ.KV("border-destructive focus-visible:ring-destructive", c.Invalid),
	)
	if c.Type != "" {
		attrs["type"] = c.Type
	}
	if c.Placeholder != "" {
		attrs["placeholder"] = c.Placeholder
	}
	if c.Value != "" {
		attrs["value"] = c.Value
	}
	if c.Invalid {
		attrs["aria-invalid"] = "true"
	}
	return attrs
}
