package ui

import "github.com/a-h/templ"

type LabelConfig struct {
	BaseConfig
	For string
}

func (c *LabelConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type LabelOption = Option[*LabelConfig]

func LabelFor(id string) LabelOption {
	return func(c *LabelConfig) { c.For = id }
}

func Label(opts ...LabelOption) templ.Attributes {
	c := apply(&LabelConfig{}, opts)

	attrs := c.attributes("text-sm font-medium leading-none peer-disabled:cursor-not-allowed peer-disabled:opacity-70")
	if c.For != "" {
		attrs["for"] = c.For
	}
	return attrs
}
