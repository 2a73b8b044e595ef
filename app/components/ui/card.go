package ui

import "github.com/a-h/templ"

// Card
type CardConfig struct{ BaseConfig }

func (c *CardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardOption = Option[*CardConfig]

func Card(opts ...CardOption) templ.Attributes {
	return apply(&CardConfig{}, opts).attributes("rounded-lg border bg-card text-card-foreground shadow-sm")
}

// CardHeader
type CardHeaderConfig struct{ BaseConfig }

func (c *CardHeaderConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardHeaderOption = Option[*CardHeaderConfig]

func CardHeader(opts ...CardHeaderOption) templ.Attributes {
	return apply(&CardHeaderConfig{}, opts).attributes("flex flex-col space-y-1.5 p-6")
}

// CardTitle
type CardTitleConfig struct{ BaseConfig }

func (c *CardTitleConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardTitleOption = Option[*CardTitleConfig]

func CardTitle(opts ...CardTitleOption) templ.Attributes {
	return apply(&CardTitleConfig{}, opts).attributes("text-2xl font-semibold leading-none tracking-tight")
}

// CardDescription
type CardDescriptionConfig struct{ BaseConfig }

func (c *CardDescriptionConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardDescriptionOption = Option[*CardDescriptionConfig]

func CardDescription(opts ...CardDescriptionOption) templ.Attributes {
	return apply(&CardDescriptionConfig{}, opts).attributes("text-sm text-muted-foreground")
}

// CardContent
type CardContentConfig struct{ BaseConfig }

func (c *CardContentConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardContentOption = Option[*CardContentConfig]

func CardContent(opts ...CardContentOption) templ.Attributes {
	return apply(&CardContentConfig{}, opts).attributes("p-6 pt-0")
}

// CardFooter
type CardFooterConfig struct{ BaseConfig }

func (c *CardFooterConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type CardFooterOption = Option[*CardFooterConfig]

func CardFooter(opts ...CardFooterOption) templ.Attributes {
	return apply(&CardFooterConfig{}, opts).attributes("flex items-center p-6 pt-0")
}
