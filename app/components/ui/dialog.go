package ui

import (
	"encoding/json"

	"github.com/a-h/templ"
)

// Constants
const (
	HookNameDialog = "Dialog"
	HookEventClose = "close"
)

// 1. Component Config
type DialogConfig struct {
	BaseConfig
	Open          bool
	CloseOnEscape bool
}

// 2. Hook Config (Wire Protocol)
type dialogHookConfig struct {
	Open          bool `json:"open"`
	CloseOnEscape bool `json:"closeOnEscape"`
}

// Implement ConfigProvider interface
func (c *DialogConfig) GetBase() *BaseConfig { return &c.BaseConfig }

// Options
type DialogOption = Option[*DialogConfig]

func DialogOpen(b bool) DialogOption {
	return func(c *DialogConfig) { c.Open = b }
}

func DialogCloseOnEscape(b bool) DialogOption {
	return func(c *DialogConfig) { c.CloseOnEscape = b }
}

// 3. Implementation
func Dialog(opts ...DialogOption) templ.Attributes {
	c := apply(&DialogConfig{}, opts)

	state := "closed"
	if c.Open {
		state = "open"
	}

	attrs := c.attributes(
		"fixed left-[50%] top-[50%] z-50 grid w-full max-w-lg translate-x-[-50%] translate-y-[-50%] gap-4 border bg-background p-6 shadow-lg duration-200 data-[state=open]:animate-in data-[state=closed]:animate-out data-[state=closed]:fade-out-0 data-[state=open]:fade-in-0 data-[state=closed]:zoom-out-95 data-[state=open]:zoom-in-95 data-[state=closed]:slide-out-to-left-1/2 data-[state=closed]:slide-out-to-top-[48%] data-[state=open]:slide-in-from-left-1/2 data-[state=open]:slide-in-from-top-[48%] sm:rounded-lg",
		templ.KV("hidden", !c.Open),
	)

	hookConfig, _ := json.Marshal(dialogHookConfig{Open: c.Open, CloseOnEscape: c.CloseOnEscape})
	attrs["role"] = "dialog"
	attrs["aria-modal"] = "true"
	attrs["data-state"] = state
	attrs["v-hook"] = HookNameDialog
	attrs["data-hook-config"] = string(hookConfig)
	attrs["data-hook-events"] = HookEventClose
	return attrs
}
