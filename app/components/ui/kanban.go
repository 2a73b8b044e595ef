package ui

import "github.com/a-h/templ"

// --- Kanban Board ---

type KanbanBoardConfig struct {
	BaseConfig
}

func (c *KanbanBoardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type KanbanBoardOption = Option[*KanbanBoardConfig]

func KanbanBoard(opts ...KanbanBoardOption) templ.Attributes {
	return apply(&KanbanBoardConfig{}, opts).attributes("flex h-full w-full gap-4 overflow-x-auto p-4 bg-muted/20")
}

// --- Kanban Column ---

// KanbanSortableGroup is shared by all columns so cards can move between them.
const KanbanSortableGroup = "kanban"

type KanbanColumnConfig struct {
	BaseConfig
	ID string
}

func (c *KanbanColumnConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type KanbanColumnOption = Option[*KanbanColumnConfig]

func KanbanColumnID(id string) KanbanColumnOption {
	return func(c *KanbanColumnConfig) { c.ID = id }
}

func KanbanColumn(opts ...KanbanColumnOption) templ.Attributes {
	c := apply(&KanbanColumnConfig{}, opts)

	attrs := c.attributes("flex w-80 shrink-0 flex-col rounded-lg bg-secondary")
	attrs["data-column-id"] = c.ID
	return attrs
}

// KanbanColumnTitle is the column heading.
func KanbanColumnTitle(opts ...KanbanColumnOption) templ.Attributes {
	return apply(&KanbanColumnConfig{}, opts).attributes("p-4 font-semibold text-secondary-foreground")
}

// KanbanColumnContent is the sortable drop target holding the cards.
func KanbanColumnContent(opts ...KanbanColumnOption) templ.Attributes {
	c := apply(&KanbanColumnConfig{}, opts)

	// min-h keeps an empty column droppable
	attrs := c.attributes("flex flex-col gap-2 p-4 pt-0 min-h-[50px]")
	attrs["v-hook"] = "Sortable"
	attrs["data-sortable-group"] = KanbanSortableGroup
	attrs["data-sortable-ghost-class"] = "opacity-50"
	if c.ID != "" {
		attrs["data-column-id"] = c.ID
	}
	return attrs
}

// --- Kanban Card ---

type KanbanCardConfig struct {
	BaseConfig
	ID string
}

func (c *KanbanCardConfig) GetBase() *BaseConfig { return &c.BaseConfig }

type KanbanCardOption = Option[*KanbanCardConfig]

func KanbanCardID(id string) KanbanCardOption {
	return func(c *KanbanCardConfig) { c.ID = id }
}

func KanbanCard(opts ...KanbanCardOption) templ.Attributes {
	c := apply(&KanbanCardConfig{}, opts)

	attrs := c.attributes("cursor-grab rounded border bg-card p-3 text-card-foreground shadow-sm hover:ring-2 hover:ring-primary/50")
	if c.ID != "" {
		attrs["data-id"] = c.ID
	}
	return attrs
}
