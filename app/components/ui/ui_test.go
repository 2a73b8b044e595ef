package ui

import (
	"strings"
	"testing"
)

func classOf(t *testing.T, attrs map[string]any) string {
	t.Helper()
	classVal, ok := attrs["class"].(string)
	if !ok {
		t.Fatal("expected class attribute")
	}
	return classVal
}

func hasClass(class, want string) bool {
	for _, c := range strings.Fields(class) {
		if c == want {
			return true
		}
	}
	return false
}

func TestButton(t *testing.T) {
	btn := Button(Variant(ButtonVariantPrimary), Class[*ButtonConfig]("my-class"))
	classVal := classOf(t, btn)

	if !hasClass(classVal, "bg-primary") {
		t.Error("missing primary variant class")
	}
	if !hasClass(classVal, "my-class") {
		t.Error("missing custom class")
	}
	if btn["type"] != "button" {
		t.Errorf("expected type button, got %v", btn["type"])
	}
}

func TestButtonOverridesConflictingDefaults(t *testing.T) {
	btn := Button(Size(ButtonSizeLg), Class[*ButtonConfig]("px-2 bg-red-500"))
	classVal := classOf(t, btn)

	for _, dropped := range []string{"px-8", "bg-primary"} {
		if hasClass(classVal, dropped) {
			t.Errorf("expected %q to be overridden, got %q", dropped, classVal)
		}
	}
	for _, kept := range []string{"px-2", "bg-red-500", "hover:bg-primary/90", "h-11"} {
		if !hasClass(classVal, kept) {
			t.Errorf("missing %q in %q", kept, classVal)
		}
	}
	if strings.Count(classVal, "rounded-md") != 1 {
		t.Errorf("expected rounded-md once, got %q", classVal)
	}
}

func TestButtonAttrs(t *testing.T) {
	btn := Button(Disabled(true), Attr[*ButtonConfig]("type", "submit"))
	if btn["type"] != "submit" {
		t.Errorf("expected type submit, got %v", btn["type"])
	}
	if btn["disabled"] != true {
		t.Error("expected disabled attribute")
	}
}

func TestDialog(t *testing.T) {
	dlg := Dialog(DialogOpen(true), DialogCloseOnEscape(true))

	if dlg["v-hook"] != HookNameDialog {
		t.Errorf("expected v-hook %s, got %v", HookNameDialog, dlg["v-hook"])
	}
	if dlg["data-state"] != "open" {
		t.Errorf("expected open state, got %v", dlg["data-state"])
	}
	if dlg["data-hook-config"] != `{"open":true,"closeOnEscape":true}` {
		t.Errorf("unexpected hook config %v", dlg["data-hook-config"])
	}
	if classVal := classOf(t, dlg); !hasClass(classVal, "grid") || hasClass(classVal, "hidden") {
		t.Errorf("open dialog should be displayed as grid, got %q", classVal)
	}
}

func TestDialogClosedIsHidden(t *testing.T) {
	dlg := Dialog()

	classVal := classOf(t, dlg)
	if !hasClass(classVal, "hidden") || hasClass(classVal, "grid") {
		t.Errorf("closed dialog should be hidden, got %q", classVal)
	}
	if dlg["data-state"] != "closed" {
		t.Errorf("expected closed state, got %v", dlg["data-state"])
	}
}

func TestInput(t *testing.T) {
	inp := Input(InputType("email"), InputPlaceholder("test@example.com"))

	if inp["type"] != "email" {
		t.Errorf("expected type email, got %v", inp["type"])
	}
	if inp["placeholder"] != "test@example.com" {
		t.Errorf("expected placeholder, got %v", inp["placeholder"])
	}
	if !hasClass(classOf(t, inp), "bg-background") {
		t.Error("missing default styles")
	}
}

func TestInputInvalid(t *testing.T) {
	inp := Input(InputInvalid(true))
	classVal := classOf(t, inp)

	if hasClass(classVal, "border-input") || !hasClass(classVal, "border-destructive") {
		t.Errorf("invalid input should use destructive border, got %q", classVal)
	}
	if hasClass(classVal, "focus-visible:ring-ring") {
		t.Errorf("invalid input should override focus ring, got %q", classVal)
	}
	if inp["aria-invalid"] != "true" {
		t.Error("missing aria-invalid")
	}
}

func TestLabel(t *testing.T) {
	lbl := Label(LabelFor("my-id"), Class[*LabelConfig]("text-red-500"))

	if lbl["for"] != "my-id" {
		t.Errorf("expected for my-id, got %v", lbl["for"])
	}
	if !hasClass(classOf(t, lbl), "text-red-500") {
		t.Error("missing custom class")
	}
}

func TestCard(t *testing.T) {
	card := Card(Class[*CardConfig]("w-[350px]", map[string]bool{"shadow-lg": true}))

	classVal := classOf(t, card)
	if !hasClass(classVal, "rounded-lg") {
		t.Error("missing card styles")
	}
	if hasClass(classVal, "shadow-sm") || !hasClass(classVal, "shadow-lg") {
		t.Errorf("expected shadow-lg to override shadow-sm, got %q", classVal)
	}

	// p-4 also resets the pt-0 that precedes it
	if got := classOf(t, CardContent(Class[*CardContentConfig]("p-4"))); got != "p-4" {
		t.Errorf("expected p-4, got %q", got)
	}
	if got := classOf(t, CardHeader()); got != "flex flex-col space-y-1.5 p-6" {
		t.Errorf("unexpected header class %q", got)
	}
}

func TestKanban(t *testing.T) {
	board := KanbanBoard(Class[*KanbanBoardConfig]("bg-gray-100"))
	if classVal := classOf(t, board); hasClass(classVal, "bg-muted/20") || !hasClass(classVal, "bg-gray-100") {
		t.Errorf("expected board background override, got %q", classVal)
	}

	col := KanbanColumn(KanbanColumnID("col-1"))
	if col["data-column-id"] != "col-1" {
		t.Errorf("expected column id col-1, got %v", col["data-column-id"])
	}

	content := KanbanColumnContent(KanbanColumnID("col-1"))
	if content["v-hook"] != "Sortable" {
		t.Error("missing Sortable hook in column content")
	}
	if content["data-sortable-group"] != KanbanSortableGroup {
		t.Errorf("expected sortable group %s, got %v", KanbanSortableGroup, content["data-sortable-group"])
	}

	card := KanbanCard(KanbanCardID("card-1"))
	if card["data-id"] != "card-1" {
		t.Errorf("expected card id card-1, got %v", card["data-id"])
	}
}
