// Package modal provides declarative dialog boxes for the gallery viewer with
// automatic hit region management for mouse support.
//
// Hit regions are measured from the rendered output rather than computed up
// front, so a region can never drift from what is on screen. Keyboard focus
// cycles with Tab/Shift+Tab; Enter activates, Esc cancels.
//
// # Quick Start
//
//	m := modal.New("Jump to image", modal.WithPrimaryAction("jump")).
//	    AddSection(modal.Input("filter", &filterInput)).
//	    AddSection(modal.List("images", items, &selected)).
//	    AddSection(modal.Buttons(
//	        modal.Btn(" Open ", "jump"),
//	        modal.Btn(" Cancel ", modal.ActionCancel),
//	    ))
//
//	// In View():
//	content := m.View(screenW, screenH, mouseHandler)
//
//	// In Update():
//	if action, cmd := m.HandleKey(keyMsg); action != "" {
//	    ...
//	}
//
// # Sections
//
//   - Text(s) - static text, wrapped
//   - Spacer() - blank line
//   - Buttons(btns ...ButtonDef) - button row with focus/hover styling
//   - Input(id, model, opts...) - single-line text input
//   - List(id, items, selectedIdx, opts...) - scrollable list, rows clickable
//   - When(condition, section) - conditional rendering
//   - Custom(renderFn, updateFn) - escape hatch
//
// # Options
//
//   - WithWidth(w) - modal width (default 50)
//   - WithVariant(v) - border colour (Default, Info)
//   - WithHints(show) - keyboard hints at the bottom
//   - WithPrimaryAction(id) - action for Enter outside a button
//
// A click on the backdrop always cancels.
package modal
