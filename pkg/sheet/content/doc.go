// Package content builds sheet content from stacked sections.
//
// A Stack renders its sections top to bottom and hands keyboard input to the
// focused one. It satisfies sheet.Content, so it can be presented directly,
// and Block adapts it to a twosection.ScrollView section.
//
// # Quick Start
//
//	body := content.New().
//	    Add(content.Markdown("# Details\n\nSomething worth reading.")).
//	    Add(content.Spacer()).
//	    Add(content.List("pick", items, &selected, content.WithFilter()))
//
//	cmd := store.Present(body)
//
// # Built-in Sections
//
//   - Text(s string) - static text, wrapped to the sheet width
//   - Spacer() - blank line
//   - Markdown(md string) - markdown rendered with glamour
//   - List(id string, items []ListItem, selectedIdx *int, opts...) - scrollable, filterable list
//   - Form(form *huh.Form) - a huh form running inside the sheet
//
// Tab and Shift+Tab move focus between focusable sections.
package content
