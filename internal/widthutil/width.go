// Package widthutil measures the display width of text for callers that need something
// better than a byte or rune count, such as a terminal column budget with wide CJK characters
// or emoji.
package widthutil

import "github.com/rivo/uniseg"

// StringWidth returns the number of terminal columns s occupies, accounting for
// zero-width combining marks and double-width characters. Callers pass this to
// [github.com/oppen-go/oppen.Printer.ScanText] alongside s whenever len(s) would
// misrepresent how many columns the text actually occupies on screen.
func StringWidth(s string) int {
	return uniseg.StringWidth(s)
}
