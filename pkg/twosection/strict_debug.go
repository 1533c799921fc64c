//go:build sheetdebug

package twosection

// strictItems makes lookups of unknown items panic.
const strictItems = true
