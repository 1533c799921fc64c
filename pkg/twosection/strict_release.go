//go:build !sheetdebug

package twosection

const strictItems = false
