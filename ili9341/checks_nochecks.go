//go:build nochecks

package ili9341

const runtimeChecks = false
