//go:build nochecks

package ltdc

const runtimeChecks = false
