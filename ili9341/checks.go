//go:build !nochecks

package ili9341

// runtimeChecks gates every precondition check in the package. Build
// with -tags=nochecks to compile them all out for release images.
const runtimeChecks = true
