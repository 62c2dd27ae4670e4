//go:build !nochecks

package ltdc

// runtimeChecks gates every precondition check in the package. Build
// with -tags=nochecks to compile them all out for release images.
const runtimeChecks = true
