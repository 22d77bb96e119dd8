// Package theme maps semantic color roles to concrete colors.
//
// A Theme is a fixed table from Role to core.Color. The renderer asks for
// roles ("the operator keys", "the notice text") and never names a color
// directly, so switching themes is a table swap.
//
// Built-in themes: light, dark, solarized and contrast. Derived shades for
// pressed and unavailable keys are computed in HCL space so they keep the
// role's hue.
package theme
