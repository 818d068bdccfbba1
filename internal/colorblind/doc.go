// Package colorblind simulates color vision deficiencies on single colors and
// on whole images.
//
// The package exposes two operations:
//   - Simulate maps one RGB color through a Variant.
//   - SimulateImage maps every pixel of an *image.NRGBA through a Variant,
//     returning a new image of the same bounds with alpha left untouched.
//
// # Variants
//
// Eight variants are supported. The three dichromacies (Protanopia,
// Deuteranopia, Tritanopia) use fixed 3x3 matrices applied to channels
// normalized to 0-1. The three anomalous trichromacies (Protanomaly,
// Deuteranomaly, Tritanomaly) blend the matching dichromacy 60% toward the
// simulated color and 40% toward the original. Achromatopsia converts to
// gray with the ITU-R BT.601 luma weights. Normal is the identity.
//
// # Numeric Behavior
//
// All arithmetic is done in float32 and converted back to 8-bit channels by
// truncation toward zero, never rounding. Outputs therefore match a
// reference implementation bit for bit, at the cost of a bias of up to one
// unit per channel compared to rounding.
//
// # Thread Safety
//
// Every function in this package is pure. Simulate does not allocate, and
// SimulateImage writes each destination pixel exactly once, so both can be
// called concurrently from any number of goroutines.
package colorblind
