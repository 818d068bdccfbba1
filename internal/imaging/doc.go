// Package imaging provides the image plumbing around color vision simulation.
//
// It loads and caches images from disk, converts them to the straight-alpha
// *image.NRGBA layout that the colorblind package transforms, and produces
// the outputs a client needs: size-limited previews, base64 payloads,
// captioned side-by-side comparisons and statistics on how much a
// simulation changed an image.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Cached images are shared
// between callers and must be treated as read-only; every function here that
// transforms an image returns a new one.
//
// # Color Representation
//
// Colors are reported in several formats:
//   - Hex: 6-character format "#RRGGBB" (alpha excluded)
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Supported Formats
//
// PNG, JPEG and GIF come from the standard library; BMP and TIFF are
// registered by github.com/disintegration/imaging and WebP by
// golang.org/x/image/webp. Encoded output is PNG or a packed RGB24 buffer;
// Save picks its format from the file extension.
package imaging
