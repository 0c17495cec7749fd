// Package probe reads image headers into typed result structures. Only the
// header is parsed, so screenshots that are about to be skipped anyway never
// cost a full pixel decode.
//
// Supported formats are whatever decoders the blank imports register:
// png, jpeg, gif from the standard library plus bmp, tiff, and webp from
// golang.org/x/image.
package probe
