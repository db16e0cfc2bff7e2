// Package assets loads and caches the pixel buffers, fonts and meshes a
// canvas draws, from any fs.FS.
//
// Lookups never fail at draw time: a missing or undecodable texture
// resolves to the 2x2 magenta placeholder and is logged once per path.
// Off-screen buffers captured by the canvas are stored under generated
// "buffer-N" keys and resolve exactly like files.
//
// Supported formats:
//   - textures: PNG, GIF, JPEG, BMP, WebP
//   - fonts: image atlases of fixed cells, TrueType and OpenType files,
//     and the built-in "builtin:basic" and "builtin:proggy" faces
//   - meshes: Wavefront OBJ
package assets
