// Package canvas is a software pixel renderer for a small scriptable game
// engine. Scripts issue draw calls each frame; a Canvas turns them into
// pixels in a CPU-side RGBA8 buffer that a presentation layer uploads once
// per frame.
//
// # Quick Start
//
//	cv := canvas.NewCanvas(320, 240)
//	cv.Clear()
//	cv.Rect(10, 10, 100, 50, canvas.Palette[12], true)
//	cv.Circle(160, 120, 30, canvas.White, false)
//	cv.TextStyled(8, 8, "$c8Hello$n $wworld")
//	cv.Screen().SavePNG("frame.png")
//
// # Targets
//
// The screen buffer sits at the bottom of a buffer stack. StartBuffer
// pushes an off-screen buffer that receives all drawing until EndBuffer;
// CreateAssetFromBuffer hands the active buffer to an [AssetRegistry] so
// it can be drawn later like any loaded texture. The global Offset only
// applies while the screen is the active target.
//
// # Blending
//
// Every pixel passes through the current blend mode: Normal, Add,
// Subtract, or one of the stippled modes Dither and Noise, which turn
// alpha into an ordered or hashed keep/discard pattern.
//
// # 3D
//
// Wireframe projects a [mesh.Mesh] through the canvas camera into the
// active buffer. Line3D and Model are queued as [Command] values for the
// presentation layer, which drains the [Queue] after showing the screen.
//
// # Logging
//
// Nothing is logged by default. See [SetLogger] and [WithLogger].
package canvas
