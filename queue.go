package canvas

import "github.com/disasterengine/canvas/math3d"

// CommandType identifies a deferred command.
type CommandType uint8

const (
	CmdClear   CommandType = iota // Clear the presentation surface
	CmdRect                       // Rectangle in window pixels
	CmdLine                       // Line in window pixels
	CmdLine3D                     // World-space line
	CmdTexture                    // Pixel buffer blit
	CmdText                       // Text string
	CmdModel                      // Mesh at a world transform
)

var commandTypeNames = [...]string{
	CmdClear:   "Clear",
	CmdRect:    "Rect",
	CmdLine:    "Line",
	CmdLine3D:  "Line3D",
	CmdTexture: "Texture",
	CmdText:    "Text",
	CmdModel:   "Model",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a draw call executed by the presentation layer after the
// software buffer has been shown. Commands carry copies of their
// arguments.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ClearCommand clears the presentation surface.
type ClearCommand struct {
	Color Color32
}

// RectCommand draws a rectangle.
type RectCommand struct {
	X, Y, W, H float64
	Color      Color32
	Filled     bool
}

// LineCommand draws a line.
type LineCommand struct {
	X0, Y0, X1, Y1 float64
	Color          Color32
}

// Line3DCommand draws a line between world points with the frame's camera.
type Line3DCommand struct {
	From, To  math3d.Vec3
	FromColor Color32
	ToColor   Color32
	Camera    Camera
}

// TextureCommand draws a pixel buffer.
type TextureCommand struct {
	Buffer    *PixelBuffer
	X, Y      float64
	Source    Rect
	Transform Transform2D
}

// TextCommand draws a string.
type TextCommand struct {
	X, Y  float64
	Text  string
	Color Color32
}

// ModelCommand draws a mesh asset at a world transform.
type ModelCommand struct {
	Path   string
	World  WorldTransform
	Color  Color32
	Camera Camera
}

func (ClearCommand) Type() CommandType   { return CmdClear }
func (RectCommand) Type() CommandType    { return CmdRect }
func (LineCommand) Type() CommandType    { return CmdLine }
func (Line3DCommand) Type() CommandType  { return CmdLine3D }
func (TextureCommand) Type() CommandType { return CmdTexture }
func (TextCommand) Type() CommandType    { return CmdText }
func (ModelCommand) Type() CommandType   { return CmdModel }

// Queue is a FIFO of deferred commands. The zero value is empty and ready
// to use.
type Queue struct {
	cmds []Command
}

// Push appends cmd.
func (q *Queue) Push(cmd Command) {
	q.cmds = append(q.cmds, cmd)
}

// Len returns the number of pending commands.
func (q *Queue) Len() int {
	return len(q.cmds)
}

// Drain calls fn for every pending command in push order and empties the
// queue. Commands pushed by fn run in the same drain.
func (q *Queue) Drain(fn func(Command)) {
	for i := 0; i < len(q.cmds); i++ {
		fn(q.cmds[i])
		q.cmds[i] = nil
	}
	q.cmds = q.cmds[:0]
}

// Reset drops every pending command.
func (q *Queue) Reset() {
	clear(q.cmds)
	q.cmds = q.cmds[:0]
}

// Line3D queues a world-space line drawn with the current camera.
func (cv *Canvas) Line3D(from, to math3d.Vec3, fromColor, toColor Color32) {
	cv.queue.Push(Line3DCommand{From: from, To: to, FromColor: fromColor, ToColor: toColor, Camera: cv.camera})
}

// Model queues the mesh asset at path drawn with the current camera.
func (cv *Canvas) Model(path string, world WorldTransform, col Color32) {
	cv.queue.Push(ModelCommand{Path: path, World: world, Color: col, Camera: cv.camera})
}

// EnqueueRect queues a rectangle in screen pixels.
func (cv *Canvas) EnqueueRect(x, y, w, h float64, col Color32, filled bool) {
	cv.queue.Push(RectCommand{X: x, Y: y, W: w, H: h, Color: col, Filled: filled})
}

// EnqueueLine queues a line in screen pixels.
func (cv *Canvas) EnqueueLine(x0, y0, x1, y1 float64, col Color32) {
	cv.queue.Push(LineCommand{X0: x0, Y0: y0, X1: x1, Y1: y1, Color: col})
}

// EnqueueText queues a string in screen pixels.
func (cv *Canvas) EnqueueText(x, y float64, col Color32, s string) {
	cv.queue.Push(TextCommand{X: x, Y: y, Text: s, Color: col})
}

// EnqueueTexture queues a pixel buffer blit in screen pixels. The buffer
// is captured by reference.
func (cv *Canvas) EnqueueTexture(buf *PixelBuffer, x, y float64, src Rect, t Transform2D) {
	if buf == nil {
		return
	}
	cv.queue.Push(TextureCommand{Buffer: buf, X: x, Y: y, Source: src, Transform: t})
}
