// Package render draws gizmo geometry snapshots as a 2D overlay on a
// wgpu target. It consumes the read-only snapshots produced by the core
// package; it never talks to the interaction state machine.
package render

import (
	"math"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/gizmo3d"
	"github.com/gekko3d/gizmo3d/render/shaders"
)

// Vertex matches the WGSL VertexInput: pixel-space position plus color.
type Vertex struct {
	Pos   [2]float32
	Color [4]float32
}

// Style holds the visual constants of the overlay.
type Style struct {
	AxisColors  [3][4]float32 // X, Y, Z
	ActiveColor [4]float32
	FillAlpha   float32
	HeadLength  float32 // arrowhead, px
	HeadAngle   float32 // arrowhead half angle, radians
	HandleSize  float32 // scale marker half extent, px
}

func DefaultStyle() Style {
	return Style{
		AxisColors: [3][4]float32{
			{1, 0, 0, 1},
			{0, 1, 0, 1},
			{0, 0, 1, 1},
		},
		ActiveColor: [4]float32{1, 1, 0, 1},
		FillAlpha:   0.5,
		HeadLength:  15,
		HeadAngle:   math.Pi / 6,
		HandleSize:  12,
	}
}

// OverlayPass renders accumulated stroke and fill vertices in one draw
// each: a line-list pipeline for strokes and an alpha-blended
// triangle-list pipeline for fills.
type OverlayPass struct {
	Style Style

	device         *wgpu.Device
	strokePipeline *wgpu.RenderPipeline
	fillPipeline   *wgpu.RenderPipeline
	bindGroup      *wgpu.BindGroup
	uniformBuffer  *wgpu.Buffer

	strokeBuffer *wgpu.Buffer
	strokeCap    uint32
	fillBuffer   *wgpu.Buffer
	fillCap      uint32

	strokes []Vertex
	fills   []Vertex
}

// NewOverlayPass creates the pipelines for a render target format.
func NewOverlayPass(device *wgpu.Device, format wgpu.TextureFormat) (*OverlayPass, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "GizmoOverlayShader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shaders.OverlayWGSL},
	})
	if err != nil {
		return nil, err
	}

	bgl, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "GizmoOverlayViewportBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 16,
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgl},
	})
	if err != nil {
		return nil, err
	}

	vertexLayout := wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x4, Offset: 8, ShaderLocation: 1},
		},
	}
	blend := &wgpu.BlendState{
		Color: wgpu.BlendComponent{
			Operation: wgpu.BlendOperationAdd,
			SrcFactor: wgpu.BlendFactorSrcAlpha,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		},
		Alpha: wgpu.BlendComponent{
			Operation: wgpu.BlendOperationAdd,
			SrcFactor: wgpu.BlendFactorOne,
			DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
		},
	}

	makePipeline := func(label string, topology wgpu.PrimitiveTopology) (*wgpu.RenderPipeline, error) {
		return device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
			Label:  label,
			Layout: pipelineLayout,
			Vertex: wgpu.VertexState{
				Module:     shaderModule,
				EntryPoint: "vs_main",
				Buffers:    []wgpu.VertexBufferLayout{vertexLayout},
			},
			Fragment: &wgpu.FragmentState{
				Module:     shaderModule,
				EntryPoint: "fs_main",
				Targets: []wgpu.ColorTargetState{
					{Format: format, WriteMask: wgpu.ColorWriteMaskAll, Blend: blend},
				},
			},
			Primitive: wgpu.PrimitiveState{
				Topology:  topology,
				FrontFace: wgpu.FrontFaceCCW,
				CullMode:  wgpu.CullModeNone,
			},
			Multisample: wgpu.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
		})
	}

	strokePipeline, err := makePipeline("GizmoOverlayStrokes", wgpu.PrimitiveTopologyLineList)
	if err != nil {
		return nil, err
	}
	fillPipeline, err := makePipeline("GizmoOverlayFills", wgpu.PrimitiveTopologyTriangleList)
	if err != nil {
		return nil, err
	}

	uniformBuffer, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "GizmoOverlayViewport",
		Size:  16,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	bindGroup, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "GizmoOverlayViewportBG",
		Layout: bgl,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: uniformBuffer, Size: 16},
		},
	})
	if err != nil {
		return nil, err
	}

	return &OverlayPass{
		Style:          DefaultStyle(),
		device:         device,
		strokePipeline: strokePipeline,
		fillPipeline:   fillPipeline,
		bindGroup:      bindGroup,
		uniformBuffer:  uniformBuffer,
	}, nil
}

// Reset clears the accumulated vertices; call once per frame before the
// Add* methods.
func (p *OverlayPass) Reset() {
	p.strokes = p.strokes[:0]
	p.fills = p.fills[:0]
}

// AddTranslation appends a translation snapshot: axis arrows with heads
// and translucent plane quads.
func (p *OverlayPass) AddTranslation(g *gizmo3d.TranslationGeometry, active gizmo3d.Element) {
	if g == nil {
		return
	}
	for pi, q := range g.Planes {
		if q == (gizmo3d.Quad{}) {
			continue
		}
		pair := [3][2]int{{0, 1}, {0, 2}, {1, 2}}[pi]
		color := p.mixAxisColors(pair[0], pair[1])
		if active.PlaneIndex() == pi {
			color = p.Style.ActiveColor
		}
		color[3] = p.Style.FillAlpha
		p.fillQuad(q, color)
		p.strokeQuad(q, color)
	}
	for i, a := range g.Axes {
		if a.Dir == (mgl32.Vec2{}) {
			continue
		}
		color := p.axisColor(i, active.AxisIndex() == i)
		p.stroke(a.Start, a.End, color)
		p.arrowHead(a.End, a.Dir, color)
	}
}

// AddRotation appends a rotation snapshot. Inactive circles draw only
// the camera-facing arc; the active circle draws fully, with a wedge
// fill sweeping from startDeg to currentDeg.
func (p *OverlayPass) AddRotation(g *gizmo3d.RotationGeometry, active gizmo3d.Element, startDeg, currentDeg float32) {
	if g == nil {
		return
	}
	const arcDeg = 40
	for i, c := range g.Circles {
		n := len(c.Points)
		if n < 2 {
			continue
		}
		isActive := active.AxisIndex() == i
		color := p.axisColor(i, isActive)
		for s := 0; s < n; s++ {
			next := (s + 1) % n
			if !isActive && c.HasFacing {
				if angDist(c.Angles[s], c.FacingAngle) > arcDeg ||
					angDist(c.Angles[next], c.FacingAngle) > arcDeg {
					continue
				}
			}
			p.stroke(c.Points[s], c.Points[next], color)
		}
		if isActive {
			p.wedge(g.Center, c, startDeg, currentDeg, color)
		}
	}
}

// AddScale appends a scale snapshot: shafts, terminal square markers and
// the uniform center marker.
func (p *OverlayPass) AddScale(g *gizmo3d.ScaleGeometry, active gizmo3d.Element) {
	if g == nil {
		return
	}
	for i, a := range g.Axes {
		if a.Dir == (mgl32.Vec2{}) {
			continue
		}
		color := p.axisColor(i, active.AxisIndex() == i)
		p.stroke(a.Start, a.End, color)
		p.fillSquare(g.Handles[i], p.Style.HandleSize, color)
	}
	uniformColor := [4]float32{0.9, 0.9, 0.9, 1}
	if active == gizmo3d.ElementUniform {
		uniformColor = p.Style.ActiveColor
	}
	p.fillSquare(g.Handles[3], p.Style.HandleSize, uniformColor)
}

// Upload pushes the viewport uniform and the accumulated vertices to the
// GPU, growing the vertex buffers with a margin when they overflow.
func (p *OverlayPass) Upload(queue *wgpu.Queue, width, height float32) {
	viewport := [4]float32{width, height, 0, 0}
	queue.WriteBuffer(p.uniformBuffer, 0, unsafe.Slice((*byte)(unsafe.Pointer(&viewport[0])), 16))

	p.strokeBuffer, p.strokeCap = p.uploadVertices(queue, "GizmoOverlayStrokeVB", p.strokeBuffer, p.strokeCap, p.strokes)
	p.fillBuffer, p.fillCap = p.uploadVertices(queue, "GizmoOverlayFillVB", p.fillBuffer, p.fillCap, p.fills)
}

func (p *OverlayPass) uploadVertices(queue *wgpu.Queue, label string, buf *wgpu.Buffer, capacity uint32, verts []Vertex) (*wgpu.Buffer, uint32) {
	count := uint32(len(verts))
	if count == 0 {
		return buf, capacity
	}
	if buf == nil || capacity < count {
		if buf != nil {
			buf.Release()
		}
		capacity = count + 256
		buf, _ = p.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: label,
			Size:  uint64(capacity) * uint64(unsafe.Sizeof(Vertex{})),
			Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		})
	}
	size := uint64(count) * uint64(unsafe.Sizeof(Vertex{}))
	queue.WriteBuffer(buf, 0, unsafe.Slice((*byte)(unsafe.Pointer(&verts[0])), size))
	return buf, capacity
}

// Draw records the overlay into an open render pass. Fills draw first so
// strokes stay crisp on top.
func (p *OverlayPass) Draw(pass *wgpu.RenderPassEncoder) {
	if len(p.fills) > 0 && p.fillBuffer != nil {
		pass.SetPipeline(p.fillPipeline)
		pass.SetBindGroup(0, p.bindGroup, nil)
		pass.SetVertexBuffer(0, p.fillBuffer, 0, p.fillBuffer.GetSize())
		pass.Draw(uint32(len(p.fills)), 1, 0, 0)
	}
	if len(p.strokes) > 0 && p.strokeBuffer != nil {
		pass.SetPipeline(p.strokePipeline)
		pass.SetBindGroup(0, p.bindGroup, nil)
		pass.SetVertexBuffer(0, p.strokeBuffer, 0, p.strokeBuffer.GetSize())
		pass.Draw(uint32(len(p.strokes)), 1, 0, 0)
	}
}

func (p *OverlayPass) axisColor(i int, active bool) [4]float32 {
	if active {
		return p.Style.ActiveColor
	}
	return p.Style.AxisColors[i]
}

func (p *OverlayPass) mixAxisColors(i, j int) [4]float32 {
	a, b := p.Style.AxisColors[i], p.Style.AxisColors[j]
	return [4]float32{
		(a[0] + b[0]) / 2,
		(a[1] + b[1]) / 2,
		(a[2] + b[2]) / 2,
		1,
	}
}

func (p *OverlayPass) stroke(a, b mgl32.Vec2, color [4]float32) {
	p.strokes = append(p.strokes,
		Vertex{Pos: [2]float32{a.X(), a.Y()}, Color: color},
		Vertex{Pos: [2]float32{b.X(), b.Y()}, Color: color},
	)
}

func (p *OverlayPass) strokeQuad(q gizmo3d.Quad, color [4]float32) {
	color[3] = 1
	for i := 0; i < 4; i++ {
		p.stroke(q[i], q[(i+1)%4], color)
	}
}

func (p *OverlayPass) fillTri(a, b, c mgl32.Vec2, color [4]float32) {
	p.fills = append(p.fills,
		Vertex{Pos: [2]float32{a.X(), a.Y()}, Color: color},
		Vertex{Pos: [2]float32{b.X(), b.Y()}, Color: color},
		Vertex{Pos: [2]float32{c.X(), c.Y()}, Color: color},
	)
}

func (p *OverlayPass) fillQuad(q gizmo3d.Quad, color [4]float32) {
	p.fillTri(q[0], q[1], q[2], color)
	p.fillTri(q[0], q[2], q[3], color)
}

func (p *OverlayPass) fillSquare(center mgl32.Vec2, half float32, color [4]float32) {
	p.fillQuad(gizmo3d.Quad{
		{center.X() - half, center.Y() - half},
		{center.X() + half, center.Y() - half},
		{center.X() + half, center.Y() + half},
		{center.X() - half, center.Y() + half},
	}, color)
}

func (p *OverlayPass) arrowHead(tip, dir mgl32.Vec2, color [4]float32) {
	back := dir.Mul(-p.Style.HeadLength)
	sin, cos := float32(math.Sin(float64(p.Style.HeadAngle))), float32(math.Cos(float64(p.Style.HeadAngle)))
	left := mgl32.Vec2{back.X()*cos - back.Y()*sin, back.X()*sin + back.Y()*cos}
	right := mgl32.Vec2{back.X()*cos + back.Y()*sin, -back.X()*sin + back.Y()*cos}
	p.stroke(tip, tip.Add(left), color)
	p.stroke(tip, tip.Add(right), color)
}

func (p *OverlayPass) wedge(center mgl32.Vec2, c gizmo3d.Circle, fromDeg, toDeg float32, color [4]float32) {
	sweep := normDeg(toDeg - fromDeg)
	color[3] = p.Style.FillAlpha
	n := len(c.Points)
	for s := 0; s < n; s++ {
		next := (s + 1) % n
		mid := c.Angles[s] + normDeg(c.Angles[next]-c.Angles[s])/2
		d := normDeg(mid - fromDeg)
		inSweep := (sweep >= 0 && d >= 0 && d <= sweep) || (sweep < 0 && d <= 0 && d >= sweep)
		if inSweep {
			p.fillTri(center, c.Points[s], c.Points[next], color)
		}
	}
}

func normDeg(a float32) float32 {
	a = float32(math.Mod(float64(a)+180, 360))
	if a <= 0 {
		a += 360
	}
	return a - 180
}

func angDist(a, b float32) float32 {
	d := normDeg(a - b)
	if d < 0 {
		return -d
	}
	return d
}
