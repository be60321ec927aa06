package systems

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/gaze/pkg/components"
	"github.com/gonewx/gaze/pkg/ecs"
)

// NearPlane 小于该深度的物体不绘制
const NearPlane = 0.01

// Projection 物体在屏幕上的投影结果
type Projection struct {
	X, Y   float64 // 屏幕坐标（像素）
	Radius float64 // 屏幕半径（像素）
	Depth  float64 // 沿视线方向的深度
}

// Project 针孔投影：视点朝向 +Z,Y 轴向上
// 物体位于近平面之后时返回 false
func Project(viewpoint, position mgl64.Vec3, worldRadius, focalLength float64, screenWidth, screenHeight int) (Projection, bool) {
	rel := position.Sub(viewpoint)
	depth := rel.Z()
	if depth < NearPlane {
		return Projection{}, false
	}

	return Projection{
		X:      float64(screenWidth)/2 + focalLength*rel.X()/depth,
		Y:      float64(screenHeight)/2 - focalLength*rel.Y()/depth,
		Radius: focalLength * worldRadius / depth,
		Depth:  depth,
	}, true
}

// spriteDraw 一次圆形绘制
type spriteDraw struct {
	id    ecs.EntityID
	proj  Projection
	color color.RGBA
}

// RenderSystem 从激活视点绘制所有 SpriteComponent
type RenderSystem struct {
	entityManager *ecs.EntityManager
	viewpoints    *ViewpointQuery
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, viewpoints *ViewpointQuery) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		viewpoints:    viewpoints,
	}
}

// drawList 计算投影并按深度从远到近排序
func (s *RenderSystem) drawList(screenWidth, screenHeight int) []spriteDraw {
	vpID, ok := s.viewpoints.ActiveViewpointEntity()
	if !ok {
		return nil
	}
	vpTransform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, vpID)
	vp, _ := ecs.GetComponent[*components.ViewpointComponent](s.entityManager, vpID)

	draws := make([]spriteDraw, 0)
	for _, id := range ecs.GetEntitiesWith2[*components.SpriteComponent, *components.TransformComponent](s.entityManager) {
		if id == vpID {
			continue
		}
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		worldRadius := sprite.Radius * transform.LocalScale.X()
		proj, visible := Project(vpTransform.Position, transform.Position, worldRadius, vp.FocalLength, screenWidth, screenHeight)
		if !visible {
			continue
		}
		draws = append(draws, spriteDraw{id: id, proj: proj, color: sprite.Color})
	}

	// 远处先画
	sort.SliceStable(draws, func(i, j int) bool {
		return draws[i].proj.Depth > draws[j].proj.Depth
	})
	return draws
}

// Draw 绘制场景
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	for _, d := range s.drawList(bounds.Dx(), bounds.Dy()) {
		vector.DrawFilledCircle(screen, float32(d.proj.X), float32(d.proj.Y), float32(d.proj.Radius), d.color, true)
	}
}

// HUDLines 生成状态面板文本
func (s *RenderSystem) HUDLines() []string {
	lines := make([]string, 0)

	vpID, ok := s.viewpoints.ActiveViewpointEntity()
	if !ok {
		return append(lines, "viewpoint: none")
	}
	vpTransform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, vpID)
	lines = append(lines, fmt.Sprintf("viewpoint: (%.2f, %.2f, %.2f)",
		vpTransform.Position.X(), vpTransform.Position.Y(), vpTransform.Position.Z()))

	for _, id := range ecs.GetEntitiesWith2[*components.AngularSizeComponent, *components.TransformComponent](s.entityManager) {
		controller, _ := ecs.GetComponent[*components.AngularSizeComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		name := fmt.Sprintf("#%d", id)
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok && sprite.Name != "" {
			name = sprite.Name
		}
		distance := transform.Position.Sub(vpTransform.Position).Len()
		lines = append(lines, fmt.Sprintf("%s [%s] d=%.2f scale=%.3f",
			name, controller.State, distance, transform.LocalScale.X()))
	}
	return lines
}

// DrawHUD 绘制状态面板
func (s *RenderSystem) DrawHUD(screen *ebiten.Image) {
	for i, line := range s.HUDLines() {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*16)
	}
}
