package components

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent 存储实体在场景中的三维变换
// Position 为世界坐标,LocalScale 为实体自身坐标系下的缩放倍数
// 视点与被控物体必须处于同一坐标空间
type TransformComponent struct {
	Position   mgl64.Vec3
	LocalScale mgl64.Vec3
}
