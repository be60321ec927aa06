package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/gaze/pkg/components"
	"github.com/gonewx/gaze/pkg/game"
)

// distanceBetween 返回两个变换位置之间的欧氏距离
// 两个变换必须处于同一坐标空间（通常为世界坐标）
func distanceBetween(a, b game.Transform) float64 {
	return b.Position().Sub(a.Position()).Len()
}

// InitializeAngularSize 记录物体当前缩放与到视点距离的比例
//
// 初始距离 > 0 时记录比例并进入 Active；距离为 0 时进入 Inactive,
// 之后不会再恢复。已初始化的控制器不会重新计算比例。
// 本函数不修改物体的缩放。
func InitializeAngularSize(c *components.AngularSizeComponent, object, viewpoint game.Transform) {
	if c.State != components.AngularSizeUninitialized {
		return
	}

	startingDistance := distanceBetween(viewpoint, object)
	if startingDistance <= 0 {
		// 物体与视点重合，无法从零距离推导比例
		c.State = components.AngularSizeInactive
		return
	}

	scale := object.LocalScale()
	c.SizeRatioPerUnitDistance = mgl64.Vec3{
		scale[0] / startingDistance,
		scale[1] / startingDistance,
		scale[2] / startingDistance,
	}
	c.State = components.AngularSizeActive
}

// UpdateAngularSize 按当前距离重新计算物体缩放
//
// 缩放 = SizeRatioPerUnitDistance * 当前距离。距离每次调用都重新计算,
// 视点与物体重合时缩放变为零向量。非 Active 状态下不做任何事。
func UpdateAngularSize(c *components.AngularSizeComponent, object, viewpoint game.Transform) {
	if !c.Active() {
		return
	}

	distanceToObject := distanceBetween(viewpoint, object)
	object.SetLocalScale(c.SizeRatioPerUnitDistance.Mul(distanceToObject))
}
