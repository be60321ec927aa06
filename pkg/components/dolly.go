package components

import "github.com/go-gl/mathgl/mgl64"

// DollyComponent 让视点沿固定轴往返移动（演示场景用）
//
// 视点位置 = Origin + Axis * Offset,Offset 在 [Near, Far] 之间往返。
type DollyComponent struct {
	// Origin 轨道起点（世界坐标）
	Origin mgl64.Vec3

	// Axis 移动方向（单位向量）
	Axis mgl64.Vec3

	// Near/Far 偏移量范围
	Near float64
	Far  float64

	// Speed 移动速度（单位/秒）
	Speed float64

	// Offset 当前偏移量
	Offset float64

	// Direction 当前移动方向: 1 远离起点, -1 靠近起点
	Direction float64

	// Paused 暂停时不更新位置
	Paused bool
}
