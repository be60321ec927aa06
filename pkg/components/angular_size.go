package components

import "github.com/go-gl/mathgl/mgl64"

// AngularSizeState 固定视角大小控制器的状态
//
// 状态转换只有两条:
//   - Uninitialized -> Active:   初始距离 > 0
//   - Uninitialized -> Inactive: 初始距离 == 0（物体与视点重合）
//
// Inactive 为终止状态,Active 也不会再离开。
type AngularSizeState int

const (
	// AngularSizeUninitialized 尚未记录缩放/距离比例
	AngularSizeUninitialized AngularSizeState = iota
	// AngularSizeActive 每帧按距离重新计算缩放
	AngularSizeActive
	// AngularSizeInactive 初始化失败,永久停用
	AngularSizeInactive
)

// String 返回状态名称（用于日志和 HUD）
func (s AngularSizeState) String() string {
	switch s {
	case AngularSizeUninitialized:
		return "uninitialized"
	case AngularSizeActive:
		return "active"
	case AngularSizeInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// AngularSizeComponent 使物体在视点移动时保持恒定的视角大小
//
// 初始化时记录 LocalScale / 初始距离,之后每帧
// 缩放 = SizeRatioPerUnitDistance * 当前距离。
// 比例一旦记录就不再修改。
type AngularSizeComponent struct {
	// SizeRatioPerUnitDistance 每单位距离对应的缩放（仅 Active 时有效）
	SizeRatioPerUnitDistance mgl64.Vec3

	// State 控制器状态
	State AngularSizeState
}

// Active 返回控制器是否参与每帧更新
func (c *AngularSizeComponent) Active() bool {
	return c.State == AngularSizeActive
}
