package game

import "github.com/go-gl/mathgl/mgl64"

// Transform 宿主场景中物体变换的最小能力接口
//
// 控制器只读取位置、读写局部缩放,不关心具体的场景图类型,
// 测试中可以用轻量的假实现替代。
type Transform interface {
	// Position 返回世界坐标
	Position() mgl64.Vec3
	// LocalScale 返回局部缩放
	LocalScale() mgl64.Vec3
	// SetLocalScale 原地修改局部缩放
	SetLocalScale(scale mgl64.Vec3)
}

// ViewpointLocator 查找当前激活的视点
// 第二个返回值为 false 表示当前没有可用视点
type ViewpointLocator interface {
	ActiveViewpoint() (Transform, bool)
}

// FrameScheduler 宿主提供的每帧回调注册接口
type FrameScheduler interface {
	// OnEveryFrame 注册回调,每个渲染帧按注册顺序调用一次
	OnEveryFrame(callback func())
}
