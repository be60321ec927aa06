package systems

import (
	"log"

	"github.com/gonewx/gaze/pkg/components"
	"github.com/gonewx/gaze/pkg/ecs"
	"github.com/gonewx/gaze/pkg/game"
)

// AngularSizeSystem 让所有带 AngularSizeComponent 的物体保持恒定视角大小
//
// 每帧先为尚未初始化的控制器记录比例（第一次机会），
// 然后按当前视点距离重写物体的 LocalScale。
// 视点由注入的 ViewpointLocator 提供，不依赖全局摄像机。
type AngularSizeSystem struct {
	entityManager *ecs.EntityManager
	viewpoints    game.ViewpointLocator

	// viewpointMissing 上一帧是否缺少视点（仅用于日志去重）
	viewpointMissing bool
}

// NewAngularSizeSystem 创建固定视角大小系统
func NewAngularSizeSystem(em *ecs.EntityManager, viewpoints game.ViewpointLocator) *AngularSizeSystem {
	return &AngularSizeSystem{
		entityManager: em,
		viewpoints:    viewpoints,
	}
}

// Attach 将系统挂到宿主的每帧回调上
func (s *AngularSizeSystem) Attach(scheduler game.FrameScheduler) {
	scheduler.OnEveryFrame(s.Update)
}

// Update 处理一帧
//
// 没有激活视点时整帧跳过：未初始化的控制器保持 Uninitialized,
// 等到视点出现的那一帧再初始化；已激活的物体保留上一帧的缩放。
func (s *AngularSizeSystem) Update() {
	viewpoint, ok := s.viewpoints.ActiveViewpoint()
	if !ok {
		if !s.viewpointMissing {
			log.Printf("[AngularSizeSystem] Warning: no active viewpoint, skipping angular size updates")
			s.viewpointMissing = true
		}
		return
	}
	if s.viewpointMissing {
		log.Printf("[AngularSizeSystem] Active viewpoint available again, resuming updates")
		s.viewpointMissing = false
	}

	entities := ecs.GetEntitiesWith2[*components.TransformComponent, *components.AngularSizeComponent](s.entityManager)
	for _, id := range entities {
		controller, ok := ecs.GetComponent[*components.AngularSizeComponent](s.entityManager, id)
		if !ok {
			continue
		}
		object, ok := NewEntityTransform(s.entityManager, id)
		if !ok {
			continue
		}

		if controller.State == components.AngularSizeUninitialized {
			InitializeAngularSize(controller, object, viewpoint)
			if controller.State == components.AngularSizeInactive {
				log.Printf("[AngularSizeSystem] Entity %d starts at the viewpoint position (distance 0), controller disabled", id)
				continue
			}
			log.Printf("[AngularSizeSystem] Entity %d initialized, ratio=%v", id, controller.SizeRatioPerUnitDistance)
		}

		UpdateAngularSize(controller, object, viewpoint)
	}
}
