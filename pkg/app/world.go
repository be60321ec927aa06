package app

import (
	"fmt"

	"github.com/gonewx/gaze/pkg/config"
	"github.com/gonewx/gaze/pkg/ecs"
	"github.com/gonewx/gaze/pkg/entities"
	"github.com/gonewx/gaze/pkg/game"
	"github.com/gonewx/gaze/pkg/systems"
)

// World 持有场景实体和全部系统,不依赖窗口
//
// 桌面程序与 cmd/verify_angular_size 共用同一个 World,
// 保证无窗口验证与实际运行走相同的更新路径。
type World struct {
	EntityManager *ecs.EntityManager
	Scene         *entities.Scene
	Frames        *game.FrameLoop

	Viewpoints  *systems.ViewpointQuery
	Dolly       *systems.DollySystem
	AngularSize *systems.AngularSizeSystem
	Render      *systems.RenderSystem
}

// NewWorld 根据场景配置创建实体并挂接系统
func NewWorld(cfg *config.SceneConfig) (*World, error) {
	em := ecs.NewEntityManager()

	scene, err := entities.BuildScene(em, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create world: %w", err)
	}

	viewpoints := systems.NewViewpointQuery(em)
	w := &World{
		EntityManager: em,
		Scene:         scene,
		Frames:        game.NewFrameLoop(),
		Viewpoints:    viewpoints,
		Dolly:         systems.NewDollySystem(em),
		AngularSize:   systems.NewAngularSizeSystem(em, viewpoints),
		Render:        systems.NewRenderSystem(em, viewpoints),
	}

	// 控制器只通过每帧回调驱动
	w.AngularSize.Attach(w.Frames)

	return w, nil
}

// Step 推进一帧：先移动视点,再执行每帧回调
func (w *World) Step(dt float64) {
	w.Dolly.Update(dt)
	w.Frames.Tick()
	w.EntityManager.RemoveMarkedEntities()
}
