package entities

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/gaze/pkg/components"
	"github.com/gonewx/gaze/pkg/config"
	"github.com/gonewx/gaze/pkg/ecs"
)

// Scene 场景创建结果
type Scene struct {
	Viewpoint ecs.EntityID
	Objects   []ecs.EntityID
}

// NewViewpointEntity 创建视点实体
// 配置了轨道时同时添加 DollyComponent,轨道起点为视点初始位置
func NewViewpointEntity(em *ecs.EntityManager, cfg config.ViewpointConfig) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.TransformComponent{
		Position:   cfg.Position,
		LocalScale: mgl64.Vec3{1, 1, 1},
	})
	ecs.AddComponent(em, id, &components.ViewpointComponent{
		Active:      true,
		FocalLength: cfg.FocalLength,
	})

	if cfg.Dolly != nil {
		ecs.AddComponent(em, id, &components.DollyComponent{
			Origin:    cfg.Position,
			Axis:      cfg.Dolly.Axis.Normalize(),
			Near:      cfg.Dolly.Near,
			Far:       cfg.Dolly.Far,
			Speed:     cfg.Dolly.Speed,
			Offset:    0,
			Direction: 1,
		})
	}

	return id
}

// NewObjectEntity 创建场景物体
// FixedAngularSize 为 true 时添加 AngularSizeComponent,由 AngularSizeSystem 在第一帧初始化
func NewObjectEntity(em *ecs.EntityManager, cfg config.ObjectConfig) (ecs.EntityID, error) {
	clr, err := config.ParseColor(cfg.Color)
	if err != nil {
		return 0, fmt.Errorf("object %q: %w", cfg.Name, err)
	}

	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.TransformComponent{
		Position:   cfg.Position,
		LocalScale: cfg.Scale,
	})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Name:   cfg.Name,
		Radius: cfg.Radius,
		Color:  clr,
	})

	if cfg.FixedAngularSize {
		ecs.AddComponent(em, id, &components.AngularSizeComponent{
			State: components.AngularSizeUninitialized,
		})
	}

	return id, nil
}

// BuildScene 根据配置创建视点和全部物体
func BuildScene(em *ecs.EntityManager, cfg *config.SceneConfig) (*Scene, error) {
	scene := &Scene{
		Viewpoint: NewViewpointEntity(em, cfg.Viewpoint),
		Objects:   make([]ecs.EntityID, 0, len(cfg.Objects)),
	}

	for _, objCfg := range cfg.Objects {
		id, err := NewObjectEntity(em, objCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to build scene: %w", err)
		}
		scene.Objects = append(scene.Objects, id)
	}

	return scene, nil
}
