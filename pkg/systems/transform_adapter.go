package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/gaze/pkg/components"
	"github.com/gonewx/gaze/pkg/ecs"
	"github.com/gonewx/gaze/pkg/game"
)

// EntityTransform 将实体的 TransformComponent 适配为 game.Transform
type EntityTransform struct {
	comp *components.TransformComponent
}

// NewEntityTransform 为实体创建变换适配器
// 实体没有 TransformComponent 时返回 false
func NewEntityTransform(em *ecs.EntityManager, id ecs.EntityID) (*EntityTransform, bool) {
	comp, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok || comp == nil {
		return nil, false
	}
	return &EntityTransform{comp: comp}, true
}

// Position 返回世界坐标
func (t *EntityTransform) Position() mgl64.Vec3 {
	return t.comp.Position
}

// LocalScale 返回局部缩放
func (t *EntityTransform) LocalScale() mgl64.Vec3 {
	return t.comp.LocalScale
}

// SetLocalScale 原地修改局部缩放
func (t *EntityTransform) SetLocalScale(scale mgl64.Vec3) {
	t.comp.LocalScale = scale
}

// ViewpointQuery 在实体管理器中查找当前激活的视点
//
// 同时存在多个激活视点时返回 ID 最小的一个。
type ViewpointQuery struct {
	entityManager *ecs.EntityManager
}

// NewViewpointQuery 创建视点查询
func NewViewpointQuery(em *ecs.EntityManager) *ViewpointQuery {
	return &ViewpointQuery{entityManager: em}
}

// ActiveViewpoint 实现 game.ViewpointLocator
func (q *ViewpointQuery) ActiveViewpoint() (game.Transform, bool) {
	id, ok := q.ActiveViewpointEntity()
	if !ok {
		return nil, false
	}
	transform, ok := NewEntityTransform(q.entityManager, id)
	if !ok {
		return nil, false
	}
	return transform, true
}

// ActiveViewpointEntity 返回当前激活视点的实体ID
func (q *ViewpointQuery) ActiveViewpointEntity() (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith2[*components.ViewpointComponent, *components.TransformComponent](q.entityManager)
	for _, id := range ids {
		vp, ok := ecs.GetComponent[*components.ViewpointComponent](q.entityManager, id)
		if ok && vp.Active {
			return id, true
		}
	}
	return 0, false
}

// 编译期检查
var (
	_ game.Transform        = (*EntityTransform)(nil)
	_ game.ViewpointLocator = (*ViewpointQuery)(nil)
)
