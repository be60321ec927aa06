package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/gaze/pkg/components"
	"github.com/gonewx/gaze/pkg/ecs"
	"github.com/gonewx/gaze/pkg/game"
)

// newTestViewpoint 创建位于 position 的激活视点
func newTestViewpoint(em *ecs.EntityManager, position mgl64.Vec3) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{
		Position:   position,
		LocalScale: mgl64.Vec3{1, 1, 1},
	})
	ecs.AddComponent(em, id, &components.ViewpointComponent{Active: true, FocalLength: 500})
	return id
}

// newTestObject 创建带固定视角大小控制器的物体
func newTestObject(em *ecs.EntityManager, position, scale mgl64.Vec3) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: position, LocalScale: scale})
	ecs.AddComponent(em, id, &components.AngularSizeComponent{})
	return id
}

func mustTransform(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.TransformComponent {
	t.Helper()
	tc, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no TransformComponent", id)
	}
	return tc
}

func mustController(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.AngularSizeComponent {
	t.Helper()
	c, ok := ecs.GetComponent[*components.AngularSizeComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no AngularSizeComponent", id)
	}
	return c
}

// TestAngularSizeSystem_AttachAndTick 测试挂到帧循环后每帧更新缩放
func TestAngularSizeSystem_AttachAndTick(t *testing.T) {
	em := ecs.NewEntityManager()
	camera := newTestViewpoint(em, mgl64.Vec3{})
	object := newTestObject(em, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{1, 1, 1})

	loop := game.NewFrameLoop()
	NewAngularSizeSystem(em, NewViewpointQuery(em)).Attach(loop)

	// 第一帧：初始化，缩放保持不变
	loop.Tick()
	controller := mustController(t, em, object)
	if !controller.Active() {
		t.Fatalf("Expected Active after first frame, got %v", controller.State)
	}
	if !vecApproxEqual(mustTransform(t, em, object).LocalScale, mgl64.Vec3{1, 1, 1}) {
		t.Errorf("First frame should keep the initial scale, got %v", mustTransform(t, em, object).LocalScale)
	}

	// 视点后退 10 个单位，距离变为 20
	mustTransform(t, em, camera).Position = mgl64.Vec3{0, 0, -10}
	loop.Tick()
	if !vecApproxEqual(mustTransform(t, em, object).LocalScale, mgl64.Vec3{2, 2, 2}) {
		t.Errorf("Expected (2,2,2), got %v", mustTransform(t, em, object).LocalScale)
	}

	// 视点前进到距离 5
	mustTransform(t, em, camera).Position = mgl64.Vec3{0, 0, 5}
	loop.Tick()
	if !vecApproxEqual(mustTransform(t, em, object).LocalScale, mgl64.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("Expected (0.5,0.5,0.5), got %v", mustTransform(t, em, object).LocalScale)
	}

	// 视点缩放不受影响
	if mustTransform(t, em, camera).LocalScale != (mgl64.Vec3{1, 1, 1}) {
		t.Error("Viewpoint transform must not be modified")
	}
}

// TestAngularSizeSystem_DegenerateObject 测试与视点重合的物体被停用且不影响其他物体
func TestAngularSizeSystem_DegenerateObject(t *testing.T) {
	em := ecs.NewEntityManager()
	newTestViewpoint(em, mgl64.Vec3{})
	stuck := newTestObject(em, mgl64.Vec3{}, mgl64.Vec3{3, 3, 3})
	normal := newTestObject(em, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{1, 1, 1})

	system := NewAngularSizeSystem(em, NewViewpointQuery(em))
	system.Update()

	if mustController(t, em, stuck).State != components.AngularSizeInactive {
		t.Fatalf("Expected Inactive, got %v", mustController(t, em, stuck).State)
	}
	if !mustController(t, em, normal).Active() {
		t.Fatal("Unrelated object should be Active")
	}

	mustTransform(t, em, stuck).Position = mgl64.Vec3{0, 0, 100}
	mustTransform(t, em, normal).Position = mgl64.Vec3{0, 0, 30}
	for i := 0; i < 5; i++ {
		system.Update()
	}

	if mustTransform(t, em, stuck).LocalScale != (mgl64.Vec3{3, 3, 3}) {
		t.Errorf("Inactive object scale changed to %v", mustTransform(t, em, stuck).LocalScale)
	}
	if mustController(t, em, stuck).State != components.AngularSizeInactive {
		t.Error("Inactive must be terminal")
	}
	if !vecApproxEqual(mustTransform(t, em, normal).LocalScale, mgl64.Vec3{3, 3, 3}) {
		t.Errorf("Expected (3,3,3), got %v", mustTransform(t, em, normal).LocalScale)
	}
}

// TestAngularSizeSystem_NoViewpoint 测试没有视点时跳过更新,视点出现后再初始化
func TestAngularSizeSystem_NoViewpoint(t *testing.T) {
	em := ecs.NewEntityManager()
	object := newTestObject(em, mgl64.Vec3{0, 0, 4}, mgl64.Vec3{2, 2, 2})

	system := NewAngularSizeSystem(em, NewViewpointQuery(em))
	system.Update()
	system.Update()

	if mustController(t, em, object).State != components.AngularSizeUninitialized {
		t.Fatalf("Controller should stay Uninitialized without a viewpoint, got %v", mustController(t, em, object).State)
	}

	camera := newTestViewpoint(em, mgl64.Vec3{})
	system.Update()
	controller := mustController(t, em, object)
	if !controller.Active() {
		t.Fatalf("Expected Active once a viewpoint exists, got %v", controller.State)
	}
	if !vecApproxEqual(controller.SizeRatioPerUnitDistance, mgl64.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("Expected ratio (0.5,0.5,0.5), got %v", controller.SizeRatioPerUnitDistance)
	}

	// 视点失效后保留上一帧缩放
	mustTransform(t, em, object).Position = mgl64.Vec3{0, 0, 8}
	vp, _ := ecs.GetComponent[*components.ViewpointComponent](em, camera)
	vp.Active = false
	system.Update()
	if !vecApproxEqual(mustTransform(t, em, object).LocalScale, mgl64.Vec3{2, 2, 2}) {
		t.Errorf("Scale should be kept while viewpoint is missing, got %v", mustTransform(t, em, object).LocalScale)
	}

	vp.Active = true
	system.Update()
	if !vecApproxEqual(mustTransform(t, em, object).LocalScale, mgl64.Vec3{4, 4, 4}) {
		t.Errorf("Expected (4,4,4) after viewpoint returns, got %v", mustTransform(t, em, object).LocalScale)
	}
}

// TestAngularSizeSystem_IgnoresUncontrolledEntities 测试没有控制器的实体不被修改
func TestAngularSizeSystem_IgnoresUncontrolledEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	camera := newTestViewpoint(em, mgl64.Vec3{})

	plain := em.CreateEntity()
	ecs.AddComponent(em, plain, &components.TransformComponent{
		Position:   mgl64.Vec3{0, 0, 10},
		LocalScale: mgl64.Vec3{1, 1, 1},
	})

	system := NewAngularSizeSystem(em, NewViewpointQuery(em))
	system.Update()
	mustTransform(t, em, camera).Position = mgl64.Vec3{0, 0, -50}
	system.Update()

	if mustTransform(t, em, plain).LocalScale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Uncontrolled entity scale changed to %v", mustTransform(t, em, plain).LocalScale)
	}
}

// TestViewpointQuery_LowestActiveID 测试多个激活视点时选择 ID 最小者
func TestViewpointQuery_LowestActiveID(t *testing.T) {
	em := ecs.NewEntityManager()
	inactive := newTestViewpoint(em, mgl64.Vec3{9, 9, 9})
	vp, _ := ecs.GetComponent[*components.ViewpointComponent](em, inactive)
	vp.Active = false

	first := newTestViewpoint(em, mgl64.Vec3{1, 0, 0})
	newTestViewpoint(em, mgl64.Vec3{2, 0, 0})

	query := NewViewpointQuery(em)
	id, ok := query.ActiveViewpointEntity()
	if !ok || id != first {
		t.Fatalf("Expected entity %d, got %d (ok=%v)", first, id, ok)
	}

	transform, ok := query.ActiveViewpoint()
	if !ok {
		t.Fatal("ActiveViewpoint should succeed")
	}
	if transform.Position() != (mgl64.Vec3{1, 0, 0}) {
		t.Errorf("Expected position (1,0,0), got %v", transform.Position())
	}
}

// TestViewpointQuery_None 测试没有视点时返回 false
func TestViewpointQuery_None(t *testing.T) {
	em := ecs.NewEntityManager()
	if _, ok := NewViewpointQuery(em).ActiveViewpoint(); ok {
		t.Error("Expected no active viewpoint")
	}
}
