package systems

import (
	"math"

	"github.com/gonewx/gaze/pkg/components"
	"github.com/gonewx/gaze/pkg/ecs"
)

// DollySystem 沿轨道往返移动带 DollyComponent 的视点
type DollySystem struct {
	entityManager *ecs.EntityManager

	// SpeedScale 全局速度倍率（来自查看偏好）
	SpeedScale float64
}

// NewDollySystem 创建视点轨道系统
func NewDollySystem(em *ecs.EntityManager) *DollySystem {
	return &DollySystem{
		entityManager: em,
		SpeedScale:    1.0,
	}
}

// Update 推进所有轨道 dt 秒
func (s *DollySystem) Update(dt float64) {
	entities := ecs.GetEntitiesWith2[*components.DollyComponent, *components.TransformComponent](s.entityManager)
	for _, id := range entities {
		dolly, _ := ecs.GetComponent[*components.DollyComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		if !dolly.Paused {
			advanceDolly(dolly, dolly.Speed*s.SpeedScale*dt)
		}
		transform.Position = dolly.Origin.Add(dolly.Axis.Mul(dolly.Offset))
	}
}

// SetPaused 暂停或恢复所有轨道
func (s *DollySystem) SetPaused(paused bool) {
	for _, id := range ecs.GetEntitiesWith1[*components.DollyComponent](s.entityManager) {
		dolly, _ := ecs.GetComponent[*components.DollyComponent](s.entityManager, id)
		dolly.Paused = paused
	}
}

// Nudge 手动沿轨道移动 delta（会被限制在 [Near, Far] 内）
func (s *DollySystem) Nudge(delta float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.DollyComponent](s.entityManager) {
		dolly, _ := ecs.GetComponent[*components.DollyComponent](s.entityManager, id)
		dolly.Offset = clampFloat(dolly.Offset+delta, dolly.Near, dolly.Far)
	}
}

// advanceDolly 沿当前方向移动 step,到达端点后反弹
func advanceDolly(d *components.DollyComponent, step float64) {
	if d.Far <= d.Near || step <= 0 {
		d.Offset = clampFloat(d.Offset, d.Near, d.Far)
		return
	}
	if d.Direction == 0 {
		d.Direction = 1
	}

	span := d.Far - d.Near
	// 超过一个来回的部分直接取余
	step = math.Mod(step, 2*span)

	offset := clampFloat(d.Offset, d.Near, d.Far) + d.Direction*step
	for offset > d.Far || offset < d.Near {
		if offset > d.Far {
			offset = 2*d.Far - offset
			d.Direction = -1
		} else {
			offset = 2*d.Near - offset
			d.Direction = 1
		}
	}
	d.Offset = offset
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
