package components

import "image/color"

// SpriteComponent 存储实体的视觉表现
// 物体以圆形绘制,世界半径 = Radius * LocalScale.X()
type SpriteComponent struct {
	Name   string
	Radius float64
	Color  color.RGBA
}
