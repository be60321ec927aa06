package components

// ViewpointComponent 标记一个可作为视点（摄像机）的实体
// 视点的位置来自同一实体上的 TransformComponent
type ViewpointComponent struct {
	// Active 是否为当前激活的视点
	// 同时存在多个激活视点时,ID 最小的实体生效
	Active bool

	// FocalLength 投影焦距（像素）,仅渲染使用
	FocalLength float64
}
