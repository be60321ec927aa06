package game

// FrameLoop 是 FrameScheduler 的默认实现
//
// 宿主在每次逻辑帧（ebiten 的 Update）调用一次 Tick,
// 所有已注册回调按注册顺序同步执行。非并发安全,只能在游戏循环中使用。
type FrameLoop struct {
	callbacks []func()
	frame     uint64
}

// NewFrameLoop 创建空的帧循环
func NewFrameLoop() *FrameLoop {
	return &FrameLoop{
		callbacks: make([]func(), 0),
	}
}

// OnEveryFrame 注册每帧回调（nil 回调会被忽略）
func (l *FrameLoop) OnEveryFrame(callback func()) {
	if callback == nil {
		return
	}
	l.callbacks = append(l.callbacks, callback)
}

// Tick 推进一帧,依次调用所有回调
func (l *FrameLoop) Tick() {
	l.frame++
	for _, cb := range l.callbacks {
		cb()
	}
}

// Frame 返回已执行的帧数
func (l *FrameLoop) Frame() uint64 {
	return l.frame
}

// CallbackCount 返回已注册回调数量
func (l *FrameLoop) CallbackCount() int {
	return len(l.callbacks)
}
