package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/gaze/pkg/app"
	"github.com/gonewx/gaze/pkg/embedded"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细日志")
	scenePath = flag.String("scene", "data/scene.yaml", "场景配置文件路径")
	noSave    = flag.Bool("nosave", false, "不读取/保存查看偏好")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	storageName := "gaze"
	if *noSave {
		storageName = ""
	}

	a, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ScenePath:   *scenePath,
		StorageName: storageName,
	})
	if err != nil {
		// NewApp 可能已关闭日志输出，错误直接写 stderr
		log.New(os.Stderr, "", log.LstdFlags).Fatalf("[Main] 初始化失败: %v", err)
	}

	width, height := a.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(a.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(a.Fullscreen())

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
