// verify_angular_size 无窗口运行场景，逐帧打印视点距离和物体缩放
//
// 用法:
//
//	go run ./cmd/verify_angular_size -scene data/scene.yaml -frames 120 -every 20
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/gonewx/gaze/pkg/app"
	"github.com/gonewx/gaze/pkg/components"
	"github.com/gonewx/gaze/pkg/config"
	"github.com/gonewx/gaze/pkg/ecs"
	"github.com/gonewx/gaze/pkg/systems"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	scenePath = flag.String("scene", "data/scene.yaml", "场景配置文件路径")
	frames    = flag.Int("frames", 120, "模拟帧数")
	every     = flag.Int("every", 20, "每隔多少帧打印一次")
	tps       = flag.Int("tps", 60, "每秒帧数")
)

func main() {
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadSceneConfig(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载场景失败: %v\n", err)
		os.Exit(1)
	}

	world, err := app.NewWorld(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "创建场景失败: %v\n", err)
		os.Exit(1)
	}

	if *every <= 0 {
		*every = 1
	}
	dt := 1.0 / float64(*tps)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "frame\tobject\tstate\tdistance\tscale\tscreen radius")

	for frame := 1; frame <= *frames; frame++ {
		world.Step(dt)
		if frame%*every != 0 && frame != 1 {
			continue
		}
		printFrame(w, world, cfg, frame)
	}
	w.Flush()
}

// printFrame 打印所有带精灵的物体
func printFrame(w io.Writer, world *app.World, cfg *config.SceneConfig, frame int) {
	em := world.EntityManager
	vp, ok := ecs.GetComponent[*components.TransformComponent](em, world.Scene.Viewpoint)
	if !ok {
		return
	}

	for _, id := range world.Scene.Objects {
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)

		state := "-"
		if c, ok := ecs.GetComponent[*components.AngularSizeComponent](em, id); ok {
			state = c.State.String()
		}

		radius := "behind"
		if proj, ok := systems.Project(vp.Position, transform.Position, sprite.Radius*transform.LocalScale.X(),
			cfg.Viewpoint.FocalLength, cfg.Window.Width, cfg.Window.Height); ok {
			radius = fmt.Sprintf("%.2f", proj.Radius)
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%.3f\t%.4f\t%s\n",
			frame, sprite.Name, state,
			transform.Position.Sub(vp.Position).Len(),
			transform.LocalScale.X(), radius)
	}
}
