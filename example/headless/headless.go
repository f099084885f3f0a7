package main

import (
	"flag"
	"os"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/orbit/game"
	"github.com/oomph-ac/orbit/input"
	"github.com/oomph-ac/orbit/settings"
	"github.com/oomph-ac/orbit/simulation"
	"github.com/oomph-ac/orbit/world"
	"github.com/sirupsen/logrus"
)

// The following program drives a character and its camera through a small scripted course without a
// renderer, logging where both end up.
func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml settings file (defaults and ORBIT_* environment variables are used when empty)")
	ticks := flag.Int("ticks", 300, "amount of ticks to simulate")
	rate := flag.Int("rate", 60, "ticks per second")
	realtime := flag.Bool("realtime", false, "sleep between ticks instead of running as fast as possible")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatalf("unable to init sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}
	defer sentry.Recover()

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	conf, err := loadSettings(*configPath)
	if err != nil {
		log.Fatalln(err)
	}
	if lvl, err := logrus.ParseLevel(conf.Log.Level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.Warnf("unknown log level %q, using %v", conf.Log.Level, log.GetLevel())
	}

	w := world.New(log)
	buildCourse(w)

	sim := simulation.New(conf, w, log)
	if _, err := sim.Spawn("player", mgl32.Vec3{0, 0, 0}, 0); err != nil {
		log.Fatalln(err)
	}
	sim.Follow("player")

	tps := max(*rate, 1)
	dt := 1 / float32(tps)
	var (
		buf  input.Buffer
		cost = make([]float64, 0, max(*ticks, 0))
	)
	for tick := 0; tick < *ticks; tick++ {
		script(&buf, tick, tps)

		start := time.Now()
		snap := sim.Tick(dt, buf.Drain())
		cost = append(cost, float64(time.Since(start).Microseconds()))

		if tick%tps == 0 {
			log.WithFields(logrus.Fields{
				"tick":     snap.Tick,
				"pos":      game.RoundVec32(snap.CharacterState.Position, 2),
				"yaw":      game.Round32(snap.CharacterState.Yaw, 1),
				"ground":   snap.CharacterState.Ground,
				"distance": game.Round32(snap.Camera.EffectiveDistance, 2),
			}).Info("progress")
		}
		if *realtime {
			time.Sleep(time.Second / time.Duration(tps))
		}
	}
	fields := logrus.Fields{
		"ticks":       sim.TickCount(),
		"checksum":    sim.Checksum(),
		"mean_us":     game.Mean(cost),
		"median_us":   game.Median(cost),
		"stddev_us":   game.StandardDeviation(cost),
		"slow_ticks":  game.Outliers(cost),
		"history_len": sim.HistoryLen(),
	}
	if last, ok := sim.LastSnapshot(); ok {
		fields["pos"] = game.RoundVec32(last.CharacterState.Position, 2)
		fields["camera"] = game.RoundVec32(last.Camera.CameraPosition, 2)
	}
	log.WithFields(fields).Info("simulation finished")
}

func loadSettings(path string) (settings.Settings, error) {
	if path == "" {
		return settings.FromEnv()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := settings.SaveDefault(path); err != nil {
			return settings.Settings{}, err
		}
	}
	return settings.Load(path)
}

// buildCourse lays out a floor, a low step and a wall that blocks the camera behind the start position.
func buildCourse(w *world.World) {
	w.AddBox(cube.Box(-50, -1, -50, 50, 0, 50), game.LayerGround)
	w.AddBox(cube.Box(-2, 0, 6, 2, 0.25, 8), game.LayerDefault)
	w.AddBox(cube.Box(-10, 0, -3, 10, 6, -2.5), game.LayerDefault|game.LayerCameraBlocking)
}

// script feeds the input a player would give: walk forward, sweep the camera round, jump and zoom in.
func script(buf *input.Buffer, tick, rate int) {
	second := tick / rate
	switch {
	case tick == 0:
		buf.Move(mgl32.Vec2{0, 1})
	case second == 2:
		buf.Look(mgl32.Vec2{90, 0})
	case second == 3 && tick%rate == 0:
		buf.Move(mgl32.Vec2{1, 0})
	case second == 4:
		buf.Jump(tick%rate == 0)
		buf.Zoom(2)
	case second == 5 && tick%rate == 0:
		buf.Move(mgl32.Vec2{})
	}
}
