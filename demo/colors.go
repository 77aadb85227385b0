//go:build ignore

package main

import (
	"time"

	"github.com/AndrewHarrisSPU/logfox"
)

func main() {
	logfox.EnableSelfTrace()
	logfox.SetTimeFormat("15:04:05")
	logfox.SetNamespaceColor("aliens", "bright green")
	logfox.SetNamespaceColor("agents", "bright magenta")
	logfox.ExcludeNamespace("agents::smoking")

	aliens := logfox.Named("aliens::roswell")
	aliens.Error("🛸 spotted")
	aliens.Warn("lights in the sky")
	aliens.Info("sighting logged")
	aliens.Debugf("altitude %dm", 3200)
	aliens.Trace("trajectory:\n  north\n  then up")

	agents := logfox.Named("agents")
	agents.Sub("mulder").Info("I want to believe")
	agents.Sub("scully").Info("there's a rational explanation")
	agents.Sub("smoking").Info("never shown")

	logfox.Infof("elapsed %s", time.Duration(1234)*time.Millisecond)
}
