// Command jumpdash-sim replays a level headlessly: it loads a TMX level from
// disk, feeds a scripted input stream into the deterministic simulation and
// prints the outcome plus a trajectory digest. Two runs of the same level and
// script must print the same digest; CI uses that to catch nondeterminism.
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/automoto/jumpdash/level"
	"github.com/automoto/jumpdash/physics"
	"github.com/automoto/jumpdash/shared/leveldata"
	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// InputScript is the YAML replay format: hold/release segments consumed in
// order, released once the script runs out.
type InputScript struct {
	Segments []ScriptSegment `yaml:"segments"`
}

type ScriptSegment struct {
	Hold  bool `yaml:"hold"`
	Ticks int  `yaml:"ticks"`
}

// at returns the input state for a tick index.
func (s *InputScript) at(tick int) bool {
	for _, seg := range s.Segments {
		if tick < seg.Ticks {
			return seg.Hold
		}
		tick -= seg.Ticks
	}
	return false
}

func loadScript(path string) (*InputScript, error) {
	if path == "" {
		return &InputScript{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	var script InputScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	return &script, nil
}

func main() {
	var (
		assetsDir = flag.String("assets", "assets", "directory containing a levels/ subdirectory")
		levelName = flag.String("level", "", "level stem name to simulate (required)")
		scriptArg = flag.String("script", "", "YAML input script; empty means no input")
		maxTicks  = flag.Int("ticks", 3600, "tick budget before the run is cut off")
		verbose   = flag.Bool("v", false, "log state every 60 ticks")
	)
	flag.Parse()

	if *levelName == "" {
		flag.Usage()
		os.Exit(2)
	}

	levels, _, err := leveldata.LoadAll(os.DirFS(*assetsDir), "levels")
	if err != nil {
		log.Fatalf("load levels: %v", err)
	}
	data, ok := levels[*levelName]
	if !ok {
		log.Fatalf("unknown level %q", *levelName)
	}

	lvl, err := level.New(data)
	if err != nil {
		log.Fatalf("build level: %v", err)
	}
	script, err := loadScript(*scriptArg)
	if err != nil {
		log.Fatal(err)
	}

	player, err := physics.NewPlayer(&physics.DefaultTable, lvl.Spawn())
	if err != nil {
		log.Fatalf("spawn player: %v", err)
	}

	digest := xxhash.New()
	var buf [8 * 3]byte
	outcome := "timeout"
	ticks := 0

	for ; ticks < *maxTicks; ticks++ {
		err := player.Step(physics.TickContext{
			Dt:    physics.FixedDelta,
			Input: script.at(ticks),
			Index: lvl,
		})
		if err != nil {
			log.Fatalf("tick %d: %v", ticks, err)
		}

		binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(player.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(player.Y))
		binary.LittleEndian.PutUint64(buf[16:], math.Float64bits(player.VY))
		_, _ = digest.Write(buf[:])

		if *verbose && ticks%60 == 0 {
			log.Printf("t=%4d mode=%-6s x=%8.2f y=%7.2f vy=%6.2f pct=%5.1f",
				ticks, player.Mode, player.X, player.Y, player.VY, lvl.Progress(player.X))
		}

		if player.Dead() {
			outcome = "death"
			ticks++
			break
		}
		if lvl.Complete(player.X) {
			outcome = "complete"
			ticks++
			break
		}
	}

	fmt.Printf("level:    %s\n", *levelName)
	fmt.Printf("outcome:  %s\n", outcome)
	fmt.Printf("ticks:    %d\n", ticks)
	fmt.Printf("progress: %.1f%%\n", lvl.Progress(player.X))
	fmt.Printf("digest:   %016x\n", digest.Sum64())

	if outcome == "death" {
		os.Exit(1)
	}
}
