package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// FileName is the config file searched for in the config dir
const FileName = "turnpike.cfg.json"

// SimulationConfig holds the tuning consumed by game.NewWorld
type SimulationConfig struct {
	ChunkLength float64
	ChunkMargin float64

	Acceleration float64
	MaxSpeed     float64

	DamagePolicy string
	DamageFactor float64
	DamageAmount float64

	TrafficPerChunk int
	AheadChunks     int
	BehindChunks    int
	TrafficResponse float64

	LaneWidth float64
	LaneCount int

	CourseFile      string
	CourseLength    int
	CheckpointEvery int
}

// Defaults is the tuning used when no config file overrides it
var Defaults = SimulationConfig{
	ChunkLength:     39.49791,
	ChunkMargin:     1,
	Acceleration:    0.01,
	MaxSpeed:        0.6,
	DamagePolicy:    "linear",
	DamageFactor:    1,
	DamageAmount:    10,
	TrafficPerChunk: 3,
	AheadChunks:     3,
	BehindChunks:    1,
	TrafficResponse: 0.01,
	LaneWidth:       1,
	LaneCount:       4,
	CourseLength:    20,
	CheckpointEvery: 5,
}

// SetDefaults registers every key's default value
func SetDefaults() {
	d := Defaults

	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "")

	viper.SetDefault("chunk.length", d.ChunkLength)
	viper.SetDefault("chunk.margin", d.ChunkMargin)

	viper.SetDefault("player.acceleration", d.Acceleration)
	viper.SetDefault("player.maxSpeed", d.MaxSpeed)

	viper.SetDefault("damage.policy", d.DamagePolicy)
	viper.SetDefault("damage.factor", d.DamageFactor)
	viper.SetDefault("damage.amount", d.DamageAmount)

	viper.SetDefault("traffic.perChunk", d.TrafficPerChunk)
	viper.SetDefault("traffic.aheadChunks", d.AheadChunks)
	viper.SetDefault("traffic.behindChunks", d.BehindChunks)
	viper.SetDefault("traffic.response", d.TrafficResponse)

	viper.SetDefault("lanes.width", d.LaneWidth)
	viper.SetDefault("lanes.count", d.LaneCount)

	viper.SetDefault("course.file", d.CourseFile)
	viper.SetDefault("course.length", d.CourseLength)
	viper.SetDefault("course.checkpointEvery", d.CheckpointEvery)
}

// Flags returns the command-line flags understood by the binaries
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("turnpike", pflag.ContinueOnError)
	fs.String("config-dir", ".", "directory containing "+FileName)
	fs.String("log-level", "", "override logLevel (trace, debug, info, warn, error)")
	fs.String("course", "", "override course.file")
	return fs
}

// Load sets defaults, binds flags and reads the config file from configDir.
// A missing file is not an error; a malformed one is.
func Load(configDir string, flags *pflag.FlagSet) error {
	SetDefaults()

	if flags != nil {
		if f := flags.Lookup("log-level"); f != nil && f.Changed {
			if err := viper.BindPFlag("logLevel", f); err != nil {
				return fmt.Errorf("error binding flag: %w", err)
			}
		}
		if f := flags.Lookup("course"); f != nil && f.Changed {
			if err := viper.BindPFlag("course.file", f); err != nil {
				return fmt.Errorf("error binding flag: %w", err)
			}
		}
	}

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Simulation returns the typed simulation tuning
func Simulation() SimulationConfig {
	return SimulationConfig{
		ChunkLength:     viper.GetFloat64("chunk.length"),
		ChunkMargin:     viper.GetFloat64("chunk.margin"),
		Acceleration:    viper.GetFloat64("player.acceleration"),
		MaxSpeed:        viper.GetFloat64("player.maxSpeed"),
		DamagePolicy:    viper.GetString("damage.policy"),
		DamageFactor:    viper.GetFloat64("damage.factor"),
		DamageAmount:    viper.GetFloat64("damage.amount"),
		TrafficPerChunk: viper.GetInt("traffic.perChunk"),
		AheadChunks:     viper.GetInt("traffic.aheadChunks"),
		BehindChunks:    viper.GetInt("traffic.behindChunks"),
		TrafficResponse: viper.GetFloat64("traffic.response"),
		LaneWidth:       viper.GetFloat64("lanes.width"),
		LaneCount:       viper.GetInt("lanes.count"),
		CourseFile:      viper.GetString("course.file"),
		CourseLength:    viper.GetInt("course.length"),
		CheckpointEvery: viper.GetInt("course.checkpointEvery"),
	}
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}
