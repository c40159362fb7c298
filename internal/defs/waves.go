package defs

import "time"

// WaveDefinition описывает параметры волн врагов. Wave n holds
// BaseCount + PerWave*n enemies; there is no last wave.
type WaveDefinition struct {
	BaseCount     int           `yaml:"base_count"`
	PerWave       int           `yaml:"per_wave"`
	SpawnInterval time.Duration `yaml:"spawn_interval"` // stagger between two spawns
	FirstDelay    time.Duration `yaml:"first_delay"`    // session start -> wave 1
	NextDelay     time.Duration `yaml:"next_delay"`     // wave complete -> next wave
}

func DefaultWaves() WaveDefinition {
	return WaveDefinition{
		BaseCount:     5,
		PerWave:       2,
		SpawnInterval: time.Second,
		FirstDelay:    2 * time.Second,
		NextDelay:     10 * time.Second,
	}
}

// EnemyCount returns the number of enemies in wave n.
func (w WaveDefinition) EnemyCount(n int) int {
	return w.BaseCount + w.PerWave*n
}
