package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedProgress is the per-level record stored on disk.
type SavedProgress struct {
	BestPct  map[string]float64 `json:"bestPct"`
	Attempts map[string]int     `json:"attempts"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "jumpdash",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads saved per-level progress from disk. A missing or broken
// save file degrades to empty progress, never an error the caller must handle.
func LoadProgress() *SavedProgress {
	empty := &SavedProgress{
		BestPct:  map[string]float64{},
		Attempts: map[string]int{},
	}
	if !gdataInitialized || gdataManager == nil {
		return empty
	}

	data, err := gdataManager.LoadItem("progress")
	if err != nil {
		log.Printf("Warning: Could not load progress: %v", err)
		return empty
	}
	if len(data) == 0 {
		return empty
	}

	var progress SavedProgress
	if err := json.Unmarshal(data, &progress); err != nil {
		log.Printf("Warning: Could not parse saved progress: %v", err)
		return empty
	}
	if progress.BestPct == nil {
		progress.BestPct = map[string]float64{}
	}
	if progress.Attempts == nil {
		progress.Attempts = map[string]int{}
	}
	return &progress
}

// SaveProgress writes per-level progress to disk.
func SaveProgress(p *SavedProgress) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Printf("Warning: Could not serialize progress: %v", err)
		return err
	}
	if err := gdataManager.SaveItem("progress", data); err != nil {
		log.Printf("Warning: Could not save progress: %v", err)
		return err
	}
	return nil
}

// RecordAttempt bumps the attempt counter and folds a run's completion
// percent into the stored best. Returns the best percent after the update.
func RecordAttempt(levelName string, pct float64) float64 {
	progress := LoadProgress()
	progress.Attempts[levelName]++
	if pct > progress.BestPct[levelName] {
		progress.BestPct[levelName] = pct
	}
	_ = SaveProgress(progress)
	return progress.BestPct[levelName]
}
