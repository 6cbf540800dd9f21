package services

import (
	"encoding/json"
	"fmt"
	"helpdesk-server/usecases"
	"log"
	"os"
	"path/filepath"
	"time"
)

// BackupRunner executes the stored backup schedule: on every tick it
// checks whether a run is due and, if so, writes the configured export
// part as a JSON file into the backup directory.
type BackupRunner struct {
	Backup   *usecases.BackupUseCase
	Settings *usecases.SettingsUseCase
	Dir      string
	interval time.Duration
}

func NewBackupRunner(backup *usecases.BackupUseCase, settings *usecases.SettingsUseCase, dir string) *BackupRunner {
	return &BackupRunner{
		Backup:   backup,
		Settings: settings,
		Dir:      dir,
		interval: 10 * time.Minute,
	}
}

// Start launches the schedule loop in the background.
func (br *BackupRunner) Start() {
	ticker := time.NewTicker(br.interval)
	go func() {
		for range ticker.C {
			br.RunDue()
		}
	}()
}

// RunDue performs a scheduled export when one is due. Safe to call from
// an HTTP handler for a manual trigger.
func (br *BackupRunner) RunDue() {
	schedule, err := br.Settings.GetBackupSchedule()
	if err != nil {
		log.Printf("backup runner: cannot read schedule: %v", err)
		return
	}
	if !schedule.Enabled {
		return
	}
	if schedule.LastRunAt != "" {
		last, err := time.Parse(time.RFC3339, schedule.LastRunAt)
		if err == nil && time.Since(last) < time.Duration(schedule.IntervalHours)*time.Hour {
			return
		}
	}

	path, err := br.Export(schedule.Part)
	if err != nil {
		log.Printf("backup runner: export failed: %v", err)
		return
	}
	log.Printf("backup runner: wrote %s", path)

	if drive, err := br.Settings.GetGoogleDriveConfig(); err == nil && drive.Enabled {
		// Drive upload is simulated; the file stays local.
		log.Printf("backup runner: would upload %s to Drive folder %q", filepath.Base(path), drive.Folder)
	}

	schedule.LastRunAt = time.Now().Format(time.RFC3339)
	if err := br.Settings.SaveBackupSchedule(schedule); err != nil {
		log.Printf("backup runner: cannot update schedule: %v", err)
	}
}

// Export writes one export part to disk and returns the file path.
func (br *BackupRunner) Export(part string) (string, error) {
	data, err := br.Backup.Export(part)
	if err != nil {
		return "", err
	}
	payload, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(br.Dir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("backup-%s-%s.json", part, time.Now().Format("20060102-150405"))
	path := filepath.Join(br.Dir, name)
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
