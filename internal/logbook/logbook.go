// Package logbook orchestrates the read/modify/write sequences between the
// HTTP handlers and the storage folder: per-date log documents plus the
// manifest index.
package logbook

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/ironlog-io/ironlog/pkg/manifest"
	"github.com/ironlog-io/ironlog/pkg/models"
	"github.com/ironlog-io/ironlog/pkg/storage"
)

// Service executes log operations against a single storage folder.
type Service struct {
	// Provider is the storage backend.
	Provider storage.Provider

	// FolderID identifies the storage folder holding all documents.
	FolderID string

	// Logger is the logger for the service.
	Logger hclog.Logger
}

// Result pairs a manifest entry with its log document. The document is
// carried verbatim as stored.
type Result struct {
	Meta manifest.Entry  `json:"meta"`
	Log  json.RawMessage `json:"log"`
}

// MuscleResult is a Result that also names the exercise whose target
// muscles matched the query.
type MuscleResult struct {
	Meta            manifest.Entry  `json:"meta"`
	Log             json.RawMessage `json:"log"`
	MatchedExercise string          `json:"matched_exercise"`
}

// SaveResult describes a completed save.
type SaveResult struct {
	File   string
	SHA256 string
}

// NotFoundError indicates that no log satisfied the query.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// SaveLog upserts the log's per-date document and its manifest entry. The
// log must already be normalized and validated. Returns the backing file
// name and the hex SHA-256 of the stored document.
func (s *Service) SaveLog(ctx context.Context, log *models.WorkoutLog) (*SaveResult, error) {
	payload, err := json.Marshal(log)
	if err != nil {
		return nil, fmt.Errorf("error encoding log: %w", err)
	}
	sum := sha256.Sum256(payload)
	sha := hex.EncodeToString(sum[:])

	fileName := manifest.LogFileName(log.Date)
	existing, err := s.Provider.FindFileInFolder(ctx, fileName, s.FolderID)
	if err != nil {
		return nil, fmt.Errorf("error finding log file: %w", err)
	}
	if existing != nil {
		if _, err := s.Provider.UpdateJSONFile(ctx, existing.ID, payload); err != nil {
			return nil, fmt.Errorf("error updating log file: %w", err)
		}
	} else {
		if _, err := s.Provider.CreateJSONFile(ctx, fileName, s.FolderID, payload); err != nil {
			return nil, fmt.Errorf("error creating log file: %w", err)
		}
	}

	entry := manifest.Entry{
		Date:          log.Date,
		File:          fileName,
		Hash:          sha,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		SchemaVersion: log.SchemaVersion,
		SessionID:     log.SessionID,
		WorkoutType:   log.WorkoutType,
	}
	if err := s.upsertManifest(ctx, entry); err != nil {
		return nil, err
	}

	s.Logger.Info("saved log", "date", log.Date, "file", fileName)

	return &SaveResult{File: fileName, SHA256: sha}, nil
}

// Entries returns all manifest entries sorted by date ascending. When the
// manifest document is absent, entries are rebuilt from the folder's
// date-named JSON files.
func (s *Service) Entries(ctx context.Context) ([]manifest.Entry, error) {
	idx, err := s.Provider.FindFileInFolder(ctx, manifest.FileName, s.FolderID)
	if err != nil {
		return nil, fmt.Errorf("error finding manifest: %w", err)
	}
	if idx != nil {
		m, err := s.readManifest(ctx, idx.ID)
		if err != nil {
			return nil, err
		}
		manifest.SortEntries(m.Entries)
		return m.Entries, nil
	}

	files, err := s.Provider.ListJSONFilesInFolder(ctx, s.FolderID)
	if err != nil {
		return nil, fmt.Errorf("error listing folder: %w", err)
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return manifest.FromFileNames(names), nil
}

// Latest returns the most recent log, optionally restricted to entries
// strictly before the cutoff date.
func (s *Service) Latest(ctx context.Context, before string) (*Result, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	entries = manifest.Before(entries, before)
	if len(entries) == 0 {
		return nil, &NotFoundError{Message: "No logs found"}
	}

	latest := entries[len(entries)-1]
	_, raw, err := s.openEntry(ctx, latest)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		// Manifest entry with no backing file. Keep the metadata and
		// return an empty document, matching the index's eventual
		// consistency contract.
		raw = json.RawMessage("{}")
	}
	return &Result{Meta: latest, Log: raw}, nil
}

// LatestForWorkout returns the most recent log for a workout type. The
// first pass trusts manifest entries whose recorded type matches: the
// entry wins when its document's type still matches, or, when the type
// has drifted, when any exercise carries target muscles. The second pass
// relaxes the manifest condition and opens every candidate document
// looking for a true type match.
func (s *Service) LatestForWorkout(ctx context.Context, workoutType, before string) (*Result, error) {
	t := strings.ToLower(strings.TrimSpace(workoutType))

	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	entries = manifest.Before(entries, before)

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if strings.ToLower(strings.TrimSpace(e.WorkoutType)) != t {
			continue
		}
		log, raw, err := s.openEntry(ctx, e)
		if err != nil {
			return nil, err
		}
		if log == nil {
			continue
		}
		if strings.ToLower(strings.TrimSpace(log.WorkoutType)) == t {
			return &Result{Meta: e, Log: raw}, nil
		}
		// Entry and document disagree on the type. Accept the document
		// anyway when any exercise carries target muscles.
		for _, ex := range log.Exercises {
			if len(ex.TargetMuscles) > 0 {
				return &Result{Meta: e, Log: raw}, nil
			}
		}
	}

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		log, raw, err := s.openEntry(ctx, e)
		if err != nil {
			return nil, err
		}
		if log == nil {
			continue
		}
		if strings.ToLower(strings.TrimSpace(log.WorkoutType)) == t {
			return &Result{Meta: e, Log: raw}, nil
		}
	}

	return nil, &NotFoundError{
		Message: fmt.Sprintf("No logs found for workout_type '%s'", t),
	}
}

// LatestForMuscle returns the most recent log containing an exercise that
// targets the given muscle label, scanning backward and opening every
// candidate document.
func (s *Service) LatestForMuscle(ctx context.Context, muscle, before string) (*MuscleResult, error) {
	needle := strings.ToLower(strings.TrimSpace(muscle))

	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	entries = manifest.Before(entries, before)

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		log, raw, err := s.openEntry(ctx, e)
		if err != nil {
			return nil, err
		}
		if log == nil {
			continue
		}
		for _, ex := range log.Exercises {
			for _, m := range models.NormalizeMuscles(ex.TargetMuscles) {
				if m == needle {
					return &MuscleResult{
						Meta:            e,
						Log:             raw,
						MatchedExercise: ex.Name,
					}, nil
				}
			}
		}
	}

	return nil, &NotFoundError{
		Message: fmt.Sprintf("No logs found containing muscle '%s'", muscle),
	}
}

// ByDate returns the raw log document for an exact date.
func (s *Service) ByDate(ctx context.Context, date string) (json.RawMessage, error) {
	fileName := manifest.LogFileName(date)
	existing, err := s.Provider.FindFileInFolder(ctx, fileName, s.FolderID)
	if err != nil {
		return nil, fmt.Errorf("error finding log file: %w", err)
	}
	if existing == nil {
		return nil, &NotFoundError{Message: fmt.Sprintf("No log for %s", date)}
	}
	content, err := s.Provider.ReadJSONFile(ctx, existing.ID)
	if err != nil {
		return nil, fmt.Errorf("error reading log file: %w", err)
	}
	return json.RawMessage(content), nil
}

// upsertManifest read-modify-writes the manifest document with the entry.
func (s *Service) upsertManifest(ctx context.Context, entry manifest.Entry) error {
	existing, err := s.Provider.FindFileInFolder(ctx, manifest.FileName, s.FolderID)
	if err != nil {
		return fmt.Errorf("error finding manifest: %w", err)
	}

	m := manifest.New()
	if existing != nil {
		m, err = s.readManifest(ctx, existing.ID)
		if err != nil {
			return err
		}
	}
	m.Upsert(entry)

	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("error encoding manifest: %w", err)
	}

	if existing != nil {
		if _, err := s.Provider.UpdateJSONFile(ctx, existing.ID, payload); err != nil {
			return fmt.Errorf("error updating manifest: %w", err)
		}
	} else {
		if _, err := s.Provider.CreateJSONFile(
			ctx, manifest.FileName, s.FolderID, payload); err != nil {
			return fmt.Errorf("error creating manifest: %w", err)
		}
	}
	return nil
}

func (s *Service) readManifest(ctx context.Context, fileID string) (*manifest.Manifest, error) {
	content, err := s.Provider.ReadJSONFile(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}
	var m manifest.Manifest
	if err := json.Unmarshal(content, &m); err != nil {
		return nil, fmt.Errorf("error decoding manifest: %w", err)
	}
	if m.Entries == nil {
		m.Entries = []manifest.Entry{}
	}
	return &m, nil
}

// openEntry opens the document behind a manifest entry, returning both
// the decoded log and the raw stored bytes. Returns nils with no error
// when the backing file is missing, so scans can skip it.
func (s *Service) openEntry(ctx context.Context, e manifest.Entry) (*models.WorkoutLog, json.RawMessage, error) {
	file, err := s.Provider.FindFileInFolder(ctx, e.File, s.FolderID)
	if err != nil {
		return nil, nil, fmt.Errorf("error finding log file: %w", err)
	}
	if file == nil {
		s.Logger.Warn("manifest entry has no backing file", "date", e.Date, "file", e.File)
		return nil, nil, nil
	}
	content, err := s.Provider.ReadJSONFile(ctx, file.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading log file: %w", err)
	}
	var log models.WorkoutLog
	if err := json.Unmarshal(content, &log); err != nil {
		return nil, nil, fmt.Errorf("error decoding log file: %w", err)
	}
	return &log, json.RawMessage(content), nil
}
