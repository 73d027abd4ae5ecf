package app

import (
	"fmt"

	"github.com/google/uuid"

	"tableflip.dev/dayplan/pkg/routine"
)

// CreateBackup snapshots the buffer onto the ledger, evicting the oldest
// backups beyond the limit.
func (s *Service) CreateBackup() routine.Backup {
	b := routine.Backup{
		ID:        uuid.New().String()[:8],
		Timestamp: s.clock.Now().UnixMilli(),
		State:     s.State(),
	}
	s.backups = append(s.backups, b)
	s.trimBackups()
	return b
}

func (s *Service) trimBackups() {
	if over := len(s.backups) - s.opts.BackupLimit; over > 0 {
		s.backups = append([]routine.Backup(nil), s.backups[over:]...)
	}
}

// Backups returns the ledger, oldest first.
func (s *Service) Backups() []routine.Backup {
	out := make([]routine.Backup, len(s.backups))
	for i, b := range s.backups {
		b.State = b.State.Clone()
		out[i] = b
	}
	return out
}

// Backup returns the backup with the given id.
func (s *Service) Backup(id string) (routine.Backup, error) {
	for _, b := range s.backups {
		if b.ID == id {
			b.State = b.State.Clone()
			return b, nil
		}
	}
	return routine.Backup{}, fmt.Errorf("%w: %s", ErrBackupNotFound, id)
}

// RestoreFromBackup replaces the whole buffer with the backup's state and
// marks it unsaved.
func (s *Service) RestoreFromBackup(b routine.Backup) {
	s.setState(b.State)
	s.touch()
}

// RestoreBackup restores the backup with the given id.
func (s *Service) RestoreBackup(id string) (routine.Backup, error) {
	b, err := s.Backup(id)
	if err != nil {
		return routine.Backup{}, err
	}
	s.RestoreFromBackup(b)
	return b, nil
}
