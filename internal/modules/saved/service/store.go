package service

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"lotus/internal/modules/saved/domain"
	savedout "lotus/internal/modules/saved/port/out"
	studies "lotus/internal/modules/studies/domain"
	"lotus/internal/platform/clock"
	"lotus/internal/platform/logging"
)

// Store is the deduplicated saved-study list. Every mutation reads the
// persisted blob, changes it and writes the whole list back. Failures of the
// underlying storage are logged and reported as false, never returned.
type Store struct {
	blobs    savedout.BlobStore
	exporter savedout.Exporter
	clock    clock.Clock
	logger   *zap.Logger
}

func NewStore(blobs savedout.BlobStore, exporter savedout.Exporter, clock clock.Clock, logger *zap.Logger) *Store {
	return &Store{blobs: blobs, exporter: exporter, clock: clock, logger: logging.OrNop(logger).Named("saved")}
}

// Load returns the list in insertion order. Absent, unreadable or malformed
// data is an empty list. Later entries repeating an identity key are dropped.
func (s *Store) Load(ctx context.Context) []domain.SavedStudy {
	blob, ok, err := s.blobs.GetItem(ctx, domain.SlotName)
	if err != nil {
		s.logger.Warn("read saved studies", zap.Error(err))
		return []domain.SavedStudy{}
	}
	if !ok || blob == "" {
		return []domain.SavedStudy{}
	}
	list, err := domain.Decode(blob)
	if err != nil {
		s.logger.Warn("discarding malformed saved studies", zap.Error(err))
		return []domain.SavedStudy{}
	}
	if list == nil {
		return []domain.SavedStudy{}
	}
	if kept := unique(list); len(kept) != len(list) {
		s.logger.Warn("dropping duplicate saved studies", zap.Int("duplicates", len(list)-len(kept)))
		list = kept
	}
	return list
}

// IsSaved reports whether a study with the same identity is in the list.
func (s *Store) IsSaved(ctx context.Context, study studies.Study) bool {
	return indexOf(s.Load(ctx), domain.KeyOf(study)) >= 0
}

// Save appends study stamped with the current time. It returns false when the
// study is already saved or the list could not be written.
func (s *Store) Save(ctx context.Context, study studies.Study) bool {
	list := s.Load(ctx)
	key := domain.KeyOf(study)
	if indexOf(list, key) >= 0 {
		return false
	}
	list = append(list, domain.SavedStudy{Study: study, SavedAt: s.clock.Now().UTC()})
	if !s.persist(ctx, list) {
		return false
	}
	s.logger.Debug("saved study", zap.Stringer("key", key), zap.Int("count", len(list)))
	return true
}

// RemoveAt deletes the entry at index in insertion order.
func (s *Store) RemoveAt(ctx context.Context, index int) bool {
	list := s.Load(ctx)
	if index < 0 || index >= len(list) {
		return false
	}
	removed := list[index].Key()
	list = slices.Delete(list, index, index+1)
	if !s.persist(ctx, list) {
		return false
	}
	s.logger.Debug("removed study", zap.Stringer("key", removed), zap.Int("count", len(list)))
	return true
}

// ClearAll empties the list and erases its slot.
func (s *Store) ClearAll(ctx context.Context) bool {
	if err := s.blobs.RemoveItem(ctx, domain.SlotName); err != nil {
		s.logger.Error("clear saved studies", zap.Error(err))
		return false
	}
	return true
}

// ExportAll renders the current list and passes it to the exporter. The list
// itself is not modified.
func (s *Store) ExportAll(ctx context.Context, format domain.Format) (domain.Export, string, error) {
	export, err := domain.NewExport(s.Load(ctx), format, s.clock.Now())
	if err != nil {
		return domain.Export{}, "", err
	}
	if s.exporter == nil {
		return export, "", nil
	}
	location, err := s.exporter.Export(ctx, export.Filename, export.Payload)
	if err != nil {
		s.logger.Error("export saved studies", zap.String("filename", export.Filename), zap.Error(err))
		return export, "", err
	}
	s.logger.Info("exported saved studies", zap.String("location", location), zap.Int("count", export.Count))
	return export, location, nil
}

func (s *Store) persist(ctx context.Context, list []domain.SavedStudy) bool {
	blob, err := domain.Encode(list)
	if err != nil {
		s.logger.Error("encode saved studies", zap.Error(err))
		return false
	}
	if err := s.blobs.SetItem(ctx, domain.SlotName, blob); err != nil {
		s.logger.Error("write saved studies", zap.Error(err))
		return false
	}
	return true
}

func indexOf(list []domain.SavedStudy, key domain.Key) int {
	return slices.IndexFunc(list, func(s domain.SavedStudy) bool { return s.Key() == key })
}

// unique keeps the first entry for each key.
func unique(list []domain.SavedStudy) []domain.SavedStudy {
	seen := make(map[domain.Key]struct{}, len(list))
	out := list[:0:0]
	for _, s := range list {
		if _, dup := seen[s.Key()]; dup {
			continue
		}
		seen[s.Key()] = struct{}{}
		out = append(out, s)
	}
	return out
}
