package service

import (
	"context"
	"encoding/json"

	"backend/internal/model"
	"backend/internal/repository"

	"github.com/rs/zerolog/log"
)

// LogService is the audit-log writer. CreateLog is strictly best-effort:
// it catches every underlying failure and returns nil instead, an audit
// write must never abort the business mutation that triggered it.
type LogService interface {
	CreateLog(ctx context.Context, action, entityType, entityID, userID string, oldData, newData interface{}) *model.AuditLog
	GetLogs(ctx context.Context, page, limit int) ([]model.AuditLog, int64, error)
	DeleteLog(ctx context.Context, id string) error
}

type logService struct {
	repo repository.LogRepository
}

// NewLogService returns a new instance of LogService
func NewLogService(repo repository.LogRepository) LogService {
	return &logService{repo: repo}
}

func (s *logService) CreateLog(ctx context.Context, action, entityType, entityID, userID string, oldData, newData interface{}) *model.AuditLog {
	entry := &model.AuditLog{
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		UserID:     userID,
		OldData:    marshalSnapshot(oldData),
		NewData:    marshalSnapshot(newData),
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).
			Str("action", action).
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("audit log write failed, continuing")
		return nil
	}
	return entry
}

// GetLogs returns one page of audit records, newest first, plus the total
// record count. page is 1-indexed.
func (s *logService) GetLogs(ctx context.Context, page, limit int) ([]model.AuditLog, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	logs, err := s.repo.List(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func (s *logService) DeleteLog(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// marshalSnapshot serializes an entity snapshot for the jsonb columns.
// nil input stays nil (SQL NULL); marshal failures are swallowed the same
// way write failures are.
func marshalSnapshot(v interface{}) *string {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal audit snapshot")
		return nil
	}
	s := string(b)
	return &s
}
