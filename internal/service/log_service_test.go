package service_test

import (
	"context"
	"fmt"
	"testing"

	"backend/internal/model"
	"backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLogMarshalsSnapshots(t *testing.T) {
	logRepo := &memLogRepo{}
	svc := service.NewLogService(logRepo)

	before := map[string]string{"name": "old"}
	after := map[string]string{"name": "new"}
	entry := svc.CreateLog(context.Background(), model.AuditActionUpdate, model.EntityCategory, "cat-1", "actor", before, after)

	require.NotNil(t, entry)
	require.NotNil(t, entry.OldData)
	require.NotNil(t, entry.NewData)
	assert.JSONEq(t, `{"name":"old"}`, *entry.OldData)
	assert.JSONEq(t, `{"name":"new"}`, *entry.NewData)
}

func TestCreateLogNilSnapshotsStayNil(t *testing.T) {
	logRepo := &memLogRepo{}
	svc := service.NewLogService(logRepo)

	entry := svc.CreateLog(context.Background(), model.AuditActionCreate, model.EntityOrder, "o-1", "actor", nil, map[string]int{"n": 1})

	require.NotNil(t, entry)
	assert.Nil(t, entry.OldData)
	assert.NotNil(t, entry.NewData)
}

func TestCreateLogSwallowsRepoFailure(t *testing.T) {
	logRepo := &memLogRepo{fail: true}
	svc := service.NewLogService(logRepo)

	entry := svc.CreateLog(context.Background(), model.AuditActionCreate, model.EntityOrder, "o-1", "actor", nil, nil)

	assert.Nil(t, entry, "a failed audit write returns nil, never an error")
}

func TestGetLogsPaginates(t *testing.T) {
	logRepo := &memLogRepo{}
	svc := service.NewLogService(logRepo)

	for i := 0; i < 25; i++ {
		svc.CreateLog(context.Background(), model.AuditActionCreate, model.EntityStock, fmt.Sprintf("s-%d", i), "actor", nil, nil)
	}

	page, total, err := svc.GetLogs(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total, "total counts every record, not the page")
	require.Len(t, page, 10)
	assert.Equal(t, "s-10", page[0].EntityID)
}

func TestGetLogsDefaultsInvalidParams(t *testing.T) {
	logRepo := &memLogRepo{}
	svc := service.NewLogService(logRepo)

	for i := 0; i < 5; i++ {
		svc.CreateLog(context.Background(), model.AuditActionCreate, model.EntityStock, fmt.Sprintf("s-%d", i), "actor", nil, nil)
	}

	page, total, err := svc.GetLogs(context.Background(), 0, -3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, page, 5)
}
