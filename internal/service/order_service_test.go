package service_test

import (
	"context"
	"testing"

	"backend/internal/model"
	"backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderFixture() (service.OrderService, *memOrderRepo, *memLogRepo) {
	repo := newMemOrderRepo()
	logRepo := &memLogRepo{}
	svc := service.NewOrderService(repo, nil, service.NewLogService(logRepo))
	return svc, repo, logRepo
}

func TestCreateOrderDefaultsToPending(t *testing.T) {
	svc, _, logRepo := newOrderFixture()

	order, err := svc.Create(context.Background(), "creator", service.CreateOrderRequest{
		Title:             "Batch 42 belts",
		CurrentDepartment: "cutting",
	})

	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, "creator", order.CreatedBy)

	require.Len(t, logRepo.entries, 1)
	assert.Equal(t, model.EntityOrder, logRepo.entries[0].EntityType)
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	svc, _, _ := newOrderFixture()

	order, err := svc.Create(context.Background(), "creator", service.CreateOrderRequest{
		Title:  "Batch 42 belts",
		Status: model.OrderStatusDelivered,
	})
	require.NoError(t, err)

	// Moving a delivered order back to pending is a supported operation,
	// used when finished work is rejected downstream.
	updated, err := svc.UpdateStatus(context.Background(), "operator", order.ID.String(), service.UpdateOrderStatusRequest{
		Status: model.OrderStatusPending,
		Reason: "stitching rejected at QA",
	})

	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, updated.Status)
	assert.Equal(t, "stitching rejected at QA", updated.Reason)
}

func TestUpdateStatusAcceptsUnknownValues(t *testing.T) {
	svc, _, _ := newOrderFixture()

	order, err := svc.Create(context.Background(), "creator", service.CreateOrderRequest{Title: "Batch"})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), "operator", order.ID.String(), service.UpdateOrderStatusRequest{
		Status: "ON_HOLD",
	})

	require.NoError(t, err)
	assert.Equal(t, "ON_HOLD", updated.Status)
}

func TestAssignOrderMovesDepartment(t *testing.T) {
	svc, _, logRepo := newOrderFixture()

	order, err := svc.Create(context.Background(), "creator", service.CreateOrderRequest{
		Title:             "Batch",
		CurrentDepartment: "cutting",
		NextDepartment:    "stitching",
	})
	require.NoError(t, err)

	assigned, err := svc.AssignToDepartment(context.Background(), "operator", order.ID.String(), service.AssignOrderRequest{
		DepartmentID: "stitching",
		AssignedTo:   "worker-7",
	})

	require.NoError(t, err)
	assert.Equal(t, "stitching", assigned.CurrentDepartment)
	assert.Empty(t, assigned.NextDepartment, "handoff clears the routing hint")
	assert.Equal(t, "worker-7", assigned.AssignedTo)

	require.Len(t, logRepo.entries, 2)
	assert.Equal(t, model.AuditActionUpdate, logRepo.entries[1].Action)
}

func TestFindOrdersByDepartment(t *testing.T) {
	svc, _, _ := newOrderFixture()

	_, err := svc.Create(context.Background(), "creator", service.CreateOrderRequest{Title: "A", CurrentDepartment: "cutting"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), "creator", service.CreateOrderRequest{Title: "B", CurrentDepartment: "finishing"})
	require.NoError(t, err)

	cutting, err := svc.FindByDepartment(context.Background(), "cutting")
	require.NoError(t, err)
	require.Len(t, cutting, 1)
	assert.Equal(t, "A", cutting[0].Title)
}

func TestRemoveOrder(t *testing.T) {
	svc, repo, logRepo := newOrderFixture()

	order, err := svc.Create(context.Background(), "creator", service.CreateOrderRequest{Title: "A"})
	require.NoError(t, err)

	_, err = svc.Remove(context.Background(), "admin", order.ID.String())
	require.NoError(t, err)
	assert.Empty(t, repo.rows)

	require.Len(t, logRepo.entries, 2)
	assert.Equal(t, model.AuditActionDelete, logRepo.entries[1].Action)
	assert.Nil(t, logRepo.entries[1].NewData)
}
