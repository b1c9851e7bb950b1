package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	driverID := createDriverID(t)
	requestID := createRequestID(t)
	requestEntity := createInProgressRequest(t, 2, driverID)

	cmd, err := commands.NewCompleteDeliveryCommand(driverID, requestID)
	require.NoError(t, err)

	_, requestRepo, ledgerRepo, mockUoW, mockFactory := newAcceptMocks()

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("RequestRepository").Return(requestRepo).Once(),
		mockUoW.On("LedgerRepository").Return(ledgerRepo).Once(),
		requestRepo.On("Get", ctx, requestID).Return(requestEntity, nil).Once(),
		ledgerRepo.On("Add", ctx, mock.MatchedBy(func(entry *tracking.LedgerEntry) bool {
			return entry.Status() == tracking.Completed &&
				entry.RequestID().IsEqual(requestID) &&
				entry.DriverID().IsEqual(driverID) &&
				entry.CompletedAt() != nil
		})).Return(nil).Once(),
		requestRepo.On("Delete", ctx, requestID, driverID).Return(true, nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockUoW.AssertExpectations(t)
	requestRepo.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_NotAssigned(t *testing.T) {
	// Arrange
	ctx := t.Context()
	driverID := createDriverID(t)
	requestID := createRequestID(t)
	otherID, err := kernel.NewDriverID("D002")
	require.NoError(t, err)

	cmd, err := commands.NewCompleteDeliveryCommand(driverID, requestID)
	require.NoError(t, err)

	_, requestRepo, ledgerRepo, mockUoW, mockFactory := newAcceptMocks()

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RequestRepository").Return(requestRepo).Once()
	mockUoW.On("LedgerRepository").Return(ledgerRepo).Once()
	requestRepo.On("Get", ctx, requestID).Return(createInProgressRequest(t, 2, otherID), nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrNotAssignedToDriver)
	ledgerRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
	requestRepo.AssertNotCalled(t, "Delete", ctx, requestID, driverID)
}

func TestCompleteDeliveryCommandHandler_Handle_RequestNotFound(t *testing.T) {
	// Arrange
	ctx := t.Context()
	driverID := createDriverID(t)
	requestID := createRequestID(t)

	cmd, err := commands.NewCompleteDeliveryCommand(driverID, requestID)
	require.NoError(t, err)

	_, requestRepo, ledgerRepo, mockUoW, mockFactory := newAcceptMocks()

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RequestRepository").Return(requestRepo).Once()
	mockUoW.On("LedgerRepository").Return(ledgerRepo).Once()
	requestRepo.On("Get", ctx, requestID).
		Return((*request.DeliveryRequest)(nil), errs.NewObjectNotFoundError("requestID", requestID.Int())).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrNotAssignedToDriver)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestCompleteDeliveryCommandHandler_Handle_DeleteRace(t *testing.T) {
	// Arrange: the row CAS fails because a concurrent resign got in first.
	ctx := t.Context()
	driverID := createDriverID(t)
	requestID := createRequestID(t)

	cmd, err := commands.NewCompleteDeliveryCommand(driverID, requestID)
	require.NoError(t, err)

	_, requestRepo, ledgerRepo, mockUoW, mockFactory := newAcceptMocks()

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("RequestRepository").Return(requestRepo).Once()
	mockUoW.On("LedgerRepository").Return(ledgerRepo).Once()
	requestRepo.On("Get", ctx, requestID).Return(createInProgressRequest(t, 2, driverID), nil).Once()
	ledgerRepo.On("Add", ctx, mock.Anything).Return(nil).Once()
	requestRepo.On("Delete", ctx, requestID, driverID).Return(false, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrNotAssignedToDriver)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}
