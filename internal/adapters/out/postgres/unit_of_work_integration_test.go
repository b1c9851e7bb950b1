package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/ledgerrepo"
	"dispatch/internal/adapters/out/postgres/requestrepo"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/request"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides comprehensive integration testing
// for the GORM-based Unit of Work implementation with real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&driverrepo.DriverDTO{}, &requestrepo.RequestDTO{}, &ledgerrepo.LedgerEntryDTO{})
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
// Truncates all tables to prevent test interference.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE drivers, delivery_requests, order_tracking RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// createTestDriver creates a valid driver with the given ID and stock for testing purposes.
func createTestDriver(id string, stock int) *driver.Driver {
	driverID, _ := kernel.NewDriverID(id)
	testDriver, _ := driver.NewDriver(driverID, "Test Driver", []byte("hash"))
	if stock > 0 {
		_ = testDriver.Restock(stock)
	}
	return testDriver
}

// createTestRequest creates a valid pending delivery request for testing purposes.
func createTestRequest(quantity int) *request.DeliveryRequest {
	dropoff, _ := kernel.NewAddress("東京都三鷹市下連雀3-1-1")
	testRequest, _ := request.NewDeliveryRequest(dropoff, quantity, time.Now().UTC())
	return testRequest
}

func createTestDriverID(id string) kernel.DriverID {
	driverID, _ := kernel.NewDriverID(id)
	return driverID
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	// Create multiple unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Verify instances are different
	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	// Verify both instances provide access to repositories
	suite.NotNil(uow1.DriverRepository(), "First instance should provide driver repository")
	suite.NotNil(uow1.RequestRepository(), "First instance should provide request repository")
	suite.NotNil(uow1.LedgerRepository(), "First instance should provide ledger repository")
	suite.NotNil(uow2.DriverRepository(), "Second instance should provide driver repository")
	suite.NotNil(uow2.RequestRepository(), "Second instance should provide request repository")
	suite.NotNil(uow2.LedgerRepository(), "Second instance should provide ledger repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	// Test multiple begin calls are safe
	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	// Test commit
	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	// Test rollback on new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Test commit without begin
	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	// Test rollback without begin
	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test driver
	testDriver := createTestDriver("D001", 5)

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add driver within transaction
	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	// Verify driver exists within transaction
	retrievedDriver, err := uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrievedDriver.IsEqual(testDriver))

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify driver persists after commit using new unit of work
	newUow := suite.factory.Create()
	retrievedDriver, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrievedDriver.IsEqual(testDriver))
	suite.Equal(5, retrievedDriver.Stock())
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testDriver := createTestDriver("D001", 5)
	testRequest := createTestRequest(2)

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities using different repositories within same transaction
	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	err = uow.RequestRepository().Add(ctx, testRequest)
	suite.Require().NoError(err)

	// Debit stock and claim the request for the driver
	err = testDriver.Debit(testRequest.Quantity())
	suite.Require().NoError(err)
	err = uow.DriverRepository().Update(ctx, testDriver)
	suite.Require().NoError(err)

	claimed, err := uow.RequestRepository().Claim(ctx, testRequest.ID(), testDriver.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(claimed, "Driver should win the claim on a pending request")

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify both entities persisted correctly with relationships
	newUow := suite.factory.Create()

	retrievedDriver, err := newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(3, retrievedDriver.Stock())

	retrievedRequest, err := newUow.RequestRepository().Get(ctx, testRequest.ID())
	suite.Require().NoError(err)
	suite.Equal(request.InProgress, retrievedRequest.Status())
	suite.True(retrievedRequest.IsAssignedTo(testDriver.ID()))
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test entities
	testDriver := createTestDriver("D001", 5)
	testRequest := createTestRequest(2)

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add entities within transaction
	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	err = uow.RequestRepository().Add(ctx, testRequest)
	suite.Require().NoError(err)

	// Verify entities exist within transaction
	_, err = uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)

	_, err = uow.RequestRepository().Get(ctx, testRequest.ID())
	suite.Require().NoError(err)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify entities do not exist after rollback using new unit of work
	newUow := suite.factory.Create()

	_, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().Error(err, "Driver should not exist after rollback")

	_, err = newUow.RequestRepository().Get(ctx, testRequest.ID())
	suite.Require().Error(err, "Request should not exist after rollback")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	// Create two unit of work instances
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	// Create test drivers
	driver1 := createTestDriver("D001", 3)
	driver2 := createTestDriver("D002", 3)

	// Begin transactions on both
	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	// Add different drivers in each transaction
	err = uow1.DriverRepository().Add(ctx, driver1)
	suite.Require().NoError(err)

	err = uow2.DriverRepository().Add(ctx, driver2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes
	_, err = uow1.DriverRepository().Get(ctx, driver1.ID())
	suite.Require().NoError(err, "UOW1 should see driver1")

	_, err = uow1.DriverRepository().Get(ctx, driver2.ID())
	suite.Require().Error(err, "UOW1 should not see driver2")

	_, err = uow2.DriverRepository().Get(ctx, driver2.ID())
	suite.Require().NoError(err, "UOW2 should see driver2")

	_, err = uow2.DriverRepository().Get(ctx, driver1.ID())
	suite.Require().Error(err, "UOW2 should not see driver1")

	// Commit first transaction
	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	// Rollback second transaction
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify only driver1 persisted
	newUow := suite.factory.Create()
	_, err = newUow.DriverRepository().Get(ctx, driver1.ID())
	suite.Require().NoError(err, "Driver1 should persist after commit")

	_, err = newUow.DriverRepository().Get(ctx, driver2.ID())
	suite.Require().Error(err, "Driver2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create test driver
	testDriver := createTestDriver("D001", 2)

	// Add driver without beginning transaction (should auto-commit)
	err := uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	// Verify driver persists immediately
	retrievedDriver, err := uow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrievedDriver.IsEqual(testDriver))

	// Verify with new unit of work instance
	newUow := suite.factory.Create()
	retrievedDriver, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.True(retrievedDriver.IsEqual(testDriver))
}

// TestUnitOfWork_DeliveryWorkflow tests the complete accept, resign and
// re-accept workflow involving all three repositories across transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Begin transaction for the accept step
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Step 1: Create a driver with stock and a pending request
	testDriver := createTestDriver("D001", 5)
	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	testRequest := createTestRequest(2)
	err = uow.RequestRepository().Add(ctx, testRequest)
	suite.Require().NoError(err)

	// Step 2: Driver accepts the request
	err = testDriver.Debit(testRequest.Quantity())
	suite.Require().NoError(err)
	err = uow.DriverRepository().Update(ctx, testDriver)
	suite.Require().NoError(err)

	claimed, err := uow.RequestRepository().Claim(ctx, testRequest.ID(), testDriver.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(claimed)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Step 3: Driver resigns in a new transaction, leaving a ledger marker
	resignUow := suite.factory.Create()
	err = resignUow.Begin(ctx)
	suite.Require().NoError(err)

	resigningDriver, err := resignUow.DriverRepository().GetForUpdate(ctx, testDriver.ID())
	suite.Require().NoError(err)
	err = resigningDriver.Credit(testRequest.Quantity())
	suite.Require().NoError(err)
	err = resignUow.DriverRepository().Update(ctx, resigningDriver)
	suite.Require().NoError(err)

	released, err := resignUow.RequestRepository().Release(ctx, testRequest.ID(), testDriver.ID())
	suite.Require().NoError(err)
	suite.True(released)

	marker, err := tracking.NewResignedEntry(
		testRequest.ID(), testDriver.ID(), testRequest.Dropoff(),
		testRequest.Quantity(), testRequest.OrderedAt())
	suite.Require().NoError(err)
	err = resignUow.LedgerRepository().Add(ctx, marker)
	suite.Require().NoError(err)

	err = resignUow.Commit(ctx)
	suite.Require().NoError(err)

	// Step 4: Another driver accepts the resigned request, reclaiming the marker
	acceptUow := suite.factory.Create()
	err = acceptUow.Begin(ctx)
	suite.Require().NoError(err)

	otherDriver := createTestDriver("D002", 4)
	err = acceptUow.DriverRepository().Add(ctx, otherDriver)
	suite.Require().NoError(err)

	claimed, err = acceptUow.RequestRepository().Claim(ctx, testRequest.ID(), otherDriver.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(claimed)

	err = acceptUow.LedgerRepository().RemoveResignedMarker(ctx, testRequest.ID())
	suite.Require().NoError(err)

	err = acceptUow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify final state using a new unit of work
	finalUow := suite.factory.Create()

	retrievedRequest, err := finalUow.RequestRepository().Get(ctx, testRequest.ID())
	suite.Require().NoError(err)
	suite.Equal(request.InProgress, retrievedRequest.Status())
	suite.True(retrievedRequest.IsAssignedTo(otherDriver.ID()))

	retrievedDriver, err := finalUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(5, retrievedDriver.Stock(), "First driver should have stock credited back")

	hasMarker, err := finalUow.LedgerRepository().HasResignedMarker(ctx, testRequest.ID())
	suite.Require().NoError(err)
	suite.False(hasMarker, "Resignation marker should be reclaimed on re-accept")
}

// TestUnitOfWork_CompletionWorkflow tests completing a delivery: the ledger
// gains a completed entry and the live request row is removed atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CompletionWorkflow() {
	ctx := context.Background()

	// Create and claim a request outside the completion transaction
	setupUow := suite.factory.Create()
	testDriver := createTestDriver("D001", 5)
	err := setupUow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)

	testRequest := createTestRequest(1)
	err = setupUow.RequestRepository().Add(ctx, testRequest)
	suite.Require().NoError(err)

	claimed, err := setupUow.RequestRepository().Claim(ctx, testRequest.ID(), testDriver.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(claimed)

	// Complete the delivery in a transaction
	uow := suite.factory.Create()
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	entry, err := tracking.NewCompletedEntry(
		testRequest.ID(), testDriver.ID(), testRequest.Dropoff(),
		testRequest.Quantity(), testRequest.OrderedAt(), time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.LedgerRepository().Add(ctx, entry)
	suite.Require().NoError(err)

	deleted, err := uow.RequestRepository().Delete(ctx, testRequest.ID(), testDriver.ID())
	suite.Require().NoError(err)
	suite.True(deleted)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify the live request is gone and the ledger row remains
	finalUow := suite.factory.Create()
	_, err = finalUow.RequestRepository().Get(ctx, testRequest.ID())
	suite.Require().Error(err, "Completed request should be removed from the live table")

	var count int64
	err = suite.db.Table("order_tracking").Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

// TestUnitOfWork_WorkflowRollback tests rollback behavior during a multi-step workflow.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WorkflowRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Begin transaction
	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// Create driver and request
	testDriver := createTestDriver("D001", 5)
	testRequest := createTestRequest(2)

	err = uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)
	err = uow.RequestRepository().Add(ctx, testRequest)
	suite.Require().NoError(err)

	// Perform domain operations
	err = testDriver.Debit(testRequest.Quantity())
	suite.Require().NoError(err)
	err = uow.DriverRepository().Update(ctx, testDriver)
	suite.Require().NoError(err)

	claimed, err := uow.RequestRepository().Claim(ctx, testRequest.ID(), testDriver.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(claimed)

	// Rollback transaction
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify nothing was persisted
	newUow := suite.factory.Create()

	_, err = newUow.DriverRepository().Get(ctx, testDriver.ID())
	suite.Require().Error(err, "Driver should not exist after rollback")

	_, err = newUow.RequestRepository().Get(ctx, testRequest.ID())
	suite.Require().Error(err, "Request should not exist after rollback")
}

// TestUnitOfWork_PartialFailureScenario tests behavior when some operations succeed and others fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PartialFailureScenario() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial driver outside transaction
	existingDriver := createTestDriver("D001", 3)
	err := uow.DriverRepository().Add(ctx, existingDriver)
	suite.Require().NoError(err)

	// Begin new transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Add valid entities
	newDriver := createTestDriver("D002", 3)
	newRequest := createTestRequest(1)

	err = uow.DriverRepository().Add(ctx, newDriver)
	suite.Require().NoError(err)
	err = uow.RequestRepository().Add(ctx, newRequest)
	suite.Require().NoError(err)

	// Try to add duplicate driver (should fail)
	duplicateDriver := createTestDriver("D001", 0)
	err = uow.DriverRepository().Add(ctx, duplicateDriver)
	suite.Require().ErrorIs(err, driver.ErrDriverAlreadyExists, "Adding duplicate driver should fail")

	// Even though some operations succeeded, rollback should undo everything
	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Verify rollback undid the successful operations
	newUow := suite.factory.Create()

	// Existing driver should still exist (was added before transaction)
	_, err = newUow.DriverRepository().Get(ctx, existingDriver.ID())
	suite.Require().NoError(err, "Existing driver should still exist")

	// New entities should not exist (transaction was rolled back)
	_, err = newUow.DriverRepository().Get(ctx, newDriver.ID())
	suite.Require().Error(err, "New driver should not exist after rollback")

	_, err = newUow.RequestRepository().Get(ctx, newRequest.ID())
	suite.Require().Error(err, "New request should not exist after rollback")
}

// TestUnitOfWork_ClaimConsistency verifies in-progress counts and claim
// outcomes observed within a transaction stay consistent after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ClaimConsistency() {
	ctx := context.Background()
	uow := suite.factory.Create()

	// Create initial data outside transaction
	testDriver := createTestDriver("D001", 9)
	request1 := createTestRequest(1)
	request2 := createTestRequest(1)

	err := uow.DriverRepository().Add(ctx, testDriver)
	suite.Require().NoError(err)
	err = uow.RequestRepository().Add(ctx, request1)
	suite.Require().NoError(err)
	err = uow.RequestRepository().Add(ctx, request2)
	suite.Require().NoError(err)

	// Begin transaction
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	// Claim one request
	claimed, err := uow.RequestRepository().Claim(ctx, request1.ID(), testDriver.ID(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(claimed)

	// Count should reflect the uncommitted claim within the transaction
	count, err := uow.RequestRepository().CountInProgressByDriver(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(1, count)

	// A repeated claim on the same request loses within the same transaction
	claimed, err = uow.RequestRepository().Claim(ctx, request1.ID(), createTestDriverID("D002"), time.Now().UTC())
	suite.Require().NoError(err)
	suite.False(claimed)

	// Commit transaction
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify counts stay consistent after commit
	newUow := suite.factory.Create()

	count, err = newUow.RequestRepository().CountInProgressByDriver(ctx, testDriver.ID())
	suite.Require().NoError(err)
	suite.Equal(1, count)

	retrievedRequest, err := newUow.RequestRepository().Get(ctx, request2.ID())
	suite.Require().NoError(err)
	suite.Equal(request.Pending, retrievedRequest.Status(), "Unclaimed request should stay pending")
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
