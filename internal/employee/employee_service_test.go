package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-employees/internal/employee"
	employeeerrors "go-employees/internal/employee/errors"
	"go-employees/internal/events"
	"go-employees/internal/shared/apperror"
	"go-employees/internal/shared/contextutil"

	employeeMock "go-employees/internal/employee/mock"
	"go-employees/internal/messaging/kafka"
	kafkaMock "go-employees/internal/messaging/kafka/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	// Inject ke Service
	svc := employee.NewServiceWithOutbox(db, repo, outboxRepo, dbRedis)

	t.Cleanup(func() { db.Close() })

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		outbox:    outboxRepo, // Simpan ke deps untuk dipakai di EXPECT()
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func expectInvalidate(mock redismock.ClientMock) {
	mock.ExpectIncr(employee.LookupGenerationKey).SetVal(1)
}

func createRequest() employee.CreateEmployeeRequest {
	phone := "081234567890"
	return employee.CreateEmployeeRequest{
		NIP:        "EMP100",
		FullName:   "Ahmad Wijaya",
		Email:      "ahmad@company.com",
		Phone:      &phone,
		Position:   "Software Engineer",
		Department: "IT",
		HireDate:   "2023-01-15",
		Salary:     json.RawMessage(`8000000`),
	}
}

func storedEmployee(id uint) *employee.Employee {
	ts := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	return &employee.Employee{
		ID:         id,
		NIP:        "EMP001",
		FullName:   "Ahmad Wijaya",
		Email:      "ahmad.wijaya@company.com",
		Position:   "Software Engineer",
		Department: "IT",
		HireDate:   time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		Salary:     decimal.NewFromInt(8000000),
		Status:     employee.StatusActive,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := createRequest()

		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByNIP(ctx, "EMP100", nil).Return(false, nil)
		deps.repo.EXPECT().ExistsByEmail(ctx, "ahmad@company.com", nil).Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, req.FullName, e.FullName)
				assert.Equal(t, employee.StatusActive, e.Status)
				assert.Equal(t, e.CreatedAt, e.UpdatedAt)
				e.ID = 42
				return nil
			})

		// Mock Outbox WithTx (Wajib karena dipanggil di service)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), MatchOutboxEvent(events.EmployeeCreated, "")).
			Return(nil)

		expectInvalidate(deps.redismock)

		resp, err := deps.service.Create(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(42), resp.ID)
		assert.Equal(t, "8000000.00", resp.Salary)
		assert.Equal(t, "2023-01-15", resp.HireDate)
		assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("success - should persist to outbox with request id", func(t *testing.T) {
		deps := setupServiceTest(t)

		rid := "REQ-123-ABC"
		ctx := contextutil.WithRequestID(context.Background(), rid)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByNIP(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), MatchOutboxEvent(events.EmployeeCreated, rid)).
			Return(nil).
			Times(1)
		expectInvalidate(deps.redismock)

		_, err := deps.service.Create(ctx, createRequest())

		assert.NoError(t, err)
	})

	t.Run("validation error never opens a transaction", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := createRequest()
		req.Status = "fired"

		_, err := deps.service.Create(ctx, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatus)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate nip -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByNIP(ctx, "EMP100", nil).Return(true, nil)

		_, err := deps.service.Create(ctx, createRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrNIPAlreadyExists)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, 400, httpErr.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate email -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByNIP(ctx, gomock.Any(), nil).Return(false, nil)
		deps.repo.EXPECT().ExistsByEmail(ctx, "ahmad@company.com", nil).Return(true, nil)

		_, err := deps.service.Create(ctx, createRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
	})

	t.Run("unique violation race maps to duplicate", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByNIP(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employees_email"})

		_, err := deps.service.Create(ctx, createRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrEmailAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox error -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().ExistsByNIP(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("outbox down"))

		_, err := deps.service.Create(ctx, createRequest())

		assert.EqualError(t, err, "outbox down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

func TestEmployeeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes params and counts without window", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Count(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, f employee.Filter) (int64, error) {
				assert.Equal(t, 0, f.Limit)
				assert.Equal(t, 0, f.Offset)
				assert.Equal(t, "IT", f.Department)
				return 7, nil
			})
		deps.repo.EXPECT().
			FindAll(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, f employee.Filter) ([]employee.Employee, error) {
				assert.Equal(t, 5, f.Limit)
				assert.Equal(t, 5, f.Offset)
				assert.Equal(t, "nip", f.SortColumn)
				return []employee.Employee{*storedEmployee(6)}, nil
			})

		res, err := deps.service.List(ctx, employee.ListParams{Page: 2, Limit: 5, Department: "IT", SortField: "unknown"})

		assert.NoError(t, err)
		assert.Equal(t, int64(7), res.Total)
		assert.Equal(t, 2, res.Page)
		assert.Equal(t, 5, res.Limit)
		assert.Len(t, res.Employees, 1)
	})

	t.Run("no match is an empty list", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().Count(ctx, gomock.Any()).Return(int64(0), nil)
		deps.repo.EXPECT().FindAll(ctx, gomock.Any()).Return([]employee.Employee{}, nil)

		res, err := deps.service.List(ctx, employee.ListParams{Search: "nobody"})

		assert.NoError(t, err)
		assert.NotNil(t, res.Employees)
		assert.Empty(t, res.Employees)
	})

	t.Run("store error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().Count(ctx, gomock.Any()).Return(int64(0), errors.New("db down"))

		_, err := deps.service.List(ctx, employee.ListParams{})

		assert.EqualError(t, err, "db down")
	})
}

func TestEmployeeService_Export(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().
		FindAll(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, f employee.Filter) ([]employee.Employee, error) {
			assert.Equal(t, 0, f.Limit)
			assert.True(t, f.SortDesc)
			return []employee.Employee{*storedEmployee(1), *storedEmployee(2)}, nil
		})

	rows, err := deps.service.Export(ctx, employee.ListParams{Page: 3, Limit: 1, SortField: "gaji", SortOrder: "desc"})

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, uint(1)).Return(storedEmployee(1), nil)

		resp, err := deps.service.GetByID(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, "EMP001", resp.NIP)
		assert.Equal(t, "2025-05-01 08:00:00", resp.CreatedAt)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().FindByID(ctx, uint(404)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, 404)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("logs through the request scoped logger", func(t *testing.T) {
		deps := setupServiceTest(t)
		core, logs := observer.New(zap.DebugLevel)
		reqCtx := contextutil.WithLogger(ctx, zap.New(core).With(zap.String("request_id", "REQ-77")))
		deps.repo.EXPECT().FindByID(reqCtx, uint(1)).Return(storedEmployee(1), nil)

		_, err := deps.service.GetByID(reqCtx, 1)

		assert.NoError(t, err)
		entries := logs.FilterMessage("get employee by id requested").All()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, "REQ-77", entries[0].ContextMap()["request_id"])
		}
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	id := uint(1)

	t.Run("partial merge", func(t *testing.T) {
		deps := setupServiceTest(t)
		status := employee.StatusOnLeave
		email := "new@company.com"
		current := storedEmployee(id)
		createdAt := current.CreatedAt

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(current, nil)
		deps.repo.EXPECT().ExistsByEmail(ctx, email, &id).Return(false, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, employee.StatusOnLeave, e.Status)
				assert.Equal(t, email, e.Email)
				assert.Equal(t, "Ahmad Wijaya", e.FullName)
				assert.Equal(t, createdAt, e.CreatedAt)
				assert.True(t, e.UpdatedAt.After(createdAt))
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), MatchOutboxEvent(events.EmployeeUpdated, "")).Return(nil)
		expectInvalidate(deps.redismock)

		resp, err := deps.service.Update(ctx, id, employee.UpdateEmployeeRequest{Status: &status, Email: &email})

		assert.NoError(t, err)
		assert.Equal(t, employee.StatusOnLeave, resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		status := "retired"

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Update(ctx, 99, employee.UpdateEmployeeRequest{Status: &status})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid status leaves record untouched", func(t *testing.T) {
		deps := setupServiceTest(t)
		status := "retired"

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(storedEmployee(id), nil)

		_, err := deps.service.Update(ctx, id, employee.UpdateEmployeeRequest{Status: &status})

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatus)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("nip owned by another record", func(t *testing.T) {
		deps := setupServiceTest(t)
		nip := "EMP002"

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(storedEmployee(id), nil)
		deps.repo.EXPECT().ExistsByNIP(ctx, nip, &id).Return(true, nil)

		_, err := deps.service.Update(ctx, id, employee.UpdateEmployeeRequest{NIP: &nip})

		assert.ErrorIs(t, err, employeeerrors.ErrNIPAlreadyExists)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, uint(1)).Return(storedEmployee(1), nil)
		deps.repo.EXPECT().Delete(ctx, uint(1)).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), MatchOutboxEvent(events.EmployeeDeleted, "")).Return(nil)
		expectInvalidate(deps.redismock)

		err := deps.service.Delete(ctx, 1)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("nonexistent id is not found", func(t *testing.T) {
		deps := setupServiceTest(t)

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, uint(77)).Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, 77)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Lookups(t *testing.T) {
	ctx := context.Background()

	t.Run("departments cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(employee.LookupGenerationKey).SetVal("3")
		deps.redismock.ExpectGet(employee.DepartmentsCacheKey + ":3").SetVal(`["Finance","IT"]`)

		values, err := deps.service.Departments(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Finance", "IT"}, values)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("positions cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(employee.LookupGenerationKey).RedisNil()
		deps.redismock.ExpectGet(employee.PositionsCacheKey + ":0").RedisNil()
		deps.repo.EXPECT().DistinctPositions(gomock.Any()).Return([]string{"Accountant", "HR Manager"}, nil)
		deps.redismock.ExpectSet(employee.PositionsCacheKey+":0", `["Accountant","HR Manager"]`, 10*time.Minute).SetVal("OK")

		values, err := deps.service.Positions(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"Accountant", "HR Manager"}, values)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("redis failure falls back to store without caching", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(employee.LookupGenerationKey).SetErr(errors.New("redis down"))
		deps.repo.EXPECT().DistinctDepartments(gomock.Any()).Return([]string{"IT"}, nil)

		values, err := deps.service.Departments(ctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"IT"}, values)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("load survives caller cancellation", func(t *testing.T) {
		deps := setupServiceTest(t)
		cctx, cancel := context.WithCancel(ctx)
		deps.redismock.ExpectGet(employee.LookupGenerationKey).RedisNil()
		deps.redismock.ExpectGet(employee.DepartmentsCacheKey + ":0").RedisNil()
		deps.repo.EXPECT().DistinctDepartments(gomock.Any()).DoAndReturn(func(loadCtx context.Context) ([]string, error) {
			cancel()
			assert.NoError(t, loadCtx.Err())
			return []string{"IT"}, nil
		})
		deps.redismock.ExpectSet(employee.DepartmentsCacheKey+":0", `["IT"]`, 10*time.Minute).SetVal("OK")

		values, err := deps.service.Departments(cctx)

		assert.NoError(t, err)
		assert.Equal(t, []string{"IT"}, values)
	})

	t.Run("statistics", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(employee.LookupGenerationKey).RedisNil()
		deps.redismock.ExpectGet(employee.StatisticsCacheKey + ":0").RedisNil()
		deps.repo.EXPECT().Count(gomock.Any(), employee.Filter{}).Return(int64(5), nil)
		deps.repo.EXPECT().CountByStatus(gomock.Any()).Return([]employee.GroupCount{{Key: "active", Count: 4}, {Key: "on_leave", Count: 1}}, nil)
		deps.repo.EXPECT().CountByDepartment(gomock.Any()).Return([]employee.GroupCount{
			{Key: "Finance", Count: 1}, {Key: "Human Resources", Count: 1}, {Key: "IT", Count: 2}, {Key: "Marketing", Count: 1},
		}, nil)
		deps.redismock.Regexp().ExpectSet(employee.StatisticsCacheKey+":0", `"total":5`, 10*time.Minute).SetVal("OK")

		stats, err := deps.service.Statistics(ctx)

		assert.NoError(t, err)
		assert.Equal(t, int64(5), stats.Total)
		assert.Equal(t, int64(2), stats.ByDepartment["IT"])
		assert.Equal(t, int64(4), stats.ByStatus["active"])
	})

	t.Run("statistics store error is returned", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.redismock.ExpectGet(employee.LookupGenerationKey).RedisNil()
		deps.redismock.ExpectGet(employee.StatisticsCacheKey + ":0").RedisNil()
		deps.repo.EXPECT().Count(gomock.Any(), employee.Filter{}).Return(int64(0), errors.New("db down"))

		_, err := deps.service.Statistics(ctx)

		assert.EqualError(t, err, "db down")
	})
}

func TestEmployeeService_WithoutRedis(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := employeeMock.NewMockRepository(ctrl)
	svc := employee.NewService(nil, repo, nil)
	ctx := context.Background()

	repo.EXPECT().DistinctDepartments(gomock.Any()).Return([]string{"IT"}, nil)

	values, err := svc.Departments(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []string{"IT"}, values)
}

// Helper
type outboxEventMatcher struct {
	eventType   string
	expectedRID string
}

func (m outboxEventMatcher) Matches(x any) bool {
	event, ok := x.(kafka.OutboxEvent)
	if !ok {
		return false
	}

	if event.EventType != m.eventType || event.Topic != events.EmployeeLifecycleTopic {
		return false
	}

	// Cek RequestID di kolom struct
	if event.RequestID != m.expectedRID {
		return false
	}

	// Cek RequestID di dalam JSON Payload
	var payload events.EmployeeLifecycleEvent
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return false
	}

	return payload.RequestID == m.expectedRID && payload.EventType == m.eventType
}

func (m outboxEventMatcher) String() string {
	return "matches outbox event " + m.eventType + " with request_id " + m.expectedRID
}

func MatchOutboxEvent(eventType, rid string) gomock.Matcher {
	return outboxEventMatcher{eventType: eventType, expectedRID: rid}
}
